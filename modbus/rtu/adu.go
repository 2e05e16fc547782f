// Copyright (c) 2025 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package rtu

import (
	"fmt"

	"github.com/ffutop/modframes/modbus"
	"github.com/ffutop/modframes/modbus/crc"
)

// ApplicationDataUnit is a decoded RTU frame.
type ApplicationDataUnit struct {
	SlaveID  byte
	Pdu      modbus.ProtocolDataUnit
	Checksum uint16
}

// Decode checks the CRC of raw and splits it into slave address and PDU.
// The PDU data aliases raw.
func Decode(raw []byte) (adu *ApplicationDataUnit, err error) {
	length := len(raw)
	// Minimum size (including address, function and CRC)
	if length < MinSize {
		err = fmt.Errorf("modbus: request length '%v' does not meet minimum '%v'", length, MinSize)
		return
	}

	var sum crc.CRC
	sum.Reset().PushBytes(raw[0 : length-2])
	checksum := crc.Trailer(raw)
	if checksum != sum.Value() {
		err = fmt.Errorf("modbus: request crc '%04X' does not match expected '%04X'", checksum, sum.Value())
		return
	}
	adu = &ApplicationDataUnit{
		SlaveID:  raw[0],
		Pdu:      modbus.ProtocolDataUnit{FunctionCode: raw[1], Data: raw[2 : length-2]},
		Checksum: checksum,
	}
	return
}

// Encode encodes PDU in an RTU frame:
//
//	Slave Address   : 1 byte
//	Function        : 1 byte
//	Data            : 0 up to 252 bytes
//	CRC             : 2 bytes
func (adu *ApplicationDataUnit) Encode() (raw []byte, err error) {
	length := len(adu.Pdu.Data) + 4
	if length > MaxSize {
		err = fmt.Errorf("modbus: length of data '%v' must not be bigger than '%v'", length, MaxSize)
		return
	}
	raw = make([]byte, length-2, length)

	raw[0] = adu.SlaveID
	raw[1] = adu.Pdu.FunctionCode
	copy(raw[2:], adu.Pdu.Data)

	raw = crc.Append(raw)
	return
}
