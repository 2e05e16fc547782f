// Copyright (c) 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package crc

import "github.com/sigurn/crc16"

var table = crc16.MakeTable(crc16.CRC16_MODBUS)

// CRC is a running CRC-16/MODBUS (reflected 0x8005, i.e. 0xA001, init 0xFFFF).
type CRC struct {
	value uint16
}

func (crc *CRC) Reset() *CRC {
	crc.value = crc16.Init(table)
	return crc
}

func (crc *CRC) PushBytes(bs []byte) *CRC {
	crc.value = crc16.Update(crc.value, bs, table)
	return crc
}

func (crc *CRC) Value() uint16 {
	return crc16.Complete(crc.value, table)
}

// Checksum returns the CRC of bs in one call.
func Checksum(bs []byte) uint16 {
	return crc16.Checksum(bs, table)
}

// Append appends the CRC of frame to it, low byte first.
func Append(frame []byte) []byte {
	sum := Checksum(frame)
	return append(frame, byte(sum), byte(sum>>8))
}

// Trailer returns the CRC stored in the last two bytes of frame, low byte
// first. The caller ensures len(frame) >= 2.
func Trailer(frame []byte) uint16 {
	n := len(frame)
	return uint16(frame[n-1])<<8 | uint16(frame[n-2])
}
