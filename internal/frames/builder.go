// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package frames

import (
	"encoding/binary"
	"fmt"

	gmodbus "github.com/goburrow/modbus"

	"github.com/ffutop/modframes/modbus"
)

// maxWriteRegisters is the Modbus limit for one Write Multiple Registers request.
const maxWriteRegisters = 123

// Builder composes request frames for one slave. Register values are
// serialized with the builder's word order; addresses and counts are
// always big-endian.
type Builder struct {
	packager *gmodbus.RTUClientHandler
	order    binary.ByteOrder
}

// NewBuilder returns a Builder for slaveID. The handler is only used for
// its RTU packager; no port is ever opened.
func NewBuilder(slaveID byte, order binary.ByteOrder) *Builder {
	h := gmodbus.NewRTUClientHandler("")
	h.SlaveId = slaveID
	if order == nil {
		order = binary.LittleEndian
	}
	return &Builder{packager: h, order: order}
}

// WriteMultiple builds a Write Multiple Registers (0x10) request.
func (b *Builder) WriteMultiple(start uint16, values []uint16) (Frame, error) {
	if len(values) == 0 || len(values) > maxWriteRegisters {
		return nil, fmt.Errorf("register count %d out of range 1..%d", len(values), maxWriteRegisters)
	}
	data := make([]byte, 5+2*len(values))
	binary.BigEndian.PutUint16(data[0:], start)
	binary.BigEndian.PutUint16(data[2:], uint16(len(values)))
	data[4] = byte(2 * len(values))
	for i, v := range values {
		b.order.PutUint16(data[5+2*i:], v)
	}
	return b.encode(modbus.FuncCodeWriteMultipleRegisters, data)
}

// WriteSingle builds a Write Single Register (0x06) request.
func (b *Builder) WriteSingle(address, value uint16) (Frame, error) {
	data := make([]byte, 4)
	binary.BigEndian.PutUint16(data[0:], address)
	b.order.PutUint16(data[2:], value)
	return b.encode(modbus.FuncCodeWriteSingleRegister, data)
}

// Lock builds the request that write-protects the configuration block.
func (b *Builder) Lock() (Frame, error) {
	return b.WriteSingle(ProtectionRegister, LockValue)
}

// Unlock builds the request that lifts the write protection.
func (b *Builder) Unlock() (Frame, error) {
	return b.WriteSingle(ProtectionRegister, UnlockValue)
}

func (b *Builder) encode(funcCode byte, data []byte) (Frame, error) {
	adu, err := b.packager.Encode(&gmodbus.ProtocolDataUnit{
		FunctionCode: funcCode,
		Data:         data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode ADU: %w", err)
	}
	return Frame(adu), nil
}
