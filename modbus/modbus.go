// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

// Package modbus holds the protocol-level types shared by the frame table,
// the RTU framing code and the checker.
package modbus

import "fmt"

const (
	FuncCodeReadCoils                  = 0x01
	FuncCodeReadDiscreteInputs         = 0x02
	FuncCodeReadHoldingRegisters       = 0x03
	FuncCodeReadInputRegisters         = 0x04
	FuncCodeWriteSingleCoil            = 0x05
	FuncCodeWriteSingleRegister        = 0x06
	FuncCodeWriteMultipleCoils         = 0x0F
	FuncCodeWriteMultipleRegisters     = 0x10
	FuncCodeMaskWriteRegister          = 0x16
	FuncCodeReadWriteMultipleRegisters = 0x17
	FuncCodeReadFIFOQueue              = 0x18
)

// ProtocolDataUnit (PDU) is independent of underlying communication layers.
type ProtocolDataUnit struct {
	FunctionCode byte
	Data         []byte
}

// FunctionName returns a readable name for the function codes the
// production frames use.
func FunctionName(code byte) string {
	switch code {
	case FuncCodeWriteSingleRegister:
		return "Write Single Register"
	case FuncCodeWriteMultipleRegisters:
		return "Write Multiple Registers"
	case FuncCodeReadHoldingRegisters:
		return "Read Holding Registers"
	case FuncCodeReadInputRegisters:
		return "Read Input Registers"
	default:
		return fmt.Sprintf("0x%02X", code)
	}
}
