// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package rtu

const (
	MinSize = 4
	MaxSize = 256

	ExceptionSize = 5
)

const (
	// fixedRequestSize is [SlaveID, Func, Addr(2), Val(2), CRC(2)].
	fixedRequestSize = 8
	// multipleHeaderSize is [SlaveID, Func, Addr(2), Quant(2), ByteCount].
	multipleHeaderSize = 7
	// fixedHeaderSize is what CalculateRequestLength needs for the fixed requests.
	fixedHeaderSize = 2
)
