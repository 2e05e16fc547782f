// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package frames

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ffutop/modframes/modbus/crc"
)

// Frame is one complete RTU request: slave address, function code, data
// and the trailing CRC (low byte first).
type Frame []byte

// ParseHex parses a frame written the way the production sheets write it,
// e.g. "02 06 92 00 A5 A5 1E 6A". Whitespace and "//" comment markers are ignored.
func ParseHex(s string) (Frame, error) {
	s = strings.ReplaceAll(s, "//", "")
	s = strings.Join(strings.Fields(s), "")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid frame hex: %w", err)
	}
	return Frame(b), nil
}

func mustParseHex(s string) Frame {
	f, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Hex formats the frame as space separated uppercase bytes.
func (f Frame) Hex() string {
	var sb strings.Builder
	for i, b := range f {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}

// Clone returns a copy of f.
func (f Frame) Clone() Frame {
	if f == nil {
		return nil
	}
	return append(Frame(nil), f...)
}

func (f Frame) SlaveID() byte {
	if len(f) < 1 {
		return 0
	}
	return f[0]
}

func (f Frame) FunctionCode() byte {
	if len(f) < 2 {
		return 0
	}
	return f[1]
}

// StartAddress returns the first register the request writes.
func (f Frame) StartAddress() uint16 {
	if len(f) < 4 {
		return 0
	}
	return binary.BigEndian.Uint16(f[2:4])
}

// Checksum returns the CRC stored in the frame trailer.
func (f Frame) Checksum() uint16 {
	if len(f) < 2 {
		return 0
	}
	return crc.Trailer(f)
}
