// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package rtu

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/ffutop/modframes/modbus"
)

var ErrShortFrame = errors.New("modbus: frame truncated")

type InvalidLengthError struct {
	Length byte
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length received: %d", e.Length)
}

// CalculateRequestLength returns the expected total length of the Request RTU ADU based on the header.
func CalculateRequestLength(funcCode byte, header []byte) (int, error) {
	switch funcCode {
	case modbus.FuncCodeReadCoils,
		modbus.FuncCodeReadDiscreteInputs,
		modbus.FuncCodeReadHoldingRegisters,
		modbus.FuncCodeReadInputRegisters,
		modbus.FuncCodeWriteSingleCoil,
		modbus.FuncCodeWriteSingleRegister:
		return fixedRequestSize, nil
	case modbus.FuncCodeWriteMultipleCoils,
		modbus.FuncCodeWriteMultipleRegisters:
		// Req: [SlaveID, Func, Addr(2), Quant(2), ByteCount(1), Data(N), CRC(2)]
		if len(header) < multipleHeaderSize {
			return 0, fmt.Errorf("need 7 bytes to determine length for 0x%02X, got %d", funcCode, len(header))
		}

		byteCount := int(header[6])
		return multipleHeaderSize + byteCount + 2, nil
	default:
		return 0, fmt.Errorf("unsupported function code: 0x%02X", funcCode)
	}
}

// headerSize returns how many bytes CalculateRequestLength needs for funcCode.
func headerSize(funcCode byte) int {
	switch funcCode {
	case modbus.FuncCodeWriteMultipleCoils,
		modbus.FuncCodeWriteMultipleRegisters:
		return multipleHeaderSize
	default:
		return fixedHeaderSize
	}
}

// Scanner splits a byte stream of back-to-back request frames, as written
// by a fixture tool or captured off the bus, into individual frames.
// It does not check CRCs; that is left to the caller.
type Scanner struct {
	r      *bufio.Reader
	frame  []byte
	offset int64
	next   int64
	err    error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, MaxSize)}
}

// Scan advances to the next frame. It returns false at the end of the
// stream or on the first framing error, which Err reports.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	s.offset = s.next

	buf := make([]byte, MaxSize)
	if _, err := io.ReadFull(s.r, buf[:fixedHeaderSize]); err != nil {
		if err != io.EOF {
			s.err = fmt.Errorf("offset %d: %w", s.offset, ErrShortFrame)
		}
		return false
	}

	funcCode := buf[1]
	need := headerSize(funcCode)
	if need > fixedHeaderSize {
		if _, err := io.ReadFull(s.r, buf[fixedHeaderSize:need]); err != nil {
			s.err = fmt.Errorf("offset %d: %w", s.offset, ErrShortFrame)
			return false
		}
	}

	length, err := CalculateRequestLength(funcCode, buf[:need])
	if err != nil {
		s.err = fmt.Errorf("offset %d: %w", s.offset, err)
		return false
	}
	if length > MaxSize {
		s.err = fmt.Errorf("offset %d: %w", s.offset, &InvalidLengthError{Length: buf[6]})
		return false
	}

	if _, err := io.ReadFull(s.r, buf[need:length]); err != nil {
		s.err = fmt.Errorf("offset %d: %w", s.offset, ErrShortFrame)
		return false
	}

	s.frame = buf[:length]
	s.next = s.offset + int64(length)
	return true
}

// Frame returns the frame found by the last successful Scan.
func (s *Scanner) Frame() []byte {
	return s.frame
}

// Offset returns the stream offset of the current frame.
func (s *Scanner) Offset() int64 {
	return s.offset
}

// Err returns the first non-EOF error encountered by the Scanner.
func (s *Scanner) Err() error {
	return s.err
}
