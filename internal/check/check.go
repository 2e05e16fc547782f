// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

// Package check validates the CRC trailer of RTU frames.
package check

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/ffutop/modframes/modbus/crc"
	"github.com/ffutop/modframes/modbus/rtu"
)

var ErrShortFrame = errors.New("frame shorter than minimum RTU size")

// MismatchError reports a frame whose trailer does not match its CRC.
type MismatchError struct {
	Name     string
	Expected uint16
	Actual   uint16
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: crc mismatch: trailer %02X %02X, computed %02X %02X",
		e.Name, byte(e.Actual), byte(e.Actual>>8), byte(e.Expected), byte(e.Expected>>8))
}

// Target is a named frame to verify.
type Target struct {
	Name  string
	Frame []byte
}

// Verify computes CRC-16/MODBUS over all but the last two bytes of frame and
// compares it with the trailer, low byte first.
func Verify(name string, frame []byte) error {
	if len(frame) < rtu.MinSize {
		return fmt.Errorf("%s: %w (%d bytes)", name, ErrShortFrame, len(frame))
	}
	expected := crc.Checksum(frame[:len(frame)-2])
	actual := crc.Trailer(frame)
	if expected != actual {
		return &MismatchError{Name: name, Expected: expected, Actual: actual}
	}
	return nil
}

// Valid reports whether frame carries a correct CRC.
func Valid(frame []byte) bool {
	return Verify("", frame) == nil
}

// VerifyAll verifies every target and combines the failures. Use
// multierr.Errors to get them one by one.
func VerifyAll(targets ...Target) error {
	var err error
	for _, t := range targets {
		err = multierr.Append(err, Verify(t.Name, t.Frame))
	}
	return err
}

// Failures splits the error returned by VerifyAll.
func Failures(err error) []error {
	return multierr.Errors(err)
}
