// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package fixture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ffutop/modframes/modbus/rtu"
)

const (
	// SlotCount is the number of frames an image can hold.
	SlotCount = 32
	// NameSize is the space for the variant name, NUL padded.
	NameSize = 30

	sizeLength = 2
	sizeName   = NameSize
	sizeFrame  = rtu.MaxSize
	// SlotSize is [Length(2, big-endian), Name(30), Frame(256)].
	SlotSize  = sizeLength + sizeName + sizeFrame
	totalSize = SlotCount * SlotSize

	offsetLength = 0
	offsetName   = offsetLength + sizeLength
	offsetFrame  = offsetName + sizeName
)

var ErrSlotRange = errors.New("slot out of range")

// Image is the fixture image a flashing tool reads frames from.
// Layout: SlotCount slots of SlotSize bytes each; a zero length marks an
// empty slot.
type Image struct {
	data []byte
}

// NewImage returns an empty in-memory image.
func NewImage() *Image {
	return &Image{data: make([]byte, totalSize)}
}

// mapBytesToImage wraps data, which must be totalSize bytes, without copying.
func mapBytesToImage(data []byte) *Image {
	return &Image{data: data[:totalSize:totalSize]}
}

func (img *Image) slot(i int) ([]byte, error) {
	if i < 0 || i >= SlotCount {
		return nil, fmt.Errorf("%w: %d", ErrSlotRange, i)
	}
	return img.data[i*SlotSize : (i+1)*SlotSize], nil
}

// Put stores frame under name in slot i.
func (img *Image) Put(i int, name string, frame []byte) error {
	s, err := img.slot(i)
	if err != nil {
		return err
	}
	if len(frame) == 0 || len(frame) > sizeFrame {
		return fmt.Errorf("slot %d: frame length %d out of range 1..%d", i, len(frame), sizeFrame)
	}
	if len(name) > sizeName {
		return fmt.Errorf("slot %d: name %q longer than %d bytes", i, name, sizeName)
	}
	clear(s)
	binary.BigEndian.PutUint16(s[offsetLength:], uint16(len(frame)))
	copy(s[offsetName:offsetFrame], name)
	copy(s[offsetFrame:], frame)
	return nil
}

// Get returns the name and a copy of the frame in slot i.
func (img *Image) Get(i int) (name string, frame []byte, ok bool) {
	s, err := img.slot(i)
	if err != nil {
		return "", nil, false
	}
	n := int(binary.BigEndian.Uint16(s[offsetLength:]))
	if n == 0 || n > sizeFrame {
		return "", nil, false
	}
	name = string(bytes.TrimRight(s[offsetName:offsetFrame], "\x00"))
	frame = append([]byte(nil), s[offsetFrame:offsetFrame+n]...)
	return name, frame, true
}

// Clear empties every slot.
func (img *Image) Clear() {
	clear(img.data)
}

// Slot is one occupied slot.
type Slot struct {
	Index int
	Name  string
	Frame []byte
}

// Slots returns the occupied slots in order.
func (img *Image) Slots() []Slot {
	var out []Slot
	for i := 0; i < SlotCount; i++ {
		if name, frame, ok := img.Get(i); ok {
			out = append(out, Slot{Index: i, Name: name, Frame: frame})
		}
	}
	return out
}

// Bytes returns the raw image.
func (img *Image) Bytes() []byte {
	return img.data
}
