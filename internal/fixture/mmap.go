// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package fixture

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// MmapStorage persists the image through a memory-mapped file. The Image
// returned by Load aliases the mapping, so writes to it reach the file on
// Save or when the OS flushes.
type MmapStorage struct {
	path string
	file *os.File
	data mmap.MMap
}

// NewMmapStorage creates a new MmapStorage.
func NewMmapStorage(path string) *MmapStorage {
	return &MmapStorage{
		path: path,
	}
}

// Load maps the file, creating and sizing it if necessary.
func (ms *MmapStorage) Load() (*Image, error) {
	f, err := openSized(ms.path)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}
	ms.file = f
	ms.data = data

	return mapBytesToImage(data), nil
}

// Save flushes the mapping to disk. An img not obtained from Load is copied in first.
func (ms *MmapStorage) Save(img *Image) error {
	if ms.data == nil {
		return fmt.Errorf("mmap data is nil")
	}
	if &img.data[0] != &ms.data[0] {
		copy(ms.data, img.Bytes())
	}
	return ms.data.Flush()
}

// Close unmaps and closes the file.
func (ms *MmapStorage) Close() error {
	var err error
	if ms.data != nil {
		if e := ms.data.Unmap(); e != nil {
			err = e
		}
		ms.data = nil
	}
	if ms.file != nil {
		if e := ms.file.Close(); e != nil {
			err = e
		}
		ms.file = nil
	}
	return err
}
