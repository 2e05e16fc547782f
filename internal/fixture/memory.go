// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package fixture

// MemoryStorage is a non-persistent storage; it keeps one image for its lifetime.
type MemoryStorage struct {
	img *Image
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (ms *MemoryStorage) Load() (*Image, error) {
	if ms.img == nil {
		ms.img = NewImage()
	}
	return ms.img, nil
}

func (ms *MemoryStorage) Save(img *Image) error {
	ms.img = img
	return nil
}

func (ms *MemoryStorage) Close() error {
	return nil
}
