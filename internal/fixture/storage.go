// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package fixture

import (
	"fmt"

	"go.uber.org/zap"
)

// Storage defines the interface for persisting the fixture image.
type Storage interface {
	// Load loads the image from storage.
	// If no image exists, it returns an empty one.
	Load() (*Image, error)

	// Save saves the image to storage.
	Save(img *Image) error

	Close() error
}

// NewStorage returns the storage backend named by kind: "memory", "file" or "mmap".
func NewStorage(kind, path string) (Storage, error) {
	switch kind {
	case "file":
		zap.L().Info("fixture image with file storage", zap.String("path", path))
		return NewFileStorage(path), nil
	case "mmap":
		zap.L().Info("fixture image with mmap storage", zap.String("path", path))
		return NewMmapStorage(path), nil
	case "memory", "":
		zap.L().Info("fixture image with memory storage (non-persistent)")
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", kind)
	}
}

// Named is a frame to export.
type Named struct {
	Name  string
	Frame []byte
}

// Export writes frames into consecutive slots of the image held by s,
// clearing any previous content, and saves it.
func Export(s Storage, frames []Named) (*Image, error) {
	if len(frames) > SlotCount {
		return nil, fmt.Errorf("%d frames do not fit into %d slots", len(frames), SlotCount)
	}
	img, err := s.Load()
	if err != nil {
		return nil, err
	}
	img.Clear()
	for i, f := range frames {
		if err := img.Put(i, f.Name, f.Frame); err != nil {
			return nil, err
		}
	}
	if err := s.Save(img); err != nil {
		return nil, err
	}
	zap.L().Debug("fixture image exported", zap.Int("frames", len(frames)))
	return img, nil
}
