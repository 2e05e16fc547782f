// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

//go:build unix

package fixture

import (
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A FIFO opens read-write but cannot be truncated, so Load fails after the
// file is already open.
func TestLoadFailureLeavesStorageClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.fifo")
	require.NoError(t, syscall.Mkfifo(path, 0644))

	storages := map[string]Storage{
		"file": NewFileStorage(path),
		"mmap": NewMmapStorage(path),
	}
	for name, s := range storages {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load()
			require.Error(t, err)
			assert.NoError(t, s.Close())
			assert.Error(t, s.Save(NewImage()))
		})
	}
}

func TestLoadFailureThenRetry(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStorage(filepath.Join(dir, "missing", "fixture.bin"))
	_, err := s.Load()
	require.Error(t, err)
	assert.NoError(t, s.Close())

	s.path = filepath.Join(dir, "fixture.bin")
	img, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, img.Slots())
	assert.NoError(t, s.Close())
}
