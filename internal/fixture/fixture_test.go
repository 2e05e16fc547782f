// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package fixture

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffutop/modframes/internal/frames"
)

func production() []Named {
	var out []Named
	for _, e := range frames.All() {
		out = append(out, Named{Name: e.Name, Frame: e.Frame})
	}
	return out
}

func TestImagePutGet(t *testing.T) {
	img := NewImage()
	lock, err := frames.Lookup("LOCK")
	require.NoError(t, err)

	require.NoError(t, img.Put(3, "LOCK", lock))
	name, frame, ok := img.Get(3)
	require.True(t, ok)
	assert.Equal(t, "LOCK", name)
	assert.Equal(t, []byte(lock), frame)

	_, _, ok = img.Get(0)
	assert.False(t, ok)
	_, _, ok = img.Get(SlotCount)
	assert.False(t, ok)

	assert.ErrorIs(t, img.Put(-1, "X", lock), ErrSlotRange)
	assert.Error(t, img.Put(0, "X", nil))
	assert.Error(t, img.Put(0, "X", make([]byte, 257)))
	assert.Error(t, img.Put(0, "A_VARIANT_NAME_THAT_IS_TOO_LONG", lock))

	slots := img.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, 3, slots[0].Index)

	img.Clear()
	assert.Empty(t, img.Slots())
}

func TestExportAndReload(t *testing.T) {
	want := production()

	tests := []struct {
		name string
		open func(path string) Storage
	}{
		{"file", func(path string) Storage { return NewFileStorage(path) }},
		{"mmap", func(path string) Storage { return NewMmapStorage(path) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fixture.bin")

			s := tt.open(path)
			_, err := Export(s, want)
			require.NoError(t, err)
			require.NoError(t, s.Close())

			s = tt.open(path)
			defer s.Close()
			img, err := s.Load()
			require.NoError(t, err)

			slots := img.Slots()
			require.Len(t, slots, len(want))
			for i, slot := range slots {
				assert.Equal(t, i, slot.Index)
				assert.Equal(t, want[i].Name, slot.Name)
				assert.Equal(t, want[i].Frame, slot.Frame)
			}
		})
	}
}

func TestExportClearsPreviousContent(t *testing.T) {
	s := NewMemoryStorage()
	all := production()
	_, err := Export(s, all)
	require.NoError(t, err)

	img, err := Export(s, all[:2])
	require.NoError(t, err)
	assert.Len(t, img.Slots(), 2)

	again, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, again.Slots(), 2)
}

func TestExportTooMany(t *testing.T) {
	many := make([]Named, SlotCount+1)
	_, err := Export(NewMemoryStorage(), many)
	assert.Error(t, err)
}

func TestNewStorage(t *testing.T) {
	dir := t.TempDir()
	for _, kind := range []string{"", "memory", "file", "mmap"} {
		s, err := NewStorage(kind, filepath.Join(dir, "img-"+kind+".bin"))
		require.NoError(t, err, kind)
		require.NotNil(t, s)
	}
	_, err := NewStorage("sql", "")
	assert.Error(t, err)
}
