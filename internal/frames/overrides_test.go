// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package frames

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffutop/modframes/internal/check"
)

func customConfiguration(t *testing.T) Frame {
	t.Helper()
	c := decode(t, "ARI")
	require.NoError(t, c.SetProductName("ARI_60"))
	require.NoError(t, c.Set("neutralizationTime", 60))
	f, err := c.Encode()
	require.NoError(t, err)
	return f
}

func TestParseOverrides(t *testing.T) {
	custom := customConfiguration(t)
	doc := fmt.Sprintf(`
frames:
  - name: ari_60
    kind: configuration
    hex: "%s"
  - name: LOCK
    kind: lock
    retired: true
    hex: "02 06 92 00 A5 A5 1E 6A"
`, custom.Hex())

	entries, err := ParseOverrides([]byte(doc))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, KindConfiguration, entries[0].Kind)
	assert.Equal(t, custom, entries[0].Frame)
	assert.True(t, entries[1].Retired)

	table := Default().With(entries...)
	f, err := table.Lookup("ARI_60")
	require.NoError(t, err)
	c, err := DecodeConfiguration(f, binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, "ARI_60", c.ProductName())

	lock, ok := table.Find("LOCK")
	require.True(t, ok)
	assert.True(t, lock.Retired)
}

func TestParseOverrides_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"BadYAML", "frames: [\n"},
		{"MissingName", "frames:\n  - kind: lock\n    hex: \"02 06 92 00 A5 A5 1E 6A\"\n"},
		{"BadKind", "frames:\n  - name: X\n    kind: flash\n    hex: \"02 06 92 00 A5 A5 1E 6A\"\n"},
		{"BadHex", "frames:\n  - name: X\n    kind: lock\n    hex: \"02 06 9\"\n"},
		{"WrongLength", "frames:\n  - name: X\n    kind: configuration\n    hex: \"02 06 92 00 A5 A5 1E 6A\"\n"},
		{"BadCRC", "frames:\n  - name: X\n    kind: lock\n    hex: \"02 06 92 00 A5 A5 1E 6B\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOverrides([]byte(tt.doc))
			assert.Error(t, err)
		})
	}

	_, err := ParseOverrides([]byte("frames:\n  - name: X\n    kind: lock\n    hex: \"02 06 92 00 A5 A5 1E 6B\"\n"))
	var mismatch *check.MismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frames:\n  - name: LOCK_B\n    kind: lock\n    hex: \"02 06 92 00 A5 A5 1E 6A\"\n"), 0644))

	entries, err := LoadOverrides(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "LOCK_B", entries[0].Name)

	_, err = LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
