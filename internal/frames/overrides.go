// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package frames

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ffutop/modframes/internal/check"
)

// OverridesFile is the YAML document accepted by LoadOverrides:
//
//	frames:
//	  - name: MOD_LV_HAGER
//	    kind: configuration
//	    hex: "02 10 91 00 ..."
type OverridesFile struct {
	Frames []OverrideEntry `yaml:"frames"`
}

type OverrideEntry struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Hex     string `yaml:"hex"`
	Retired bool   `yaml:"retired"`
}

// LoadOverrides reads extra or replacement entries from path.
func LoadOverrides(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides: %w", err)
	}
	return ParseOverrides(raw)
}

// ParseOverrides decodes and validates an overrides document. Every frame
// must carry a valid CRC and the length of its kind.
func ParseOverrides(raw []byte) ([]Entry, error) {
	var doc OverridesFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse overrides: %w", err)
	}

	entries := make([]Entry, 0, len(doc.Frames))
	for i, o := range doc.Frames {
		if o.Name == "" {
			return nil, fmt.Errorf("overrides entry %d: name required", i)
		}
		kind, err := ParseKind(o.Kind)
		if err != nil {
			return nil, fmt.Errorf("overrides entry %q: %w", o.Name, err)
		}
		frame, err := ParseHex(o.Hex)
		if err != nil {
			return nil, fmt.Errorf("overrides entry %q: %w", o.Name, err)
		}
		if len(frame) != kind.Length() {
			return nil, fmt.Errorf("overrides entry %q: %s frame must be %d bytes, got %d",
				o.Name, kind, kind.Length(), len(frame))
		}
		if err := check.Verify(o.Name, frame); err != nil {
			return nil, fmt.Errorf("overrides entry %q: %w", o.Name, err)
		}
		entries = append(entries, Entry{
			Name:    o.Name,
			Kind:    kind,
			Retired: o.Retired,
			Frame:   frame,
		})
	}
	return entries, nil
}

// Targets converts entries to checker input.
func Targets(entries []Entry) []check.Target {
	out := make([]check.Target, len(entries))
	for i, e := range entries {
		out[i] = check.Target{Name: e.Name, Frame: e.Frame}
	}
	return out
}
