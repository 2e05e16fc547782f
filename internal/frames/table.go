// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package frames

import (
	"fmt"
	"slices"
)

// production is the frame table as written to MOD PCBAs on the stand.
// Configuration strings write registers 0x9100..0x912F, the motor driver
// parameters string writes from 0x9000, lock/unlock write register 0x9200.
var production = []Entry{
	{
		Name:  "MOD",
		Kind:  KindConfiguration,
		Frame: mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 00 00 4F 4D FF 44 FF FF FF FF FF FF FF FF FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 00 " +
				"00 00 00 00 00 00 00 2F B1"),
	},
	{
		Name:    "MOD_SIGN_NC",
		Kind:    KindConfiguration,
		Retired: true,
		Frame:   mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 00 00 4F 4D FF 44 FF FF FF FF FF FF FF FF FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 00 " +
				"00 00 00 00 00 00 40 2E 41"),
	},
	{
		Name:  "MOD_LV",
		Kind:  KindConfiguration,
		Frame: mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 01 00 4F 4D 5F 44 56 4C FF FF FF FF FF FF FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 00 " +
				"00 00 00 00 00 00 00 17 5B"),
	},
	{
		Name:    "MOD_LV_SIGN_NC",
		Kind:    KindConfiguration,
		Retired: true,
		Frame:   mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 01 00 4F 4D 5F 44 56 4C FF FF FF FF FF FF FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 00 " +
				"00 00 00 00 00 00 40 16 AB"),
	},
	{
		Name:  "MOD_LV_HAGER",
		Kind:  KindConfiguration,
		Frame: mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 01 00 4F 4D 5F 44 56 4C FF FF FF FF FF FF FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 00 " +
				"00 00 00 00 00 00 C0 17 0B"),
	},
	{
		Name:  "ARI",
		Kind:  KindConfiguration,
		Frame: mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 02 00 52 41 FF 49 FF FF FF FF FF FF FF FF FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 03 " +
				"00 03 00 0C 00 00 00 D5 4B"),
	},
	{
		Name:  "ARI_LV",
		Kind:  KindConfiguration,
		Frame: mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 03 00 52 41 5F 49 56 4C FF FF FF FF FF FF FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 03 " +
				"00 03 00 0C 00 00 00 ED A1"),
	},
	{
		Name:  "ARI_30",
		Kind:  KindConfiguration,
		Frame: mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 04 00 52 41 5F 49 30 33 FF FF FF FF FF FF FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 03 " +
				"00 1E 00 2D 00 00 00 EA F9"),
	},
	{
		Name:  "ARH_2P_30MA",
		Kind:  KindConfiguration,
		Frame: mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 05 00 52 41 5F 48 50 32 33 5F 6D 30 FF 41 FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 00 " +
				"00 00 00 2D 00 00 00 30 5B"),
	},
	{
		Name:  "ARH_2P_300MA",
		Kind:  KindConfiguration,
		Frame: mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 06 00 52 41 5F 48 50 32 33 5F 30 30 41 6D FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 00 " +
				"00 00 00 2D 00 00 00 12 9D"),
	},
	{
		Name:  "ARH_4P_30MA",
		Kind:  KindConfiguration,
		Frame: mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 07 00 52 41 5F 48 50 34 33 5F 6D 30 FF 41 FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 00 " +
				"00 00 00 2D 00 00 00 FB 97"),
	},
	{
		Name:  "ARH_4P_300MA",
		Kind:  KindConfiguration,
		Frame: mustParseHex(
			"02 10 91 00 00 30 60 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 A5 " +
				"A5 00 00 00 00 00 00 00 00 A5 A5 01 00 08 00 52 41 5F 48 50 34 33 5F 30 30 41 6D FF FF FF FF FF " +
				"FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF FF A5 A5 A5 A5 00 00 00 FF 00 FF 00 " +
				"00 00 00 2D 00 00 00 CD 91"),
	},
	{
		Name:  "MOTOR_DRIVER_PARAMETERS",
		Kind:  KindMotorDriverParameters,
		Frame: mustParseHex(
			"02 10 90 00 00 18 30 78 05 78 05 78 05 01 00 26 02 E6 00 E6 00 A0 0F D0 07 B8 0B 40 06 B0 04 FF " +
				"00 54 03 FF 03 90 01 00 00 32 00 08 00 00 00 01 00 01 00 00 00 0A 00 24 26"),
	},
	{
		Name:    "MOTOR_DRIVER_PARAMETERS_LEGACY",
		Kind:    KindMotorDriverParametersLegacy,
		Retired: true,
		Frame:   mustParseHex(
			"02 10 90 00 00 17 2E 78 05 78 05 88 13 E8 03 00 00 BC 02 E6 00 E6 00 A0 0F D0 07 40 06 40 06 B0 " +
				"04 FF 00 54 03 FF 03 32 00 08 00 00 00 01 00 01 00 00 00 0A 00 09 B1"),
	},
	{
		Name:  "LOCK",
		Kind:  KindLock,
		Frame: mustParseHex("02 06 92 00 A5 A5 1E 6A"),
	},
	{
		Name:  "UNLOCK",
		Kind:  KindUnlock,
		Frame: mustParseHex("02 06 92 00 5A 5A 1F DA"),
	},
}

var defaultTable = NewTable(production)

// Table maps variant names to their frames. A Table is immutable once built.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a Table from entries. Later entries replace earlier ones
// with the same name, keeping the earlier position.
func NewTable(entries []Entry) *Table {
	t := &Table{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		e.Name = normalizeName(e.Name)
		e.Frame = e.Frame.Clone()
		if i, ok := t.index[e.Name]; ok {
			t.entries[i] = e
			continue
		}
		t.index[e.Name] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t
}

// Default returns the production frame table.
func Default() *Table {
	return defaultTable
}

// With returns a new Table with entries added or replaced.
func (t *Table) With(entries ...Entry) *Table {
	return NewTable(append(slices.Clone(t.entries), entries...))
}

// Lookup returns a copy of the frame of the named variant.
func (t *Table) Lookup(name string) (Frame, error) {
	e, ok := t.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return e.Frame, nil
}

// Find returns a copy of the named entry.
func (t *Table) Find(name string) (Entry, bool) {
	i, ok := t.index[normalizeName(name)]
	if !ok {
		return Entry{}, false
	}
	e := t.entries[i]
	e.Frame = e.Frame.Clone()
	return e, true
}

// All returns copies of every entry in table order.
func (t *Table) All() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		e.Frame = e.Frame.Clone()
		out[i] = e
	}
	return out
}

// Names returns the variant names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the production frame of the named variant.
func Lookup(name string) (Frame, error) {
	return defaultTable.Lookup(name)
}

// All returns every production entry.
func All() []Entry {
	return defaultTable.All()
}

// Names returns the production variant names.
func Names() []string {
	return defaultTable.Names()
}
