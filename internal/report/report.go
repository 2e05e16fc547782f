// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

// Package report renders frame tables and verification results for the terminal.
package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ffutop/modframes/internal/frames"
	"github.com/ffutop/modframes/modbus"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	okStyle     = cellStyle.Foreground(lipgloss.Color("42"))
	failStyle   = cellStyle.Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle    = cellStyle.Foreground(lipgloss.Color("240"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Renderer formats output. With Color off every cell uses the plain style.
type Renderer struct {
	Color bool
}

func (r Renderer) style(s lipgloss.Style) lipgloss.Style {
	if r.Color {
		return s
	}
	return cellStyle
}

func (r Renderer) newTable(headers ...string) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
	if r.Color {
		t = t.BorderStyle(borderStyle)
	}
	return t
}

// Variants renders the frame table.
func (r Renderer) Variants(entries []frames.Entry) string {
	t := r.newTable("VARIANT", "KIND", "FUNCTION", "START", "LEN", "CRC", "STATUS")
	for _, e := range entries {
		status := "active"
		if e.Retired {
			status = "retired"
		}
		t.Row(
			e.Name,
			e.Kind.String(),
			modbus.FunctionName(e.Frame.FunctionCode()),
			fmt.Sprintf("0x%04X", e.Frame.StartAddress()),
			fmt.Sprint(len(e.Frame)),
			fmt.Sprintf("%02X %02X", byte(e.Frame.Checksum()), byte(e.Frame.Checksum()>>8)),
			status,
		)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if row >= 0 && row < len(entries) && entries[row].Retired {
			return r.style(dimStyle)
		}
		return cellStyle
	})
	return t.Render()
}

// Registers renders a decoded configuration frame.
func (r Renderer) Registers(c *frames.Configuration) string {
	t := r.newTable("ADDRESS", "REGISTER", "VALUE", "DEC")
	for _, reg := range c.Registers {
		t.Row(
			fmt.Sprintf("0x%04X", reg.Address),
			reg.Name,
			fmt.Sprintf("0x%04X", reg.Value),
			fmt.Sprint(reg.Value),
		)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		return cellStyle
	})
	title := fmt.Sprintf("slave 0x%02X  product %q", c.SlaveID, c.ProductName())
	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}

// Result is the outcome of verifying one frame.
type Result struct {
	Name string
	Err  error
}

// Verification renders verification results.
func (r Renderer) Verification(results []Result) string {
	t := r.newTable("FRAME", "RESULT", "DETAIL")
	for _, res := range results {
		if res.Err != nil {
			t.Row(res.Name, "FAIL", res.Err.Error())
		} else {
			t.Row(res.Name, "OK", "")
		}
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col == 1 && row >= 0 && row < len(results) {
			if results[row].Err != nil {
				return r.style(failStyle)
			}
			return r.style(okStyle)
		}
		return cellStyle
	})
	return t.Render()
}
