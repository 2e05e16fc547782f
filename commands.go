// Copyright (c) 2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ffutop/modframes/internal/check"
	"github.com/ffutop/modframes/internal/config"
	"github.com/ffutop/modframes/internal/fixture"
	"github.com/ffutop/modframes/internal/frames"
	"github.com/ffutop/modframes/internal/report"
	"github.com/ffutop/modframes/modbus/rtu"
)

type command struct {
	cfg      *config.Config
	table    *frames.Table
	out      io.Writer
	renderer report.Renderer
	slaves   string
}

// selected returns the named entries, or every entry the configuration
// admits when names is empty.
func (c *command) selected(names []string) ([]frames.Entry, error) {
	if len(names) == 0 {
		var out []frames.Entry
		for _, e := range c.table.All() {
			if e.Retired && !c.cfg.Frames.IncludeRetired {
				continue
			}
			out = append(out, e)
		}
		return out, nil
	}
	out := make([]frames.Entry, 0, len(names))
	for _, name := range names {
		e, ok := c.table.Find(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", frames.ErrUnknownVariant, name)
		}
		out = append(out, e)
	}
	return out, nil
}

func (c *command) list() error {
	fmt.Fprintln(c.out, c.renderer.Variants(c.table.All()))
	return nil
}

func (c *command) show(args []string) error {
	if len(args) == 0 {
		return errors.New("show: variant name required")
	}
	entries, err := c.selected(args)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(c.out, "%s\n%s\n", e.Name, e.Frame.Hex())
	}
	return nil
}

func (c *command) verify(args []string) error {
	entries, err := c.selected(args)
	if err != nil {
		return err
	}
	results := make([]report.Result, len(entries))
	for i, e := range entries {
		results[i] = report.Result{Name: e.Name, Err: check.Verify(e.Name, e.Frame)}
		zap.L().Debug("frame checked", zap.String("variant", e.Name), zap.Bool("ok", results[i].Err == nil))
	}
	fmt.Fprintln(c.out, c.renderer.Verification(results))
	return c.summarize(check.VerifyAll(frames.Targets(entries)...), len(entries))
}

func (c *command) summarize(err error, total int) error {
	if err != nil {
		failures := check.Failures(err)
		for _, f := range failures {
			zap.L().Warn("crc validation failed", zap.Error(f))
		}
		zap.L().Error("verification failed", zap.Int("frames", total), zap.Int("failed", len(failures)))
		return errFailed
	}
	zap.L().Info("all frames verified", zap.Int("frames", total))
	return nil
}

func (c *command) decode(args []string) error {
	if len(args) != 1 {
		return errors.New("decode: exactly one variant name required")
	}
	order, err := c.cfg.Frames.Order()
	if err != nil {
		return err
	}
	f, err := c.table.Lookup(args[0])
	if err != nil {
		return err
	}
	conf, err := frames.DecodeConfiguration(f, order)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}
	fmt.Fprintln(c.out, c.renderer.Registers(conf))
	return nil
}

func (c *command) check(args []string) error {
	if len(args) == 0 {
		return errors.New("check: frame hex required")
	}
	f, err := frames.ParseHex(strings.Join(args, " "))
	if err != nil {
		return err
	}
	err = check.Verify("input", f)
	fmt.Fprintln(c.out, c.renderer.Verification([]report.Result{{Name: f.Hex(), Err: err}}))
	return c.summarize(err, 1)
}

func (c *command) scan(args []string) error {
	if len(args) != 1 {
		return errors.New("scan: exactly one file required")
	}
	filter, err := config.NewSlaveFilter(c.slaves)
	if err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer file.Close()

	var (
		results []report.Result
		targets []check.Target
	)
	s := rtu.NewScanner(file)
	for s.Scan() {
		f := frames.Frame(s.Frame())
		if !filter.Match(f.SlaveID()) {
			continue
		}
		name := fmt.Sprintf("@%d slave %d %s", s.Offset(), f.SlaveID(), c.identify(f))
		targets = append(targets, check.Target{Name: name, Frame: f})
		results = append(results, report.Result{Name: name, Err: check.Verify(name, f)})
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", args[0], err)
	}

	fmt.Fprintln(c.out, c.renderer.Verification(results))
	return c.summarize(check.VerifyAll(targets...), len(targets))
}

// identify names the table variant f matches byte for byte, if any.
func (c *command) identify(f frames.Frame) string {
	for _, e := range c.table.All() {
		if string(e.Frame) == string(f) {
			return e.Name
		}
	}
	return "(unknown)"
}

func (c *command) export(args []string) error {
	path := c.cfg.Export.Path
	if len(args) > 0 {
		path = args[0]
	}

	entries, err := c.selected(nil)
	if err != nil {
		return err
	}
	if err := check.VerifyAll(frames.Targets(entries)...); err != nil {
		return c.summarize(err, len(entries))
	}

	storage, err := fixture.NewStorage(c.cfg.Export.Storage, path)
	if err != nil {
		return err
	}
	defer storage.Close()

	named := make([]fixture.Named, len(entries))
	for i, e := range entries {
		named[i] = fixture.Named{Name: e.Name, Frame: e.Frame}
	}
	img, err := fixture.Export(storage, named)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	for _, slot := range img.Slots() {
		fmt.Fprintf(c.out, "%2d  %-32s %3d bytes\n", slot.Index, slot.Name, len(slot.Frame))
	}
	zap.L().Info("fixture image written", zap.String("path", path), zap.String("storage", c.cfg.Export.Storage), zap.Int("frames", len(named)))
	return nil
}
