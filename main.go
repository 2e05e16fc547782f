// Copyright (c) 2025 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ffutop/modframes/internal/config"
	"github.com/ffutop/modframes/internal/frames"
	"github.com/ffutop/modframes/internal/logging"
	"github.com/ffutop/modframes/internal/report"
)

const usage = `usage: modframes [flags] <command> [args]

commands:
  list                 list every variant of the frame table
  show <variant>...    print frames as hex
  verify [variant...]  check the CRC of the given (default: all) frames
  decode <variant>     print the registers of a configuration frame
  check <hex>          check the CRC of a frame given as hex
  scan <file>          split a raw binary file into frames and check each
  export [path]        write the fixture image

flags:
`

// errFailed makes run exit with status 1 after the command already reported why.
var errFailed = errors.New("verification failed")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("modframes", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.StringP("config", "c", "", "Configuration file path.")
	flags.StringP("log-level", "v", "info", "Log verbosity level (debug, info, warn, error).")
	flags.String("log-format", "console", "Log format (console, json).")
	flags.String("overrides", "", "YAML file with extra or replacement frames.")
	flags.String("order", "little", "Register word order used by decode (little, big).")
	flags.Bool("include-retired", false, "Include retired variants in verify and export.")
	flags.String("storage", "file", "Fixture image storage (memory, file, mmap).")
	flags.Bool("color", true, "Colored tables.")
	slaves := flags.String("slaves", "", "Only scan frames for these slave ids, e.g. \"1,2,5-10\".")
	flags.Usage = func() {
		fmt.Fprint(stderr, usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	cfg, err := config.LoadConfig(*configFile, flags)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	restore := logging.Setup(cfg.Log)
	defer restore()

	table := frames.Default()
	if cfg.Frames.Overrides != "" {
		extra, err := frames.LoadOverrides(cfg.Frames.Overrides)
		if err != nil {
			zap.L().Error("failed to load overrides", zap.String("path", cfg.Frames.Overrides), zap.Error(err))
			return 1
		}
		table = table.With(extra...)
		zap.L().Info("frame overrides loaded", zap.String("path", cfg.Frames.Overrides), zap.Int("frames", len(extra)))
	}

	cmd := &command{
		cfg:      cfg,
		table:    table,
		out:      stdout,
		renderer: report.Renderer{Color: cfg.Output.Color},
		slaves:   *slaves,
	}

	name, rest := flags.Arg(0), flags.Args()[1:]
	switch name {
	case "list":
		err = cmd.list()
	case "show":
		err = cmd.show(rest)
	case "verify":
		err = cmd.verify(rest)
	case "decode":
		err = cmd.decode(rest)
	case "check":
		err = cmd.check(rest)
	case "scan":
		err = cmd.scan(rest)
	case "export":
		err = cmd.export(rest)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		flags.Usage()
		return 2
	}

	if err != nil {
		if !errors.Is(err, errFailed) {
			zap.L().Error("command failed", zap.String("command", name), zap.Error(err))
		}
		return 1
	}
	return 0
}
