// Copyright (c) 2025-2026 Li Jinling. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD-3 Clause License. See the LICENSE file for details.

package config

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config defines the global configuration structure
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Frames FramesConfig `mapstructure:"frames"`
	Export ExportConfig `mapstructure:"export"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig defines logging configuration
type LogConfig struct {
	Level  string     `mapstructure:"level"`  // debug, info, warn, error
	Format string     `mapstructure:"format"` // console, json
	File   FileConfig `mapstructure:"file"`
}

// FileConfig defines the rotating log file; an empty Filename logs to stderr only.
type FileConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// FramesConfig defines how the frame table is assembled and read
type FramesConfig struct {
	Overrides      string `mapstructure:"overrides"`       // YAML file with extra frames
	WordOrder      string `mapstructure:"word_order"`      // "little" or "big"
	IncludeRetired bool   `mapstructure:"include_retired"` // verify/export retired variants too
}

// ExportConfig defines where the fixture image goes
type ExportConfig struct {
	Storage string `mapstructure:"storage"` // "memory", "file", "mmap"
	Path    string `mapstructure:"path"`
}

// OutputConfig defines terminal rendering
type OutputConfig struct {
	Color bool `mapstructure:"color"`
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":       "log.level",
	"log-format":      "log.format",
	"overrides":       "frames.overrides",
	"order":           "frames.word_order",
	"include-retired": "frames.include_retired",
	"storage":         "export.storage",
	"color":           "output.color",
}

// LoadConfig loads configuration from file, environment (MODFRAMES_*) and flags.
// A missing config file is not an error unless configFile names it explicitly.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/modframes/")
		v.AddConfigPath("$HOME/.modframes")
		v.AddConfigPath(".")
	}

	// Set defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file.filename", "")
	v.SetDefault("log.file.max_size_mb", 10)
	v.SetDefault("log.file.max_backups", 3)
	v.SetDefault("log.file.max_age_days", 28)
	v.SetDefault("log.file.compress", false)
	v.SetDefault("frames.overrides", "")
	v.SetDefault("frames.word_order", "little")
	v.SetDefault("frames.include_retired", false)
	v.SetDefault("export.storage", "file")
	v.SetDefault("export.path", "fixture.bin")
	v.SetDefault("output.color", true)

	// AutomaticEnv only sees keys viper already knows, so every key above
	// needs a default for its MODFRAMES_ variable to apply.
	v.SetEnvPrefix("MODFRAMES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate / Fixups
	config.Frames.WordOrder = strings.ToLower(strings.TrimSpace(config.Frames.WordOrder))
	if _, err := config.Frames.Order(); err != nil {
		return nil, err
	}
	config.Export.Storage = strings.ToLower(config.Export.Storage)

	return &config, nil
}

// Order returns the register word order.
func (c FramesConfig) Order() (binary.ByteOrder, error) {
	switch c.WordOrder {
	case "little", "le", "":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("invalid word order %q, want little or big", c.WordOrder)
	}
}
