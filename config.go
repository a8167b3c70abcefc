package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// runConfig mirrors the command-line flags so recurring invocations can live
// in a checked-in YAML file. Explicit flags always win over file values.
type runConfig struct {
	In       string `yaml:"in"`
	XML      string `yaml:"xml"`
	Refpages string `yaml:"refpages"`
	Out      string `yaml:"out"`
	API      string `yaml:"api"`
	LogLevel string `yaml:"log_level"`
}

func loadRunConfig(path string) (*runConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg runConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// merge fills any option left empty on the command line from the config
// file.
func (c *runConfig) merge(opts *options) {
	if opts.inPath == "" {
		opts.inPath = c.In
	}
	if opts.xmlPath == "" {
		opts.xmlPath = c.XML
	}
	if opts.refDir == "" {
		opts.refDir = c.Refpages
	}
	if opts.outPath == "" {
		opts.outPath = c.Out
	}
	if opts.api == "" {
		opts.api = c.API
	}
}

// slogLevel maps the config's log_level string to an slog.Level.
func (c *runConfig) slogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
