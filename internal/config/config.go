// Package config holds numlang's run configuration.
//
// Settings are layered: built-in defaults, then numlang.yaml, then the
// NUMLANG_* environment variables, then command-line flags. Every layer
// above the file is expressed as Overrides so the CLI and the environment
// go through the same path.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/numlang/internal/utils"
)

// Config represents numlang.yaml.
type Config struct {
	// Input is the source file run when none is given on the command line.
	Input string `yaml:"input,omitempty"`

	// Lenient makes the expression scanner drop characters it does not
	// recognize instead of reporting a syntax error.
	Lenient bool `yaml:"lenient,omitempty"`

	// Dump selects the end-of-run symbol table dump: text, yaml or none.
	Dump string `yaml:"dump,omitempty"`

	// Color controls coloured diagnostics: auto, always or never.
	Color string `yaml:"color,omitempty"`

	// ExportDB, when set, is the path of a SQLite file that receives a
	// snapshot of the final symbol table.
	ExportDB string `yaml:"export_db,omitempty"`
}

// Default returns the configuration used when nothing else is specified.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// LoadOptional is LoadConfig for the implicit default file: a missing file
// yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ParseConfig parses config data. path is used in error messages, and a
// relative input is resolved against its directory.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Input = utils.ResolveRelative(filepath.Dir(path), cfg.Input)
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Input == "" {
		c.Input = DefaultInputFile
	}
	if c.Dump == "" {
		c.Dump = DumpText
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

func (c *Config) validate(path string) error {
	switch c.Dump {
	case DumpText, DumpYAML, DumpNone:
	default:
		return fmt.Errorf("%s: dump must be one of %s, %s, %s; got %q", path, DumpText, DumpYAML, DumpNone, c.Dump)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color must be one of %s, %s, %s; got %q", path, ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	return nil
}

// Overrides carries settings from a layer above the config file. Nil fields
// leave the config untouched.
type Overrides struct {
	Input    *string
	Lenient  *bool
	Dump     *string
	Color    *string
	ExportDB *string
}

// Apply merges o into c and re-validates. source names the layer in errors.
func (c *Config) Apply(o Overrides, source string) error {
	if o.Input != nil && *o.Input != "" {
		c.Input = *o.Input
	}
	if o.Lenient != nil {
		c.Lenient = *o.Lenient
	}
	if o.Dump != nil {
		c.Dump = *o.Dump
	}
	if o.Color != nil {
		c.Color = *o.Color
	}
	if o.ExportDB != nil {
		c.ExportDB = *o.ExportDB
	}
	c.setDefaults()
	return c.validate(source)
}

// EnvOverrides collects the NUMLANG_* variables that are set.
func EnvOverrides() Overrides {
	var o Overrides
	if env.Has(EnvInput) {
		s := env.Str(EnvInput)
		o.Input = &s
	}
	if env.Has(EnvLenient) {
		b := env.Bool(EnvLenient)
		o.Lenient = &b
	}
	if env.Has(EnvDump) {
		s := env.Str(EnvDump)
		o.Dump = &s
	}
	if env.Has(EnvColor) {
		s := env.Str(EnvColor)
		o.Color = &s
	}
	if env.Has(EnvExportDB) {
		s := env.Str(EnvExportDB)
		o.ExportDB = &s
	}
	return o
}

// NoColor reports whether the NO_COLOR convention is in effect.
func NoColor() bool {
	return env.Has(EnvNoColor)
}

// IsTestMode reports whether the binary runs under the functional tests.
func IsTestMode() bool {
	return env.Bool(EnvTestMode)
}
