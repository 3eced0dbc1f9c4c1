// Package config loads the ddz command line configuration from HCL.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete CLI configuration
type Config struct {
	Deck   DeckConfig   `hcl:"deck,block"`
	Finder FinderConfig `hcl:"finder,block"`
	Log    LogConfig    `hcl:"log,block"`
	Render RenderConfig `hcl:"render,block"`
}

// DeckConfig controls dealing.
type DeckConfig struct {
	HandSize int   `hcl:"hand_size,optional"`
	Seed     int64 `hcl:"seed,optional"`
}

// FinderConfig controls response enumeration.
type FinderConfig struct {
	Parallel *bool `hcl:"parallel,optional"`
	Workers  int   `hcl:"workers,optional"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// RenderConfig controls terminal output.
type RenderConfig struct {
	Color    *bool `hcl:"color,optional"`
	ShowSuit *bool `hcl:"show_suit,optional"`
}

// Defaults
const (
	DefaultHandSize = 17
	DefaultWorkers  = 4
	DefaultLevel    = "info"
	DefaultFormat   = "text"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; blocks and attributes left out of the file take default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw struct {
		Deck   *DeckConfig   `hcl:"deck,block"`
		Finder *FinderConfig `hcl:"finder,block"`
		Log    *LogConfig    `hcl:"log,block"`
		Render *RenderConfig `hcl:"render,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var c Config
	if raw.Deck != nil {
		c.Deck = *raw.Deck
	}
	if raw.Finder != nil {
		c.Finder = *raw.Finder
	}
	if raw.Log != nil {
		c.Log = *raw.Log
	}
	if raw.Render != nil {
		c.Render = *raw.Render
	}
	c.applyDefaults()

	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Deck.HandSize == 0 {
		c.Deck.HandSize = DefaultHandSize
	}
	if c.Finder.Parallel == nil {
		c.Finder.Parallel = boolPtr(true)
	}
	if c.Finder.Workers == 0 {
		c.Finder.Workers = DefaultWorkers
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultFormat
	}
	if c.Render.Color == nil {
		c.Render.Color = boolPtr(true)
	}
	if c.Render.ShowSuit == nil {
		c.Render.ShowSuit = boolPtr(true)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Deck.HandSize < 1 || c.Deck.HandSize > 54 {
		return fmt.Errorf("deck: hand_size must be between 1 and 54, got %d", c.Deck.HandSize)
	}
	if c.Finder.Workers < 1 {
		return fmt.Errorf("finder: workers must be positive, got %d", c.Finder.Workers)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("log: invalid level %q", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log: invalid format %q", c.Log.Format)
	}

	return nil
}

// Parallel reports whether response enumeration fans out across workers.
func (c *Config) Parallel() bool { return c.Finder.Parallel == nil || *c.Finder.Parallel }

// Color reports whether coloured output is enabled.
func (c *Config) Color() bool { return c.Render.Color == nil || *c.Render.Color }

// ShowSuit reports whether cards render with their suit symbol.
func (c *Config) ShowSuit() bool { return c.Render.ShowSuit == nil || *c.Render.ShowSuit }

func boolPtr(b bool) *bool { return &b }
