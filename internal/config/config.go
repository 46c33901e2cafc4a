// Package config loads the handrank CLI configuration from an HCL file.
//
//	log_level  = "debug"
//	log_format = "json"
//	workers    = 8
//	no_color   = true
//
//	showdown {
//	  report_dir = "reports"
//	  fail_fast  = true
//	}
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the complete CLI configuration.
type Config struct {
	LogLevel  string            `hcl:"log_level,optional"`
	LogFormat string            `hcl:"log_format,optional"`
	Workers   int               `hcl:"workers,optional"`
	NoColor   bool              `hcl:"no_color,optional"`
	Showdown  *ShowdownSettings `hcl:"showdown,block"`
}

// ShowdownSettings controls evaluation of showdown files.
type ShowdownSettings struct {
	ReportDir string `hcl:"report_dir,optional"`
	FailFast  bool   `hcl:"fail_fast,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the HCL file at filename. A missing file yields Default().
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, applies defaults and validates the result.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = FormatConsole
	}
	if c.Showdown == nil {
		c.Showdown = &ShowdownSettings{}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.LogFormat != FormatConsole && c.LogFormat != FormatJSON {
		return fmt.Errorf("invalid log_format %q: must be %q or %q", c.LogFormat, FormatConsole, FormatJSON)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Level returns the parsed log level. Validate guarantees it parses.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
