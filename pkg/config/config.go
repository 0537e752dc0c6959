package config

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/mmv/pkg/errors"
)

// Config is the effective mmv configuration.
type Config struct {
	Placeholder Placeholder `koanf:"placeholder" toml:"placeholder" json:"placeholder"`
	Rename      Rename      `koanf:"rename" toml:"rename" json:"rename"`
	Output      Output      `koanf:"output" toml:"output" json:"output"`
	Logging     Logging     `koanf:"logging" toml:"logging" json:"logging"`
}

// Placeholder configures target template substitution.
type Placeholder struct {
	Prefix string `koanf:"prefix" toml:"prefix" json:"prefix"`
}

// Rename configures the batch renamer.
type Rename struct {
	Overwrite bool `koanf:"overwrite" toml:"overwrite" json:"overwrite"`
	DryRun    bool `koanf:"dry_run" toml:"dry_run" json:"dry_run"`
}

// Output configures rendering.
type Output struct {
	Format string `koanf:"format" toml:"format" json:"format"`
	Color  string `koanf:"color" toml:"color" json:"color"`
}

// Logging configures the log file.
type Logging struct {
	File bool `koanf:"file" toml:"file" json:"file"`
}

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	validFormats = []string{"auto", "term", "terminal", "text", "plain", "json", "yaml"}
	validColors  = []string{ColorAuto, ColorAlways, ColorNever}
)

// Validate checks values that the decoder cannot.
func (c *Config) Validate() error {
	prefix := c.Placeholder.Prefix
	if prefix == "" {
		return errors.New(errors.ErrConfigValid, "placeholder.prefix must not be empty").
			WithDetail("key", "placeholder.prefix")
	}
	if strings.IndexFunc(prefix, unicode.IsDigit) >= 0 {
		return errors.Newf(errors.ErrConfigValid, "placeholder.prefix %q must not contain digits", prefix).
			WithDetail("key", "placeholder.prefix")
	}
	if !contains(validFormats, strings.ToLower(c.Output.Format)) {
		return errors.Newf(errors.ErrConfigValid, "unknown output.format %q", c.Output.Format).
			WithDetail("key", "output.format")
	}
	if !contains(validColors, strings.ToLower(c.Output.Color)) {
		return errors.Newf(errors.ErrConfigValid, "unknown output.color %q", c.Output.Color).
			WithDetail("key", "output.color")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
