// Package config assembles runtime configuration from built-in defaults, an
// optional YAML file, GRAB_* environment variables, and command-line flags.
// Later sources win.
package config

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// Builder orchestrates config assembly from the supported sources.
type Builder struct {
	cfg  *Config
	errs []error
}

// NewBuilder returns a builder seeded with defaults.
func NewBuilder() *Builder {
	return &Builder{cfg: New()}
}

// FromFile overlays a configuration file. An empty path auto-discovers the
// default location; a missing auto-discovered file is not an error, a
// missing explicit file is.
func (b *Builder) FromFile(path string) *Builder {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
		if path == "" {
			return b
		}
		if _, err := os.Stat(path); err != nil {
			return b
		}
	}

	if err := LoadFromFile(path, b.cfg); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// FromEnv overlays GRAB_* environment variables.
func (b *Builder) FromEnv() *Builder {
	if err := NewEnvParser().Apply(b.cfg); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// FromFlags overlays flags the user set on the command line. This is the
// highest-precedence source.
func (b *Builder) FromFlags(cmd *cobra.Command) *Builder {
	ApplyFlags(cmd, b.cfg)
	return b
}

// Build validates the merged configuration and returns it.
func (b *Builder) Build() (*Config, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	if err := Validate(b.cfg); err != nil {
		return nil, err
	}
	return b.cfg, nil
}
