package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath returns the auto-discovered configuration file location,
// honouring XDG_CONFIG_HOME before falling back to ~/.config. The empty
// string means no location could be determined.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "grab", "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "grab", "config.yaml")
	}
	return ""
}

// LoadFromFile reads a YAML configuration file and overlays it onto cfg.
// Only keys present in the file override existing values.
func LoadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

// UnmarshalYAML decodes the git section, accepting human-readable durations
// like "90s" or "2m" for the timeout. Keys absent from the document keep the
// values already present.
func (g *GitConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Binary    string   `yaml:"binary"`
		Timeout   string   `yaml:"timeout"`
		PreferSSH *bool    `yaml:"prefer_ssh"`
		ExtraArgs []string `yaml:"extra_args"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.Binary != "" {
		g.Binary = raw.Binary
	}
	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("git.timeout: %w", err)
		}
		g.Timeout = timeout
	}
	if raw.PreferSSH != nil {
		g.PreferSSH = *raw.PreferSSH
	}
	if raw.ExtraArgs != nil {
		g.ExtraArgs = raw.ExtraArgs
	}
	return nil
}
