package config

import "time"

// Config is the fully merged runtime configuration, assembled from defaults,
// the config file, GRAB_* environment variables, and command-line flags, in
// that precedence order.
type Config struct {
	// Root is the base directory clones are laid out under. When empty, the
	// workspace resolver falls back to GRAB_ROOT and then ~/src.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`

	// Git contains settings for the git invocation itself.
	Git GitConfig `json:"git" yaml:"git"`

	// Logging contains logging level and output configuration.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// GitConfig controls how the external git client is invoked.
type GitConfig struct {
	// Binary is the git executable name or path.
	Binary string `json:"binary" yaml:"binary"`

	// Timeout bounds a single clone invocation.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// PreferSSH expands shorthand references to SSH addresses instead of
	// HTTPS URLs.
	PreferSSH bool `json:"prefer_ssh" yaml:"prefer_ssh"`

	// ExtraArgs are appended to every clone invocation, before any
	// per-invocation arguments given after "--" on the command line.
	ExtraArgs []string `json:"extra_args,omitempty" yaml:"extra_args,omitempty"`

	// DryRun prints the clone command instead of running it. Flag only,
	// never persisted.
	DryRun bool `json:"-" yaml:"-"`
}

// LoggingConfig manages logging output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format"`

	// Verbose forces debug-level output.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// Quiet suppresses everything below warn.
	Quiet bool `json:"quiet" yaml:"quiet"`
}
