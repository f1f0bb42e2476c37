package config

import "time"

const (
	// DefaultGitBinary is the git executable used when none is configured.
	DefaultGitBinary = "git"

	// DefaultGitTimeout bounds a clone when no timeout is configured.
	DefaultGitTimeout = 10 * time.Minute

	// DefaultLogLevel is the logging level used when none is configured.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the logging format used when none is configured.
	DefaultLogFormat = "text"
)

// New returns a Config populated with built-in defaults.
func New() *Config {
	return &Config{
		Git: GitConfig{
			Binary:  DefaultGitBinary,
			Timeout: DefaultGitTimeout,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
