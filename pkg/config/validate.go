package config

import (
	"errors"
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks the merged configuration for values no source is allowed
// to produce. All violations are reported together.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Git.Binary == "" {
		errs = append(errs, &ValidationError{Field: "git.binary", Reason: "cannot be empty"})
	}
	if cfg.Git.Timeout <= 0 {
		errs = append(errs, &ValidationError{Field: "git.timeout", Reason: "must be positive"})
	}
	if !validLogLevels[cfg.Logging.Level] {
		errs = append(errs, &ValidationError{
			Field:  "logging.level",
			Reason: fmt.Sprintf("%q is not one of debug, info, warn, error", cfg.Logging.Level),
		})
	}
	if !validLogFormats[cfg.Logging.Format] {
		errs = append(errs, &ValidationError{
			Field:  "logging.format",
			Reason: fmt.Sprintf("%q is not one of text, json", cfg.Logging.Format),
		})
	}
	if cfg.Logging.Verbose && cfg.Logging.Quiet {
		errs = append(errs, &ValidationError{Field: "logging", Reason: "verbose and quiet are mutually exclusive"})
	}

	return errors.Join(errs...)
}
