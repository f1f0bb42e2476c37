package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variable names in the GRAB_* namespace.
const (
	EnvRoot       = "GRAB_ROOT"
	EnvGitBinary  = "GRAB_GIT_BINARY"
	EnvGitTimeout = "GRAB_GIT_TIMEOUT"
	EnvPreferSSH  = "GRAB_PREFER_SSH"
	EnvLogLevel   = "GRAB_LOG_LEVEL"
	EnvLogFormat  = "GRAB_LOG_FORMAT"
)

// EnvParser reads configuration overrides from GRAB_* environment variables.
type EnvParser struct {
	// getEnv allows injection of environment variable retrieval for testing
	getEnv func(string) string
}

// NewEnvParser creates an environment variable parser backed by os.Getenv.
func NewEnvParser() *EnvParser {
	return &EnvParser{getEnv: os.Getenv}
}

// NewEnvParserWithGetter creates a parser with a custom getter, primarily
// for tests.
func NewEnvParserWithGetter(getter func(string) string) *EnvParser {
	return &EnvParser{getEnv: getter}
}

// Apply overlays environment values onto cfg. Unset variables leave the
// existing values untouched. Invalid values are accumulated and reported
// together.
func (p *EnvParser) Apply(cfg *Config) error {
	var errs []string

	if root := p.getEnv(EnvRoot); root != "" {
		cfg.Root = root
	}
	if binary := p.getEnv(EnvGitBinary); binary != "" {
		cfg.Git.Binary = binary
	}

	if raw := p.getEnv(EnvGitTimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", EnvGitTimeout, err))
		} else {
			cfg.Git.Timeout = timeout
		}
	}

	if raw := p.getEnv(EnvPreferSSH); raw != "" {
		preferSSH, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", EnvPreferSSH, err))
		} else {
			cfg.Git.PreferSSH = preferSSH
		}
	}

	if level := p.getEnv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := p.getEnv(EnvLogFormat); format != "" {
		cfg.Logging.Format = format
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: environment variable parsing errors: %s", strings.Join(errs, "; "))
	}
	return nil
}
