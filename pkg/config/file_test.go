package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `root: /home/user/src
git:
  binary: git2
  timeout: 2m
  prefer_ssh: true
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := New()
	if err := LoadFromFile(path, cfg); err != nil {
		t.Fatalf("LoadFromFile() unexpected error: %v", err)
	}

	if cfg.Root != "/home/user/src" {
		t.Errorf("Root = %q, want /home/user/src", cfg.Root)
	}
	if cfg.Git.Binary != "git2" {
		t.Errorf("Git.Binary = %q, want git2", cfg.Git.Binary)
	}
	if cfg.Git.Timeout != 2*time.Minute {
		t.Errorf("Git.Timeout = %v, want 2m", cfg.Git.Timeout)
	}
	if !cfg.Git.PreferSSH {
		t.Error("Git.PreferSSH = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Logging.Format != DefaultLogFormat {
		t.Errorf("Logging.Format = %q, want default %q", cfg.Logging.Format, DefaultLogFormat)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := New()
	err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"), cfg)
	if err == nil {
		t.Fatal("LoadFromFile() = nil, want error")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("LoadFromFile() error = %v, want *LoadError", err)
	}
}

func TestLoadFromFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("root: [\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := New()
	if err := LoadFromFile(path, cfg); err == nil {
		t.Fatal("LoadFromFile() = nil, want error")
	}
}
