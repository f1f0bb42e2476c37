// Package getter ties reference resolution, workspace layout, and clone
// execution together behind a single service.
package getter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/goliatone/grab/internal/executor"
	"github.com/goliatone/grab/pkg/config"
	"github.com/goliatone/grab/pkg/gitutil"
	"github.com/goliatone/grab/pkg/workspace"
)

// Service resolves repository references and materializes clones.
type Service struct {
	cfg    *config.Config
	cloner executor.Cloner
	logger *slog.Logger
}

// Result is a resolved reference: the locator handed to git and the
// absolute destination the clone lands in.
type Result struct {
	URL  string
	Dest string
}

// New creates a getter service.
func New(cfg *config.Config, cloner executor.Cloner, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, cloner: cloner, logger: logger}
}

// Resolve turns a raw reference into its clone URL and destination path
// without touching the filesystem beyond root detection.
func (s *Service) Resolve(ref string) (*Result, error) {
	url := gitutil.Normalize(ref, s.cfg.Git.PreferSSH)

	rel, err := gitutil.DerivePath(url)
	if err != nil {
		return nil, fmt.Errorf("resolve reference %q: %w", ref, err)
	}

	root, err := workspace.Resolve(s.cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		URL:  url,
		Dest: filepath.Join(root, filepath.FromSlash(rel)),
	}, nil
}

// Get resolves ref and clones it into the workspace. Arguments configured
// in git.extra_args come before per-invocation extras. The clone is bounded
// by git.timeout.
func (s *Service) Get(ctx context.Context, ref string, extraArgs []string) (*Result, error) {
	result, err := s.Resolve(ref)
	if err != nil {
		return nil, err
	}

	if s.cfg.Git.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Git.Timeout)
		defer cancel()
	}

	args := append(append([]string{}, s.cfg.Git.ExtraArgs...), extraArgs...)

	s.logger.Debug("resolved reference", "ref", ref, "url", result.URL, "dest", result.Dest)
	if err := s.cloner.Clone(ctx, result.URL, result.Dest, args); err != nil {
		return nil, err
	}
	return result, nil
}
