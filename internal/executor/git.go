package executor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// gitCloner implements Cloner using a command runner for the clone itself
// and go-git for inspecting existing destinations.
type gitCloner struct {
	runner GitCommandRunner
	logger *slog.Logger
}

// NewCloner creates a Cloner that shells out to the given git binary.
func NewCloner(binary string, logger *slog.Logger) Cloner {
	return NewClonerWithRunner(NewGitCommandRunner(binary), logger)
}

// NewClonerWithRunner creates a Cloner with a custom command runner.
func NewClonerWithRunner(runner GitCommandRunner, logger *slog.Logger) Cloner {
	if logger == nil {
		logger = slog.Default()
	}
	return &gitCloner{runner: runner, logger: logger}
}

// Clone clones url into dest. An existing destination is verified against
// the requested URL instead of being cloned over: a matching origin makes
// the call a no-op, anything else is an error.
func (c *gitCloner) Clone(ctx context.Context, url, dest string, extraArgs []string) error {
	if _, err := os.Stat(filepath.Join(dest, ".git")); err == nil {
		return c.verifyExisting(url, dest)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create parent directory for %s: %w", dest, err)
	}

	args := append([]string{"clone", url, dest}, extraArgs...)
	c.logger.Debug("running git", "args", args)

	if _, err := c.runner.Run(ctx, "", args...); err != nil {
		return err
	}
	c.logger.Info("cloned repository", "url", url, "dest", dest)
	return nil
}

// verifyExisting checks that dest already holds a clone of url.
func (c *gitCloner) verifyExisting(url, dest string) error {
	repo, err := git.PlainOpen(dest)
	if err != nil {
		return fmt.Errorf("open existing repository %s: %w", dest, err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return fmt.Errorf("read origin of existing repository %s: %w", dest, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 || normalizeRemote(urls[0]) != normalizeRemote(url) {
		actual := ""
		if len(urls) > 0 {
			actual = urls[0]
		}
		return &OriginMismatchError{Path: dest, Expected: url, Actual: actual}
	}

	c.logger.Info("repository already cloned", "dest", dest)
	return nil
}

// normalizeRemote folds the trivial variations between equivalent remote
// URLs so origin comparison doesn't reject a destination over a .git suffix
// or transport spelling.
func normalizeRemote(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimSuffix(url, ".git")

	for _, scheme := range []string{"ssh://", "git://", "https://", "http://"} {
		url = strings.TrimPrefix(url, scheme)
	}
	url = strings.TrimPrefix(url, "git@")
	url = strings.Replace(url, ":", "/", 1)

	return strings.ToLower(url)
}
