// Package workspace resolves the root directory clones are laid out under
// and enumerates the clones already present.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/grab/pkg/config"
)

// DefaultRootDir is the directory under the user's home used when no root
// is configured anywhere.
const DefaultRootDir = "src"

// HomeDirError is returned when the user's home directory is needed but
// cannot be detected.
type HomeDirError struct {
	Err error
}

func (e *HomeDirError) Error() string {
	return fmt.Sprintf("workspace: home directory not detected: %v", e.Err)
}

func (e *HomeDirError) Unwrap() error {
	return e.Err
}

// Resolve returns the absolute root directory for clone destinations. The
// configured root wins when present (flag, config file, and GRAB_ROOT have
// already been merged by the config layer); otherwise ~/src is used. A
// leading "~/" in the configured root expands to the home directory.
func Resolve(cfg *config.Config) (string, error) {
	root := ""
	if cfg != nil {
		root = strings.TrimSpace(cfg.Root)
	}

	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", &HomeDirError{Err: err}
		}
		return filepath.Join(home, DefaultRootDir), nil
	}

	if root == "~" || strings.HasPrefix(root, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", &HomeDirError{Err: err}
		}
		root = filepath.Join(home, strings.TrimPrefix(root[1:], "/"))
	}

	if !filepath.IsAbs(root) {
		if abs, err := filepath.Abs(root); err == nil {
			return abs, nil
		}
	}
	return root, nil
}
