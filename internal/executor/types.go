// Package executor runs the external git client and interprets its outcome.
package executor

import "context"

// GitCommandRunner abstracts git process execution for testability.
type GitCommandRunner interface {
	// Run executes git with the given arguments in dir (or the current
	// directory when dir is empty) and returns the combined trimmed output.
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// Cloner materializes a repository at a destination path.
type Cloner interface {
	// Clone clones url into dest, creating parent directories as needed.
	// A destination that already holds a clone of url is not an error;
	// a destination holding a different repository is.
	Clone(ctx context.Context, url, dest string, extraArgs []string) error
}
