package executor

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// defaultGitCommandRunner implements GitCommandRunner using os/exec.
type defaultGitCommandRunner struct {
	binary string
}

// NewGitCommandRunner creates a GitCommandRunner that shells out to the
// given git binary.
func NewGitCommandRunner(binary string) GitCommandRunner {
	if binary == "" {
		binary = "git"
	}
	return &defaultGitCommandRunner{binary: binary}
}

// Run executes a git command and maps the process outcome onto the
// executor's error types: a non-zero exit becomes *GitExitError, death by
// signal becomes *GitTerminatedError.
func (r *defaultGitCommandRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	output, err := cmd.CombinedOutput()
	result := strings.TrimSpace(string(output))
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the process was killed by a signal.
		if exitErr.ExitCode() == -1 {
			return result, &GitTerminatedError{Args: args, Output: result}
		}
		return result, &GitExitError{Args: args, ExitCode: exitErr.ExitCode(), Output: result}
	}

	return result, err
}
