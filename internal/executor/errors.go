package executor

import (
	"errors"
	"fmt"
	"strings"
)

// GitExitError reports a git invocation that exited with a non-zero status.
type GitExitError struct {
	Args     []string
	ExitCode int
	Output   string
}

func (e *GitExitError) Error() string {
	return fmt.Sprintf("executor: git %s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
}

// GitTerminatedError reports a git invocation killed by a signal before it
// could exit.
type GitTerminatedError struct {
	Args   []string
	Output string
}

func (e *GitTerminatedError) Error() string {
	return fmt.Sprintf("executor: git %s terminated by signal", strings.Join(e.Args, " "))
}

// OriginMismatchError reports a destination that already holds a clone of a
// different repository.
type OriginMismatchError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *OriginMismatchError) Error() string {
	return fmt.Sprintf("executor: %s already contains a clone of %s, not %s", e.Path, e.Actual, e.Expected)
}

func IsGitExitError(err error) bool {
	var target *GitExitError
	return errors.As(err, &target)
}

func IsOriginMismatchError(err error) bool {
	var target *OriginMismatchError
	return errors.As(err, &target)
}
