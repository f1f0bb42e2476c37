package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Exit codes for different error types
const (
	ExitSuccess         = 0 // Successful execution
	ExitGenericError    = 1 // Generic error
	ExitConfigError     = 2 // Configuration error
	ExitValidationError = 3 // Input validation error (bad reference, bad flags)
	ExitGitError        = 8 // Git invocation failure
)

func main() {
	if err := execute(); err != nil {
		if cliErr, ok := err.(*CLIError); ok {
			fmt.Fprintf(os.Stderr, "grab: %s\n", cliErr.Message)
			if cliErr.Cause != nil {
				fmt.Fprintf(os.Stderr, "  Cause: %v\n", cliErr.Cause)
			}
			os.Exit(cliErr.ExitCode())
		}

		fmt.Fprintf(os.Stderr, "grab: %v\n", err)
		os.Exit(ExitGenericError)
	}
}

func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCommand().ExecuteContext(ctx)
}
