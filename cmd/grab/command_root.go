package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/grab/internal/executor"
	"github.com/goliatone/grab/pkg/config"
	"github.com/goliatone/grab/pkg/di"
	"github.com/goliatone/grab/pkg/gitutil"
)

// Global variables for CLI state
var (
	container di.Container
	cfg       *config.Config
)

// newRootCommand creates the root cobra command with all subcommands.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grab <repository> [-- <extra git args>...]",
		Short: "Grab clones repositories into a structured directory tree",
		Long: `Grab resolves a repository reference (full URL, SCP-like address, or
owner/name shorthand) into a clone URL and a collision-free destination
under a single root, then clones it there:

  <root>/github.com/octocat/Spoon-Knife
  <root>/host:123/foo/bar

Configuration Sources (in precedence order):
  1. Command-line flags (highest priority)
  2. Environment variables (GRAB_*)
  3. Configuration file (~/.config/grab/config.yaml)
  4. Built-in defaults (lowest priority)

Exit Codes:
  0 - Success
  1 - Generic error
  2 - Configuration error (bad config file, invalid values)
  3 - Validation error (invalid repository reference, bad flags)
  8 - Git invocation failure

Examples:
  grab octocat/Spoon-Knife
  grab --ssh octocat/Spoon-Knife
  grab git@host:foo/bar/baz.git -- --depth 1
  GRAB_ROOT=/srv/repos grab https://github.com/octocat/Spoon-Knife.git`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeContainer(cmd)
		},
		RunE: runGet,
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newValidationError("invalid flag usage", err)
	})

	config.AddFlags(cmd)

	cmd.AddCommand(
		newPathCommand(),
		newListCommand(),
		newVersionCommand(),
	)

	return cmd
}

// initializeContainer builds the merged configuration and wires the
// dependency container.
func initializeContainer(cmd *cobra.Command) error {
	configFile := ""
	if cmd.Flags().Changed(config.FlagConfig) {
		configFile, _ = cmd.Flags().GetString(config.FlagConfig)
	}

	var err error
	cfg, err = config.NewBuilder().
		FromFile(configFile).
		FromEnv().
		FromFlags(cmd).
		Build()
	if err != nil {
		return newConfigError("failed to build configuration", err)
	}

	container, err = di.New(di.WithConfig(cfg))
	if err != nil {
		return newConfigError("failed to initialize dependencies", err)
	}
	return nil
}

// runGet resolves the reference and clones it, honouring arguments after
// "--" as extra git arguments.
func runGet(cmd *cobra.Command, args []string) error {
	refArgs, extraArgs := splitDashArgs(cmd, args)
	if len(refArgs) != 1 {
		return newValidationError("expected exactly one repository reference", nil)
	}
	ref := refArgs[0]

	svc := container.Getter()

	if cfg.Git.DryRun {
		result, err := svc.Resolve(ref)
		if err != nil {
			return asCLIError(err)
		}
		cloneArgs := append(append([]string{cfg.Git.Binary, "clone", result.URL, result.Dest}, cfg.Git.ExtraArgs...), extraArgs...)
		fmt.Fprintln(cmd.OutOrStdout(), joinCommand(cloneArgs))
		return nil
	}

	result, err := svc.Get(cmd.Context(), ref, extraArgs)
	if err != nil {
		return asCLIError(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Dest)
	return nil
}

// splitDashArgs separates the positional arguments from everything after
// the "--" terminator.
func splitDashArgs(cmd *cobra.Command, args []string) (positional, extra []string) {
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		return args[:dash], args[dash:]
	}
	return args, nil
}

// asCLIError maps domain errors onto exit codes.
func asCLIError(err error) error {
	var parseErr *gitutil.ParseError
	if errors.As(err, &parseErr) {
		return newValidationError("invalid repository reference", err)
	}

	var exitErr *executor.GitExitError
	var termErr *executor.GitTerminatedError
	var mismatchErr *executor.OriginMismatchError
	if errors.As(err, &exitErr) || errors.As(err, &termErr) || errors.As(err, &mismatchErr) {
		return newGitError("git clone failed", err)
	}

	return err
}
