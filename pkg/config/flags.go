package config

import "github.com/spf13/cobra"

// Flag names shared between registration and application.
const (
	FlagConfig    = "config"
	FlagBaseDir   = "base-dir"
	FlagSSH       = "ssh"
	FlagDryRun    = "dry-run"
	FlagGitBinary = "git-binary"
	FlagTimeout   = "timeout"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagVerbose   = "verbose"
	FlagQuiet     = "quiet"
)

// AddFlags registers the configuration flags on the root command. All flags
// are persistent so subcommands share them.
func AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(FlagConfig, "", "path to configuration file")
	flags.StringP(FlagBaseDir, "b", "", "base directory to clone under")
	flags.BoolP(FlagSSH, "s", false, "expand shorthand references to SSH addresses")
	flags.BoolP(FlagDryRun, "n", false, "print the clone command without running it")
	flags.String(FlagGitBinary, "", "git executable to invoke")
	flags.Duration(FlagTimeout, 0, "timeout for a single git invocation")
	flags.String(FlagLogLevel, "", "log level (debug, info, warn, error)")
	flags.String(FlagLogFormat, "", "log format (text, json)")
	flags.BoolP(FlagVerbose, "v", false, "enable debug logging")
	flags.BoolP(FlagQuiet, "q", false, "only log warnings and errors")
}

// ApplyFlags overlays flag values onto cfg. Only flags the user actually set
// override earlier sources.
func ApplyFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()

	if flags.Changed(FlagBaseDir) {
		cfg.Root, _ = flags.GetString(FlagBaseDir)
	}
	if flags.Changed(FlagSSH) {
		cfg.Git.PreferSSH, _ = flags.GetBool(FlagSSH)
	}
	if flags.Changed(FlagDryRun) {
		cfg.Git.DryRun, _ = flags.GetBool(FlagDryRun)
	}
	if flags.Changed(FlagGitBinary) {
		cfg.Git.Binary, _ = flags.GetString(FlagGitBinary)
	}
	if flags.Changed(FlagTimeout) {
		if timeout, err := flags.GetDuration(FlagTimeout); err == nil {
			cfg.Git.Timeout = timeout
		}
	}
	if flags.Changed(FlagLogLevel) {
		cfg.Logging.Level, _ = flags.GetString(FlagLogLevel)
	}
	if flags.Changed(FlagLogFormat) {
		cfg.Logging.Format, _ = flags.GetString(FlagLogFormat)
	}
	if flags.Changed(FlagVerbose) {
		cfg.Logging.Verbose, _ = flags.GetBool(FlagVerbose)
	}
	if flags.Changed(FlagQuiet) {
		cfg.Logging.Quiet, _ = flags.GetBool(FlagQuiet)
	}
}
