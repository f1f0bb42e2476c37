package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/grab/pkg/workspace"
)

// newListCommand lists the clones already present under the root.
func newListCommand() *cobra.Command {
	var withRemotes bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repositories cloned under the root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := workspace.Resolve(cfg)
			if err != nil {
				return newConfigError("failed to resolve root directory", err)
			}

			clones, err := workspace.Scan(root, withRemotes)
			if err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}

			for _, clone := range clones {
				if withRemotes && clone.Remote != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", clone.Path, clone.Remote)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), clone.Path)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withRemotes, "remotes", false, "show each repository's origin URL")
	return cmd
}
