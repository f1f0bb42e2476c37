package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPathCommand prints the destination a reference resolves to without
// cloning anything.
func newPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path <repository>",
		Short: "Print the destination path a reference resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := container.Getter().Resolve(args[0])
			if err != nil {
				return asCLIError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Dest)
			return nil
		},
	}
}
