package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI release version.
const version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the patterns version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "patterns v"+version)
		},
	}
}
