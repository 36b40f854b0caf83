// Package cli implements the patterns command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "patterns",
		Short: "A catalogue of design-pattern demonstrations",
		Long: `Patterns is a catalogue of textbook design-pattern demonstrations
grouped into creational, structural, and behavioral families. Each
pattern is a small, self-printing example; run one, several, or the
whole catalogue.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./patterns.yaml)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log run progress to stderr")

	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newVersionCmd())
	return root
}
