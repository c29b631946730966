package cmd

import (
	"kek/pkg/scan"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

// RootCmd is the base command. Invoked without a subcommand it scans the
// configured roots and streams the pseudo-XML document to stdout; any
// free-form arguments become the trailing task description.
var RootCmd = &cobra.Command{
	Use:   "kek [task description...]",
	Short: "kek streams a categorized directory tree as pseudo-XML",
	Long: `kek scans the configured scan roots, classifies every file into the
docs, src, or other category using glob patterns, and streams the tree as a
flat pseudo-XML document on stdout for consumption by another process.

Output must be piped or redirected; kek refuses to write to a terminal.

Example: kek "Optimize the parser." | your_command`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return scan.Execute(args, logger)
	},
}

// Execute runs the root command with the given logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}
