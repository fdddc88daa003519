// Package commands implements the passgen command line.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// RootCmd creates and returns the root command for the passgen CLI.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate PIN codes, random passwords and memorable passphrases",
		Long: `passgen generates passwords from a cryptographically secure source.

Generators:
  pin        numeric PIN codes
  random     random characters from selectable classes
  memorable  dictionary words joined by a separator

Run "passgen interactive" to pick a generator from a menu.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

// NewApp returns the root command with every subcommand registered.
func NewApp() *cobra.Command {
	root := RootCmd()
	root.AddCommand(PinCmd())
	root.AddCommand(RandomCmd())
	root.AddCommand(MemorableCmd())
	root.AddCommand(InteractiveCmd())
	root.AddCommand(VerifyCmd())
	root.AddCommand(TokenCmd())
	return root
}
