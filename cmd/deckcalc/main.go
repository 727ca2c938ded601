// Deckcalc is the command-line client for the floating deck calculator.
//
// It provides an interactive terminal form, a one-shot estimate command
// for scripting, and mDNS discovery of deckcalc servers on the local
// network. All calculations are performed by a deckcalc-server.
//
// Usage:
//
//	deckcalc [command] [flags]
//
// Running without arguments launches the interactive form.
// See 'deckcalc --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/deckcalc/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "deckcalc",
	Short: "Floating Deck Calculator",
	Long: `Estimate the lumber and fasteners needed for a floating deck.

Enter the deck's length and width in feet and a deckcalc server returns the
deck boards, framing lumber, screws and hardware to buy.

If no command is specified, the interactive form will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the form when no subcommand provided
		return runForm(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("deckcalc %s (commit: %s)\n", version.Version, version.Commit)
	},
}
