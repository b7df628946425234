package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mailcove",
	Short: "Mailcove mail client companion tools",
	Long: `Companion CLI for the Mailcove mail client.

Inspect the keyboard shortcut registry, preview how shortcuts render under
different physical keyboard layouts, check for binding conflicts, and manage
layout override files.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
