package cmd

import (
	"github.com/spf13/cobra"
)

// newKeysCmd creates the parent 'mailcove keys' command.
// When invoked without subcommands, it launches the TUI browser.
func newKeysCmd() *cobra.Command {
	var opts resolveOptions

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Inspect the Mailcove keyboard shortcut registry",
		Long: `Browse the mail client's keyboard shortcuts and how they render for the
user's physical keyboard layout.

Shortcuts are authored against QWERTY key names; on AZERTY, Dvorak and other
layouts the displayed labels follow the physical keys instead. Use these
commands to preview labels per layout, detect binding conflicts within a
scope, and dump the enhanced registry for other tools.

When run without arguments, opens an interactive browser.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeysTUI(&opts)
		},
	}
	opts.register(cmd.Flags())

	cmd.AddCommand(newKeysDumpCmd())
	cmd.AddCommand(newKeysCheckCmd())
	cmd.AddCommand(newKeysMatrixCmd())
	cmd.AddCommand(newKeysLayoutsCmd())
	cmd.AddCommand(newKeysSchemaCmd())

	return cmd
}
