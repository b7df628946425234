package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mailcove/mailcove/pkg/shortcuts"
)

func newKeysDumpCmd() *cobra.Command {
	var opts resolveOptions

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the enhanced shortcut registry as JSON",
		Long: `Print every shortcut with its resolved display labels and layout-mapped
physical keys for the detected (or forced) keyboard layout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, detected, err := opts.build()
			if err != nil {
				return err
			}
			enhanced := resolver.Enhance(shortcuts.All(), detected)
			out, err := json.MarshalIndent(enhanced, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	opts.register(cmd.Flags())
	return cmd
}
