package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/mailcove/mailcove/pkg/layout"
)

// newKeysSchemaCmd generates the JSON Schema for layout override files,
// for editor validation of user configs.
func newKeysSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for layout override files",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &jsonschema.Reflector{
				AllowAdditionalProperties: true,
				ExpandedStruct:            true,
			}

			schema := r.Reflect(&layout.OverrideFile{})
			schema.Title = "Mailcove Layout Overrides"
			schema.Description = "Schema for mailcove keyboard layout override files."

			out, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling schema: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
	return cmd
}
