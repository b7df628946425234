package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mailcove/mailcove/pkg/shortcuts"
)

func newKeysMatrixCmd() *cobra.Command {
	var jsonOutput bool
	var duplicatesOnly bool

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "View a matrix of all key combinations across scopes",
		Long: `Display a spreadsheet-style matrix showing what each key combination does
in each scope.

Rows where the same combination triggers different actions in different
scopes are expected (scopes are exclusive) but worth reviewing when adding
shortcuts. Use --duplicates to show only those rows, --json for
machine-readable output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			matrix := shortcuts.BuildMatrix(shortcuts.All())

			if jsonOutput {
				out, _ := json.MarshalIndent(matrix, "", "  ")
				fmt.Println(string(out))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			header := []string{"COMBO"}
			for _, scope := range matrix.Scopes {
				header = append(header, strings.ToUpper(scope))
			}
			header = append(header, "STATUS")
			fmt.Fprintln(w, boldStyle.Render(strings.Join(header, "\t")))

			sep := make([]string, len(header))
			for i := range sep {
				sep[i] = "─────"
			}
			fmt.Fprintln(w, faintStyle.Render(strings.Join(sep, "\t")))

			sharedCount := 0
			scopedCount := 0

			for _, row := range matrix.Rows {
				multiScope := len(row.Scopes) > 1
				if duplicatesOnly && !multiScope {
					continue
				}

				cells := []string{highlightStyle.Render(row.Combo)}
				for _, scope := range matrix.Scopes {
					val := "-"
					if action, ok := row.Scopes[scope]; ok {
						val = action
					}
					cells = append(cells, val)
				}

				var status string
				switch {
				case multiScope && !row.Consistent:
					status = warningStyle.Render("⚠ SCOPE-DEPENDENT")
					sharedCount++
				case multiScope:
					status = successStyle.Render("✓ CONSISTENT")
					sharedCount++
				default:
					status = faintStyle.Render("SCOPE-LOCAL")
					scopedCount++
				}
				cells = append(cells, status)

				fmt.Fprintln(w, strings.Join(cells, "\t"))
			}

			w.Flush()

			fmt.Println()
			fmt.Printf("%s  Shared combos: %d  │  Scope-local: %d\n",
				faintStyle.Render("Summary:"), sharedCount, scopedCount)

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output matrix in JSON format")
	cmd.Flags().BoolVar(&duplicatesOnly, "duplicates", false, "Show only combos bound in more than one scope")

	return cmd
}
