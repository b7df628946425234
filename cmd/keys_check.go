package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mailcove/mailcove/pkg/shortcuts"
)

// newKeysCheckCmd creates the 'mailcove keys check' command.
func newKeysCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check every scope for shortcut conflicts",
		Long: `Analyze the shortcut registry and report key combinations bound to more
than one action within the same scope.

Cross-scope duplicates are NOT reported (e.g. escape in "global" vs escape in
"compose") because scopes are mutually exclusive activation contexts and the
binding layer disambiguates them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeysCheck()
		},
	}
	return cmd
}

func runKeysCheck() error {
	records := shortcuts.All()
	conflicts := shortcuts.DetectConflicts(records)
	conflictMap := shortcuts.GroupConflictsByScope(conflicts)

	fmt.Println(headerStyle.Render("Mailcove Shortcut Check"))
	fmt.Println()

	hasErrors := false
	for _, scope := range shortcuts.AllScopes() {
		scopeConflicts := conflictMap[scope]
		scopeName := strings.ToUpper(scope.String())

		bindingCount := len(shortcuts.ByScope(scope))

		if len(scopeConflicts) == 0 {
			fmt.Printf("%s %s: %s (%d shortcuts)\n",
				successStyle.Render("✓"),
				boldStyle.Render(scopeName),
				successStyle.Render("No conflicts"),
				bindingCount)
			continue
		}

		hasErrors = true
		fmt.Printf("%s %s: %s\n",
			errorStyle.Render("✗"),
			boldStyle.Render(scopeName),
			errorStyle.Render(fmt.Sprintf("%d conflict(s)", len(scopeConflicts))))
		for _, c := range scopeConflicts {
			var actions []string
			for _, rec := range c.Records {
				actions = append(actions, rec.Action)
			}
			fmt.Printf("     %s: %s\n",
				highlightStyle.Render(c.Combo),
				strings.Join(actions, ", "))
		}
	}

	fmt.Println()

	if hasErrors {
		fmt.Println(warningStyle.Render("Conflicts detected! Fix the registry before shipping."))
		fmt.Println(faintStyle.Render("Run 'mailcove keys' to browse all shortcuts interactively."))
		return fmt.Errorf("shortcut conflicts found")
	}

	fmt.Println(successStyle.Render("✓ All shortcuts are conflict-free!"))
	return nil
}
