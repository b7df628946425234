package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mailcove/mailcove/pkg/layout"
)

func newKeysLayoutsCmd() *cobra.Command {
	var overrides string

	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "List known keyboard layouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			layouts, err := loadLayouts(overrides)
			if err != nil {
				return err
			}

			fmt.Println(headerStyle.Render("Known keyboard layouts"))
			fmt.Println()
			for _, name := range layouts.Names() {
				if name == layout.DefaultName {
					fmt.Printf("  %s %s\n", boldStyle.Render(name), faintStyle.Render("(authoring default, no remapping)"))
					continue
				}
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&overrides, "overrides", "", "Path to a layout override file (.toml, .yml)")

	cmd.AddCommand(newKeysLayoutsShowCmd())
	cmd.AddCommand(newKeysLayoutsInitCmd())
	return cmd
}

// newKeysLayoutsShowCmd previews how a layout remaps the QWERTY reference.
func newKeysLayoutsShowCmd() *cobra.Command {
	var overrides string

	cmd := &cobra.Command{
		Use:   "show <layout>",
		Short: "Show how a layout remaps the QWERTY reference keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layouts, err := loadLayouts(overrides)
			if err != nil {
				return err
			}
			name := strings.ToLower(args[0])
			if !layouts.Has(name) {
				return fmt.Errorf("unknown layout %q (run 'mailcove keys layouts' to list them)", name)
			}

			reference := layouts.Mapper(layout.DefaultName)
			mapper := layouts.Mapper(name)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, boldStyle.Render("CODE\tQWERTY\t"+strings.ToUpper(name)))
			for c := 'a'; c <= 'z'; c++ {
				code := layout.KeyCodeFromName(string(c))
				ref := reference.KeyForCode(code)
				mapped := mapper.KeyForCode(code)
				line := fmt.Sprintf("%s\t%s\t%s", code, ref, mapped)
				if ref != mapped {
					line += "\t" + warningStyle.Render("moved")
				}
				fmt.Fprintln(w, line)
			}
			for c := '0'; c <= '9'; c++ {
				code := layout.KeyCodeFromName(string(c))
				ref := reference.KeyForCode(code)
				mapped := mapper.KeyForCode(code)
				line := fmt.Sprintf("%s\t%s\t%s", code, ref, mapped)
				if ref != mapped {
					line += "\t" + warningStyle.Render("moved")
				}
				fmt.Fprintln(w, line)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&overrides, "overrides", "", "Path to a layout override file (.toml, .yml)")
	return cmd
}

// newKeysLayoutsInitCmd writes a starter override file.
func newKeysLayoutsInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter layout override file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "mailcove-layouts.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := layout.WriteTemplate(path); err != nil {
				return err
			}
			fmt.Printf("%s Wrote layout override template to %s\n", successStyle.Render("✓"), path)
			return nil
		},
	}
	return cmd
}

func loadLayouts(overrides string) (*layout.Registry, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	layouts := layout.NewRegistry()
	if overrides != "" {
		file, err := layout.LoadOverrides(overrides)
		if err != nil {
			return nil, err
		}
		file.ApplyTo(layouts, logger)
	}
	return layouts, nil
}
