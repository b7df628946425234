package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/mailcove/mailcove/pkg/layout"
	"github.com/mailcove/mailcove/pkg/logger"
	"github.com/mailcove/mailcove/pkg/platform"
	"github.com/mailcove/mailcove/pkg/shortcuts"
)

// resolveOptions holds the flags shared by every command that renders
// shortcut labels: which layout to resolve against, which platform's
// modifier glyphs to use, and an optional override file.
type resolveOptions struct {
	layoutName string
	platformID string
	overrides  string
}

// register wires the shared flags onto a command's flag set.
func (o *resolveOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.layoutName, "layout", "", "Resolve against this layout instead of detecting (e.g. azerty)")
	fs.StringVar(&o.platformID, "platform", "", "Platform identifier for modifier glyphs (default: current OS)")
	fs.StringVar(&o.overrides, "overrides", "", "Path to a layout override file (.toml, .yml)")
}

// build assembles the resolver and the layout detection snapshot the
// command should resolve against.
func (o *resolveOptions) build() (*shortcuts.Resolver, layout.Detection, error) {
	lg := logrus.New()
	lg.SetLevel(logrus.WarnLevel)

	layouts := layout.NewRegistry()
	if o.overrides != "" {
		file, err := layout.LoadOverrides(o.overrides)
		if err != nil {
			return nil, layout.Unknown(), err
		}
		file.ApplyTo(layouts, lg)
	}

	platformID := o.platformID
	if platformID == "" {
		platformID = platform.Identifier()
	}

	var detected layout.Detection
	if o.layoutName != "" {
		detected = layout.Detected(o.layoutName)
		if !layouts.Has(detected.Name()) {
			return nil, layout.Unknown(), fmt.Errorf("unknown layout %q (run 'mailcove keys layouts' to list them)", o.layoutName)
		}
	} else {
		detected = layout.NewEnvDetector(lg).Detect()
	}

	logger.Debug("resolving shortcuts: layout=%s platform=%s", detected, platformID)
	return shortcuts.NewResolver(platformID, layouts), detected, nil
}
