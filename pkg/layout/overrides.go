package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// OverrideFormatVersion is the current override file format. Files are
// accepted as long as their declared version satisfies the same major.
const OverrideFormatVersion = "1.0.0"

var overrideConstraint = mustConstraint("^1")

// OverrideFile is the on-disk format for user-defined layouts. Each layout
// is an overlay keyed by physical key code ("KeyQ", "Digit1", ...) merged
// over the QWERTY base, same as the built-ins.
type OverrideFile struct {
	FormatVersion string                       `toml:"format_version" yaml:"format_version" json:"format_version" jsonschema:"description=Override file format version; must satisfy ^1"`
	Layouts       map[string]map[string]string `toml:"layouts" yaml:"layouts" json:"layouts" jsonschema:"description=Layout overlays keyed by layout name then physical key code"`
}

// LoadOverrides reads an override file (TOML or YAML by extension) and
// validates its format version.
func LoadOverrides(path string) (*OverrideFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout overrides: %w", err)
	}

	var file OverrideFile
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported layout override format %q (want .toml, .yml or .yaml)", ext)
	}

	if file.FormatVersion == "" {
		return nil, fmt.Errorf("%s: missing format_version", path)
	}
	v, err := semver.NewVersion(file.FormatVersion)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid format_version %q: %w", path, file.FormatVersion, err)
	}
	if !overrideConstraint.Check(v) {
		return nil, fmt.Errorf("%s: format_version %s is not supported (want %s)", path, file.FormatVersion, overrideConstraint)
	}

	return &file, nil
}

// ApplyTo registers every layout in the file on the registry.
func (f *OverrideFile) ApplyTo(reg *Registry, logger *logrus.Logger) {
	for name, overlay := range f.Layouts {
		keys := make(map[KeyCode]string, len(overlay))
		for code, ch := range overlay {
			keys[KeyCode(code)] = ch
		}
		reg.Register(name, keys)
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"layout": name,
				"keys":   len(keys),
			}).Debug("registered layout override")
		}
	}
}

// WriteTemplate writes a starter override file to path. It refuses to
// overwrite an existing file.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	template := OverrideFile{
		FormatVersion: OverrideFormatVersion,
		Layouts: map[string]map[string]string{
			"example": {
				"KeyQ": "q",
				"KeyW": "w",
			},
		},
	}
	data, err := gotoml.Marshal(template)
	if err != nil {
		return fmt.Errorf("rendering layout template: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func mustConstraint(expr string) *semver.Constraints {
	c, err := semver.NewConstraint(expr)
	if err != nil {
		panic(err)
	}
	return c
}
