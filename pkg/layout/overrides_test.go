package layout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailcove/mailcove/pkg/layout"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOverridesTOML(t *testing.T) {
	path := writeFile(t, "layouts.toml", `
format_version = "1.0.0"

[layouts.bepo]
KeyQ = "b"
KeyW = "é"
`)

	file, err := layout.LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", file.FormatVersion)
	require.Contains(t, file.Layouts, "bepo")
	assert.Equal(t, "b", file.Layouts["bepo"]["KeyQ"])

	reg := layout.NewRegistry()
	file.ApplyTo(reg, nil)
	assert.True(t, reg.Has("bepo"))
	assert.Equal(t, "é", reg.Mapper("bepo").KeyForCode("KeyW"))
}

func TestLoadOverridesYAML(t *testing.T) {
	path := writeFile(t, "layouts.yml", `
format_version: "1.2.0"
layouts:
  neo:
    KeyA: u
`)

	file, err := layout.LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, "u", file.Layouts["neo"]["KeyA"])
}

func TestLoadOverridesErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"missing version", "layouts.toml", "[layouts.x]\nKeyA = \"a\"\n"},
		{"invalid version", "layouts.toml", "format_version = \"not-semver\"\n"},
		{"unsupported major", "layouts.toml", "format_version = \"2.0.0\"\n"},
		{"bad extension", "layouts.ini", "format_version = \"1.0.0\"\n"},
		{"malformed toml", "layouts.toml", "format_version = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := layout.LoadOverrides(path)
			assert.Error(t, err)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := layout.LoadOverrides(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts.toml")
	require.NoError(t, layout.WriteTemplate(path))

	// The template must round-trip through the loader.
	file, err := layout.LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, layout.OverrideFormatVersion, file.FormatVersion)
	assert.Contains(t, file.Layouts, "example")

	// Refuses to overwrite.
	assert.Error(t, layout.WriteTemplate(path))
}

func TestEnvDetector(t *testing.T) {
	t.Run("unset means unknown", func(t *testing.T) {
		t.Setenv("MAILCOVE_KEYBOARD_LAYOUT", "")
		d := layout.NewEnvDetector(nil).Detect()
		assert.False(t, d.Known())
	})

	t.Run("set means detected", func(t *testing.T) {
		t.Setenv("MAILCOVE_KEYBOARD_LAYOUT", "AZERTY")
		d := layout.NewEnvDetector(nil).Detect()
		assert.True(t, d.Known())
		assert.Equal(t, "azerty", d.Name())
	})
}

func TestStaticDetector(t *testing.T) {
	d := layout.StaticDetector{Result: layout.Detected("dvorak")}
	assert.Equal(t, "dvorak", d.Detect().Name())
}
