package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailcove/mailcove/pkg/layout"
)

func TestDetection(t *testing.T) {
	t.Run("unknown", func(t *testing.T) {
		d := layout.Unknown()
		assert.False(t, d.Known())
		assert.True(t, d.IsDefault())
		assert.Empty(t, d.Name())
		assert.Equal(t, "unknown", d.String())
	})

	t.Run("detected default", func(t *testing.T) {
		d := layout.Detected("qwerty")
		assert.True(t, d.Known())
		assert.True(t, d.IsDefault())
		assert.Equal(t, "qwerty", d.Name())
	})

	t.Run("detected remapped", func(t *testing.T) {
		d := layout.Detected("azerty")
		assert.True(t, d.Known())
		assert.False(t, d.IsDefault())
	})

	t.Run("name is normalized", func(t *testing.T) {
		d := layout.Detected("  AZERTY ")
		assert.Equal(t, "azerty", d.Name())
	})

	t.Run("zero value is unknown", func(t *testing.T) {
		var d layout.Detection
		assert.False(t, d.Known())
		assert.True(t, d.IsDefault())
	})
}

func TestKeyCodeFromName(t *testing.T) {
	tests := []struct {
		name string
		want layout.KeyCode
	}{
		{"a", "KeyA"},
		{"z", "KeyZ"},
		{"1", "Digit1"},
		{"0", "Digit0"},
		{"escape", "Escape"},
		{"Escape", "Escape"},
		{"esc", "Escape"},
		{"arrowup", "ArrowUp"},
		{"up", "ArrowUp"},
		{"f1", "F1"},
		{"f12", "F12"},
		{"/", "Slash"},
		{";", "Semicolon"},
		{"mod", "MetaLeft"},
		{"shift", "ShiftLeft"},
		// Unknown names pass through so the pipeline stays total.
		{"click", "click"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layout.KeyCodeFromName(tt.name); got != tt.want {
				t.Errorf("KeyCodeFromName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestMapper(t *testing.T) {
	reg := layout.NewRegistry()

	t.Run("qwerty is identity for letters", func(t *testing.T) {
		m := reg.Mapper("qwerty")
		assert.Equal(t, "a", m.KeyForCode("KeyA"))
		assert.Equal(t, "1", m.KeyForCode("Digit1"))
		assert.Equal(t, "/", m.KeyForCode("Slash"))
	})

	t.Run("azerty overlay", func(t *testing.T) {
		m := reg.Mapper("azerty")
		assert.Equal(t, "q", m.KeyForCode("KeyA"))
		assert.Equal(t, "a", m.KeyForCode("KeyQ"))
		assert.Equal(t, "&", m.KeyForCode("Digit1"))
		// Unchanged positions fall through to the QWERTY base.
		assert.Equal(t, "e", m.KeyForCode("KeyE"))
	})

	t.Run("dvorak overlay", func(t *testing.T) {
		m := reg.Mapper("dvorak")
		assert.Equal(t, "'", m.KeyForCode("KeyQ"))
		assert.Equal(t, "o", m.KeyForCode("KeyS"))
	})

	t.Run("unmapped code passes through", func(t *testing.T) {
		m := reg.Mapper("azerty")
		assert.Equal(t, "Escape", m.KeyForCode("Escape"))
		assert.Equal(t, "click", m.KeyForCode("click"))
	})

	t.Run("unknown layout passes everything through", func(t *testing.T) {
		m := reg.Mapper("bepo")
		assert.Equal(t, "KeyA", m.KeyForCode("KeyA"))
		assert.Equal(t, "bepo", m.Name())
	})

	t.Run("map codes preserves order and cardinality", func(t *testing.T) {
		m := reg.Mapper("azerty")
		got := m.MapCodes([]layout.KeyCode{"KeyA", "Digit1", "Escape"})
		assert.Equal(t, []string{"q", "&", "Escape"}, got)

		assert.Empty(t, m.MapCodes(nil))
	})
}

func TestRegistry(t *testing.T) {
	reg := layout.NewRegistry()

	t.Run("built-ins present", func(t *testing.T) {
		names := reg.Names()
		require.Contains(t, names, "qwerty")
		require.Contains(t, names, "azerty")
		require.Contains(t, names, "qwertz")
		require.Contains(t, names, "dvorak")
		require.Contains(t, names, "colemak")
	})

	t.Run("register custom layout", func(t *testing.T) {
		reg.Register("bepo", map[layout.KeyCode]string{"KeyQ": "b"})
		assert.True(t, reg.Has("bepo"))
		m := reg.Mapper("bepo")
		assert.Equal(t, "b", m.KeyForCode("KeyQ"))
		// Overlay semantics: unspecified keys keep the QWERTY base.
		assert.Equal(t, "w", m.KeyForCode("KeyW"))
	})
}
