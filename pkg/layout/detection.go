// Package layout resolves physical keyboard layouts. It maps human key names
// to layout-independent key codes and key codes to the character a given
// layout produces, so shortcut labels can follow the keyboard the user
// actually types on (QWERTY vs AZERTY vs Dvorak, etc.).
package layout

import "strings"

// DefaultName is the distinguished layout that disables remapping.
// Shortcuts are authored against it, so labels fall back to the raw key name.
const DefaultName = "qwerty"

// Detection is the result of keyboard layout detection. The zero value means
// "layout unknown". Callers must branch on Known explicitly rather than
// treating an empty name as a layout.
type Detection struct {
	known bool
	name  string
}

// Unknown returns a Detection for the undetected case.
func Unknown() Detection {
	return Detection{}
}

// Detected returns a Detection for a concrete layout identifier.
// Identifiers are lowercased so detection sources can be case-sloppy.
func Detected(name string) Detection {
	return Detection{known: true, name: strings.ToLower(strings.TrimSpace(name))}
}

// Known reports whether a layout was detected at all.
func (d Detection) Known() bool {
	return d.known
}

// Name returns the detected layout identifier, or "" when unknown.
func (d Detection) Name() string {
	return d.name
}

// IsDefault reports whether the detected layout is the authoring default.
// An unknown layout is treated as default since no remapping can apply.
func (d Detection) IsDefault() bool {
	return !d.known || d.name == DefaultName
}

func (d Detection) String() string {
	if !d.known {
		return "unknown"
	}
	return d.name
}
