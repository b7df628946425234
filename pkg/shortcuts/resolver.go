package shortcuts

import (
	"strings"
	"unicode/utf8"

	"github.com/mailcove/mailcove/pkg/layout"
	"github.com/mailcove/mailcove/pkg/platform"
)

// Resolver turns logical key names into display labels and layout-mapped
// physical keys. It carries its dependencies explicitly (platform identifier
// and layout registry) so resolution is a pure function of record + detected
// layout and can be exercised without environment mocking.
type Resolver struct {
	platform string
	layouts  *layout.Registry
}

// NewResolver creates a resolver for the given platform identifier.
// A nil registry falls back to the built-in layouts.
func NewResolver(platformID string, layouts *layout.Registry) *Resolver {
	if layouts == nil {
		layouts = layout.NewRegistry()
	}
	return &Resolver{platform: platformID, layouts: layouts}
}

// DisplayKeys resolves one display label per logical key in the record, in
// the same order. Fixed modifier and named-key labels always win; otherwise
// a non-default detected layout routes through code lookup and the layout
// table, and the default/unknown case uses the raw key name. Single-rune
// labels are upper-cased in every branch.
func (r *Resolver) DisplayKeys(rec Record, detected layout.Detection) []string {
	var mapper *layout.Mapper
	if !detected.IsDefault() {
		mapper = r.layouts.Mapper(detected.Name())
	}

	out := make([]string, len(rec.Keys))
	for i, key := range rec.Keys {
		out[i] = r.displayKey(key, mapper)
	}
	return out
}

func (r *Resolver) displayKey(key string, mapper *layout.Mapper) string {
	mac := platform.IsMac(r.platform)

	switch strings.ToLower(key) {
	case "mod":
		if mac {
			return "⌘"
		}
		return "Ctrl"
	case "meta":
		return "⌘"
	case "ctrl", "control":
		return "Ctrl"
	case "alt":
		if mac {
			return "⌥"
		}
		return "Alt"
	case "shift":
		return "⇧"
	case "escape":
		return "Esc"
	case "backspace":
		return "⌫"
	case "enter":
		return "↵"
	case "space":
		return "Space"
	}

	if mapper != nil {
		return upperIfSingleRune(mapper.KeyForCode(layout.KeyCodeFromName(key)))
	}
	return upperIfSingleRune(key)
}

// Enhance derives an Enhanced record for every input record, preserving
// order and cardinality. The detected layout is a snapshot taken by the
// caller, so the whole batch resolves against one consistent layout.
func (r *Resolver) Enhance(records []Record, detected layout.Detection) []Enhanced {
	mapperName := layout.DefaultName
	if detected.Known() {
		mapperName = detected.Name()
	}
	mapper := r.layouts.Mapper(mapperName)

	out := make([]Enhanced, len(records))
	for i, rec := range records {
		codes := make([]layout.KeyCode, len(rec.Keys))
		for j, key := range rec.Keys {
			codes[j] = layout.KeyCodeFromName(key)
		}
		out[i] = Enhanced{
			Record:      rec,
			DisplayKeys: r.DisplayKeys(rec, detected),
			MappedKeys:  mapper.MapCodes(codes),
		}
	}
	return out
}

func upperIfSingleRune(s string) string {
	if utf8.RuneCountInString(s) == 1 {
		return strings.ToUpper(s)
	}
	return s
}
