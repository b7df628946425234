package layout

import "sort"

// Mapper resolves physical key codes to the characters one layout produces.
// It is total: codes with no entry come back as a pass-through of the code
// string, so batch mapping never shrinks or fails.
type Mapper struct {
	name string
	keys map[KeyCode]string
}

// Name returns the layout identifier this mapper was built for.
func (m *Mapper) Name() string {
	return m.name
}

// KeyForCode returns the character the layout produces for a key code.
func (m *Mapper) KeyForCode(code KeyCode) string {
	if ch, ok := m.keys[code]; ok {
		return ch
	}
	return string(code)
}

// MapCodes resolves a batch of key codes. The result has the same length
// and order as the input.
func (m *Mapper) MapCodes(codes []KeyCode) []string {
	out := make([]string, len(codes))
	for i, code := range codes {
		out[i] = m.KeyForCode(code)
	}
	return out
}

// Registry holds all known layout tables, built-in and user-registered.
// Lookups are total; asking for an unknown layout yields a pass-through
// mapper rather than an error.
type Registry struct {
	layouts map[string]map[KeyCode]string
}

// NewRegistry builds a registry with the built-in layouts (the QWERTY
// reference plus the shipped overlays merged over it).
func NewRegistry() *Registry {
	base := qwertyBase()
	r := &Registry{layouts: map[string]map[KeyCode]string{DefaultName: base}}
	for name, overlay := range builtinOverlays {
		r.layouts[name] = mergeOverlay(base, overlay)
	}
	return r
}

// Register adds or replaces a layout as an overlay on the QWERTY base.
// Used for layouts loaded from override files.
func (r *Registry) Register(name string, overlay map[KeyCode]string) {
	r.layouts[name] = mergeOverlay(qwertyBase(), overlay)
}

// Mapper returns the mapper for a layout name. Unknown names get an empty
// table, which makes every lookup a pass-through.
func (r *Registry) Mapper(name string) *Mapper {
	if keys, ok := r.layouts[name]; ok {
		return &Mapper{name: name, keys: keys}
	}
	return &Mapper{name: name}
}

// Names returns all registered layout identifiers, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a layout is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.layouts[name]
	return ok
}

func mergeOverlay(base, overlay map[KeyCode]string) map[KeyCode]string {
	merged := make(map[KeyCode]string, len(base)+len(overlay))
	for code, ch := range base {
		merged[code] = ch
	}
	for code, ch := range overlay {
		merged[code] = ch
	}
	return merged
}
