// Package shortcuts holds the mail client's keyboard shortcut registry and
// the layout-aware display resolution that turns logical key names into the
// labels shown in help surfaces. Shortcuts are authored against QWERTY key
// names; the resolver adapts labels to the user's detected physical layout.
package shortcuts

// Scope partitions shortcuts into activation contexts. Scopes are mutually
// exclusive at bind time, so the same keys may appear in several scopes.
type Scope string

const (
	ScopeNavigation Scope = "navigation"
	ScopeThread     Scope = "thread-display"
	ScopeGlobal     Scope = "global"
	ScopeMailList   Scope = "mail-list"
	ScopeCompose    Scope = "compose"
)

// String returns the string representation of the scope.
func (s Scope) String() string {
	return string(s)
}

// AllScopes returns every scope in registry concatenation order.
func AllScopes() []Scope {
	return []Scope{ScopeNavigation, ScopeThread, ScopeGlobal, ScopeMailList, ScopeCompose}
}

// Type classifies whether Keys represents a single keystroke or a chord.
// It is descriptive metadata for help rendering and is deliberately not
// validated against len(Keys).
type Type string

const (
	TypeSingle      Type = "single"
	TypeCombination Type = "combination"
)

// Record is one shortcut definition. Keys holds logical key names in display
// order ("mod", "shift", "a", ...); Action correlates to a handler in the UI
// binding layer and is uninterpreted here.
type Record struct {
	Keys           []string `json:"keys"`
	Action         string   `json:"action"`
	Type           Type     `json:"type"`
	Description    string   `json:"description"`
	Scope          Scope    `json:"scope"`
	PreventDefault bool     `json:"preventDefault,omitempty"` // advisory for the binding layer
	Ignore         bool     `json:"ignore,omitempty"`         // documentation only, never bound
}

// Enhanced is a Record augmented with layout-resolved fields. DisplayKeys
// and MappedKeys are positionally parallel to Keys: one label and one mapped
// physical key per logical key name.
type Enhanced struct {
	Record
	DisplayKeys []string `json:"displayKeys"`
	MappedKeys  []string `json:"mappedKeys"`
}
