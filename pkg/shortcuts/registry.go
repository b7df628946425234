package shortcuts

// The static shortcut catalog. Groups are concatenated in AllScopes order
// into one flat sequence; duplicates across scopes are expected since scopes
// are exclusive activation contexts and the binding layer disambiguates.

var navigationShortcuts = []Record{
	{Keys: []string{"arrowup"}, Action: "focus-prev-item", Type: TypeSingle, Description: "Move focus to the previous item", Scope: ScopeNavigation},
	{Keys: []string{"arrowdown"}, Action: "focus-next-item", Type: TypeSingle, Description: "Move focus to the next item", Scope: ScopeNavigation},
	{Keys: []string{"k"}, Action: "focus-prev-item", Type: TypeSingle, Description: "Move focus to the previous item", Scope: ScopeNavigation},
	{Keys: []string{"j"}, Action: "focus-next-item", Type: TypeSingle, Description: "Move focus to the next item", Scope: ScopeNavigation},
	{Keys: []string{"enter"}, Action: "open-focused-item", Type: TypeSingle, Description: "Open the focused item", Scope: ScopeNavigation},
	{Keys: []string{"g", "i"}, Action: "go-to-inbox", Type: TypeCombination, Description: "Go to the inbox", Scope: ScopeNavigation},
	{Keys: []string{"g", "d"}, Action: "go-to-drafts", Type: TypeCombination, Description: "Go to drafts", Scope: ScopeNavigation},
	{Keys: []string{"g", "s"}, Action: "go-to-sent", Type: TypeCombination, Description: "Go to sent mail", Scope: ScopeNavigation},
	{Keys: []string{"g", "t"}, Action: "go-to-trash", Type: TypeCombination, Description: "Go to trash", Scope: ScopeNavigation},
}

var threadShortcuts = []Record{
	{Keys: []string{"r"}, Action: "reply", Type: TypeSingle, Description: "Reply to the sender", Scope: ScopeThread},
	{Keys: []string{"a"}, Action: "reply-all", Type: TypeSingle, Description: "Reply to all recipients", Scope: ScopeThread},
	{Keys: []string{"f"}, Action: "forward", Type: TypeSingle, Description: "Forward the message", Scope: ScopeThread},
	{Keys: []string{"n"}, Action: "next-thread", Type: TypeSingle, Description: "View the next thread", Scope: ScopeThread},
	{Keys: []string{"p"}, Action: "prev-thread", Type: TypeSingle, Description: "View the previous thread", Scope: ScopeThread},
	{Keys: []string{"o"}, Action: "expand-collapse-message", Type: TypeSingle, Description: "Expand or collapse the focused message", Scope: ScopeThread},
	{Keys: []string{"escape"}, Action: "close-thread", Type: TypeSingle, Description: "Close the open thread", Scope: ScopeThread},
	{Keys: []string{"backspace"}, Action: "trash-thread", Type: TypeSingle, Description: "Move the thread to trash", Scope: ScopeThread},
}

var globalShortcuts = []Record{
	{Keys: []string{"c"}, Action: "open-compose", Type: TypeSingle, Description: "Compose a new message", Scope: ScopeGlobal},
	{Keys: []string{"/"}, Action: "open-search", Type: TypeSingle, Description: "Search mail", Scope: ScopeGlobal, PreventDefault: true},
	{Keys: []string{"mod", "z"}, Action: "undo", Type: TypeCombination, Description: "Undo the last action", Scope: ScopeGlobal},
	{Keys: []string{"mod", "shift", "z"}, Action: "redo", Type: TypeCombination, Description: "Redo the last undone action", Scope: ScopeGlobal},
	{Keys: []string{"mod", "k"}, Action: "open-command-palette", Type: TypeCombination, Description: "Open the command palette", Scope: ScopeGlobal, PreventDefault: true},
	{Keys: []string{"mod", ","}, Action: "open-settings", Type: TypeCombination, Description: "Open settings", Scope: ScopeGlobal, PreventDefault: true},
	{Keys: []string{"shift", "?"}, Action: "open-shortcut-help", Type: TypeCombination, Description: "Show keyboard shortcuts", Scope: ScopeGlobal},
	{Keys: []string{"escape"}, Action: "close-modal", Type: TypeSingle, Description: "Close the active dialog", Scope: ScopeGlobal},
	{Keys: []string{"space"}, Action: "scroll-preview", Type: TypeSingle, Description: "Scroll the preview pane", Scope: ScopeGlobal, Ignore: true},
}

var mailListShortcuts = []Record{
	{Keys: []string{"x"}, Action: "toggle-select-thread", Type: TypeSingle, Description: "Select or deselect the focused thread", Scope: ScopeMailList},
	{Keys: []string{"mod", "a"}, Action: "select-all-threads", Type: TypeCombination, Description: "Select every thread in the list", Scope: ScopeMailList, PreventDefault: true},
	{Keys: []string{"shift", "click"}, Action: "select-thread-range", Type: TypeCombination, Description: "Select a range of threads", Scope: ScopeMailList},
	{Keys: []string{"alt", "shift", "click"}, Action: "extend-thread-range", Type: TypeCombination, Description: "Extend the selected range", Scope: ScopeMailList},
	{Keys: []string{"e"}, Action: "archive-selection", Type: TypeSingle, Description: "Archive the selected threads", Scope: ScopeMailList},
	{Keys: []string{"backspace"}, Action: "trash-selection", Type: TypeSingle, Description: "Move the selected threads to trash", Scope: ScopeMailList},
	{Keys: []string{"u"}, Action: "toggle-read", Type: TypeSingle, Description: "Mark as read or unread", Scope: ScopeMailList},
	{Keys: []string{"s"}, Action: "toggle-star", Type: TypeSingle, Description: "Star or unstar", Scope: ScopeMailList},
	{Keys: []string{"escape"}, Action: "clear-selection", Type: TypeSingle, Description: "Clear the selection", Scope: ScopeMailList},
}

var composeShortcuts = []Record{
	{Keys: []string{"mod", "enter"}, Action: "send-message", Type: TypeCombination, Description: "Send the message", Scope: ScopeCompose, PreventDefault: true},
	{Keys: []string{"mod", "s"}, Action: "save-draft", Type: TypeCombination, Description: "Save the draft", Scope: ScopeCompose, PreventDefault: true},
	{Keys: []string{"mod", "shift", "a"}, Action: "attach-file", Type: TypeCombination, Description: "Attach a file", Scope: ScopeCompose},
	{Keys: []string{"mod", "shift", "d"}, Action: "discard-draft", Type: TypeCombination, Description: "Discard the draft", Scope: ScopeCompose},
	{Keys: []string{"escape"}, Action: "close-compose", Type: TypeSingle, Description: "Close the compose window", Scope: ScopeCompose},
}

// scopeGroups lists the per-scope groups in concatenation order. The order
// must match AllScopes.
var scopeGroups = [][]Record{
	navigationShortcuts,
	threadShortcuts,
	globalShortcuts,
	mailListShortcuts,
	composeShortcuts,
}

// All returns the full catalog as one flat ordered sequence. The result is
// a fresh slice; the underlying records are shared and must be treated as
// read-only.
func All() []Record {
	total := 0
	for _, group := range scopeGroups {
		total += len(group)
	}
	out := make([]Record, 0, total)
	for _, group := range scopeGroups {
		out = append(out, group...)
	}
	return out
}

// ByScope returns the shortcuts defined for one scope, in definition order.
func ByScope(scope Scope) []Record {
	var out []Record
	for _, group := range scopeGroups {
		for _, rec := range group {
			if rec.Scope == scope {
				out = append(out, rec)
			}
		}
	}
	return out
}
