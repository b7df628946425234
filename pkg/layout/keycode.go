package layout

import "strings"

// KeyCode identifies a physical key position independent of layout, using
// the W3C UI Events code values ("KeyA", "Digit1", "Escape", ...). The code
// names the key's position on a US reference keyboard; which character it
// produces depends on the active layout. On French AZERTY the physical "a"
// position (KeyQ) produces "q", but the code stays KeyQ.
type KeyCode string

// codeByName maps lowercase human key names to physical key codes.
// Letters and digits are generated in init; this table carries the rest.
var codeByName = map[string]KeyCode{
	"escape":     "Escape",
	"esc":        "Escape",
	"enter":      "Enter",
	"return":     "Enter",
	"tab":        "Tab",
	"space":      "Space",
	"backspace":  "Backspace",
	"delete":     "Delete",
	"insert":     "Insert",
	"home":       "Home",
	"end":        "End",
	"pageup":     "PageUp",
	"pagedown":   "PageDown",
	"arrowup":    "ArrowUp",
	"arrowdown":  "ArrowDown",
	"arrowleft":  "ArrowLeft",
	"arrowright": "ArrowRight",
	"up":         "ArrowUp",
	"down":       "ArrowDown",
	"left":       "ArrowLeft",
	"right":      "ArrowRight",
	"shift":      "ShiftLeft",
	"ctrl":       "ControlLeft",
	"control":    "ControlLeft",
	"alt":        "AltLeft",
	"meta":       "MetaLeft",
	"mod":        "MetaLeft",
	"capslock":   "CapsLock",
	"minus":      "Minus",
	"-":          "Minus",
	"equal":      "Equal",
	"=":          "Equal",
	"comma":      "Comma",
	",":          "Comma",
	"period":     "Period",
	".":          "Period",
	"slash":      "Slash",
	"/":          "Slash",
	"backslash":  "Backslash",
	"\\":         "Backslash",
	"semicolon":  "Semicolon",
	";":          "Semicolon",
	"quote":      "Quote",
	"'":          "Quote",
	"backquote":  "Backquote",
	"`":          "Backquote",
	"[":          "BracketLeft",
	"]":          "BracketRight",
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		codeByName[string(c)] = KeyCode("Key" + strings.ToUpper(string(c)))
	}
	for c := '0'; c <= '9'; c++ {
		codeByName[string(c)] = KeyCode("Digit" + string(c))
	}
	for i := 1; i <= 12; i++ {
		name := "f" + itoa(i)
		codeByName[name] = KeyCode(strings.ToUpper(name[:1]) + name[1:])
	}
}

// itoa avoids strconv for the tiny F-key range.
func itoa(n int) string {
	if n < 10 {
		return string(rune('0' + n))
	}
	return "1" + string(rune('0'+n-10))
}

// KeyCodeFromName maps a human key name to its physical key code. It is
// total: names with no known code come back as a pass-through code so the
// mapping pipeline never drops an entry.
func KeyCodeFromName(name string) KeyCode {
	if code, ok := codeByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}
	return KeyCode(name)
}
