package layout

// Built-in layout tables. Each table is an overlay: it lists only the key
// positions whose produced character differs from the QWERTY reference, and
// is merged over the QWERTY base when the registry is built. Removed or
// reworked layouts should be deleted here outright; history lives in git.

// azertyOverlay covers the French AZERTY letter swaps, the punctuation row
// and the symbol number row (digits require Shift on AZERTY).
var azertyOverlay = map[KeyCode]string{
	"KeyQ":      "a",
	"KeyA":      "q",
	"KeyW":      "z",
	"KeyZ":      "w",
	"KeyM":      ",",
	"Semicolon": "m",
	"Comma":     ";",
	"Period":    ":",
	"Slash":     "!",
	"Digit1":    "&",
	"Digit2":    "é",
	"Digit3":    "\"",
	"Digit4":    "'",
	"Digit5":    "(",
	"Digit6":    "-",
	"Digit7":    "è",
	"Digit8":    "_",
	"Digit9":    "ç",
	"Digit0":    "à",
	"Minus":     ")",
	"Equal":     "=",
}

// qwertzOverlay covers the German QWERTZ y/z swap and umlaut positions.
var qwertzOverlay = map[KeyCode]string{
	"KeyY":         "z",
	"KeyZ":         "y",
	"Semicolon":    "ö",
	"Quote":        "ä",
	"BracketLeft":  "ü",
	"BracketRight": "+",
	"Minus":        "ß",
	"Equal":        "´",
	"Slash":        "-",
	"Backquote":    "^",
}

// dvorakOverlay remaps nearly the whole alphanumeric block.
var dvorakOverlay = map[KeyCode]string{
	"KeyQ":         "'",
	"KeyW":         ",",
	"KeyE":         ".",
	"KeyR":         "p",
	"KeyT":         "y",
	"KeyY":         "f",
	"KeyU":         "g",
	"KeyI":         "c",
	"KeyO":         "r",
	"KeyP":         "l",
	"BracketLeft":  "/",
	"BracketRight": "=",
	"KeyS":         "o",
	"KeyD":         "e",
	"KeyF":         "u",
	"KeyG":         "i",
	"KeyH":         "d",
	"KeyJ":         "h",
	"KeyK":         "t",
	"KeyL":         "n",
	"Semicolon":    "s",
	"Quote":        "-",
	"KeyZ":         ";",
	"KeyX":         "q",
	"KeyC":         "j",
	"KeyV":         "k",
	"KeyB":         "x",
	"KeyN":         "b",
	"Comma":        "w",
	"Period":       "v",
	"Slash":        "z",
	"Minus":        "[",
	"Equal":        "]",
}

// colemakOverlay moves 17 letter keys; the bottom row is mostly untouched.
var colemakOverlay = map[KeyCode]string{
	"KeyE":      "f",
	"KeyR":      "p",
	"KeyT":      "g",
	"KeyY":      "j",
	"KeyU":      "l",
	"KeyI":      "u",
	"KeyO":      "y",
	"KeyP":      ";",
	"KeyS":      "r",
	"KeyD":      "s",
	"KeyF":      "t",
	"KeyG":      "d",
	"KeyJ":      "n",
	"KeyK":      "e",
	"KeyL":      "i",
	"Semicolon": "o",
	"KeyN":      "k",
}

// builtinOverlays indexes the shipped non-default layouts.
var builtinOverlays = map[string]map[KeyCode]string{
	"azerty":  azertyOverlay,
	"qwertz":  qwertzOverlay,
	"dvorak":  dvorakOverlay,
	"colemak": colemakOverlay,
}

// qwertyBase returns the full QWERTY reference table: every letter, digit and
// punctuation position mapped to the character it produces.
func qwertyBase() map[KeyCode]string {
	table := make(map[KeyCode]string, 48)
	for c := 'a'; c <= 'z'; c++ {
		table[KeyCode("Key"+string(c-'a'+'A'))] = string(c)
	}
	for c := '0'; c <= '9'; c++ {
		table[KeyCode("Digit"+string(c))] = string(c)
	}
	for code, ch := range map[KeyCode]string{
		"Minus":        "-",
		"Equal":        "=",
		"Comma":        ",",
		"Period":       ".",
		"Slash":        "/",
		"Backslash":    "\\",
		"Semicolon":    ";",
		"Quote":        "'",
		"Backquote":    "`",
		"BracketLeft":  "[",
		"BracketRight": "]",
	} {
		table[code] = ch
	}
	return table
}
