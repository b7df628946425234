// Package platform identifies the operating environment for display
// purposes. The identifier mimics browser-style platform strings so that
// Mac detection stays a substring check, matching how the rest of the mail
// client decides between ⌘-style and Ctrl-style modifier labels.
package platform

import (
	"runtime"
	"strings"
)

// identifiers by GOOS, in the browser navigator.platform style.
var identifiers = map[string]string{
	"darwin":  "MacIntel",
	"linux":   "Linux x86_64",
	"windows": "Win32",
}

// Identifier returns the platform identifier for the current OS.
func Identifier() string {
	if id, ok := identifiers[runtime.GOOS]; ok {
		return id
	}
	return runtime.GOOS
}

// IsMac reports whether an identifier describes a Mac environment.
func IsMac(identifier string) bool {
	return strings.Contains(identifier, "Mac")
}
