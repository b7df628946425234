package platform

import (
	"runtime"
	"testing"
)

func TestIsMac(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"MacIntel", true},
		{"MacPPC", true},
		{"Linux x86_64", false},
		{"Win32", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsMac(tt.id); got != tt.want {
			t.Errorf("IsMac(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestIdentifier(t *testing.T) {
	id := Identifier()
	if id == "" {
		t.Fatal("Identifier() returned empty string")
	}
	if runtime.GOOS == "darwin" && !IsMac(id) {
		t.Errorf("Identifier() = %q, expected a Mac identifier on darwin", id)
	}
}
