package shortcuts_test

import (
	"testing"

	"github.com/mailcove/mailcove/pkg/shortcuts"
)

func scopedRec(scope shortcuts.Scope, action string, keys ...string) shortcuts.Record {
	return shortcuts.Record{Keys: keys, Action: action, Scope: scope}
}

func TestDetectConflicts(t *testing.T) {
	tests := []struct {
		name    string
		records []shortcuts.Record
		want    int
	}{
		{
			name: "no conflicts",
			records: []shortcuts.Record{
				scopedRec(shortcuts.ScopeGlobal, "undo", "mod", "z"),
				scopedRec(shortcuts.ScopeGlobal, "redo", "mod", "shift", "z"),
			},
			want: 0,
		},
		{
			name: "same combo two actions one scope",
			records: []shortcuts.Record{
				scopedRec(shortcuts.ScopeGlobal, "undo", "mod", "z"),
				scopedRec(shortcuts.ScopeGlobal, "redo", "mod", "z"),
			},
			want: 1,
		},
		{
			name: "same combo across scopes is not a conflict",
			records: []shortcuts.Record{
				scopedRec(shortcuts.ScopeGlobal, "close-modal", "escape"),
				scopedRec(shortcuts.ScopeCompose, "close-compose", "escape"),
			},
			want: 0,
		},
		{
			name: "same action twice is not a conflict",
			records: []shortcuts.Record{
				scopedRec(shortcuts.ScopeGlobal, "undo", "mod", "z"),
				scopedRec(shortcuts.ScopeGlobal, "undo", "mod", "z"),
			},
			want: 0,
		},
		{
			name: "ignored records never conflict",
			records: []shortcuts.Record{
				scopedRec(shortcuts.ScopeGlobal, "undo", "mod", "z"),
				{Keys: []string{"mod", "z"}, Action: "documented-only", Scope: shortcuts.ScopeGlobal, Ignore: true},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shortcuts.DetectConflicts(tt.records)
			if len(got) != tt.want {
				t.Errorf("DetectConflicts() = %d conflicts, want %d", len(got), tt.want)
			}
		})
	}
}

func TestShippedRegistryHasNoConflicts(t *testing.T) {
	conflicts := shortcuts.DetectConflicts(shortcuts.All())
	for _, c := range conflicts {
		t.Errorf("scope %s: %s bound to multiple actions", c.Scope, c.Combo)
	}
}

func TestCountConflicts(t *testing.T) {
	records := []shortcuts.Record{
		scopedRec(shortcuts.ScopeGlobal, "a", "x"),
		scopedRec(shortcuts.ScopeGlobal, "b", "x"),
		scopedRec(shortcuts.ScopeCompose, "c", "y"),
		scopedRec(shortcuts.ScopeCompose, "d", "y"),
	}
	conflicts := shortcuts.DetectConflicts(records)
	if got := shortcuts.CountConflicts(conflicts, shortcuts.ScopeGlobal); got != 1 {
		t.Errorf("CountConflicts(global) = %d, want 1", got)
	}
	if got := shortcuts.CountConflicts(conflicts, shortcuts.ScopeMailList); got != 0 {
		t.Errorf("CountConflicts(mail-list) = %d, want 0", got)
	}
}

func TestBuildMatrix(t *testing.T) {
	records := []shortcuts.Record{
		scopedRec(shortcuts.ScopeGlobal, "close-modal", "escape"),
		scopedRec(shortcuts.ScopeCompose, "close-compose", "escape"),
		scopedRec(shortcuts.ScopeGlobal, "undo", "mod", "z"),
	}

	matrix := shortcuts.BuildMatrix(records)

	if len(matrix.Rows) != 2 {
		t.Fatalf("BuildMatrix() = %d rows, want 2", len(matrix.Rows))
	}

	// Rows are sorted by combo: "escape" < "mod+z".
	escRow := matrix.Rows[0]
	if escRow.Combo != "escape" {
		t.Fatalf("first row combo = %q, want escape", escRow.Combo)
	}
	if escRow.Consistent {
		t.Error("escape row should be scope-dependent (different actions)")
	}
	if len(escRow.Scopes) != 2 {
		t.Errorf("escape row spans %d scopes, want 2", len(escRow.Scopes))
	}

	undoRow := matrix.Rows[1]
	if !undoRow.Consistent {
		t.Error("mod+z row should be consistent")
	}
}

func TestBuildMatrixScopeOrder(t *testing.T) {
	matrix := shortcuts.BuildMatrix(shortcuts.All())

	// Scopes must follow registry order, not alphabetical order.
	want := []string{"navigation", "thread-display", "global", "mail-list", "compose"}
	if len(matrix.Scopes) != len(want) {
		t.Fatalf("matrix scopes = %v, want %v", matrix.Scopes, want)
	}
	for i, scope := range want {
		if matrix.Scopes[i] != scope {
			t.Errorf("matrix.Scopes[%d] = %q, want %q", i, matrix.Scopes[i], scope)
		}
	}
}
