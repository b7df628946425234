package shortcuts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailcove/mailcove/pkg/shortcuts"
)

func TestAllIsTheConcatenationOfScopeGroups(t *testing.T) {
	all := shortcuts.All()

	total := 0
	for _, scope := range shortcuts.AllScopes() {
		total += len(shortcuts.ByScope(scope))
	}
	assert.Equal(t, total, len(all), "flattened length must equal the sum of the scope groups")

	// Scope grouping order is preserved in the flattened sequence: once a
	// scope ends, it never reappears.
	seen := make(map[shortcuts.Scope]bool)
	var current shortcuts.Scope
	for _, rec := range all {
		if rec.Scope == current {
			continue
		}
		require.False(t, seen[rec.Scope], "scope %s appears in two separate runs", rec.Scope)
		seen[rec.Scope] = true
		current = rec.Scope
	}
}

func TestAllScopeOrder(t *testing.T) {
	all := shortcuts.All()
	require.NotEmpty(t, all)

	order := shortcuts.AllScopes()
	idx := 0
	for _, rec := range all {
		for order[idx] != rec.Scope {
			idx++
			require.Less(t, idx, len(order), "scope %s out of declared order", rec.Scope)
		}
	}
}

func TestAllReturnsACopy(t *testing.T) {
	first := shortcuts.All()
	first[0].Action = "mutated"
	second := shortcuts.All()
	assert.NotEqual(t, "mutated", second[0].Action)
}

func TestRegistryRecordsAreWellFormed(t *testing.T) {
	for _, rec := range shortcuts.All() {
		assert.NotEmpty(t, rec.Keys, "shortcut %q has no keys", rec.Action)
		assert.NotEmpty(t, rec.Action)
		assert.NotEmpty(t, rec.Description)
		assert.Contains(t, shortcuts.AllScopes(), rec.Scope)
	}
}

func TestCrossScopeDuplicatesArePermitted(t *testing.T) {
	// escape is deliberately bound in several scopes; the registry must not
	// deduplicate it.
	scopesWithEscape := make(map[shortcuts.Scope]bool)
	for _, rec := range shortcuts.All() {
		if shortcuts.Combo(rec) == "escape" {
			scopesWithEscape[rec.Scope] = true
		}
	}
	assert.Greater(t, len(scopesWithEscape), 1)
}
