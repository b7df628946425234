package shortcuts

import (
	"sort"
	"strings"
)

// Conflict reports one key combination bound to more than one action within
// a single scope. Cross-scope duplicates are NOT conflicts: scopes are
// exclusive activation contexts and the binding layer disambiguates.
type Conflict struct {
	Combo   string   `json:"combo"`
	Scope   Scope    `json:"scope"`
	Records []Record `json:"records"`
}

// Combo renders a record's keys as a single lookup string ("mod+shift+z").
func Combo(rec Record) string {
	return strings.Join(rec.Keys, "+")
}

// DetectConflicts finds combinations bound to multiple actions within the
// same scope. Documentation-only records (Ignore) are never actively bound,
// so they cannot conflict and are skipped.
func DetectConflicts(records []Record) []Conflict {
	scopeMap := make(map[Scope][]Record)
	for _, rec := range records {
		if rec.Ignore || len(rec.Keys) == 0 {
			continue
		}
		scopeMap[rec.Scope] = append(scopeMap[rec.Scope], rec)
	}

	var conflicts []Conflict
	for scope, scoped := range scopeMap {
		usage := make(map[string][]Record)
		for _, rec := range scoped {
			combo := Combo(rec)
			usage[combo] = append(usage[combo], rec)
		}

		for combo, usages := range usage {
			if len(usages) < 2 {
				continue
			}
			// The same action may legitimately appear twice; only distinct
			// actions on one combo are a conflict.
			seen := make(map[string]bool)
			var distinct []Record
			for _, rec := range usages {
				if !seen[rec.Action] {
					seen[rec.Action] = true
					distinct = append(distinct, rec)
				}
			}
			if len(distinct) > 1 {
				conflicts = append(conflicts, Conflict{Combo: combo, Scope: scope, Records: distinct})
			}
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Scope != conflicts[j].Scope {
			return conflicts[i].Scope < conflicts[j].Scope
		}
		return conflicts[i].Combo < conflicts[j].Combo
	})

	return conflicts
}

// GroupConflictsByScope returns conflicts organized by scope.
func GroupConflictsByScope(conflicts []Conflict) map[Scope][]Conflict {
	result := make(map[Scope][]Conflict)
	for _, c := range conflicts {
		result[c.Scope] = append(result[c.Scope], c)
	}
	return result
}

// CountConflicts returns the number of conflicts for a given scope.
func CountConflicts(conflicts []Conflict, scope Scope) int {
	count := 0
	for _, c := range conflicts {
		if c.Scope == scope {
			count++
		}
	}
	return count
}
