package shortcuts

import "sort"

// MatrixRow is a single key combination and the action it triggers in each
// scope that binds it.
type MatrixRow struct {
	Combo      string           `json:"combo"`
	Scopes     map[string]string `json:"scopes"`
	Consistent bool             `json:"consistent"`
}

// MatrixReport is the combo x scope view of the registry.
type MatrixReport struct {
	Rows   []MatrixRow `json:"rows"`
	Scopes []string    `json:"scopes"`
}

// BuildMatrix creates a matrix showing what each key combination does in
// each scope. A row is consistent when every scope binds it to the same
// action; inconsistent rows are the duplicates the binding layer must keep
// apart at activation time.
func BuildMatrix(records []Record) MatrixReport {
	rowMap := make(map[string]*MatrixRow)
	scopeSet := make(map[string]bool)

	for _, rec := range records {
		if len(rec.Keys) == 0 {
			continue
		}
		combo := Combo(rec)
		scopeSet[rec.Scope.String()] = true
		if rowMap[combo] == nil {
			rowMap[combo] = &MatrixRow{Combo: combo, Scopes: make(map[string]string)}
		}
		rowMap[combo].Scopes[rec.Scope.String()] = rec.Action
	}

	report := MatrixReport{}
	// Keep the registry's scope order rather than sorting alphabetically.
	for _, scope := range AllScopes() {
		if scopeSet[scope.String()] {
			report.Scopes = append(report.Scopes, scope.String())
		}
	}

	for _, row := range rowMap {
		first := ""
		row.Consistent = true
		for _, action := range row.Scopes {
			if first == "" {
				first = action
			} else if action != first {
				row.Consistent = false
				break
			}
		}
		report.Rows = append(report.Rows, *row)
	}

	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].Combo < report.Rows[j].Combo
	})

	return report
}
