package engine

import (
	"sort"

	"spendtrack/internal/core"
)

// Select returns the records in scope, ordered by date descending.
// Scope is either ScopeAll or a YYYY-MM month key; an unknown month key
// simply selects nothing.
//
// Records sharing a date keep their relative snapshot order (stable sort),
// so with a most-recently-added-first snapshot the newest record wins ties
// and repeated calls over the same input are value-identical.
func Select(records []core.Expense, scope string) []core.Expense {
	out := make([]core.Expense, 0, len(records))
	if scope == ScopeAll {
		out = append(out, records...)
	} else {
		for _, e := range records {
			if e.Date.MonthKey() == scope {
				out = append(out, e)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}
