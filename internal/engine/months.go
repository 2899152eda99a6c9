// Package engine derives summary views from expense record snapshots.
//
// Every function in this package is pure: input slices are never mutated,
// results are fresh values, and repeated calls over the same snapshot yield
// identical output. Callers are expected to pass immutable snapshots taken
// from a store at a single point in time.
package engine

import (
	"sort"

	"spendtrack/internal/core"
)

// ScopeAll selects every record regardless of month.
const ScopeAll = "all"

// MonthKey maps a date to its YYYY-MM grouping key.
func MonthKey(d core.Date) string {
	return d.MonthKey()
}

// MonthsPresent returns the distinct month keys found in records,
// deduplicated and sorted descending (most recent month first).
func MonthsPresent(records []core.Expense) []string {
	seen := make(map[string]struct{}, len(records))
	months := make([]string, 0, len(records))
	for _, e := range records {
		key := e.Date.MonthKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}
