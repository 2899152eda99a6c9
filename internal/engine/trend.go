package engine

import (
	"sort"

	"spendtrack/internal/core"
)

// DefaultTrendMonths is how many recent months the trend keeps when the
// caller does not ask for a specific window.
const DefaultTrendMonths = 4

// TrendPoint is one month of the comparative spend series. Percent scales
// the month's total against the largest total in the returned window
// (rounded; the largest entry is exactly 100, or 0 when every total is 0).
type TrendPoint struct {
	Month   string
	Total   core.Money
	Percent int
}

// MonthlyTrend groups every record by month key, sums per month, and
// returns at most limit of the most recent months, newest first. It always
// works over the full record set, independent of any active filter.
// A limit <= 0 falls back to DefaultTrendMonths.
func MonthlyTrend(records []core.Expense, limit int) []TrendPoint {
	if limit <= 0 {
		limit = DefaultTrendMonths
	}

	totals := make(map[string]core.Money, limit)
	for _, e := range records {
		key := e.Date.MonthKey()
		totals[key] = totals[key].Add(e.Amount)
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > limit {
		keys = keys[:limit]
	}

	points := make([]TrendPoint, 0, len(keys))
	var max int64
	for _, key := range keys {
		if totals[key].Cents > max {
			max = totals[key].Cents
		}
		points = append(points, TrendPoint{Month: key, Total: totals[key]})
	}
	for i := range points {
		points[i].Percent = scalePercent(points[i].Total.Cents, max)
	}
	return points
}

// scalePercent returns the rounded percentage of part against max,
// guarding the max == 0 case.
func scalePercent(part, max int64) int {
	if max <= 0 || part <= 0 {
		return 0
	}
	return int((part*100 + max/2) / max)
}
