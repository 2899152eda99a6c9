package engine

import (
	"spendtrack/internal/core"
)

// Summary is the aggregate view over one selection of records.
//
// ByCategory only carries categories with at least one record; TopCategory
// is empty when the selection is empty. Average is the total divided by the
// number of distinct dates carrying at least one record ("active days"),
// not by calendar days elapsed, and is zero for an empty selection.
type Summary struct {
	Total       core.Money
	Count       int
	ByCategory  map[core.Category]core.Money
	TopCategory core.Category
	TopAmount   core.Money
	ActiveDays  int
	Average     core.Money
}

// Summarize computes the aggregate view in a single pass over records.
// Ties for the top category are broken by the fixed core.Categories()
// order, never by map iteration order.
func Summarize(records []core.Expense) Summary {
	s := Summary{
		Count:      len(records),
		ByCategory: make(map[core.Category]core.Money, len(core.Categories())),
	}
	days := make(map[core.Date]struct{}, len(records))
	for _, e := range records {
		s.Total = s.Total.Add(e.Amount)
		s.ByCategory[e.Category] = s.ByCategory[e.Category].Add(e.Amount)
		days[e.Date] = struct{}{}
	}
	s.ActiveDays = len(days)
	s.Average = s.Total.DivideBy(s.ActiveDays)

	for _, cat := range core.Categories() {
		sum, ok := s.ByCategory[cat]
		if !ok {
			continue
		}
		if s.TopCategory == "" || sum.Cents > s.TopAmount.Cents {
			s.TopCategory = cat
			s.TopAmount = sum
		}
	}
	return s
}
