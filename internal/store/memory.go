package store

import (
	"context"
	"sync"

	"spendtrack/internal/core"
)

// Memory is the append-only in-memory store. Appends are serialized by a
// mutex and reads always return defensive copies, so a snapshot can never
// observe a torn append.
type Memory struct {
	mu    sync.Mutex
	items []core.Expense
}

func NewMemory() *Memory {
	return &Memory{}
}

// NewSeeded returns a memory store preloaded with the demo records.
func NewSeeded() *Memory {
	s := NewMemory()
	for _, e := range seedExpenses() {
		_, _ = s.Add(context.Background(), e)
	}
	return s
}

// Add validates the record and prepends it, so the natural store order is
// most-recently-added first. Invalid records are rejected with no state
// change.
func (s *Memory) Add(_ context.Context, e core.Expense) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]core.Expense{e}, s.items...)
	return e.ID, nil
}

// All returns a snapshot copy of every record.
func (s *Memory) All(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Len reports the current record count.
func (s *Memory) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// seedExpenses are the initial demo records, oldest last so that seeding
// preserves the most-recently-added-first store order.
func seedExpenses() []core.Expense {
	mk := func(desc string, cat core.Category, cents int64, y, m, d int, note string) core.Expense {
		e, _ := core.NewExpense(desc, string(cat), core.Money{Cents: cents}.String(), core.NewDate(y, m, d).String(), note)
		return e
	}
	return []core.Expense{
		mk("Electricity", core.Utilities, 9120, 2024, 3, 18, "March bill"),
		mk("Streaming service", core.Leisure, 1299, 2024, 3, 29, ""),
		mk("Gym Membership", core.Health, 3999, 2024, 4, 1, ""),
		mk("Groceries", core.Food, 6845, 2024, 4, 6, "Weekly supermarket run"),
		mk("Metro card", core.Transport, 2550, 2024, 4, 8, "Top-up"),
	}
}
