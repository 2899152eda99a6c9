package core

import (
	"errors"
	"testing"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in  string
		ok  bool
		key string
	}{
		{"2024-04-06", true, "2024-04"},
		{" 2024-12-31 ", true, "2024-12"},
		{"2024-13-01", false, ""},
		{"04/06/2024", false, ""},
		{"", false, ""},
	}
	for i, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
		if tc.ok && d.MonthKey() != tc.key {
			t.Fatalf("case %d month key = %q, want %q", i, d.MonthKey(), tc.key)
		}
	}
}

func TestMonthKeyStable(t *testing.T) {
	a := NewDate(2024, 4, 1)
	b := NewDate(2024, 4, 30)
	if a.MonthKey() != b.MonthKey() {
		t.Fatalf("same month produced different keys: %q vs %q", a.MonthKey(), b.MonthKey())
	}
	c := NewDate(2024, 5, 1)
	if a.MonthKey() == c.MonthKey() {
		t.Fatalf("different months produced the same key %q", a.MonthKey())
	}
}

func TestParseCategory(t *testing.T) {
	if _, err := ParseCategory("Food"); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if _, err := ParseCategory(" Leisure "); err != nil {
		t.Fatalf("expected trimmed match, got %v", err)
	}
	if _, err := ParseCategory("Groceries"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if _, err := ParseCategory(""); err == nil {
		t.Fatalf("expected error for empty category")
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		ID:          "x",
		Description: "ok",
		Category:    Food,
		Amount:      Money{Cents: 100},
		Date:        NewDate(2024, 4, 6),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Expense{
		{Description: "", Category: Food, Amount: Money{Cents: 1}, Date: NewDate(2024, 4, 6)},
		{Description: "   ", Category: Food, Amount: Money{Cents: 1}, Date: NewDate(2024, 4, 6)},
		{Description: "a", Category: "Snacks", Amount: Money{Cents: 1}, Date: NewDate(2024, 4, 6)},
		{Description: "a", Category: Food, Amount: Money{Cents: 0}, Date: NewDate(2024, 4, 6)},
		{Description: "a", Category: Food, Amount: Money{Cents: -5}, Date: NewDate(2024, 4, 6)},
		{Description: "a", Category: Food, Amount: Money{Cents: 1}, Date: Date{}},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestNewExpense(t *testing.T) {
	e, err := NewExpense("  Groceries  ", "Food", "68.45", "2024-04-06", " Weekly run ")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected assigned ID")
	}
	if e.Description != "Groceries" {
		t.Fatalf("description = %q, want trimmed", e.Description)
	}
	if e.Amount.Cents != 6845 {
		t.Fatalf("amount = %d cents, want 6845", e.Amount.Cents)
	}
	if e.Note != "Weekly run" {
		t.Fatalf("note = %q, want trimmed", e.Note)
	}

	// IDs are never reused
	e2, err := NewExpense("Groceries", "Food", "68.45", "2024-04-06", "")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if e.ID == e2.ID {
		t.Fatalf("two expenses share ID %q", e.ID)
	}

	rejects := []struct {
		desc, cat, amount, date string
	}{
		{"", "Food", "10", "2024-04-06"},
		{"   ", "Food", "10", "2024-04-06"},
		{"a", "Food", "0", "2024-04-06"},
		{"a", "Food", "-3", "2024-04-06"},
		{"a", "Food", "abc", "2024-04-06"},
		{"a", "Snacks", "10", "2024-04-06"},
		{"a", "Food", "10", "not-a-date"},
	}
	for i, tc := range rejects {
		if _, err := NewExpense(tc.desc, tc.cat, tc.amount, tc.date, ""); err == nil {
			t.Fatalf("case %d expected rejection", i)
		}
	}
}

func TestCategoriesOrderFixed(t *testing.T) {
	want := []Category{Housing, Food, Transport, Health, Utilities, Leisure, Other}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
