package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Housing   Category = "Housing"
	Food      Category = "Food"
	Transport Category = "Transport"
	Health    Category = "Health"
	Utilities Category = "Utilities"
	Leisure   Category = "Leisure"
	Other     Category = "Other"
)

type (
	Category string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Expense is one logged spending event. Records are immutable once
	// created; the only supported mutation of a store is appending.
	Expense struct {
		ID          string
		Description string
		Category    Category
		Amount      Money
		Date        Date
		Note        string // free text, never validated
	}
)

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidDate      = errors.New("invalid date")
)

// Categories returns the closed category set in its fixed declaration
// order. The order doubles as the deterministic tie-break used by the
// aggregation engine, so it must stay stable.
func Categories() []Category {
	return []Category{Housing, Food, Transport, Health, Utilities, Leisure, Other}
}

func (c Category) Valid() bool {
	switch c {
	case Housing, Food, Transport, Health, Utilities, Leisure, Other:
		return true
	default:
		return false
	}
}

// ParseCategory matches a raw string against the closed set after trimming.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// NewDate creates a Date from year, month, day. The time component is
// always UTC midnight; two Dates on the same calendar day compare equal.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t.UTC()}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// MonthKey returns the YYYY-MM grouping key for the date. Any two dates in
// the same calendar month map to the same key regardless of day.
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if !e.Category.Valid() {
		return ErrInvalidCategory
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	return nil
}

// NewExpense builds a validated expense from the raw fields a form layer
// hands over. The amount string is rounded half-up to cents. A non-nil
// error means the candidate is rejected and no record exists.
func NewExpense(description, category, amount, date, note string) (Expense, error) {
	cents, err := ParseDecimalToCents(amount)
	if err != nil {
		return Expense{}, err
	}
	cat, err := ParseCategory(category)
	if err != nil {
		return Expense{}, err
	}
	day, err := ParseDate(date)
	if err != nil {
		return Expense{}, err
	}
	e := Expense{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(description),
		Category:    cat,
		Amount:      Money{Cents: cents},
		Date:        day,
		Note:        strings.TrimSpace(note),
	}
	if err := e.Validate(); err != nil {
		return Expense{}, err
	}
	return e, nil
}
