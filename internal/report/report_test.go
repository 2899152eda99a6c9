package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"spendtrack/internal/core"
	"spendtrack/internal/engine"
)

func sampleRecords(t *testing.T) []core.Expense {
	t.Helper()
	mk := func(desc, cat, amount, date string) core.Expense {
		e, err := core.NewExpense(desc, cat, amount, date, "")
		if err != nil {
			t.Fatalf("NewExpense(%q): %v", desc, err)
		}
		return e
	}
	return []core.Expense{
		mk("Metro card", "Transport", "25.50", "2024-04-08"),
		mk("Groceries", "Food", "68.45", "2024-04-06"),
		mk("Gym Membership", "Health", "39.99", "2024-04-01"),
		mk("Streaming service", "Leisure", "12.99", "2024-03-29"),
		mk("Electricity", "Utilities", "91.20", "2024-03-18"),
	}
}

func TestBuild(t *testing.T) {
	st := Build(sampleRecords(t), "2024-04", 4)

	if st.Scope != "2024-04" {
		t.Errorf("scope = %q", st.Scope)
	}
	if len(st.Expenses) != 3 {
		t.Errorf("expenses = %d, want 3", len(st.Expenses))
	}
	if st.Summary.Total.Cents != 13394 {
		t.Errorf("total = %d, want 13394", st.Summary.Total.Cents)
	}
	if st.Summary.TopCategory != core.Food {
		t.Errorf("top category = %q, want Food", st.Summary.TopCategory)
	}
	// Months and trend always cover the full snapshot
	if len(st.Months) != 2 {
		t.Errorf("months = %v, want both", st.Months)
	}
	if len(st.Trend) != 2 {
		t.Errorf("trend = %v, want both months", st.Trend)
	}
}

func TestBuildAllScope(t *testing.T) {
	st := Build(sampleRecords(t), engine.ScopeAll, 4)
	if len(st.Expenses) != 5 {
		t.Fatalf("expenses = %d, want 5", len(st.Expenses))
	}
	if st.Summary.Total.Cents != 23813 {
		t.Fatalf("total = %d, want 23813", st.Summary.Total.Cents)
	}
}

func TestPrintStatement(t *testing.T) {
	var buf bytes.Buffer
	PrintStatement(&buf, Build(sampleRecords(t), "2024-04", 4))

	out := buf.String()
	for _, want := range []string{
		"Scope: 2024-04",
		"total 133.94",
		"Top category: Food",
		"Groceries",
		"2024-04-08",
		"100%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
	// Scoped out records never show up
	if strings.Contains(out, "Electricity") {
		t.Errorf("march record leaked into april statement:\n%s", out)
	}
}

func TestPrintStatementEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintStatement(&buf, Build(nil, engine.ScopeAll, 4))

	out := buf.String()
	if !strings.Contains(out, "0 expenses") {
		t.Errorf("empty statement output: %q", out)
	}
	if strings.Contains(out, "Top category") {
		t.Errorf("empty statement claims a top category: %q", out)
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.xlsx")
	st := Build(sampleRecords(t), "2024-04", 4)

	if err := WriteWorkbook(st, path); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Expenses", "Summary", "Trend"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			t.Errorf("sheet %q missing (idx %d, err %v)", sheet, idx, err)
		}
	}

	desc, err := f.GetCellValue("Expenses", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if desc != "Metro card" {
		t.Errorf("Expenses!B2 = %q, want Metro card", desc)
	}

	total, err := f.GetCellValue("Summary", "B2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if total != "133.94" {
		t.Errorf("Summary!B2 = %q, want 133.94", total)
	}

	month, err := f.GetCellValue("Trend", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if month != "2024-04" {
		t.Errorf("Trend!A2 = %q, want 2024-04", month)
	}
}
