// Package report renders monthly statements from the aggregation engine,
// as terminal tables and as xlsx workbooks.
package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"spendtrack/internal/core"
	"spendtrack/internal/engine"
)

// Statement bundles the derived views for one scope, computed once so the
// table and workbook renderings always agree.
type Statement struct {
	Scope    string
	Months   []string
	Expenses []core.Expense
	Summary  engine.Summary
	Trend    []engine.TrendPoint
}

// Build computes a statement for the given scope over a record snapshot.
// The trend always covers the full snapshot, not just the scope.
func Build(records []core.Expense, scope string, trendMonths int) Statement {
	selected := engine.Select(records, scope)
	return Statement{
		Scope:    scope,
		Months:   engine.MonthsPresent(records),
		Expenses: selected,
		Summary:  engine.Summarize(selected),
		Trend:    engine.MonthlyTrend(records, trendMonths),
	}
}

// PrintStatement writes the statement as formatted tables.
func PrintStatement(w io.Writer, st Statement) {
	fmt.Fprintf(w, "Scope: %s — %d expenses, total %s\n", st.Scope, st.Summary.Count, st.Summary.Total)
	if st.Summary.TopCategory != "" {
		fmt.Fprintf(w, "Top category: %s (%s), average per active day %s over %d days\n",
			st.Summary.TopCategory, st.Summary.TopAmount, st.Summary.Average, st.Summary.ActiveDays)
	}
	fmt.Fprintln(w)

	if len(st.Expenses) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Date", "Description", "Category", "Amount", "Note"})
		for _, e := range st.Expenses {
			t.AppendRow(table.Row{e.Date.String(), e.Description, string(e.Category), e.Amount.String(), e.Note})
		}
		t.AppendFooter(table.Row{"", "", "Total", st.Summary.Total.String(), ""})
		t.Render()
		fmt.Fprintln(w)
	}

	if len(st.Summary.ByCategory) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Category", "Amount"})
		// Fixed category order keeps output deterministic
		for _, cat := range core.Categories() {
			if sum, ok := st.Summary.ByCategory[cat]; ok {
				t.AppendRow(table.Row{string(cat), sum.String()})
			}
		}
		t.Render()
		fmt.Fprintln(w)
	}

	if len(st.Trend) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Month", "Total", "Relative"})
		for _, p := range st.Trend {
			t.AppendRow(table.Row{p.Month, p.Total.String(), fmt.Sprintf("%d%%", p.Percent)})
		}
		t.Render()
	}
}
