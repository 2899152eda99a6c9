package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"spendtrack/internal/core"
)

// WriteWorkbook exports the statement as an xlsx workbook with Expenses,
// Summary and Trend sheets. Amounts are written as plain unit values;
// currency formatting is left to the spreadsheet consumer.
func WriteWorkbook(st Statement, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const expensesSheet = "Expenses"
	if err := f.SetSheetName(f.GetSheetName(0), expensesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	f.SetCellValue(expensesSheet, "A1", "Date")
	f.SetCellValue(expensesSheet, "B1", "Description")
	f.SetCellValue(expensesSheet, "C1", "Category")
	f.SetCellValue(expensesSheet, "D1", "Amount")
	f.SetCellValue(expensesSheet, "E1", "Note")
	for i, e := range st.Expenses {
		row := i + 2
		f.SetCellValue(expensesSheet, fmt.Sprintf("A%d", row), e.Date.String())
		f.SetCellValue(expensesSheet, fmt.Sprintf("B%d", row), e.Description)
		f.SetCellValue(expensesSheet, fmt.Sprintf("C%d", row), string(e.Category))
		f.SetCellValue(expensesSheet, fmt.Sprintf("D%d", row), e.Amount.Units())
		f.SetCellValue(expensesSheet, fmt.Sprintf("E%d", row), e.Note)
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	f.SetCellValue(summarySheet, "A1", "Scope")
	f.SetCellValue(summarySheet, "B1", st.Scope)
	f.SetCellValue(summarySheet, "A2", "Total")
	f.SetCellValue(summarySheet, "B2", st.Summary.Total.Units())
	f.SetCellValue(summarySheet, "A3", "Count")
	f.SetCellValue(summarySheet, "B3", st.Summary.Count)
	f.SetCellValue(summarySheet, "A4", "Active days")
	f.SetCellValue(summarySheet, "B4", st.Summary.ActiveDays)
	f.SetCellValue(summarySheet, "A5", "Average per active day")
	f.SetCellValue(summarySheet, "B5", st.Summary.Average.Units())
	f.SetCellValue(summarySheet, "A6", "Top category")
	f.SetCellValue(summarySheet, "B6", string(st.Summary.TopCategory))

	f.SetCellValue(summarySheet, "A8", "Category")
	f.SetCellValue(summarySheet, "B8", "Amount")
	row := 9
	for _, cat := range core.Categories() {
		sum, ok := st.Summary.ByCategory[cat]
		if !ok {
			continue
		}
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), string(cat))
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), sum.Units())
		row++
	}

	const trendSheet = "Trend"
	if _, err := f.NewSheet(trendSheet); err != nil {
		return fmt.Errorf("create trend sheet: %w", err)
	}
	f.SetCellValue(trendSheet, "A1", "Month")
	f.SetCellValue(trendSheet, "B1", "Total")
	f.SetCellValue(trendSheet, "C1", "Relative %")
	for i, p := range st.Trend {
		r := i + 2
		f.SetCellValue(trendSheet, fmt.Sprintf("A%d", r), p.Month)
		f.SetCellValue(trendSheet, fmt.Sprintf("B%d", r), p.Total.Units())
		f.SetCellValue(trendSheet, fmt.Sprintf("C%d", r), p.Percent)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
