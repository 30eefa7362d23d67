// Package export renders the ledger as a spreadsheet workbook.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"fincopilot/internal/core"
	"fincopilot/internal/dashboard"
)

var transactionHeaders = []string{
	"Date", "Type", "Vendor", "Category", "Amount", "Notes", "Source", "Created At",
}

// WriteXLSX writes a workbook with a Transactions sheet listing txs and a
// Summary sheet with the dashboard totals and category breakdown.
func WriteXLSX(w io.Writer, txs []core.Transaction, summary dashboard.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Transactions"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range transactionHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue("Transactions", cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, t := range txs {
		row := i + 2
		values := []any{
			t.Date,
			string(t.Type),
			t.Vendor,
			string(t.Category),
			t.Amount.Float(),
			t.Notes,
			string(t.Source),
			t.CreatedAt.UTC().Format(time.RFC3339),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue("Transactions", cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	if err := writeSummarySheet(f, summary); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, summary dashboard.Summary) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	totals := [][]any{
		{"Total Income", summary.TotalIncome.Float()},
		{"Total Expenses", summary.TotalExpenses.Float()},
		{"Profit", summary.Profit.Float()},
	}
	for i, row := range totals {
		labelCell := fmt.Sprintf("A%d", i+1)
		valueCell := fmt.Sprintf("B%d", i+1)
		if err := f.SetCellValue(sheet, labelCell, row[0]); err != nil {
			return fmt.Errorf("write summary label: %w", err)
		}
		if err := f.SetCellValue(sheet, valueCell, row[1]); err != nil {
			return fmt.Errorf("write summary value: %w", err)
		}
	}

	if err := f.SetCellValue(sheet, "A5", "Expenses by Category"); err != nil {
		return fmt.Errorf("write breakdown header: %w", err)
	}
	for i, ca := range summary.ExpensesByCategory {
		row := i + 6
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), string(ca.Category)); err != nil {
			return fmt.Errorf("write category: %w", err)
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), ca.Amount.Float()); err != nil {
			return fmt.Errorf("write category amount: %w", err)
		}
	}
	return nil
}
