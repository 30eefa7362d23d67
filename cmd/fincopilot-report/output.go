package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"fincopilot/internal/core"
	"fincopilot/internal/dashboard"
)

// printReportJSON writes the dashboard summary as indented JSON.
func printReportJSON(w io.Writer, summary dashboard.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

// printReportTable renders the ledger and totals as a formatted table.
func printReportTable(w io.Writer, txs []core.Transaction, summary dashboard.Summary, cfg *ReportConfig) {
	fmt.Fprintf(w, "%d transactions\n\n", len(txs))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Date", "Type", "Vendor", "Category", "Amount", "Notes"})

	for _, tx := range txs {
		amount := cfg.FormatAmount(tx.Amount)
		if tx.Type == core.Income {
			amount = text.FgGreen.Sprint(amount)
		}
		t.AppendRow(table.Row{
			tx.Date,
			string(tx.Type),
			tx.Vendor,
			string(tx.Category),
			amount,
			tx.Notes,
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{
		"", "", "",
		text.Bold.Sprint("Income"), text.Bold.Sprint(cfg.FormatAmount(summary.TotalIncome)), "",
	})
	t.AppendFooter(table.Row{
		"", "", "",
		text.Bold.Sprint("Expenses"), text.Bold.Sprint(cfg.FormatAmount(summary.TotalExpenses)), "",
	})
	t.AppendFooter(table.Row{
		"", "", "",
		text.Bold.Sprint("Profit"), text.Bold.Sprint(cfg.FormatAmount(summary.Profit)), "",
	})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
	})

	t.Render()

	if len(summary.ExpensesByCategory) > 0 {
		fmt.Fprintln(w)
		bt := table.NewWriter()
		bt.SetOutputMirror(w)
		bt.AppendHeader(table.Row{"Category", "Expenses"})
		for _, ca := range summary.ExpensesByCategory {
			bt.AppendRow(table.Row{string(ca.Category), cfg.FormatAmount(ca.Amount)})
		}
		bt.SetStyle(table.StyleRounded)
		bt.Style().Format.Header = text.FormatDefault
		bt.SetColumnConfigs([]table.ColumnConfig{
			{Number: 2, Align: text.AlignRight},
		})
		bt.Render()
	}
}
