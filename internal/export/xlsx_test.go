package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"fincopilot/internal/core"
	"fincopilot/internal/dashboard"
)

func TestWriteXLSX(t *testing.T) {
	txs := []core.Transaction{
		{
			ID:        "txn_1",
			Date:      "2024-05-01",
			Amount:    core.Money{Cents: 475},
			Vendor:    "Starbucks",
			Category:  core.CategoryFood,
			Notes:     "latte",
			Type:      core.Expense,
			Source:    core.SourceImage,
			CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "txn_2",
			Date:      "2024-05-02",
			Amount:    core.Money{Cents: 150000},
			Vendor:    "Acme Corp",
			Category:  core.CategorySales,
			Type:      core.Income,
			Source:    core.SourceManual,
			CreatedAt: time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		},
	}
	summary := dashboard.SummarizeAt(txs, time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, txs, summary); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Transactions", "C2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Starbucks" {
		t.Errorf("C2 = %q, want Starbucks", got)
	}

	got, err = f.GetCellValue("Transactions", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Date" {
		t.Errorf("A1 = %q, want Date", got)
	}

	got, err = f.GetCellValue("Summary", "B1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "1500" {
		t.Errorf("Summary B1 = %q, want 1500", got)
	}

	got, err = f.GetCellValue("Summary", "A6")
	if err != nil {
		t.Fatal(err)
	}
	if got != "food" {
		t.Errorf("Summary A6 = %q, want food", got)
	}
}
