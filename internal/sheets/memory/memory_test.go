package memory

import (
	"context"
	"testing"
	"time"

	"fincopilot/internal/core"
)

func TestAppendTransaction(t *testing.T) {
	a := New()
	tx := core.Transaction{
		ID:        "txn_1",
		Date:      "2024-05-01",
		Amount:    core.Money{Cents: 475},
		Vendor:    "Starbucks",
		Category:  core.CategoryFood,
		Type:      core.Expense,
		Source:    core.SourceManual,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	ref, err := a.AppendTransaction(context.Background(), tx)
	if err != nil {
		t.Fatal(err)
	}
	if ref != "memory!A1" {
		t.Errorf("ref = %q", ref)
	}

	rows := a.Rows()
	if len(rows) != 1 || rows[0].ID != "txn_1" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestAppendRejectsInvalid(t *testing.T) {
	a := New()
	if _, err := a.AppendTransaction(context.Background(), core.Transaction{}); err == nil {
		t.Fatal("expected validation error")
	}
	if len(a.Rows()) != 0 {
		t.Fatal("invalid transaction must not be stored")
	}
}
