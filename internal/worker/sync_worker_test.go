package worker

import (
	"context"
	"testing"
	"time"

	"fincopilot/internal/amqp"
	"fincopilot/internal/core"
	"fincopilot/internal/sheets/memory"
)

func sampleMessage(id string) *amqp.TransactionSyncMessage {
	return amqp.NewTransactionSyncMessage(core.Transaction{
		ID:        id,
		Date:      "2024-05-01",
		Amount:    core.Money{Cents: 475},
		Vendor:    "Starbucks",
		Category:  core.CategoryFood,
		Type:      core.Expense,
		Source:    core.SourceImage,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	})
}

func TestHandleSyncMessage(t *testing.T) {
	appender := memory.New()
	w := NewSyncWorker(appender)

	if err := w.HandleSyncMessage(context.Background(), sampleMessage("txn_1")); err != nil {
		t.Fatal(err)
	}

	rows := appender.Rows()
	if len(rows) != 1 || rows[0].ID != "txn_1" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestHandleSyncMessageSkipsDuplicates(t *testing.T) {
	appender := memory.New()
	w := NewSyncWorker(appender)
	ctx := context.Background()

	if err := w.HandleSyncMessage(ctx, sampleMessage("txn_1")); err != nil {
		t.Fatal(err)
	}
	if err := w.HandleSyncMessage(ctx, sampleMessage("txn_1")); err != nil {
		t.Fatal(err)
	}

	if rows := appender.Rows(); len(rows) != 1 {
		t.Fatalf("duplicate delivery appended %d rows", len(rows))
	}
}

func TestHandleSyncMessageRejectsBadSnapshot(t *testing.T) {
	appender := memory.New()
	w := NewSyncWorker(appender)

	msg := sampleMessage("txn_bad")
	msg.Category = "gambling"

	if err := w.HandleSyncMessage(context.Background(), msg); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if len(appender.Rows()) != 0 {
		t.Fatal("bad snapshot must not be appended")
	}
}
