package amqp

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"fincopilot/internal/core"
)

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},  // capped at 30s
		{10, 30 * time.Second}, // capped at 30s
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt_%d", tt.attempt), func(t *testing.T) {
			if got := exponentialBackoff(tt.attempt); got != tt.expected {
				t.Errorf("exponentialBackoff(%d) = %v, want %v", tt.attempt, got, tt.expected)
			}
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"connection closed", errors.New("connection closed"), true},
		{"EOF", errors.New("unexpected EOF"), true},
		{"broken pipe", errors.New("write: broken pipe"), true},
		{"closed network connection", errors.New("use of closed network connection"), true},
		{"delivery channel gone", errors.New("message channel closed"), true},
		{"handler error", errors.New("append row: quota exceeded"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isConnectionError(tt.err); got != tt.expected {
				t.Errorf("isConnectionError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestNewTransactionSyncMessage(t *testing.T) {
	tx := core.Transaction{
		ID:        "txn_abc",
		Date:      "2024-05-01",
		Amount:    core.Money{Cents: 475},
		Vendor:    "Starbucks",
		Category:  core.CategoryFood,
		Notes:     "latte",
		Type:      core.Expense,
		Source:    core.SourceImage,
		CreatedAt: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}

	msg := NewTransactionSyncMessage(tx)

	if msg.ID != tx.ID || msg.AmountCents != 475 || msg.Category != "food" {
		t.Errorf("snapshot mismatch: %+v", msg)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}

	got, err := msg.Transaction()
	if err != nil {
		t.Fatalf("Transaction() error = %v", err)
	}
	if got != tx {
		t.Errorf("rebuilt transaction = %+v, want %+v", got, tx)
	}
}

func TestTransactionSyncMessageJSON(t *testing.T) {
	msg := &TransactionSyncMessage{
		ID:          "txn_abc",
		Date:        "2024-05-01",
		AmountCents: 475,
		Vendor:      "Starbucks",
		Category:    "food",
		Type:        "expense",
		Source:      "voice",
		CreatedAt:   time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		Timestamp:   time.Date(2024, 5, 1, 10, 30, 1, 0, time.UTC),
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	parsed, err := TransactionSyncMessageFromJSON(data)
	if err != nil {
		t.Fatalf("TransactionSyncMessageFromJSON() error = %v", err)
	}
	if parsed.ID != msg.ID || parsed.AmountCents != msg.AmountCents || !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("round trip mismatch: %+v", parsed)
	}
}

func TestTransactionSyncMessageInvalidJSON(t *testing.T) {
	if _, err := TransactionSyncMessageFromJSON([]byte(`{"amountCents": "NaN"}`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestTransactionRejectsUnknownEnums(t *testing.T) {
	msg := &TransactionSyncMessage{
		ID:       "txn_abc",
		Category: "gambling",
		Type:     "expense",
		Source:   "voice",
	}
	if _, err := msg.Transaction(); err == nil {
		t.Error("expected error for unknown category")
	}
}
