package core

import (
	"strings"
	"testing"
	"time"
)

func validTransaction() Transaction {
	return Transaction{
		ID:        "txn_0011223344556677",
		Date:      "2024-05-01",
		Amount:    Money{Cents: 475},
		Vendor:    "Starbucks",
		Category:  CategoryFood,
		Type:      Expense,
		Source:    SourceImage,
		CreatedAt: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}
}

func TestTransactionValidate(t *testing.T) {
	if err := validTransaction().Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []func(*Transaction){
		func(tx *Transaction) { tx.ID = " " },
		func(tx *Transaction) { tx.Date = "2024-13-40" },
		func(tx *Transaction) { tx.Date = "05/01/2024" },
		func(tx *Transaction) { tx.Amount = Money{Cents: 0} },
		func(tx *Transaction) { tx.Vendor = "" },
		func(tx *Transaction) { tx.Vendor = strings.Repeat("x", 101) },
		func(tx *Transaction) { tx.Category = "groceries" },
		func(tx *Transaction) { tx.Type = "transfer" },
		func(tx *Transaction) { tx.Source = "email" },
		func(tx *Transaction) { tx.CreatedAt = time.Time{} },
	}
	for i, mutate := range bads {
		tx := validTransaction()
		mutate(&tx)
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"food", CategoryFood, true},
		{"software", CategorySoftware, true},
		{"", CategoryOther, true}, // empty defaults to other
		{"Food", "", false},       // case sensitive
		{"groceries", "", false},
	}
	for _, tc := range cases {
		got, err := ParseCategory(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("ParseCategory(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
			}
		} else if err == nil {
			t.Fatalf("ParseCategory(%q) expected error", tc.in)
		}
	}
}

func TestClosedEnums(t *testing.T) {
	if len(Categories) != 11 {
		t.Fatalf("category set must have 11 values, got %d", len(Categories))
	}
	if _, err := ParseTransactionType("income"); err != nil {
		t.Fatalf("income should parse: %v", err)
	}
	if _, err := ParseTransactionType("refund"); err == nil {
		t.Fatal("refund should not parse")
	}
	for _, s := range []string{"manual", "voice", "image"} {
		if _, err := ParseSource(s); err != nil {
			t.Fatalf("source %q should parse: %v", s, err)
		}
	}
	if _, err := ParseSource("api"); err == nil {
		t.Fatal("unknown source should not parse")
	}
}

func TestNewID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if !strings.HasPrefix(id, "txn_") {
			t.Fatalf("id %q missing prefix", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
