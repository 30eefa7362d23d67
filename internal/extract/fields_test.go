package extract

import (
	"testing"

	"fincopilot/internal/core"
)

func TestExtractReceiptAmount(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"total keyword", "Coffee $2.00\nTotal: $12.34", "12.34", true},
		{"total without colon", "TOTAL $8.50", "8.50", true},
		{"amount keyword", "Amount: $5.00\n$9.99 listed below", "5.00", true},
		{"subtotal", "Subtotal: $10.00", "10.00", true},
		{"bare dollar fallback", "Items $3.50 and $2.00", "3.50", true},
		{"requires two decimals", "Total: $12", "", false},
		{"no amount", "thanks for shopping", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractReceiptAmount(tc.text)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("extractReceiptAmount(%q) = %q, %v; want %q, %v", tc.text, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestExtractVoiceAmount(t *testing.T) {
	cases := []struct {
		text string
		want string
		ok   bool
	}{
		{"Spent $25 at Starbucks", "25", true},
		{"paid 12.50 for lunch", "12.50", true},
		{"received $1200.5 from a client", "1200.5", true},
		{"no numbers here", "", false},
	}
	for _, tc := range cases {
		got, ok := extractVoiceAmount(tc.text)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("extractVoiceAmount(%q) = %q, %v; want %q, %v", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

func TestExtractDate(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"month first slashes", "05/01/2024", "2024-05-01", true},
		{"month first two digit year", "5/1/24", "2024-05-01", true},
		{"month first dashes", "12-31-2024", "2024-12-31", true},
		{"year first", "2024/05/1", "2024-05-01", true},
		{"dots", "3.15.2024", "2024-03-15", true},
		// The month-first family matches the tail of an ISO date
		// ("24-05-01"), month 24 is invalid, and there is no fallback to
		// the second family once the first one matched.
		{"iso date misread month-first", "2024-05-01", "", false},
		{"invalid calendar date discarded", "2024-13-40", "", false},
		{"invalid month", "13/45/2024", "", false},
		{"no date", "just some text", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractDate(tc.text)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("extractDate(%q) = %q, %v; want %q, %v", tc.text, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestExtractReceiptVendor(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"first line wins", "STARBUCKS\n123 Main St\nTotal: $4.75", "STARBUCKS", true},
		{"skips receipt header", "RECEIPT\nWalmart Supercenter\n123 Main St", "Walmart Supercenter", true},
		{"skips phone and date lines", "Tel: 555-0100\n05/01/2024\nCorner Bakery", "Corner Bakery", true},
		{"too short", "ABC\nOK\nHi", "", false},
		{"too long", "This line is way too long to plausibly be a store name\nAnother long line of receipt boilerplate here\nStill too long to qualify as any vendor", "", false},
		{"only first three lines inspected", "RECEIPT\nINVOICE\nTel: 555-0100\nActual Store", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractReceiptVendor(tc.text)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("extractReceiptVendor(%q) = %q, %v; want %q, %v", tc.text, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestExtractVoiceVendor(t *testing.T) {
	cases := []struct {
		text string
		want string
		ok   bool
	}{
		{"Paid $25 to Acme Supplies", "Acme Supplies", true},
		{"Spent $12.50 at Chipotle", "Chipotle", true},
		{"paid 100 to John's Bakery", "John's Bakery", true},
		{"spent twenty at the store", "", false}, // vendor must be capitalized
		{"just a sentence", "", false},
	}
	for _, tc := range cases {
		got, ok := extractVoiceVendor(tc.text)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("extractVoiceVendor(%q) = %q, %v; want %q, %v", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

func TestExtractCategory(t *testing.T) {
	cases := []struct {
		name string
		text string
		want core.Category
		ok   bool
	}{
		{"food keyword", "lunch at the diner", core.CategoryFood, true},
		{"case insensitive", "UBER ride downtown", core.CategoryTransportation, true},
		{"rent", "monthly apartment payment", core.CategoryRent, true},
		{"software", "renewed the license", core.CategorySoftware, true},
		{"declaration order breaks keyword overlap", "filled up on gas", core.CategoryTransportation, true},
		{"first category wins over later hits", "breakfast with a client", core.CategoryFood, true},
		{"no keyword", "bought something unclear", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := extractCategory(tc.text)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("extractCategory(%q) = %q, %v; want %q, %v", tc.text, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestExtractNotes(t *testing.T) {
	cases := []struct {
		text string
		want string
		ok   bool
	}{
		{"Lunch $15 notes: team meeting. Thanks", "team meeting", true},
		{"Note: remember the invoice", "remember the invoice", true},
		{"no annotations here", "", false},
	}
	for _, tc := range cases {
		got, ok := extractNotes(tc.text)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("extractNotes(%q) = %q, %v; want %q, %v", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTypeFromText(t *testing.T) {
	if got := typeFromText("Received $500 income from Globex"); got != core.Income {
		t.Fatalf("expected income, got %q", got)
	}
	if got := typeFromText("Spent $25 at Starbucks"); got != core.Expense {
		t.Fatalf("expected expense, got %q", got)
	}
	if got := typeFromText("INCOME from consulting"); got != core.Income {
		t.Fatalf("expected income for upper case, got %q", got)
	}
}
