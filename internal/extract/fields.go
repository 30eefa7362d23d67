package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fincopilot/internal/core"
)

// Receipt amounts must carry two decimals; keyword-anchored forms are
// preferred over a bare dollar figure so line totals beat item prices.
var receiptAmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total:?\s*\$?(\d+\.\d{2})`),
	regexp.MustCompile(`(?i)amount:?\s*\$?(\d+\.\d{2})`),
	regexp.MustCompile(`(?i)(?:sub)?total:?\s*\$?(\d+\.\d{2})`),
	regexp.MustCompile(`\$\s*(\d+\.\d{2})`),
}

// Spoken amounts are looser: an optional dollar sign and up to two decimals.
var voiceAmountPattern = regexp.MustCompile(`\$?(\d+(?:\.\d{1,2})?)`)

// Date pattern families: month-first (D/M/Y-style) then year-first.
// Only the first family that matches the text is attempted.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})`),
	regexp.MustCompile(`(\d{2,4})[/\-.](\d{1,2})[/\-.](\d{1,2})`),
}

// Receipt header lines that are never the vendor name.
var vendorSkipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)receipt`),
	regexp.MustCompile(`(?i)invoice`),
	regexp.MustCompile(`(?i)tel:`),
	regexp.MustCompile(`(?i)phone:`),
	regexp.MustCompile(`(?i)address:`),
	regexp.MustCompile(`\d{2}[/\-.]\d{2}[/\-.]\d{2,4}`), // date lines
}

// Spoken vendors follow a preposition and start with a capital letter.
var voiceVendorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:to|from|at|for|with)\s+([A-Z][A-Za-z\s']+)`),
	regexp.MustCompile(`(?:paid|spent|got|received)\s+(?:at|from|to)\s+([A-Z][A-Za-z\s']+)`),
}

var notesPattern = regexp.MustCompile(`(?i)notes?:?\s+(.+?)(?:\.|$)`)

// categoryKeywords maps each category to its ordered keyword list. The
// table is iterated in declaration order and the first category with any
// case-insensitive substring hit wins, so both orders are part of the
// contract. No weighting by number of hits.
var categoryKeywords = []struct {
	Category core.Category
	Keywords []string
}{
	{core.CategoryFood, []string{"food", "restaurant", "lunch", "dinner", "breakfast", "grocery"}},
	{core.CategoryTransportation, []string{"gas", "uber", "lyft", "taxi", "car", "fuel", "transportation"}},
	{core.CategoryUtilities, []string{"utility", "utilities", "electric", "water", "gas", "internet", "phone"}},
	{core.CategoryRent, []string{"rent", "mortgage", "lease", "housing", "apartment"}},
	{core.CategorySalary, []string{"salary", "paycheck", "pay", "wage", "income"}},
	{core.CategorySales, []string{"sale", "sales", "revenue", "client", "customer"}},
	{core.CategoryEntertainment, []string{"movie", "entertainment", "game", "ticket", "concert", "show"}},
	{core.CategoryMarketing, []string{"marketing", "advertisement", "ad", "promotion"}},
	{core.CategoryOffice, []string{"office", "supplies", "paper", "printer", "stationery"}},
	{core.CategorySoftware, []string{"software", "subscription", "app", "service", "license"}},
	{core.CategoryOther, []string{"other", "miscellaneous"}},
}

// extractReceiptAmount returns the first captured two-decimal amount string.
func extractReceiptAmount(text string) (string, bool) {
	for _, re := range receiptAmountPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func extractVoiceAmount(text string) (string, bool) {
	if m := voiceAmountPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// extractDate scans the pattern families in order and attempts date
// construction only for the first family that matches the raw text. An
// invalid calendar date is discarded silently; the caller keeps its
// default in that case.
func extractDate(text string) (string, bool) {
	for _, re := range datePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return buildDate(m[1], m[2], m[3])
	}
	return "", false
}

// buildDate disambiguates by the first captured group: length 4 means
// year-first, anything else is treated as month-first. Two-digit years are
// expanded by prefixing "20".
func buildDate(first, second, third string) (string, bool) {
	var yearStr, monthStr, dayStr string
	if len(first) == 4 {
		yearStr, monthStr, dayStr = first, second, third
	} else {
		monthStr, dayStr, yearStr = first, second, third
		if len(yearStr) == 2 {
			yearStr = "20" + yearStr
		}
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return "", false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return "", false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return "", false
	}

	// time.Date normalizes out-of-range components, so round-trip the
	// parts to reject dates like month 13 or day 40.
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

// extractReceiptVendor inspects only the first 3 non-empty lines: the store
// name is almost always in the receipt header. Lines matching a skip
// pattern or outside (3,30) characters are rejected; first qualifying line
// wins.
func extractReceiptVendor(text string) (string, bool) {
	lines := nonEmptyLines(text)
	if len(lines) > 3 {
		lines = lines[:3]
	}
	for _, line := range lines {
		if len(line) <= 3 || len(line) >= 30 {
			continue
		}
		if matchesAny(line, vendorSkipPatterns) {
			continue
		}
		return line, true
	}
	return "", false
}

func extractVoiceVendor(text string) (string, bool) {
	for _, re := range voiceVendorPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

func extractCategory(text string) (core.Category, bool) {
	lower := strings.ToLower(text)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Category, true
			}
		}
	}
	return "", false
}

func extractNotes(text string) (string, bool) {
	if m := notesPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// typeFromText infers income vs expense from a transcript. Receipts skip
// this and always default to expense: a photographed receipt is a purchase.
func typeFromText(text string) core.TransactionType {
	if strings.Contains(strings.ToLower(text), "income") {
		return core.Income
	}
	return core.Expense
}

func matchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func nonEmptyLines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if t := strings.TrimSpace(r); t != "" {
			out = append(out, t)
		}
	}
	return out
}
