package core

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	SourceManual TransactionSource = "manual"
	SourceVoice  TransactionSource = "voice"
	SourceImage  TransactionSource = "image"
)

const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryUtilities      Category = "utilities"
	CategoryRent           Category = "rent"
	CategorySalary         Category = "salary"
	CategorySales          Category = "sales"
	CategoryEntertainment  Category = "entertainment"
	CategoryMarketing      Category = "marketing"
	CategoryOffice         Category = "office"
	CategorySoftware       Category = "software"
	CategoryOther          Category = "other"
)

type (
	TransactionType   string
	TransactionSource string
	Category          string

	// Transaction is one recorded monetary event. Immutable once created;
	// edits replace the whole record.
	Transaction struct {
		ID        string            `json:"id"`
		Date      string            `json:"date"` // ISO calendar date, YYYY-MM-DD
		Amount    Money             `json:"amount"`
		Vendor    string            `json:"vendor"`
		Category  Category          `json:"category"`
		Notes     string            `json:"notes"`
		Type      TransactionType   `json:"type"`
		Source    TransactionSource `json:"source"`
		CreatedAt time.Time         `json:"createdAt"`
	}
)

// Categories lists the closed category set in declaration order.
// Keyword matching and category validation iterate this slice, so the
// order is part of the contract.
var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryUtilities,
	CategoryRent,
	CategorySalary,
	CategorySales,
	CategoryEntertainment,
	CategoryMarketing,
	CategoryOffice,
	CategorySoftware,
	CategoryOther,
}

var (
	ErrEmptyID         = errors.New("empty transaction id")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyVendor     = errors.New("empty vendor")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrInvalidSource   = errors.New("invalid transaction source")
)

// ParseCategory validates a raw string against the closed category set.
// The empty string maps to the default category "other".
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryOther, nil
	}
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
}

func ParseSource(s string) (TransactionSource, error) {
	switch TransactionSource(s) {
	case SourceManual, SourceVoice, SourceImage:
		return TransactionSource(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSource, s)
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if !ValidDate(t.Date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, t.Date)
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Vendor) == "" {
		return ErrEmptyVendor
	}
	if len(t.Vendor) > 100 {
		return errors.New("vendor too long (max 100 characters)")
	}
	if _, err := ParseCategory(string(t.Category)); err != nil {
		return err
	}
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if _, err := ParseSource(string(t.Source)); err != nil {
		return err
	}
	if t.CreatedAt.IsZero() {
		return errors.New("zero creation timestamp")
	}
	return nil
}

// NewID returns an opaque unique transaction identifier.
func NewID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp if random fails
		return fmt.Sprintf("txn_%d", time.Now().UnixNano())
	}
	return "txn_" + hex.EncodeToString(bytes)
}
