package extract

import (
	"strings"
	"time"

	"fincopilot/internal/core"
)

const msgReceiptParsed = "Receipt processed successfully"

// ParseReceiptText extracts transaction fields from OCR output. Receipt
// text is noisy, so unlike voice parsing there is no minimum-field gate:
// any partial extraction is a usable success because partial pre-fill still
// saves typing. Only blank OCR output fails.
func ParseReceiptText(ocrText string) Result {
	return ParseReceiptTextAt(ocrText, time.Now())
}

// ParseReceiptTextAt is ParseReceiptText with an injected clock for the
// today-default date.
func ParseReceiptTextAt(ocrText string, now time.Time) Result {
	if strings.TrimSpace(ocrText) == "" {
		return Result{Success: false, Message: MsgNoTextInImage}
	}

	data := &Fields{
		Date: now.Format("2006-01-02"),
		Type: core.Expense,
	}

	if amount, ok := extractReceiptAmount(ocrText); ok {
		data.Amount = amount
	}
	if date, ok := extractDate(ocrText); ok {
		data.Date = date
	}
	if vendor, ok := extractReceiptVendor(ocrText); ok {
		data.Vendor = vendor
	}

	return Result{Success: true, Data: data, Message: msgReceiptParsed, RawText: ocrText}
}
