// Package extract turns unstructured capture text into partial transaction
// fields. Voice transcripts and OCR receipt text share one field extractor
// with mode-specific pattern tables; every rule list is tried in a fixed
// priority order and the first match wins. Results pre-fill the entry form
// and are never committed without user review.
package extract

import "fincopilot/internal/core"

// Fields is the partial field set recovered from one text blob. A zero
// value means the field was not found; downstream success judgment decides
// whether that matters.
type Fields struct {
	Date     string               `json:"date,omitempty"`
	Amount   string               `json:"amount,omitempty"`
	Vendor   string               `json:"vendor,omitempty"`
	Category core.Category        `json:"category,omitempty"`
	Notes    string               `json:"notes,omitempty"`
	Type     core.TransactionType `json:"type,omitempty"`
}

// Result is the transient outcome of one parse attempt. Never persisted.
type Result struct {
	Success bool    `json:"success"`
	Data    *Fields `json:"data,omitempty"`
	Message string  `json:"message,omitempty"`
	// RawText carries the source text for audit display (receipt mode only).
	RawText string `json:"text,omitempty"`
}
