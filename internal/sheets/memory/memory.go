// Package memory is an in-process RowAppender used in tests and when no
// spreadsheet is configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	"fincopilot/internal/core"
	ports "fincopilot/internal/sheets"
)

type Appender struct {
	mu   sync.Mutex
	rows []core.Transaction
}

var _ ports.RowAppender = (*Appender)(nil)

func New() *Appender {
	return &Appender{}
}

func (a *Appender) AppendTransaction(ctx context.Context, t core.Transaction) (string, error) {
	if err := t.Validate(); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rows = append(a.rows, t)
	return fmt.Sprintf("memory!A%d", len(a.rows)), nil
}

// Rows returns a copy of everything appended so far.
func (a *Appender) Rows() []core.Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]core.Transaction, len(a.rows))
	copy(out, a.rows)
	return out
}
