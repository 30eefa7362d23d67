// Package worker appends queued transactions to the configured
// spreadsheet.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"fincopilot/internal/amqp"
	"fincopilot/internal/sheets"
)

// seenLimit bounds the dedup set; beyond it the oldest half is dropped.
const seenLimit = 4096

// SyncWorker consumes transaction sync messages and appends each one as a
// spreadsheet row. Messages carry a full snapshot, so the worker never
// reads the store.
type SyncWorker struct {
	appender sheets.RowAppender

	mu    sync.Mutex
	seen  map[string]struct{}
	order []string
}

func NewSyncWorker(appender sheets.RowAppender) *SyncWorker {
	return &SyncWorker{
		appender: appender,
		seen:     make(map[string]struct{}),
	}
}

// HandleSyncMessage appends one transaction. Redelivered messages for an
// already-appended transaction are skipped, since a nack after a slow
// append would otherwise duplicate the row.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.TransactionSyncMessage) error {
	if w.alreadySeen(msg.ID) {
		slog.InfoContext(ctx, "Skipping duplicate sync message", "id", msg.ID)
		return nil
	}

	t, err := msg.Transaction()
	if err != nil {
		return fmt.Errorf("decode transaction %s: %w", msg.ID, err)
	}

	ref, err := w.appender.AppendTransaction(ctx, t)
	if err != nil {
		return fmt.Errorf("append transaction %s: %w", msg.ID, err)
	}
	w.markSeen(msg.ID)

	slog.InfoContext(ctx, "Synced transaction to spreadsheet",
		"id", t.ID,
		"vendor", t.Vendor,
		"amount_cents", t.Amount.Cents,
		"row_ref", ref)

	return nil
}

func (w *SyncWorker) alreadySeen(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.seen[id]
	return ok
}

func (w *SyncWorker) markSeen(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.seen[id]; ok {
		return
	}
	w.seen[id] = struct{}{}
	w.order = append(w.order, id)
	if len(w.order) > seenLimit {
		drop := w.order[:seenLimit/2]
		w.order = append([]string(nil), w.order[seenLimit/2:]...)
		for _, old := range drop {
			delete(w.seen, old)
		}
	}
}
