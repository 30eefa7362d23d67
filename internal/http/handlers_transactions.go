package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fincopilot/internal/core"
	"fincopilot/internal/store"
)

// decimalAmount accepts an amount as either a JSON number or a quoted
// decimal string.
type decimalAmount string

func (d *decimalAmount) UnmarshalJSON(data []byte) error {
	*d = decimalAmount(strings.Trim(strings.TrimSpace(string(data)), `"`))
	return nil
}

type transactionRequest struct {
	Date     string        `json:"date"`
	Amount   decimalAmount `json:"amount"`
	Vendor   string        `json:"vendor"`
	Category string        `json:"category"`
	Notes    string        `json:"notes"`
	Type     string        `json:"type"`
	Source   string        `json:"source"`
}

// toTransaction validates the request and builds a domain transaction.
// ID and CreatedAt are left for the caller to fill.
func (req transactionRequest) toTransaction() (core.Transaction, error) {
	var t core.Transaction
	var err error

	cents, err := core.ParseDecimalToCents(string(req.Amount))
	if err != nil {
		return t, err
	}
	t.Amount = core.Money{Cents: cents}

	t.Date = req.Date
	if t.Date == "" {
		t.Date = time.Now().Format("2006-01-02")
	}
	if !core.ValidDate(t.Date) {
		return t, core.ErrInvalidDate
	}

	t.Vendor = sanitizeInput(req.Vendor)
	t.Notes = sanitizeInput(req.Notes)

	if t.Category, err = core.ParseCategory(req.Category); err != nil {
		return t, err
	}
	if req.Type == "" {
		req.Type = string(core.Expense)
	}
	if t.Type, err = core.ParseTransactionType(req.Type); err != nil {
		return t, err
	}
	if req.Source == "" {
		req.Source = string(core.SourceManual)
	}
	if t.Source, err = core.ParseSource(req.Source); err != nil {
		return t, err
	}
	return t, nil
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	var (
		byType     core.TransactionType
		byCategory core.Category
		err        error
	)
	if v := r.URL.Query().Get("type"); v != "" {
		if byType, err = core.ParseTransactionType(v); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}
	if v := r.URL.Query().Get("category"); v != "" {
		if byCategory, err = core.ParseCategory(v); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	txs, err := s.store.LoadAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Load transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	out := make([]core.Transaction, 0, len(txs))
	for _, t := range txs {
		if byType != "" && t.Type != byType {
			continue
		}
		if byCategory != "" && t.Category != byCategory {
			continue
		}
		out = append(out, t)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := req.toTransaction()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	t.ID = core.NewID()
	t.CreatedAt = time.Now().UTC()
	if err := t.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.store.LoadAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Load transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}
	txs = append(txs, t)
	if err := s.store.SaveAll(r.Context(), txs); err != nil {
		slog.ErrorContext(r.Context(), "Save transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	s.afterWrite(r, t)

	slog.InfoContext(r.Context(), "Transaction created",
		"id", t.ID,
		"vendor", t.Vendor,
		"amount_cents", t.Amount.Cents,
		"type", t.Type)

	writeJSON(w, http.StatusCreated, t)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := req.toTransaction()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.store.LoadAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Load transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	existing, err := store.FindByID(txs, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to find transaction")
		return
	}

	// Identity and provenance survive edits.
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.Source = existing.Source
	if err := updated.Validate(); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	txs, err = store.ReplaceByID(txs, updated)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update transaction")
		return
	}
	if err := s.store.SaveAll(r.Context(), txs); err != nil {
		slog.ErrorContext(r.Context(), "Save transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	s.afterWrite(r, updated)

	slog.InfoContext(r.Context(), "Transaction updated", "id", updated.ID)
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.store.LoadAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Load transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	txs, err = store.RemoveByID(txs, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "transaction not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}
	if err := s.store.SaveAll(r.Context(), txs); err != nil {
		slog.ErrorContext(r.Context(), "Save transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save transactions")
		return
	}

	s.summaryCache.Invalidate(summaryCacheKey)

	slog.InfoContext(r.Context(), "Transaction deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// afterWrite invalidates the dashboard cache and forwards the transaction
// to the sync pipeline when one is configured.
func (s *Server) afterWrite(r *http.Request, t core.Transaction) {
	s.summaryCache.Invalidate(summaryCacheKey)
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTransaction(r.Context(), t); err != nil {
		slog.WarnContext(r.Context(), "Sync publish failed", "error", err, "id", t.ID)
	}
}
