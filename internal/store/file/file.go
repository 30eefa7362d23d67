// Package file implements the transaction store as a single JSON document
// on disk, the local key-value analogue the app started with. Best effort
// durability only: writes go through a temp file and rename.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fincopilot/internal/core"
)

type record struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Vendor    string  `json:"vendor"`
	Category  string  `json:"category"`
	Notes     string  `json:"notes"`
	Type      string  `json:"type"`
	Source    string  `json:"source"`
	CreatedAt string  `json:"createdAt"`
}

type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte("[]\n"), 0644); err != nil {
			return nil, fmt.Errorf("initialize data file: %w", err)
		}
	}
	return &Store{path: path}, nil
}

func (s *Store) LoadAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	if len(data) == 0 {
		return []core.Transaction{}, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}

	out := make([]core.Transaction, 0, len(records))
	for i, r := range records {
		t, err := fromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *Store) SaveAll(_ context.Context, transactions []core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]record, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, toRecord(t))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal transactions: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }

func toRecord(t core.Transaction) record {
	return record{
		ID:        t.ID,
		Date:      t.Date,
		Amount:    t.Amount.Float(),
		Vendor:    t.Vendor,
		Category:  string(t.Category),
		Notes:     t.Notes,
		Type:      string(t.Type),
		Source:    string(t.Source),
		CreatedAt: t.CreatedAt.Format(time.RFC3339Nano),
	}
}

func fromRecord(r record) (core.Transaction, error) {
	cents, err := core.ParseDecimalToCents(fmt.Sprintf("%.2f", r.Amount))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("amount %v: %w", r.Amount, err)
	}
	category, err := core.ParseCategory(r.Category)
	if err != nil {
		return core.Transaction{}, err
	}
	typ, err := core.ParseTransactionType(r.Type)
	if err != nil {
		return core.Transaction{}, err
	}
	source, err := core.ParseSource(r.Source)
	if err != nil {
		return core.Transaction{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("createdAt %q: %w", r.CreatedAt, err)
	}
	return core.Transaction{
		ID:        r.ID,
		Date:      r.Date,
		Amount:    core.Money{Cents: cents},
		Vendor:    r.Vendor,
		Category:  category,
		Notes:     r.Notes,
		Type:      typ,
		Source:    source,
		CreatedAt: createdAt,
	}, nil
}
