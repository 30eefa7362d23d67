// Package store defines the persistence ports for the transaction
// collection. The collection is read and written wholesale: callers load
// the full list, apply their change, and save the full list back. No
// backend offers partial updates.
package store

import (
	"context"
	"errors"

	"fincopilot/internal/core"
)

var ErrNotFound = errors.New("transaction not found")

type (
	// Loader reads the full ordered transaction list.
	Loader interface {
		LoadAll(ctx context.Context) ([]core.Transaction, error)
	}

	// Saver replaces the stored list with the given one.
	Saver interface {
		SaveAll(ctx context.Context, transactions []core.Transaction) error
	}

	// Store is a complete load-all/save-all backend.
	Store interface {
		Loader
		Saver
		Close() error
	}
)

// FindByID returns the transaction with the given id from a loaded list.
func FindByID(transactions []core.Transaction, id string) (core.Transaction, error) {
	for _, t := range transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return core.Transaction{}, ErrNotFound
}

// ReplaceByID swaps the transaction with updated.ID for updated, keeping
// list order. Returns ErrNotFound when no such id exists.
func ReplaceByID(transactions []core.Transaction, updated core.Transaction) ([]core.Transaction, error) {
	out := make([]core.Transaction, len(transactions))
	copy(out, transactions)
	for i, t := range out {
		if t.ID == updated.ID {
			out[i] = updated
			return out, nil
		}
	}
	return nil, ErrNotFound
}

// RemoveByID drops the transaction with the given id, keeping list order.
// Returns ErrNotFound when no such id exists.
func RemoveByID(transactions []core.Transaction, id string) ([]core.Transaction, error) {
	out := make([]core.Transaction, 0, len(transactions))
	found := false
	for _, t := range transactions {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		return nil, ErrNotFound
	}
	return out, nil
}
