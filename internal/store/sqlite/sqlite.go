// Package sqlite persists the transaction ledger in a single SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fincopilot/internal/core"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadAll returns every transaction in insertion order.
func (s *Store) LoadAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, amount_cents, vendor, category, notes, type, source, created_at
		FROM transactions
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			t                                    core.Transaction
			category, txType, source, createdAt string
		)
		if err := rows.Scan(&t.ID, &t.Date, &t.Amount.Cents, &t.Vendor, &category, &t.Notes, &txType, &source, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if t.Category, err = core.ParseCategory(category); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		if t.Type, err = core.ParseTransactionType(txType); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		if t.Source, err = core.ParseSource(source); err != nil {
			return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("transaction %s: parse created_at: %w", t.ID, err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

// SaveAll replaces the stored ledger with txs atomically.
func (s *Store) SaveAll(ctx context.Context, txs []core.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	stmt, err := dbTx.PrepareContext(ctx, `
		INSERT INTO transactions (id, date, amount_cents, vendor, category, notes, type, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range txs {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		_, err := stmt.ExecContext(ctx,
			t.ID, t.Date, t.Amount.Cents, t.Vendor, string(t.Category),
			t.Notes, string(t.Type), string(t.Source),
			t.CreatedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit transactions: %w", err)
	}
	return nil
}
