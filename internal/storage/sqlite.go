package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"spendtrack/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteArchive is the durable record backend. It satisfies the same
// store ports as the in-memory store, so the engine and HTTP layer never
// care which one they run over.
type SQLiteArchive struct {
	db *sql.DB
}

func NewSQLiteArchive(dbPath string) (*SQLiteArchive, error) {
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

	return &SQLiteArchive{db: db}, nil
}

func (a *SQLiteArchive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Add implements store.RecordWriter. Replaying the same record ID is a
// no-op so the archive worker can safely redeliver messages.
func (a *SQLiteArchive) Add(ctx context.Context, e core.Expense) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO expenses (id, description, category, amount_cents, spent_on, note)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO NOTHING`,
		e.ID, e.Description, string(e.Category), e.Amount.Cents, e.Date.String(), e.Note)
	if err != nil {
		return "", fmt.Errorf("insert expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense archived",
		"id", e.ID,
		"description", e.Description,
		"amount_cents", e.Amount.Cents,
		"date", e.Date.String())

	return e.ID, nil
}

// All implements store.RecordSource: a snapshot of every archived record,
// most recently created first to mirror the memory store's ordering.
func (a *SQLiteArchive) All(ctx context.Context) ([]core.Expense, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, description, category, amount_cents, spent_on, note
		 FROM expenses
		 ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		var (
			e       core.Expense
			cat     string
			spentOn string
		)
		if err := rows.Scan(&e.ID, &e.Description, &cat, &e.Amount.Cents, &spentOn, &e.Note); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Category = core.Category(cat)
		e.Date, err = core.ParseDate(spentOn)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", spentOn, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return out, nil
}

// Count reports how many records the archive holds.
func (a *SQLiteArchive) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count expenses: %w", err)
	}
	return n, nil
}
