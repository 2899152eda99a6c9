package store

import (
	"context"

	"spendtrack/internal/core"
)

// Ports for record suppliers and sinks. The engine itself only ever sees
// snapshots; these interfaces are what the HTTP layer and workers program
// against so memory and SQLite backends stay interchangeable.
type (
	RecordWriter interface {
		// Add validates and appends a record, returning its assigned ID.
		Add(ctx context.Context, e core.Expense) (id string, err error)
	}

	RecordSource interface {
		// All returns a snapshot of every current record, most recently
		// added first. Callers own the returned slice.
		All(ctx context.Context) ([]core.Expense, error)
	}

	// Store is a combined writer/supplier backend.
	Store interface {
		RecordWriter
		RecordSource
	}
)
