package types

import (
	"context"
	"errors"
)

// Database is the narrow data-access surface the bookstore flows need.
// Implementations auto-commit every Exec; there is no statement grouping.
type Database interface {
	// Query runs a read and returns its rows in the order the database
	// produced them.
	Query(ctx context.Context, query string, args ...any) (*ResultSet, error)

	// Exec runs a write and commits it.
	Exec(ctx context.Context, query string, args ...any) (WriteResult, error)
}

// ResultSet is a tabular query result. Cells hold the driver's values:
// int64, float64, string, []byte, bool, time.Time, or nil for NULL.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// Len returns the number of rows.
func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// WriteResult reports the effect of a write.
type WriteResult struct {
	LastInsertID int64
	RowsAffected int64
}

// Backend lifecycle errors.
var (
	ErrNotAttached     = errors.New("database is not attached")
	ErrAlreadyAttached = errors.New("database is already attached")
)
