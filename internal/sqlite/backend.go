package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/madang/pkg/types"
)

// Compile-time interface check: Backend must implement Database.
var _ types.Database = (*Backend)(nil)

// dsnPragmas are applied to every connection the driver opens.
const dsnPragmas = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// Backend owns the single database handle shared by every flow in a process.
// The handle is limited to one connection; nothing is pooled.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens the database file described by config, creating the data
// directory and the schema when they do not exist. Existing data is kept.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", config.Path()+dsnPragmas)
	if err != nil {
		return fmt.Errorf("opening %s: %w", config.Path(), err)
	}
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database handle. After Detach, Query and Exec return
// ErrNotAttached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if err := b.db.Close(); err != nil {
		return err
	}
	b.db = nil
	b.attached = false
	return nil
}

// Path returns the database file path of the attached configuration.
func (b *Backend) Path() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config.Path()
}

// Query runs a read and materializes every row.
func (b *Backend) Query(ctx context.Context, query string, args ...any) (*types.ResultSet, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrNotAttached
	}

	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRows(rows)
}

// Exec runs a write. Each call commits on its own.
func (b *Backend) Exec(ctx context.Context, query string, args ...any) (types.WriteResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.WriteResult{}, types.ErrNotAttached
	}

	res, err := b.db.ExecContext(ctx, query, args...)
	if err != nil {
		return types.WriteResult{}, err
	}

	var wr types.WriteResult
	if wr.LastInsertID, err = res.LastInsertId(); err != nil {
		return types.WriteResult{}, fmt.Errorf("reading last insert id: %w", err)
	}
	if wr.RowsAffected, err = res.RowsAffected(); err != nil {
		return types.WriteResult{}, fmt.Errorf("reading rows affected: %w", err)
	}
	return wr, nil
}

// createSchema executes the table and index DDL.
func createSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}

// collectRows reads all rows into a ResultSet. Byte slices are copied because
// the driver may reuse them between Next calls.
func collectRows(rows *sql.Rows) (*types.ResultSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	rs := &types.ResultSet{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		for i, v := range values {
			if raw, ok := v.([]byte); ok {
				values[i] = append([]byte(nil), raw...)
			}
		}
		rs.Rows = append(rs.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return rs, nil
}
