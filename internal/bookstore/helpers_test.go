package bookstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/madang/internal/sqlite"
	"github.com/mesh-intelligence/madang/pkg/types"
)

// today is the fixed clock reading used by service tests.
var today = time.Date(2026, 10, 17, 15, 4, 5, 0, time.Local)

// setupBackend attaches a Backend to a fresh database in a temp directory.
func setupBackend(t *testing.T) *sqlite.Backend {
	t.Helper()
	b := sqlite.NewBackend()
	require.NoError(t, b.Attach(types.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { b.Detach() })
	return b
}

// setupService returns a Service over db with a fixed clock and a Recorder.
func setupService(t *testing.T, db types.Database) (*Service, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	svc := New(db, rec, Options{Now: func() time.Time { return today }})
	return svc, rec
}

func mustExec(t *testing.T, db types.Database, query string, args ...any) {
	t.Helper()
	_, err := db.Exec(context.Background(), query, args...)
	require.NoError(t, err)
}

func mustQuery(t *testing.T, db types.Database, query string, args ...any) *types.ResultSet {
	t.Helper()
	rs, err := db.Query(context.Background(), query, args...)
	require.NoError(t, err)
	return rs
}

// countingDB wraps a Database, counts calls, and can inject failures.
type countingDB struct {
	inner     types.Database
	queries   int
	execs     int
	failQuery error
	failExec  error
}

func (c *countingDB) Query(ctx context.Context, query string, args ...any) (*types.ResultSet, error) {
	c.queries++
	if c.failQuery != nil {
		return nil, c.failQuery
	}
	return c.inner.Query(ctx, query, args...)
}

func (c *countingDB) Exec(ctx context.Context, query string, args ...any) (types.WriteResult, error) {
	c.execs++
	if c.failExec != nil {
		return types.WriteResult{}, c.failExec
	}
	return c.inner.Exec(ctx, query, args...)
}

var errDiskGone = errors.New("disk I/O error")
