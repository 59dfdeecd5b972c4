package bookstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/madang/pkg/types"
)

// Shape tells the Executor what a statement produces.
type Shape int

const (
	// Tabular statements return rows.
	Tabular Shape = iota
	// None statements are writes; they return only a WriteResult.
	None
)

func (s Shape) String() string {
	switch s {
	case Tabular:
		return "tabular"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Result holds whichever half of a statement's outcome its Shape asked for.
type Result struct {
	Rows  *types.ResultSet
	Write types.WriteResult
}

// Executor runs statements against the database and reports failures to the
// Surface. A failed statement yields an empty Result and ok=false; it never
// panics.
type Executor struct {
	db      types.Database
	surface Surface
	log     *slog.Logger
}

// NewExecutor wraps db. A nil logger discards log output.
func NewExecutor(db types.Database, surface Surface, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Executor{db: db, surface: surface, log: log}
}

// Run executes stmt with the given bound args.
func (e *Executor) Run(ctx context.Context, shape Shape, stmt string, args ...any) (Result, bool) {
	switch shape {
	case Tabular:
		rows, err := e.db.Query(ctx, stmt, args...)
		if err != nil {
			e.fail(shape, stmt, err)
			return Result{}, false
		}
		return Result{Rows: rows}, true
	case None:
		wr, err := e.db.Exec(ctx, stmt, args...)
		if err != nil {
			e.fail(shape, stmt, err)
			return Result{}, false
		}
		return Result{Write: wr}, true
	default:
		e.fail(shape, stmt, fmt.Errorf("unknown result shape %v", shape))
		return Result{}, false
	}
}

// Read runs a tabular statement.
func (e *Executor) Read(ctx context.Context, stmt string, args ...any) (*types.ResultSet, bool) {
	res, ok := e.Run(ctx, Tabular, stmt, args...)
	return res.Rows, ok
}

// Write runs a write statement.
func (e *Executor) Write(ctx context.Context, stmt string, args ...any) (types.WriteResult, bool) {
	res, ok := e.Run(ctx, None, stmt, args...)
	return res.Write, ok
}

func (e *Executor) fail(shape Shape, stmt string, err error) {
	e.log.Error("statement failed", "shape", shape.String(), "statement", stmt, "error", err)
	e.surface.Error(fmt.Sprintf("Database query failed: %v", err))
}
