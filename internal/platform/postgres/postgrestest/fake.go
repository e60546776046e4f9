// Package postgrestest provides in-memory fakes of postgres.DB for repository tests.
package postgrestest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chat-analytics-service/internal/platform/postgres"
)

type Row []any

// Rows implements postgres.RowScanner over fixed values.
type Rows struct {
	Rows    []Row
	IterErr error

	i int
}

func NewRows(rows ...Row) *Rows {
	return &Rows{Rows: rows}
}

func (f *Rows) Next() bool {
	return f.i < len(f.Rows)
}

func (f *Rows) Scan(dest ...any) error {
	if f.i >= len(f.Rows) {
		return errors.New("no more rows")
	}
	row := f.Rows[f.i]
	if len(dest) != len(row) {
		return fmt.Errorf("dest length mismatch: %d != %d", len(dest), len(row))
	}
	for i := range dest {
		if err := assign(dest[i], row[i]); err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
	}
	f.i++
	return nil
}

func (f *Rows) Err() error {
	return f.IterErr
}

func (f *Rows) Close() error {
	return nil
}

func assign(dest, v any) error {
	switch d := dest.(type) {
	case *int64:
		n, ok := v.(int64)
		if !ok {
			return errors.New("type assertion to int64 failed")
		}
		*d = n
	case *string:
		s, ok := v.(string)
		if !ok {
			return errors.New("type assertion to string failed")
		}
		*d = s
	case *bool:
		b, ok := v.(bool)
		if !ok {
			return errors.New("type assertion to bool failed")
		}
		*d = b
	case *time.Time:
		t, ok := v.(time.Time)
		if !ok {
			return errors.New("type assertion to time.Time failed")
		}
		*d = t
	case *sql.NullFloat64:
		switch x := v.(type) {
		case nil:
			*d = sql.NullFloat64{}
		case float64:
			*d = sql.NullFloat64{Float64: x, Valid: true}
		default:
			return errors.New("type assertion to float64 failed")
		}
	default:
		return fmt.Errorf("unsupported dest type %T", dest)
	}
	return nil
}

type Result struct {
	Affected int64
}

func (r Result) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (r Result) RowsAffected() (int64, error) {
	return r.Affected, nil
}

type Call struct {
	Query string
	Args  []any
}

// DB implements postgres.DB. Every call is recorded in Queries or Execs.
type DB struct {
	QueryFn func(ctx context.Context, query string, args ...any) (postgres.RowScanner, error)
	ExecFn  func(ctx context.Context, query string, args ...any) (sql.Result, error)

	Queries []Call
	Execs   []Call
}

var _ postgres.DB = (*DB)(nil)

func (f *DB) QueryContext(ctx context.Context, query string, args ...any) (postgres.RowScanner, error) {
	f.Queries = append(f.Queries, Call{Query: query, Args: args})
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return NewRows(), nil
}

func (f *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.Execs = append(f.Execs, Call{Query: query, Args: args})
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return Result{Affected: 1}, nil
}
