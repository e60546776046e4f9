package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DB is the subset of *sql.DB the repositories use. Tests substitute fakes.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type sqlRows struct {
	rows *sql.Rows
}

func (r *sqlRows) Next() bool {
	return r.rows.Next()
}

func (r *sqlRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *sqlRows) Err() error {
	return r.rows.Err()
}

func (r *sqlRows) Close() error {
	return r.rows.Close()
}

type sqlDB struct {
	db *sql.DB
}

func NewSQLDB(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &sqlRows{rows: rows}, nil
}

func (s *sqlDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, dsn string, pool PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// QueryExists runs a single-column boolean query such as SELECT EXISTS(...).
func QueryExists(ctx context.Context, db DB, query string, args ...any) (bool, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	var exists bool
	if rows.Next() {
		if err := rows.Scan(&exists); err != nil {
			return false, err
		}
	}
	if err := rows.Err(); err != nil {
		return false, err
	}
	return exists, nil
}
