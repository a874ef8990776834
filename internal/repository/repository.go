// Package repository provides database access layer.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Default connection pool bounds.
const (
	DefaultMinConns int32 = 1
	DefaultMaxConns int32 = 20
)

// DB is the subset of *pgxpool.Pool the repository uses.
// Every call acquires a pooled connection and releases it when the
// statement (or the returned rows) completes.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig holds connection pool settings.
type PoolConfig struct {
	DatabaseURL string
	MinConns    int32
	MaxConns    int32
}

// Repository provides database access methods.
type Repository struct {
	db DB
}

// New creates a new Repository with a connection pool.
// Statements run in autocommit mode; no method opens a transaction.
func New(ctx context.Context, cfg PoolConfig) (*Repository, error) {
	config, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MinConns = cfg.MinConns
	config.MaxConns = cfg.MaxConns
	if config.MaxConns <= 0 {
		config.MaxConns = DefaultMaxConns
	}
	if config.MinConns < 0 || config.MinConns > config.MaxConns {
		config.MinConns = DefaultMinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: pool}, nil
}

// NewWithDB wraps an existing pool-like handle.
func NewWithDB(db DB) *Repository {
	return &Repository{db: db}
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close closes the connection pool. It blocks until every acquired
// connection has been released.
func (r *Repository) Close() {
	r.db.Close()
}

// Pool returns the underlying *pgxpool.Pool, or nil when the repository
// was built over another DB implementation.
func (r *Repository) Pool() *pgxpool.Pool {
	pool, _ := r.db.(*pgxpool.Pool)
	return pool
}
