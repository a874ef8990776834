package testutil

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contactd/contactd/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 420421

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// TruncateContacts empties the contacts table and restarts its id sequence.
func TruncateContacts(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, "TRUNCATE contacts RESTART IDENTITY"); err != nil {
		return fmt.Errorf("truncate contacts: %w", err)
	}
	return nil
}

// TableCount returns how many tables with the given name exist in the public schema.
func TableCount(ctx context.Context, pool *pgxpool.Pool, table string) (int, error) {
	var n int
	err := pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_name = $1
	`, table).Scan(&n)
	return n, err
}

// ============================================================================
// Test Data Factories
// ============================================================================

var seq atomic.Int64

// NewTestContactInput creates normalized contact fields with unique values.
func NewTestContactInput(t testing.TB, prefix string) model.ContactInput {
	t.Helper()
	n := seq.Add(1)
	return model.ContactInput{
		Name:    fmt.Sprintf("%s %d", prefix, n),
		Email:   fmt.Sprintf("%s-%d@example.com", prefix, n),
		Phone:   "",
		Message: fmt.Sprintf("message %d from %s", n, prefix),
	}
}
