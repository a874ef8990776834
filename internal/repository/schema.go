package repository

import (
	"context"
	"fmt"
)

// schemaStatements create the contacts table and its listing index.
// Both are IF NOT EXISTS so they can run on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS contacts (
		id         BIGSERIAL PRIMARY KEY,
		name       VARCHAR(100) NOT NULL,
		email      VARCHAR(100) NOT NULL,
		phone      VARCHAR(20),
		message    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts (created_at DESC, id DESC)`,
}

// EnsureSchema creates the contacts table if it does not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// DropSchema removes the contacts table and every stored contact.
func (r *Repository) DropSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DROP TABLE IF EXISTS contacts`); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}
