package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/contactd/contactd/internal/model"
)

// CreateContact inserts a contact and returns it with the storage-assigned
// id and created_at.
func (r *Repository) CreateContact(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	query := `
		INSERT INTO contacts (name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	contact := &model.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}

	err := r.db.QueryRow(ctx, query, in.Name, in.Email, in.Phone, in.Message).
		Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

// ListContacts returns every contact, newest first.
// There is no pagination; the whole table is read.
func (r *Repository) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), message, created_at
		FROM contacts
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	contacts, err := pgx.CollectRows(rows, scanContact)
	if err != nil {
		return nil, fmt.Errorf("failed to scan contacts: %w", err)
	}

	return contacts, nil
}

// CountContacts returns the number of stored contacts.
func (r *Repository) CountContacts(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return n, nil
}

func scanContact(row pgx.CollectableRow) (*model.Contact, error) {
	var c model.Contact
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
