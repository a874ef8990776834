// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contactd/contactd/internal/metrics"
	"github.com/contactd/contactd/internal/model"
)

// ContactStore persists and reads contacts.
type ContactStore interface {
	CreateContact(ctx context.Context, in model.ContactInput) (*model.Contact, error)
	ListContacts(ctx context.Context) ([]*model.Contact, error)
}

// EventPublisher is notified after a contact is stored.
type EventPublisher interface {
	ContactCreated(ctx context.Context, contact *model.Contact)
}

type noopPublisher struct{}

func (noopPublisher) ContactCreated(context.Context, *model.Contact) {}

// ContactService handles contact business logic.
type ContactService struct {
	store     ContactStore
	publisher EventPublisher
	metrics   metrics.Recorder
}

// NewContactService creates a new ContactService. publisher and recorder may be nil.
func NewContactService(store ContactStore, publisher EventPublisher, recorder metrics.Recorder) *ContactService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ContactService{
		store:     store,
		publisher: publisher,
		metrics:   recorder,
	}
}

// Create validates the submission and stores it.
// A *ValidationError is returned without any storage access.
func (s *ContactService) Create(ctx context.Context, sub ContactSubmission) (*model.Contact, error) {
	in, err := ValidateContact(sub)
	if err != nil {
		s.metrics.IncContactRejected()
		return nil, err
	}

	contact, err := s.store.CreateContact(ctx, in)
	if err != nil {
		s.metrics.IncContactFailed()
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.metrics.IncContactCreated()
	s.publisher.ContactCreated(ctx, contact)

	return contact, nil
}

// List returns all contacts, newest first.
func (s *ContactService) List(ctx context.Context) ([]*model.Contact, error) {
	start := time.Now()

	contacts, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []*model.Contact{}
	}

	s.metrics.ObserveListContacts(len(contacts), time.Since(start))
	return contacts, nil
}

// IsValidationError reports whether err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
