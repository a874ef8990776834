// Package model defines domain entities for the application.
package model

import (
	"strconv"
	"time"
)

// Contact represents a stored contact-form submission.
// Contacts are write-once: created by the API, never updated or deleted.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactInput holds normalized fields ready for insertion.
// ID and CreatedAt are assigned by storage.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactEvent is the payload published when a contact is created.
type ContactEvent struct {
	EventID   string `json:"eid"` // ULID
	Type      string `json:"type"`
	ContactID int64  `json:"cid"`
	Name      string `json:"n"`
	Email     string `json:"e"`
	CreatedAt int64  `json:"t"` // Unix milliseconds
}

// EventTypeContactCreated identifies contact creation events.
const EventTypeContactCreated = "contact.created"

// ToEvent builds the creation event for the contact.
func (c *Contact) ToEvent(eventID string) ContactEvent {
	return ContactEvent{
		EventID:   eventID,
		Type:      EventTypeContactCreated,
		ContactID: c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt.UnixMilli(),
	}
}

// StreamFields flattens the event for a Redis stream entry.
func (e ContactEvent) StreamFields() map[string]any {
	return map[string]any{
		"event_id":   e.EventID,
		"type":       e.Type,
		"contact_id": strconv.FormatInt(e.ContactID, 10),
		"created_at": strconv.FormatInt(e.CreatedAt, 10),
	}
}
