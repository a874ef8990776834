// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/contactd/contactd/internal/model"
)

// CreateContactRequest represents the request body for a contact submission.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// CreateContactResponse is returned after a contact is stored.
type CreateContactResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ContactResponse represents a contact in API responses.
type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactListResponse represents the full contact listing.
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Count    int               `json:"count"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ToContactResponse converts a Contact model to ContactResponse DTO.
func ToContactResponse(c *model.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

// ToContactListResponse converts contacts to the listing DTO.
// Count always equals len(Contacts).
func ToContactListResponse(contacts []*model.Contact) *ContactListResponse {
	responses := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		responses[i] = ToContactResponse(c)
	}
	return &ContactListResponse{
		Contacts: responses,
		Count:    len(responses),
	}
}
