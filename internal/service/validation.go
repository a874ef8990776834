package service

import (
	"fmt"
	"strings"

	"github.com/contactd/contactd/internal/model"
)

// ValidationError reports a client-input defect found before storage is touched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

// ErrInvalidEmail is returned for an email without both "@" and ".".
var ErrInvalidEmail = &ValidationError{Field: "email", Message: "Invalid email format"}

// ContactSubmission holds raw submitted fields.
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ValidateContact checks required fields in the order name, email, message
// and the basic email shape, returning the normalized input.
// Whitespace-only values count as missing.
func ValidateContact(s ContactSubmission) (model.ContactInput, error) {
	in := model.ContactInput{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.ToLower(strings.TrimSpace(s.Email)),
		Phone:   strings.TrimSpace(s.Phone),
		Message: strings.TrimSpace(s.Message),
	}

	switch {
	case in.Name == "":
		return model.ContactInput{}, missingField("name")
	case in.Email == "":
		return model.ContactInput{}, missingField("email")
	case in.Message == "":
		return model.ContactInput{}, missingField("message")
	}

	if !strings.Contains(in.Email, "@") || !strings.Contains(in.Email, ".") {
		return model.ContactInput{}, ErrInvalidEmail
	}

	return in, nil
}
