package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/contactd/contactd/internal/handler/dto"
	"github.com/contactd/contactd/internal/model"
	"github.com/contactd/contactd/internal/service"
)

// ContactService is the business logic the contact endpoints depend on.
type ContactService interface {
	Create(ctx context.Context, sub service.ContactSubmission) (*model.Contact, error)
	List(ctx context.Context) ([]*model.Contact, error)
}

// ContactHandler handles HTTP requests for contact operations.
type ContactHandler struct {
	svc    ContactService
	logger *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /api/contact.
func (h *ContactHandler) Create() http.HandlerFunc {
	return errorBoundary(h.logger, "create_contact", h.create)
}

// List handles GET /api/contacts.
func (h *ContactHandler) List() http.HandlerFunc {
	return errorBoundary(h.logger, "list_contacts", h.list)
}

func (h *ContactHandler) create(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeContactRequest(r.Body)
	if err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	contact, err := h.svc.Create(r.Context(), service.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return err
	}

	h.logger.Info("contact_created", "contact_id", contact.ID)

	writeJSON(w, http.StatusCreated, dto.CreateContactResponse{
		Message: "Contact created successfully",
		ID:      contact.ID,
	})
	return nil
}

// decodeContactRequest requires the body to be exactly one JSON object.
func decodeContactRequest(body io.Reader) (*dto.CreateContactRequest, error) {
	dec := json.NewDecoder(body)

	var req *dto.CreateContactRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errors.New("body is null")
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return req, nil
	case err != nil:
		return nil, err
	default:
		return nil, errors.New("unexpected data after JSON object")
	}
}

func (h *ContactHandler) list(w http.ResponseWriter, r *http.Request) error {
	contacts, err := h.svc.List(r.Context())
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, dto.ToContactListResponse(contacts))
	return nil
}
