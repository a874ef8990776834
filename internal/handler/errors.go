package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/contactd/contactd/internal/handler/dto"
	"github.com/contactd/contactd/internal/middleware"
	"github.com/contactd/contactd/internal/service"
)

// Error codes returned alongside the error message.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// internalErrorMessage is the only text callers see for unexpected failures.
const internalErrorMessage = "Internal server error"

// apiFunc is a handler that writes its own success response and returns
// any failure for errorBoundary to render.
type apiFunc func(w http.ResponseWriter, r *http.Request) error

// errorBoundary maps a returned error to a status and JSON body:
// *service.ValidationError becomes 400 with its message, anything else
// is logged and becomes a generic 500.
func errorBoundary(logger *slog.Logger, op string, fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var ve *service.ValidationError
		if errors.As(err, &ve) {
			logger.Debug("validation_failed",
				"op", op,
				"field", ve.Field,
				"request_id", middleware.GetRequestID(r.Context()),
			)
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: ve.Message, Code: CodeValidation})
			return
		}

		logger.Error("internal_error",
			"op", op,
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: internalErrorMessage, Code: CodeInternal})
	}
}
