package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/getplanner/backend/internal/domain"
)

// FieldError is one field/message pair in a rejected request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorDetail is the payload of every error response.
type ErrorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes a uniform error body with the given status and code.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// respondInvalidInput rejects a request whose body failed field validation,
// listing every offending field.
func respondInvalidInput(w http.ResponseWriter, fields []FieldError) {
	respondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{Code: "invalid_input", Message: "Invalid input", Fields: fields},
	})
}

// respondServiceError maps a service-layer error onto the HTTP boundary:
// domain not-found and validation faults become client faults with their
// messages exposed; anything else becomes an opaque 500, logged but never
// detailed to the caller.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", notFoundMessage)
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	default:
		slog.ErrorContext(r.Context(), "request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.ActivityService.Create: validation error: title is required"
// becomes "title is required".
//
// It walks the unwrap chain looking for the error that wraps the sentinel
// directly, rather than searching the formatted string, so request-derived
// text inside a message can never be mistaken for the sentinel.
func unwrapMessage(err error) string {
	prefix := domain.ErrValidation.Error() + ": "
	for e := err; e != nil; e = errors.Unwrap(e) {
		if msg := e.Error(); strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return domain.ErrValidation.Error()
}
