package handler

// RESPONSE HELPERS:
// These functions standardise how we send JSON responses and errors.
//
// CONSISTENT ERROR FORMAT:
// Every error response from the API has the same shape:
//   {"error": "not_found", "message": "property not found with id abc123"}
//
// The dashboard client relies on this — it always knows what fields to
// expect, regardless of whether it's a 400, 404, or 500.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/property-board/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`   // Machine-readable error type (e.g., "not_found")
	Message string `json:"message"` // Human-readable description
}

// MessageResponse is the body of confirmation-only responses (delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON sends a JSON response with the given status code.
//
// HEADER ORDER MATTERS: headers and status code must be set BEFORE writing
// the body. Once Encode calls w.Write(), the headers are sent and any later
// changes are silently ignored. So: Set header → WriteHeader → Encode.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent — we can only log it.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to the appropriate HTTP status code and sends it.
//
// This is the single place where the service's error taxonomy becomes HTTP:
//
//	ErrValidation → 400 validation_error   (client fault: bad fields)
//	ErrInvalidID  → 400 invalid_id         (client fault: malformed id)
//	ErrNotFound   → 404 not_found
//	ErrStore      → 500 store_error        (backend unavailable)
//
// The service layer never sees a status code; different consumers (HTTP,
// CLI) map the same domain errors however their protocol requires.
//
// errors.Is() walks the whole error chain (via Unwrap), so it still matches
// after the service wraps with fmt.Errorf("...: %w", err). errors.As()
// extracts the *AppError for its human-readable message.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest // 400
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrInvalidID):
			status = http.StatusBadRequest // 400
			errorType = "invalid_id"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound // 404
			errorType = "not_found"
		case errors.Is(err, apperror.ErrStore):
			status = http.StatusInternalServerError // 500
			errorType = "store_error"
		}

		writeJSON(w, status, ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
		})
		return
	}

	// Unknown error — return a generic 500. Never expose internal error
	// details (SQL, file paths) to the client.
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
