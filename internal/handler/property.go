package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/property-board/internal/apperror"
	"github.com/sakif/property-board/internal/model"
	"github.com/sakif/property-board/internal/service"
)

// PropertyHandler exposes the CRUD protocol for property listings.
//
// The handler's only jobs are HTTP concerns: decode the body, pull path
// parameters, pick a status code. Everything else — validation, id parsing,
// store access — happens in the service. This keeps each of the five
// operations a few lines long and trivially testable with httptest.
type PropertyHandler struct {
	service *service.PropertyService
	logger  *slog.Logger
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(service *service.PropertyService, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		service: service,
		logger:  logger,
	}
}

// decodeDraft reads a {title, price, location} body.
//
// A body where price is not a JSON number (e.g. "cheap") fails decoding —
// that is a request-level fault, so it surfaces as a validation error rather
// than a bare "bad JSON" 400 with a different shape.
func decodeDraft(r *http.Request) (model.PropertyDraft, error) {
	var draft model.PropertyDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		return model.PropertyDraft{}, apperror.ValidationFailed("body", "request body must be valid JSON with a numeric price")
	}
	return draft, nil
}

// HandleCreate saves a new property listing.
//
// HTTP: POST /api/properties
// REQUEST BODY: {"title": "Loft", "price": 1500, "location": "Downtown"}
// SUCCESS: 201 Created + the stored record (id and timestamps filled in).
// The 201 is what distinguishes "created" from the plain 200 of read/update.
func (h *PropertyHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	draft, err := decodeDraft(r)
	if err != nil {
		h.logger.Warn("invalid property JSON", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	property, err := h.service.Create(r.Context(), draft)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, property)
}

// HandleList returns all property listings.
//
// HTTP: GET /api/properties
// SUCCESS: 200 + array of records (possibly empty, never null).
// The only failure is store unavailability → 500.
func (h *PropertyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	properties, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, properties)
}

// HandleGetByID returns a single property listing.
//
// HTTP: GET /api/properties/{id}
// Chi provides chi.URLParam(r, "id") to extract the URL parameter.
// 404 for a well-formed id with no record, 400 for a malformed id.
func (h *PropertyHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	property, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, property)
}

// HandleUpdate replaces the mutable fields of a property listing.
//
// HTTP: PUT /api/properties/{id}
// REQUEST BODY: {"title", "price", "location"} — all three required; a
// missing field is a 400, never "keep the old value".
// SUCCESS: 200 + the updated record with a refreshed updatedAt.
func (h *PropertyHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	draft, err := decodeDraft(r)
	if err != nil {
		h.logger.Warn("invalid property JSON", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	property, err := h.service.Update(r.Context(), id, draft)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, property)
}

// HandleDelete removes a property listing.
//
// HTTP: DELETE /api/properties/{id}
// SUCCESS: 200 + {"message": "Property deleted"} — a body, not a 204, so
// clients get an explicit confirmation payload.
func (h *PropertyHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Property deleted"})
}
