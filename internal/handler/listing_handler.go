package handler

import (
	"net/http"

	"foodshare/internal/model"
	"foodshare/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ListingHandler handles food listing HTTP requests.
type ListingHandler struct {
	service  service.ListingService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewListingHandler creates a new food listing handler.
func NewListingHandler(service service.ListingService, validate *validator.Validate, logger zerolog.Logger) *ListingHandler {
	return &ListingHandler{
		service:  service,
		validate: validate,
		logger:   logger.With().Str("handler", "listing").Logger(),
	}
}

// Options handles GET /api/listings requests, returning id/name pairs
// newest first for form dropdowns.
func (h *ListingHandler) Options(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	options, err := h.service.Options(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, options)
}

// Create handles POST /api/listings requests.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.ListingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, err.Error(), h.logger)
		return
	}

	listing, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, listing)
}

// UpdateQuantity handles PATCH /api/listings/{id}/quantity requests.
func (h *ListingHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, err := pathID(r.URL.Path, "/api/listings/", "/quantity")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid listing id", h.logger)
		return
	}

	var req model.QuantityUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, err.Error(), h.logger)
		return
	}

	if err := h.service.UpdateQuantity(r.Context(), id, req.Quantity); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/listings/{id} requests. Claims against the
// listing are left in place.
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, err := pathID(r.URL.Path, "/api/listings/", "")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid listing id", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
