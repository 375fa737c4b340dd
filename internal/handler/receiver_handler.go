package handler

import (
	"net/http"

	"foodshare/internal/model"
	"foodshare/internal/service"

	"github.com/rs/zerolog"
)

// ReceiverHandler handles receiver-related HTTP requests. Receivers are
// read-only reference data.
type ReceiverHandler struct {
	service service.ReceiverService
	logger  zerolog.Logger
}

// NewReceiverHandler creates a new receiver handler.
func NewReceiverHandler(service service.ReceiverService, logger zerolog.Logger) *ReceiverHandler {
	return &ReceiverHandler{
		service: service,
		logger:  logger.With().Str("handler", "receiver").Logger(),
	}
}

// List handles GET /api/receivers requests. An optional city query
// parameter narrows the directory to one city.
func (h *ReceiverHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	receivers, err := h.service.List(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, receivers)
}

// Options handles GET /api/receivers/options requests.
func (h *ReceiverHandler) Options(w http.ResponseWriter, r *http.Request) {
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
