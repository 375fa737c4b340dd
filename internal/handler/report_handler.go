package handler

import (
	"fmt"
	"net/http"
	"strings"

	"foodshare/internal/model"
	"foodshare/internal/service"

	"github.com/rs/zerolog"
)

// ReportHandler serves the fixed analytical report catalog.
type ReportHandler struct {
	service service.ReportService
	logger  zerolog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service service.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With().Str("handler", "report").Logger(),
	}
}

// List handles GET /api/reports requests, returning the catalog with each
// report's id, slug, display name, and parameters.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Catalog())
}

// Run handles GET /api/reports/{id-or-slug} requests. Report parameters
// arrive as query parameters named after the catalog definition.
func (h *ReportHandler) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	idOrSlug := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/reports/"), "/")
	if idOrSlug == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "report id or slug is required", h.logger)
		return
	}

	params := make(map[string]string)
	for key, values := range r.URL.Query() {
		if key == "format" || len(values) == 0 {
			continue
		}
		params[key] = values[0]
	}

	rs, err := h.service.RunReport(r.Context(), idOrSlug, params)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeResultSet(w, r, rs, fmt.Sprintf("report_%s.csv", idOrSlug), h.logger)
}
