package handler

import (
	"net/http"
	"strconv"

	"foodshare/internal/model"
	"foodshare/internal/service"

	"github.com/rs/zerolog"
)

// defaultCityLimit caps the quantity-by-city chart when the caller does
// not choose a limit.
const defaultCityLimit = 10

// DashboardHandler serves the filtered dashboard aggregations.
type DashboardHandler struct {
	service service.ReportService
	logger  zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service service.ReportService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("handler", "dashboard").Logger(),
	}
}

// Summary handles GET /api/dashboard/summary requests.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	summary, err := h.service.Summary(r.Context(), filterParams(r))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Listings handles GET /api/dashboard/listings requests.
func (h *DashboardHandler) Listings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	rs, err := h.service.Listings(r.Context(), filterParams(r))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeResultSet(w, r, rs, "listings.csv", h.logger)
}

// QuantityByCity handles GET /api/dashboard/quantity-by-city requests.
func (h *DashboardHandler) QuantityByCity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	limit := defaultCityLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "limit must be a positive integer", h.logger)
			return
		}
		limit = n
	}

	rs, err := h.service.QuantityByCity(r.Context(), filterParams(r), limit)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeResultSet(w, r, rs, "quantity_by_city.csv", h.logger)
}

// QuantityByFoodType handles GET /api/dashboard/quantity-by-food-type
// requests.
func (h *DashboardHandler) QuantityByFoodType(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	rs, err := h.service.QuantityByFoodType(r.Context(), filterParams(r))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeResultSet(w, r, rs, "quantity_by_food_type.csv", h.logger)
}

// ExpiryTrend handles GET /api/dashboard/expiry-trend requests.
func (h *DashboardHandler) ExpiryTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	rs, err := h.service.ExpiryTrend(r.Context(), filterParams(r))
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeResultSet(w, r, rs, "expiry_trend.csv", h.logger)
}

// FilterOptions handles GET /api/filters/options requests, returning the
// selectable values per filter dimension.
func (h *DashboardHandler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	options, err := h.service.FilterOptions(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, options)
}

// filterParams reads the repeatable filter dimensions off the query
// string. Absent dimensions stay inactive.
func filterParams(r *http.Request) model.FilterParams {
	q := r.URL.Query()
	return model.FilterParams{
		Cities:    q["city"],
		Providers: q["provider"],
		FoodTypes: q["food_type"],
		MealTypes: q["meal_type"],
	}
}
