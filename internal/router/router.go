package router

import (
	"net/http"
	"strings"

	"foodshare/internal/handler"
	"foodshare/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	dashboardHandler *handler.DashboardHandler,
	reportHandler *handler.ReportHandler,
	providerHandler *handler.ProviderHandler,
	receiverHandler *handler.ReceiverHandler,
	listingHandler *handler.ListingHandler,
	claimHandler *handler.ClaimHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Dashboard aggregations and the filter option lists
	mux.HandleFunc("/api/dashboard/summary", dashboardHandler.Summary)
	mux.HandleFunc("/api/dashboard/listings", dashboardHandler.Listings)
	mux.HandleFunc("/api/dashboard/quantity-by-city", dashboardHandler.QuantityByCity)
	mux.HandleFunc("/api/dashboard/quantity-by-food-type", dashboardHandler.QuantityByFoodType)
	mux.HandleFunc("/api/dashboard/expiry-trend", dashboardHandler.ExpiryTrend)
	mux.HandleFunc("/api/filters/options", dashboardHandler.FilterOptions)

	// Report catalog: bare path lists the catalog, a trailing id or slug
	// runs that report
	reportRoutes := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/reports" || r.URL.Path == "/api/reports/" {
			reportHandler.List(w, r)
			return
		}
		reportHandler.Run(w, r)
	}
	mux.HandleFunc("/api/reports", reportRoutes)
	mux.HandleFunc("/api/reports/", reportRoutes)

	// Provider routes
	providerRoutes := func(w http.ResponseWriter, r *http.Request) {
		bare := r.URL.Path == "/api/providers" || r.URL.Path == "/api/providers/"

		if bare && r.Method == http.MethodGet {
			providerHandler.List(w, r)
			return
		}
		if bare && r.Method == http.MethodPost {
			providerHandler.Create(w, r)
			return
		}
		if r.URL.Path == "/api/providers/options" {
			providerHandler.Options(w, r)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/contact") {
			providerHandler.UpdateContact(w, r)
			return
		}
		if r.Method == http.MethodDelete {
			providerHandler.Delete(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.HandleFunc("/api/providers", providerRoutes)
	mux.HandleFunc("/api/providers/", providerRoutes)

	// Receiver routes
	receiverRoutes := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/receivers/options" {
			receiverHandler.Options(w, r)
			return
		}
		if r.URL.Path == "/api/receivers" || r.URL.Path == "/api/receivers/" {
			receiverHandler.List(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.HandleFunc("/api/receivers", receiverRoutes)
	mux.HandleFunc("/api/receivers/", receiverRoutes)

	// Food listing routes
	listingRoutes := func(w http.ResponseWriter, r *http.Request) {
		bare := r.URL.Path == "/api/listings" || r.URL.Path == "/api/listings/"

		if bare && r.Method == http.MethodGet {
			listingHandler.Options(w, r)
			return
		}
		if bare && r.Method == http.MethodPost {
			listingHandler.Create(w, r)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/quantity") {
			listingHandler.UpdateQuantity(w, r)
			return
		}
		if r.Method == http.MethodDelete {
			listingHandler.Delete(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.HandleFunc("/api/listings", listingRoutes)
	mux.HandleFunc("/api/listings/", listingRoutes)

	// Claim routes
	claimRoutes := func(w http.ResponseWriter, r *http.Request) {
		bare := r.URL.Path == "/api/claims" || r.URL.Path == "/api/claims/"

		if bare && r.Method == http.MethodGet {
			claimHandler.List(w, r)
			return
		}
		if bare && r.Method == http.MethodPost {
			claimHandler.Create(w, r)
			return
		}
		if r.URL.Path == "/api/claims/eligible-listings" {
			claimHandler.EligibleListings(w, r)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/status") {
			claimHandler.UpdateStatus(w, r)
			return
		}
		if r.Method == http.MethodDelete {
			claimHandler.Delete(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}
	mux.HandleFunc("/api/claims", claimRoutes)
	mux.HandleFunc("/api/claims/", claimRoutes)

	// Apply middleware, outermost first: Recovery -> RequestID -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
