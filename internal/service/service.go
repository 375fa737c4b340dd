package service

import (
	"context"

	"foodshare/internal/model"
	"foodshare/internal/query"
)

// ProviderService defines operations for provider management.
type ProviderService interface {
	// Create registers a food provider.
	Create(ctx context.Context, req *model.ProviderRequest) (*model.Provider, error)

	// UpdateContact replaces a provider's contact string.
	UpdateContact(ctx context.Context, id int64, contact string) error

	// Delete removes a provider that owns no listings.
	Delete(ctx context.Context, id int64) error

	// List retrieves the provider directory, optionally narrowed to a city.
	List(ctx context.Context, city string) ([]model.Provider, error)

	// Options retrieves id/name pairs for forms and filters.
	Options(ctx context.Context) ([]model.Option, error)
}

// ReceiverService defines read-only operations over receivers.
type ReceiverService interface {
	// List retrieves the receiver directory, optionally narrowed to a city.
	List(ctx context.Context, city string) ([]model.Receiver, error)

	// Options retrieves id/name pairs for forms.
	Options(ctx context.Context) ([]model.Option, error)
}

// ListingService defines operations for food listing management.
type ListingService interface {
	// Create registers a surplus food listing with its derived fields.
	Create(ctx context.Context, req *model.ListingRequest) (*model.FoodListing, error)

	// UpdateQuantity adjusts the quantity of an existing listing.
	UpdateQuantity(ctx context.Context, id int64, quantity int) error

	// Delete removes a listing.
	Delete(ctx context.Context, id int64) error

	// Options retrieves id/name pairs, newest first.
	Options(ctx context.Context) ([]model.Option, error)
}

// ClaimService defines operations for claim management.
type ClaimService interface {
	// Create claims a listing for a receiver.
	Create(ctx context.Context, req *model.ClaimRequest) (*model.Claim, error)

	// UpdateStatus moves a claim to a new status.
	UpdateStatus(ctx context.Context, id int64, status string) error

	// Delete removes a claim.
	Delete(ctx context.Context, id int64) error

	// List retrieves claims with food and receiver names, newest first.
	List(ctx context.Context) ([]model.ClaimDetail, error)

	// EligibleListings retrieves listings open to a new claim.
	EligibleListings(ctx context.Context) ([]model.EligibleListing, error)
}

// ReportService defines the dashboard aggregations and the report catalog.
type ReportService interface {
	// Summary computes the dashboard headline numbers under the filter.
	Summary(ctx context.Context, params model.FilterParams) (*model.DashboardSummary, error)

	// Listings retrieves the filtered listings with provider contacts.
	Listings(ctx context.Context, params model.FilterParams) (*model.ResultSet, error)

	// QuantityByCity totals quantity for the top cities under the filter.
	QuantityByCity(ctx context.Context, params model.FilterParams, limit int) (*model.ResultSet, error)

	// QuantityByFoodType totals quantity per food type under the filter.
	QuantityByFoodType(ctx context.Context, params model.FilterParams) (*model.ResultSet, error)

	// ExpiryTrend totals quantity per expiry month under the filter.
	ExpiryTrend(ctx context.Context, params model.FilterParams) (*model.ResultSet, error)

	// FilterOptions retrieves the selectable values per filter dimension.
	FilterOptions(ctx context.Context) (*model.FilterOptions, error)

	// Catalog lists the fixed analytical reports.
	Catalog() []query.Definition

	// RunReport executes a catalog report by numeric id or slug, binding
	// the caller-supplied parameters.
	RunReport(ctx context.Context, idOrSlug string, params map[string]string) (*model.ResultSet, error)
}
