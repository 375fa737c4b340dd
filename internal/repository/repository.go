package repository

import (
	"context"

	"foodshare/internal/model"
	"foodshare/internal/query"
)

// ProviderRepository defines the interface for provider data access operations.
type ProviderRepository interface {
	// Create inserts a provider and returns its new identity.
	Create(ctx context.Context, p *model.Provider) (int64, error)

	// UpdateContact replaces the contact string of a provider. Updating a
	// missing identity is a no-op, not an error.
	UpdateContact(ctx context.Context, id int64, contact string) error

	// Delete removes a provider. Providers that still own food listings
	// cannot be deleted; the failure carries the store's cause text.
	Delete(ctx context.Context, id int64) error

	// List retrieves the provider directory, optionally restricted to an
	// exact city match.
	List(ctx context.Context, city string) ([]model.Provider, error)

	// Options retrieves identity/name pairs for selection lists.
	Options(ctx context.Context) ([]model.Option, error)

	// IDsByName resolves provider names to identifiers. Unknown names
	// resolve to nothing.
	IDsByName(ctx context.Context, names []string) ([]int64, error)

	// Exists reports whether a provider identity resolves.
	Exists(ctx context.Context, id int64) (bool, error)
}

// ReceiverRepository defines read-only access to receivers.
type ReceiverRepository interface {
	// List retrieves receivers, optionally restricted to an exact city match.
	List(ctx context.Context, city string) ([]model.Receiver, error)

	// Options retrieves identity/name pairs for selection lists.
	Options(ctx context.Context) ([]model.Option, error)

	// Exists reports whether a receiver identity resolves.
	Exists(ctx context.Context, id int64) (bool, error)
}

// ListingRepository defines the interface for food listing data access operations.
type ListingRepository interface {
	// Create inserts a listing, derived fields included, and returns its
	// new identity.
	Create(ctx context.Context, l *model.FoodListing) (int64, error)

	// UpdateQuantity replaces the quantity of a listing. The stored
	// quantity category is a creation-time snapshot and stays unchanged.
	UpdateQuantity(ctx context.Context, id int64, quantity int) error

	// Delete removes a listing. Claims against it are not cleaned up.
	Delete(ctx context.Context, id int64) error

	// Options retrieves identity/name pairs, newest first.
	Options(ctx context.Context) ([]model.Option, error)

	// Exists reports whether a listing identity resolves.
	Exists(ctx context.Context, id int64) (bool, error)
}

// ClaimRepository defines the interface for claim data access operations.
type ClaimRepository interface {
	// Create inserts a claim and returns its new identity.
	Create(ctx context.Context, c *model.Claim) (int64, error)

	// UpdateStatus moves a claim to a new status. Updating a missing
	// identity is a no-op, not an error.
	UpdateStatus(ctx context.Context, id int64, status string) error

	// Delete removes a claim.
	Delete(ctx context.Context, id int64) error

	// List retrieves claims joined with food and receiver names, newest
	// first.
	List(ctx context.Context) ([]model.ClaimDetail, error)

	// EligibleListings retrieves listings with no claim of any status.
	EligibleListings(ctx context.Context) ([]model.EligibleListing, error)

	// HasClaims reports whether any claim, whatever its status, exists
	// against the listing.
	HasClaims(ctx context.Context, foodID int64) (bool, error)
}

// ReportRepository runs the dashboard aggregations and the fixed report
// catalog. Every read flows through the memoizing store.
type ReportRepository interface {
	// Summary computes the dashboard headline numbers under the filter.
	Summary(ctx context.Context, f query.ListingFilter) (*model.DashboardSummary, error)

	// Listings retrieves the filtered listings joined with provider
	// contact details, soonest expiry first.
	Listings(ctx context.Context, f query.ListingFilter) (*model.ResultSet, error)

	// QuantityByCity totals quantity per city, descending; limit > 0
	// keeps the top N cities.
	QuantityByCity(ctx context.Context, f query.ListingFilter, limit int) (*model.ResultSet, error)

	// QuantityByFoodType totals quantity per food type, descending.
	QuantityByFoodType(ctx context.Context, f query.ListingFilter) (*model.ResultSet, error)

	// ExpiryTrend totals quantity per expiry month, chronological.
	ExpiryTrend(ctx context.Context, f query.ListingFilter) (*model.ResultSet, error)

	// FilterOptions retrieves the distinct values for each filter dimension.
	FilterOptions(ctx context.Context) (*model.FilterOptions, error)

	// Run executes one catalog definition with its bound arguments.
	Run(ctx context.Context, def query.Definition, args []any) (*model.ResultSet, error)
}
