package repository

import (
	"context"
	"fmt"

	"foodshare/internal/model"

	"github.com/rs/zerolog"
)

// listingRepository implements the ListingRepository interface on the
// memoizing store.
type listingRepository struct {
	store  *Store
	logger zerolog.Logger
}

// NewListingRepository creates a new store-backed food listing repository.
func NewListingRepository(store *Store, logger zerolog.Logger) ListingRepository {
	return &listingRepository{
		store:  store,
		logger: logger.With().Str("repository", "listing").Logger(),
	}
}

// Create inserts a listing and returns its new identity. DaysToExpiry and
// QuantityCategory must already be populated; they are stored verbatim.
func (r *listingRepository) Create(ctx context.Context, l *model.FoodListing) (int64, error) {
	stmt := `
		INSERT INTO food_listings
			(Food_Name, Quantity, Expiry_Date, Provider_ID, Provider_Type,
			 Location, Food_Type, Meal_Type, Days_To_Expiry, Quantity_Category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.store.Write(ctx, stmt,
		l.FoodName, l.Quantity, l.ExpiryDate, l.ProviderID, l.ProviderType,
		l.Location, l.FoodType, l.MealType, l.DaysToExpiry, l.QuantityCategory)
	if err != nil {
		r.logger.Error().Err(err).Str("food_name", l.FoodName).Msg("failed to insert food listing")
		return 0, fmt.Errorf("failed to insert food listing: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read food listing id: %w", err)
	}

	return id, nil
}

// UpdateQuantity replaces the quantity of a listing. The stored quantity
// category stays at its creation-time value.
func (r *listingRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	stmt := `UPDATE food_listings SET Quantity = ? WHERE Food_ID = ?`

	if _, err := r.store.Write(ctx, stmt, quantity, id); err != nil {
		r.logger.Error().Err(err).Int64("food_id", id).Msg("failed to update listing quantity")
		return fmt.Errorf("failed to update listing quantity: %w", err)
	}

	return nil
}

// Delete removes a listing. Nothing references food_listings, so the delete
// succeeds even when claims against the listing exist.
func (r *listingRepository) Delete(ctx context.Context, id int64) error {
	stmt := `DELETE FROM food_listings WHERE Food_ID = ?`

	if _, err := r.store.Write(ctx, stmt, id); err != nil {
		r.logger.Error().Err(err).Int64("food_id", id).Msg("failed to delete food listing")
		return fmt.Errorf("failed to delete food listing: %w", err)
	}

	return nil
}

// Options retrieves identity/name pairs, newest listing first.
func (r *listingRepository) Options(ctx context.Context) ([]model.Option, error) {
	q := `SELECT Food_ID, Food_Name FROM food_listings ORDER BY Food_ID DESC`

	rs, err := r.store.Read(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query listing options")
		return nil, fmt.Errorf("failed to query listing options: %w", err)
	}

	return optionsFromResultSet(rs), nil
}

// Exists reports whether a listing identity resolves.
func (r *listingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	q := `SELECT COUNT(*) FROM food_listings WHERE Food_ID = ?`

	rs, err := r.store.Read(ctx, q, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("food_id", id).Msg("failed to check listing existence")
		return false, fmt.Errorf("failed to check listing existence: %w", err)
	}

	return rs.Len() > 0 && asInt64(rs.Rows[0][0]) > 0, nil
}
