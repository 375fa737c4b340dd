package repository

import (
	"context"
	"fmt"

	"foodshare/internal/model"

	"github.com/rs/zerolog"
)

// claimRepository implements the ClaimRepository interface on the memoizing
// store.
type claimRepository struct {
	store  *Store
	logger zerolog.Logger
}

// NewClaimRepository creates a new store-backed claim repository.
func NewClaimRepository(store *Store, logger zerolog.Logger) ClaimRepository {
	return &claimRepository{
		store:  store,
		logger: logger.With().Str("repository", "claim").Logger(),
	}
}

// Create inserts a claim and returns its new identity.
func (r *claimRepository) Create(ctx context.Context, c *model.Claim) (int64, error) {
	stmt := `INSERT INTO claims (Food_ID, Receiver_ID, Status) VALUES (?, ?, ?)`

	res, err := r.store.Write(ctx, stmt, c.FoodID, c.ReceiverID, c.Status)
	if err != nil {
		r.logger.Error().Err(err).Int64("food_id", c.FoodID).Msg("failed to insert claim")
		return 0, fmt.Errorf("failed to insert claim: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read claim id: %w", err)
	}

	return id, nil
}

// UpdateStatus moves a claim to a new status.
func (r *claimRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	stmt := `UPDATE claims SET Status = ? WHERE Claim_ID = ?`

	if _, err := r.store.Write(ctx, stmt, status, id); err != nil {
		r.logger.Error().Err(err).Int64("claim_id", id).Msg("failed to update claim status")
		return fmt.Errorf("failed to update claim status: %w", err)
	}

	return nil
}

// Delete removes a claim, freeing its listing for a fresh claim.
func (r *claimRepository) Delete(ctx context.Context, id int64) error {
	stmt := `DELETE FROM claims WHERE Claim_ID = ?`

	if _, err := r.store.Write(ctx, stmt, id); err != nil {
		r.logger.Error().Err(err).Int64("claim_id", id).Msg("failed to delete claim")
		return fmt.Errorf("failed to delete claim: %w", err)
	}

	return nil
}

// List retrieves claims joined with food and receiver names, newest first.
// The food join is outer: claims survive their listing's deletion and show
// an empty food name afterwards.
func (r *claimRepository) List(ctx context.Context) ([]model.ClaimDetail, error) {
	q := `
		SELECT c.Claim_ID, c.Food_ID, f.Food_Name, c.Receiver_ID, rc.Name, c.Status
		FROM claims c
		LEFT JOIN food_listings f ON c.Food_ID = f.Food_ID
		LEFT JOIN receivers rc ON c.Receiver_ID = rc.Receiver_ID
		ORDER BY c.Claim_ID DESC
	`

	rs, err := r.store.Read(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query claims")
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}

	claims := make([]model.ClaimDetail, 0, rs.Len())
	for _, row := range rs.Rows {
		claims = append(claims, model.ClaimDetail{
			ID:           asInt64(row[0]),
			FoodID:       asInt64(row[1]),
			FoodName:     asString(row[2]),
			ReceiverID:   asInt64(row[3]),
			ReceiverName: asString(row[4]),
			Status:       asString(row[5]),
		})
	}

	return claims, nil
}

// EligibleListings retrieves listings carrying no claim of any status. A
// cancelled claim still blocks its listing until the claim row is deleted.
func (r *claimRepository) EligibleListings(ctx context.Context) ([]model.EligibleListing, error) {
	q := `
		SELECT f.Food_ID, f.Food_Name, f.Location, f.Quantity, f.Expiry_Date
		FROM food_listings f
		LEFT JOIN claims c ON f.Food_ID = c.Food_ID
		WHERE c.Claim_ID IS NULL
		ORDER BY f.Food_ID DESC
	`

	rs, err := r.store.Read(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query eligible listings")
		return nil, fmt.Errorf("failed to query eligible listings: %w", err)
	}

	listings := make([]model.EligibleListing, 0, rs.Len())
	for _, row := range rs.Rows {
		listings = append(listings, model.EligibleListing{
			ID:         asInt64(row[0]),
			FoodName:   asString(row[1]),
			Location:   asString(row[2]),
			Quantity:   asInt(row[3]),
			ExpiryDate: asString(row[4]),
		})
	}

	return listings, nil
}

// HasClaims reports whether any claim, whatever its status, exists against
// the listing.
func (r *claimRepository) HasClaims(ctx context.Context, foodID int64) (bool, error) {
	q := `SELECT COUNT(*) FROM claims WHERE Food_ID = ?`

	rs, err := r.store.Read(ctx, q, foodID)
	if err != nil {
		r.logger.Error().Err(err).Int64("food_id", foodID).Msg("failed to count claims for listing")
		return false, fmt.Errorf("failed to count claims for listing: %w", err)
	}

	return rs.Len() > 0 && asInt64(rs.Rows[0][0]) > 0, nil
}
