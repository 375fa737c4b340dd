package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"foodshare/internal/model"
	"foodshare/internal/repository"

	"github.com/rs/zerolog"
)

// expiryLayout is the calendar-date form listings carry.
const expiryLayout = "2006-01-02"

// listingService implements ListingService.
type listingService struct {
	listingRepo  repository.ListingRepository
	providerRepo repository.ProviderRepository
	logger       zerolog.Logger

	// now is replaceable so tests can pin the day the derived
	// days-to-expiry snapshot is computed against.
	now func() time.Time
}

// NewListingService creates a new food listing service.
func NewListingService(
	listingRepo repository.ListingRepository,
	providerRepo repository.ProviderRepository,
	logger zerolog.Logger,
) ListingService {
	return &listingService{
		listingRepo:  listingRepo,
		providerRepo: providerRepo,
		logger:       logger.With().Str("service", "listing").Logger(),
		now:          time.Now,
	}
}

// Create registers a surplus food listing. DaysToExpiry and
// QuantityCategory are computed here, once; later reads never recompute
// them. A date already in the past is allowed and yields a negative
// DaysToExpiry.
func (s *listingService) Create(ctx context.Context, req *model.ListingRequest) (*model.FoodListing, error) {
	if strings.TrimSpace(req.FoodName) == "" || strings.TrimSpace(req.Location) == "" {
		s.logger.Warn().Str("food_name", req.FoodName).Str("location", req.Location).Msg("listing create missing food name or location")
		return nil, model.ErrMissingField
	}

	if req.Quantity < 0 {
		s.logger.Warn().Int("quantity", req.Quantity).Msg("invalid quantity")
		return nil, model.ErrInvalidQuantity
	}

	expiry, err := time.Parse(expiryLayout, req.ExpiryDate)
	if err != nil {
		s.logger.Warn().Str("expiry_date", req.ExpiryDate).Msg("invalid expiry date")
		return nil, model.ErrInvalidExpiryDate
	}

	exists, err := s.providerRepo.Exists(ctx, req.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	if !exists {
		s.logger.Warn().Int64("provider_id", req.ProviderID).Msg("provider not found")
		return nil, model.ErrProviderNotFound
	}

	listing := &model.FoodListing{
		FoodName:         req.FoodName,
		Quantity:         req.Quantity,
		ExpiryDate:       req.ExpiryDate,
		ProviderID:       req.ProviderID,
		ProviderType:     req.ProviderType,
		Location:         req.Location,
		FoodType:         req.FoodType,
		MealType:         req.MealType,
		DaysToExpiry:     s.daysUntil(expiry),
		QuantityCategory: model.CategorizeQuantity(req.Quantity),
	}

	id, err := s.listingRepo.Create(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	listing.ID = id

	s.logger.Info().
		Int64("food_id", id).
		Str("food_name", listing.FoodName).
		Int("days_to_expiry", listing.DaysToExpiry).
		Msg("listing created")
	return listing, nil
}

// UpdateQuantity adjusts the quantity of an existing listing. The stored
// quantity category keeps its creation-time value.
func (s *listingService) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	if quantity < 0 {
		s.logger.Warn().Int64("food_id", id).Int("quantity", quantity).Msg("invalid quantity")
		return model.ErrInvalidQuantity
	}

	exists, err := s.listingRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update listing quantity: %w", err)
	}
	if !exists {
		s.logger.Debug().Int64("food_id", id).Msg("listing not found")
		return model.ErrListingNotFound
	}

	if err := s.listingRepo.UpdateQuantity(ctx, id, quantity); err != nil {
		return fmt.Errorf("failed to update listing quantity: %w", err)
	}

	s.logger.Info().Int64("food_id", id).Int("quantity", quantity).Msg("listing quantity updated")
	return nil
}

// Delete removes a listing. Claims against the listing stay behind and
// render with an empty food name.
func (s *listingService) Delete(ctx context.Context, id int64) error {
	exists, err := s.listingRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if !exists {
		s.logger.Debug().Int64("food_id", id).Msg("listing not found")
		return model.ErrListingNotFound
	}

	if err := s.listingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	s.logger.Info().Int64("food_id", id).Msg("listing deleted")
	return nil
}

// Options retrieves id/name pairs, newest first.
func (s *listingService) Options(ctx context.Context) ([]model.Option, error) {
	options, err := s.listingRepo.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list listing options: %w", err)
	}
	return options, nil
}

// daysUntil counts whole calendar days from today to expiry. Both sides
// are truncated to dates, so the clock time when the listing is created
// never shifts the count.
func (s *listingService) daysUntil(expiry time.Time) int {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(expiry.Sub(today).Hours() / 24)
}
