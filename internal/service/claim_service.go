package service

import (
	"context"
	"fmt"

	"foodshare/internal/model"
	"foodshare/internal/repository"

	"github.com/rs/zerolog"
)

// claimService implements ClaimService.
type claimService struct {
	claimRepo    repository.ClaimRepository
	listingRepo  repository.ListingRepository
	receiverRepo repository.ReceiverRepository
	logger       zerolog.Logger
}

// NewClaimService creates a new claim service.
func NewClaimService(
	claimRepo repository.ClaimRepository,
	listingRepo repository.ListingRepository,
	receiverRepo repository.ReceiverRepository,
	logger zerolog.Logger,
) ClaimService {
	return &claimService{
		claimRepo:    claimRepo,
		listingRepo:  listingRepo,
		receiverRepo: receiverRepo,
		logger:       logger.With().Str("service", "claim").Logger(),
	}
}

// Create claims a listing for a receiver. The listing must carry no claim
// of any status; a cancelled claim keeps blocking until its row is deleted.
// Status defaults to Pending.
func (s *claimService) Create(ctx context.Context, req *model.ClaimRequest) (*model.Claim, error) {
	status := req.Status
	if status == "" {
		status = model.ClaimPending
	}
	if !model.ValidClaimStatus(status) {
		s.logger.Warn().Str("status", status).Msg("invalid claim status")
		return nil, model.ErrInvalidStatus
	}

	exists, err := s.listingRepo.Exists(ctx, req.FoodID)
	if err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}
	if !exists {
		s.logger.Warn().Int64("food_id", req.FoodID).Msg("listing not found")
		return nil, model.ErrListingNotFound
	}

	claimed, err := s.claimRepo.HasClaims(ctx, req.FoodID)
	if err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}
	if claimed {
		s.logger.Warn().Int64("food_id", req.FoodID).Msg("listing already claimed")
		return nil, model.ErrListingClaimed
	}

	exists, err = s.receiverRepo.Exists(ctx, req.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}
	if !exists {
		s.logger.Warn().Int64("receiver_id", req.ReceiverID).Msg("receiver not found")
		return nil, model.ErrReceiverNotFound
	}

	claim := &model.Claim{
		FoodID:     req.FoodID,
		ReceiverID: req.ReceiverID,
		Status:     status,
	}

	id, err := s.claimRepo.Create(ctx, claim)
	if err != nil {
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}
	claim.ID = id

	s.logger.Info().
		Int64("claim_id", id).
		Int64("food_id", claim.FoodID).
		Int64("receiver_id", claim.ReceiverID).
		Str("status", claim.Status).
		Msg("claim created")
	return claim, nil
}

// UpdateStatus moves a claim to a new status.
func (s *claimService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !model.ValidClaimStatus(status) {
		s.logger.Warn().Int64("claim_id", id).Str("status", status).Msg("invalid claim status")
		return model.ErrInvalidStatus
	}

	if err := s.claimRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update claim status: %w", err)
	}

	s.logger.Info().Int64("claim_id", id).Str("status", status).Msg("claim status updated")
	return nil
}

// Delete removes a claim, freeing its listing for a fresh claim.
func (s *claimService) Delete(ctx context.Context, id int64) error {
	if err := s.claimRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete claim: %w", err)
	}

	s.logger.Info().Int64("claim_id", id).Msg("claim deleted")
	return nil
}

// List retrieves claims with food and receiver names, newest first.
func (s *claimService) List(ctx context.Context) ([]model.ClaimDetail, error) {
	claims, err := s.claimRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return claims, nil
}

// EligibleListings retrieves listings open to a new claim.
func (s *claimService) EligibleListings(ctx context.Context) ([]model.EligibleListing, error) {
	listings, err := s.claimRepo.EligibleListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible listings: %w", err)
	}
	return listings, nil
}
