package service

import (
	"context"
	"fmt"
	"strings"

	"foodshare/internal/model"
	"foodshare/internal/repository"

	"github.com/rs/zerolog"
)

// providerService implements ProviderService.
type providerService struct {
	providerRepo repository.ProviderRepository
	logger       zerolog.Logger
}

// NewProviderService creates a new provider service.
func NewProviderService(providerRepo repository.ProviderRepository, logger zerolog.Logger) ProviderService {
	return &providerService{
		providerRepo: providerRepo,
		logger:       logger.With().Str("service", "provider").Logger(),
	}
}

// Create registers a food provider. Name and City must be non-blank; the
// remaining fields are free-form and may stay empty.
func (s *providerService) Create(ctx context.Context, req *model.ProviderRequest) (*model.Provider, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.City) == "" {
		s.logger.Warn().Str("name", req.Name).Str("city", req.City).Msg("provider create missing name or city")
		return nil, model.ErrMissingField
	}

	provider := &model.Provider{
		Name:    req.Name,
		Type:    req.Type,
		Address: req.Address,
		City:    req.City,
		Contact: req.Contact,
	}

	id, err := s.providerRepo.Create(ctx, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}
	provider.ID = id

	s.logger.Info().Int64("provider_id", id).Str("name", provider.Name).Msg("provider created")
	return provider, nil
}

// UpdateContact replaces a provider's contact string. An empty contact
// clears the stored value.
func (s *providerService) UpdateContact(ctx context.Context, id int64, contact string) error {
	exists, err := s.providerRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to update provider contact: %w", err)
	}
	if !exists {
		s.logger.Debug().Int64("provider_id", id).Msg("provider not found")
		return model.ErrProviderNotFound
	}

	if err := s.providerRepo.UpdateContact(ctx, id, contact); err != nil {
		return fmt.Errorf("failed to update provider contact: %w", err)
	}

	s.logger.Info().Int64("provider_id", id).Msg("provider contact updated")
	return nil
}

// Delete removes a provider. Providers still owning listings are rejected
// by the store's foreign key and surface as ErrProviderHasListings.
func (s *providerService) Delete(ctx context.Context, id int64) error {
	exists, err := s.providerRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}
	if !exists {
		s.logger.Debug().Int64("provider_id", id).Msg("provider not found")
		return model.ErrProviderNotFound
	}

	if err := s.providerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("provider_id", id).Msg("provider deleted")
	return nil
}

// List retrieves the provider directory, optionally narrowed to a city.
func (s *providerService) List(ctx context.Context, city string) ([]model.Provider, error) {
	providers, err := s.providerRepo.List(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

// Options retrieves id/name pairs for forms and filters.
func (s *providerService) Options(ctx context.Context) ([]model.Option, error) {
	options, err := s.providerRepo.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider options: %w", err)
	}
	return options, nil
}
