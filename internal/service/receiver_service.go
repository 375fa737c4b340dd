package service

import (
	"context"
	"fmt"

	"foodshare/internal/model"
	"foodshare/internal/repository"

	"github.com/rs/zerolog"
)

// receiverService implements ReceiverService. Receivers are reference data
// loaded by the seeder, so the service only reads.
type receiverService struct {
	receiverRepo repository.ReceiverRepository
	logger       zerolog.Logger
}

// NewReceiverService creates a new receiver service.
func NewReceiverService(receiverRepo repository.ReceiverRepository, logger zerolog.Logger) ReceiverService {
	return &receiverService{
		receiverRepo: receiverRepo,
		logger:       logger.With().Str("service", "receiver").Logger(),
	}
}

// List retrieves the receiver directory, optionally narrowed to a city.
func (s *receiverService) List(ctx context.Context, city string) ([]model.Receiver, error) {
	receivers, err := s.receiverRepo.List(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to list receivers: %w", err)
	}
	return receivers, nil
}

// Options retrieves id/name pairs for forms.
func (s *receiverService) Options(ctx context.Context) ([]model.Option, error) {
	options, err := s.receiverRepo.Options(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list receiver options: %w", err)
	}
	return options, nil
}
