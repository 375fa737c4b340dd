package repository

import (
	"context"
	"fmt"

	"foodshare/internal/model"

	"github.com/rs/zerolog"
)

// receiverRepository implements the ReceiverRepository interface on the
// memoizing store. Receivers are reference data; nothing writes to them.
type receiverRepository struct {
	store  *Store
	logger zerolog.Logger
}

// NewReceiverRepository creates a new store-backed receiver repository.
func NewReceiverRepository(store *Store, logger zerolog.Logger) ReceiverRepository {
	return &receiverRepository{
		store:  store,
		logger: logger.With().Str("repository", "receiver").Logger(),
	}
}

// List retrieves the receiver directory. An empty city returns every
// receiver grouped by city; a concrete city narrows to it.
func (r *receiverRepository) List(ctx context.Context, city string) ([]model.Receiver, error) {
	q := `
		SELECT Receiver_ID, Name, Type, City, Contact
		FROM receivers
		ORDER BY City, Name
	`
	var args []any
	if city != "" {
		q = `
			SELECT Receiver_ID, Name, Type, City, Contact
			FROM receivers
			WHERE City = ?
			ORDER BY Name
		`
		args = append(args, city)
	}

	rs, err := r.store.Read(ctx, q, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("city", city).Msg("failed to query receivers")
		return nil, fmt.Errorf("failed to query receivers: %w", err)
	}

	receivers := make([]model.Receiver, 0, rs.Len())
	for _, row := range rs.Rows {
		receivers = append(receivers, model.Receiver{
			ID:      asInt64(row[0]),
			Name:    asString(row[1]),
			Type:    asString(row[2]),
			City:    asString(row[3]),
			Contact: asString(row[4]),
		})
	}

	return receivers, nil
}

// Options retrieves identity/name pairs for selection lists.
func (r *receiverRepository) Options(ctx context.Context) ([]model.Option, error) {
	q := `SELECT Receiver_ID, Name FROM receivers ORDER BY Name`

	rs, err := r.store.Read(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query receiver options")
		return nil, fmt.Errorf("failed to query receiver options: %w", err)
	}

	return optionsFromResultSet(rs), nil
}

// Exists reports whether a receiver identity resolves.
func (r *receiverRepository) Exists(ctx context.Context, id int64) (bool, error) {
	q := `SELECT COUNT(*) FROM receivers WHERE Receiver_ID = ?`

	rs, err := r.store.Read(ctx, q, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("receiver_id", id).Msg("failed to check receiver existence")
		return false, fmt.Errorf("failed to check receiver existence: %w", err)
	}

	return rs.Len() > 0 && asInt64(rs.Rows[0][0]) > 0, nil
}
