package repository

import (
	"context"
	"fmt"
	"strings"

	"foodshare/internal/model"
	"foodshare/internal/query"

	"github.com/rs/zerolog"
)

// providerRepository implements the ProviderRepository interface on the
// memoizing store.
type providerRepository struct {
	store  *Store
	logger zerolog.Logger
}

// NewProviderRepository creates a new store-backed provider repository.
func NewProviderRepository(store *Store, logger zerolog.Logger) ProviderRepository {
	return &providerRepository{
		store:  store,
		logger: logger.With().Str("repository", "provider").Logger(),
	}
}

// Create inserts a provider and returns its new identity.
func (r *providerRepository) Create(ctx context.Context, p *model.Provider) (int64, error) {
	stmt := `
		INSERT INTO providers (Name, Type, Address, City, Contact)
		VALUES (?, ?, ?, ?, ?)
	`

	res, err := r.store.Write(ctx, stmt, p.Name, p.Type, p.Address, p.City, p.Contact)
	if err != nil {
		r.logger.Error().Err(err).Str("name", p.Name).Msg("failed to insert provider")
		return 0, fmt.Errorf("failed to insert provider: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read provider id: %w", err)
	}

	return id, nil
}

// UpdateContact replaces the contact string of a provider.
func (r *providerRepository) UpdateContact(ctx context.Context, id int64, contact string) error {
	stmt := `UPDATE providers SET Contact = ? WHERE Provider_ID = ?`

	if _, err := r.store.Write(ctx, stmt, contact, id); err != nil {
		r.logger.Error().Err(err).Int64("provider_id", id).Msg("failed to update provider contact")
		return fmt.Errorf("failed to update provider contact: %w", err)
	}

	return nil
}

// Delete removes a provider. The providers table is referenced by
// food_listings, so the delete fails while any listing still points at the
// provider.
func (r *providerRepository) Delete(ctx context.Context, id int64) error {
	stmt := `DELETE FROM providers WHERE Provider_ID = ?`

	if _, err := r.store.Write(ctx, stmt, id); err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint") {
			r.logger.Warn().Int64("provider_id", id).Msg("provider delete blocked by existing listings")
			return model.ErrProviderHasListings
		}
		r.logger.Error().Err(err).Int64("provider_id", id).Msg("failed to delete provider")
		return fmt.Errorf("failed to delete provider: %w", err)
	}

	return nil
}

// List retrieves the provider directory. An empty city returns every
// provider grouped by city; a concrete city narrows to it.
func (r *providerRepository) List(ctx context.Context, city string) ([]model.Provider, error) {
	q := `
		SELECT Provider_ID, Name, Type, Address, City, Contact
		FROM providers
		ORDER BY City, Name
	`
	var args []any
	if city != "" {
		q = `
			SELECT Provider_ID, Name, Type, Address, City, Contact
			FROM providers
			WHERE City = ?
			ORDER BY Name
		`
		args = append(args, city)
	}

	rs, err := r.store.Read(ctx, q, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("city", city).Msg("failed to query providers")
		return nil, fmt.Errorf("failed to query providers: %w", err)
	}

	providers := make([]model.Provider, 0, rs.Len())
	for _, row := range rs.Rows {
		providers = append(providers, model.Provider{
			ID:      asInt64(row[0]),
			Name:    asString(row[1]),
			Type:    asString(row[2]),
			Address: asString(row[3]),
			City:    asString(row[4]),
			Contact: asString(row[5]),
		})
	}

	return providers, nil
}

// Options retrieves identity/name pairs for selection lists.
func (r *providerRepository) Options(ctx context.Context) ([]model.Option, error) {
	q := `SELECT Provider_ID, Name FROM providers ORDER BY Name`

	rs, err := r.store.Read(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query provider options")
		return nil, fmt.Errorf("failed to query provider options: %w", err)
	}

	return optionsFromResultSet(rs), nil
}

// IDsByName resolves provider names to identifiers. Names that match no
// provider contribute nothing to the result.
func (r *providerRepository) IDsByName(ctx context.Context, names []string) ([]int64, error) {
	if len(names) == 0 {
		return []int64{}, nil
	}

	pred := (&query.Predicate{}).In("Name", query.Strings(names))
	clause, args := pred.Clause()
	q := fmt.Sprintf("SELECT Provider_ID FROM providers %s ORDER BY Provider_ID", clause)

	rs, err := r.store.Read(ctx, q, args...)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(names)).Msg("failed to resolve provider names")
		return nil, fmt.Errorf("failed to resolve provider names: %w", err)
	}

	ids := make([]int64, 0, rs.Len())
	for _, row := range rs.Rows {
		ids = append(ids, asInt64(row[0]))
	}

	return ids, nil
}

// Exists reports whether a provider identity resolves.
func (r *providerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	q := `SELECT COUNT(*) FROM providers WHERE Provider_ID = ?`

	rs, err := r.store.Read(ctx, q, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("provider_id", id).Msg("failed to check provider existence")
		return false, fmt.Errorf("failed to check provider existence: %w", err)
	}

	return rs.Len() > 0 && asInt64(rs.Rows[0][0]) > 0, nil
}

// optionsFromResultSet converts two-column (id, name) rows into options.
func optionsFromResultSet(rs *model.ResultSet) []model.Option {
	options := make([]model.Option, 0, rs.Len())
	for _, row := range rs.Rows {
		options = append(options, model.Option{
			ID:   asInt64(row[0]),
			Name: asString(row[1]),
		})
	}
	return options
}
