package repository

import (
	"context"
	"testing"

	"foodshare/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := NewProviderRepository(s, zerolog.Nop())

	id, err := repo.Create(ctx, &model.Provider{
		Name:    "Harvest Table",
		Type:    "Restaurant",
		Address: "14 Mill Road",
		City:    "Riverton",
		Contact: "+1-555-0199",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = repo.Create(ctx, &model.Provider{Name: "Acme Grocers", City: "Springfield"})
	require.NoError(t, err)

	providers, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, providers, 2)

	// grouped by city, then name
	assert.Equal(t, "Harvest Table", providers[0].Name)
	assert.Equal(t, "Riverton", providers[0].City)
	assert.Equal(t, "+1-555-0199", providers[0].Contact)
	assert.Equal(t, "Acme Grocers", providers[1].Name)
}

func TestProviderRepository_ListByCity(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := NewProviderRepository(s, zerolog.Nop())

	insertProvider(t, s, "Acme Grocers", "Springfield")
	insertProvider(t, s, "Harvest Table", "Riverton")
	insertProvider(t, s, "Corner Deli", "Springfield")

	providers, err := repo.List(ctx, "Springfield")
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "Acme Grocers", providers[0].Name)
	assert.Equal(t, "Corner Deli", providers[1].Name)

	providers, err = repo.List(ctx, "Nowhere")
	require.NoError(t, err)
	assert.Empty(t, providers)
}

func TestProviderRepository_UpdateContact(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := NewProviderRepository(s, zerolog.Nop())
	id := insertProvider(t, s, "Acme Grocers", "Springfield")

	// warm the memo so the update has something to invalidate
	_, err := repo.List(ctx, "")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateContact(ctx, id, "+1-555-0242"))

	providers, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "+1-555-0242", providers[0].Contact)
}

func TestProviderRepository_UpdateContactMissingIdentity(t *testing.T) {
	s := newTestStore(t)
	repo := NewProviderRepository(s, zerolog.Nop())

	// no row matches; the update is a silent no-op
	assert.NoError(t, repo.UpdateContact(context.Background(), 99, "+1-555-0242"))
}

func TestProviderRepository_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := NewProviderRepository(s, zerolog.Nop())
	id := insertProvider(t, s, "Acme Grocers", "Springfield")

	require.NoError(t, repo.Delete(ctx, id))

	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProviderRepository_DeleteBlockedByListings(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := NewProviderRepository(s, zerolog.Nop())

	id := insertProvider(t, s, "Acme Grocers", "Springfield")
	seedListing(t, s, id, "Rice Bags", "Springfield", 12, "2030-01-01")

	err := repo.Delete(ctx, id)
	assert.ErrorIs(t, err, model.ErrProviderHasListings)

	// the provider row survives the failed delete
	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProviderRepository_IDsByName(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := NewProviderRepository(s, zerolog.Nop())

	acme := insertProvider(t, s, "Acme Grocers", "Springfield")
	insertProvider(t, s, "Harvest Table", "Riverton")
	deli := insertProvider(t, s, "Corner Deli", "Springfield")

	ids, err := repo.IDsByName(ctx, []string{"Acme Grocers", "Corner Deli", "No Such Kitchen"})
	require.NoError(t, err)
	assert.Equal(t, []int64{acme, deli}, ids)
}

func TestProviderRepository_IDsByNameEmpty(t *testing.T) {
	s := newTestStore(t)
	repo := NewProviderRepository(s, zerolog.Nop())

	ids, err := repo.IDsByName(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = repo.IDsByName(context.Background(), []string{"Unknown"})
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestProviderRepository_Options(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := NewProviderRepository(s, zerolog.Nop())

	insertProvider(t, s, "Harvest Table", "Riverton")
	insertProvider(t, s, "Acme Grocers", "Springfield")

	options, err := repo.Options(ctx)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, "Acme Grocers", options[0].Name)
	assert.Equal(t, "Harvest Table", options[1].Name)
	assert.Equal(t, int64(2), options[0].ID)
}

func TestProviderRepository_Exists(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := NewProviderRepository(s, zerolog.Nop())
	id := insertProvider(t, s, "Acme Grocers", "Springfield")

	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 404)
	require.NoError(t, err)
	assert.False(t, exists)
}
