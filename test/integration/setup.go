package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"foodshare/internal/config"
	"foodshare/internal/database"
	"foodshare/internal/repository"

	"github.com/rs/zerolog"
)

// TestDB wraps the in-memory database the integration tests run against.
type TestDB struct {
	Store *repository.Store
}

// SetupTestDB opens a fresh in-memory database, runs the embedded
// migrations, and wraps the handle in a store with a one-minute read memo.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()
	logger := zerolog.Nop()

	db, err := database.Open(ctx, config.DatabaseConfig{Path: ":memory:", BusyTimeout: 5000}, logger)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := database.Migrate(db, logger); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return &TestDB{Store: repository.NewStore(db, time.Minute, logger)}
}

// SeedProvider inserts a provider row and returns its identifier.
func SeedProvider(t *testing.T, store *repository.Store, name, city string) int64 {
	t.Helper()

	res, err := store.Write(context.Background(),
		"INSERT INTO providers (Name, Type, Address, City, Contact) VALUES (?, ?, ?, ?, ?)",
		name, "Restaurant", "1 Main St", city, "+1-555-0000",
	)
	if err != nil {
		t.Fatalf("failed to seed provider %s: %v", name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read provider id: %v", err)
	}
	return id
}

// SeedReceiver inserts a receiver row and returns its identifier. The API
// exposes receivers read-only, so tests seed them at the store level.
func SeedReceiver(t *testing.T, store *repository.Store, name, city string) int64 {
	t.Helper()

	res, err := store.Write(context.Background(),
		"INSERT INTO receivers (Name, Type, City, Contact) VALUES (?, ?, ?, ?)",
		name, "Shelter", city, "+1-555-0101",
	)
	if err != nil {
		t.Fatalf("failed to seed receiver %s: %v", name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read receiver id: %v", err)
	}
	return id
}

// CleanupDB removes all rows. Deletes run through the store so the read
// memo is invalidated like any other write.
func CleanupDB(t *testing.T, store *repository.Store) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"claims", "food_listings", "providers", "receivers"}
	for _, table := range tables {
		if _, err := store.Write(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
