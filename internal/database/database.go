package database

import (
	"context"
	"database/sql"
	"fmt"

	"foodshare/internal/config"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// Open opens the SQLite storage file and verifies connectivity. Foreign
// key enforcement rides on the DSN so the pragma applies to every
// connection the pool hands out.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)", cfg.Path, cfg.BusyTimeout)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serialises writers, and a :memory: database exists per
	// connection, so the pool is capped at a single connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Str("path", cfg.Path).
		Msg("database opened")

	return db, nil
}
