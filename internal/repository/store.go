package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"foodshare/internal/model"

	"github.com/rs/zerolog"
)

// Store is the single gateway to the SQLite database. Reads are memoized
// for the configured TTL; any successful write clears the whole memo so
// the next read of every query sees fresh data. Failed writes leave the
// memo untouched.
type Store struct {
	db     *sql.DB
	cache  *queryCache
	logger zerolog.Logger
}

// NewStore creates a store around an open database handle.
func NewStore(db *sql.DB, ttl time.Duration, logger zerolog.Logger) *Store {
	return &Store{
		db:     db,
		cache:  newQueryCache(ttl),
		logger: logger.With().Str("component", "store").Logger(),
	}
}

// DB exposes the underlying handle for migrations and seeding.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Read executes a query and returns its full result set. The same
// statement with the same arguments is served from the memo inside the
// TTL window. Callers must treat the returned result as read-only.
func (s *Store) Read(ctx context.Context, query string, args ...any) (*model.ResultSet, error) {
	key := cacheKey(query, args)
	if rs, ok := s.cache.Get(key); ok {
		s.logger.Debug().Msg("read served from cache")
		return rs, nil
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to execute read")
		return nil, fmt.Errorf("failed to execute read: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	rs := &model.ResultSet{Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(columns))
		targets := make([]any, len(columns))
		for i := range values {
			targets[i] = &values[i]
		}
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		rs.Rows = append(rs.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	s.cache.Put(key, rs)
	return rs, nil
}

// Write executes a mutating statement. Statements auto-commit
// individually; there are no multi-statement transactions at this layer.
func (s *Store) Write(ctx context.Context, stmt string, args ...any) (sql.Result, error) {
	res, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to execute write")
		return nil, fmt.Errorf("failed to execute write: %w", err)
	}

	s.cache.Clear()
	s.logger.Debug().Msg("write committed, read cache cleared")
	return res, nil
}
