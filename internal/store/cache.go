package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GetCached returns the cache entry for key, or nil on a miss.
func (s *Store) GetCached(ctx context.Context, key string) (*CacheEntry, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, cache_key, response, model, created_at FROM ai_cache WHERE cache_key = ?`,
		key,
	)
	var entry CacheEntry
	var createdAt string
	err := row.Scan(&entry.ID, &entry.CacheKey, &entry.Response, &entry.Model, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cache entry: %w", err)
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
		entry.CreatedAt = ts
	}
	return &entry, nil
}

// PutCached stores a raw model response under key. The write is an
// idempotent upsert: a key collision silently overwrites.
func (s *Store) PutCached(ctx context.Context, key, response, model string) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO ai_cache (id, cache_key, response, model, created_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT (cache_key) DO UPDATE SET
             response = excluded.response,
             model = excluded.model,
             created_at = excluded.created_at`,
		uuid.NewString(),
		key,
		response,
		model,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// CleanupCache deletes entries older than the retention window and returns
// the count removed.
func (s *Store) CleanupCache(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, errors.New("retention days must be positive")
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx, `DELETE FROM ai_cache WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup cache: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup cache rows affected: %w", err)
	}
	return removed, nil
}
