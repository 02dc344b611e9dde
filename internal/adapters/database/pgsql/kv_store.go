package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxKeyValueStore persists string values in the kv_store table.
type PgxKeyValueStore struct {
	pool *pgxpool.Pool
}

// NewPgxKeyValueStore creates a key-value store backed by PostgreSQL.
func NewPgxKeyValueStore(pool *pgxpool.Pool) portsrepo.KeyValueStore {
	return &PgxKeyValueStore{pool: pool}
}

// Get returns the value stored under key. A missing row is reported as found=false.
func (r *PgxKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (r *PgxKeyValueStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.pool.Exec(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}
