package store

import (
	"context"
	"fmt"

	"github.com/codementor/codementor-api/pkg/retry"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresKV is a key-value backend on a postgres records table.
// Writes are retried with backoff since the pool may hit transient
// connection errors under failover.
type PostgresKV struct {
	pool *pgxpool.Pool
}

// NewPostgresKV wraps an existing connection pool
func NewPostgresKV(pool *pgxpool.Pool) *PostgresKV {
	return &PostgresKV{pool: pool}
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := p.pool.QueryRow(ctx, `SELECT value FROM records WHERE key = $1`, key).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := retry.Do(ctx, retry.StoreConfig(), "store.set", func() (struct{}, error) {
		_, execErr := p.pool.Exec(ctx, `
			INSERT INTO records (key, value, updated_at) VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
			key, value)
		return struct{}{}, execErr
	})
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM records WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

func (p *PostgresKV) Reset(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM records`)
	if err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	return nil
}

func (p *PostgresKV) Close() error {
	p.pool.Close()
	return nil
}
