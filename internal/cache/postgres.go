package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// Pool is the subset of pgxpool.Pool the cache uses. pgxmock satisfies it in
// tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// PostgresStore implements Store using a pgx connection pool.
type PostgresStore struct {
	pool Pool
	ttl  time.Duration
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS geocode_cache (
	id         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	key        TEXT NOT NULL UNIQUE,
	body       BYTEA NOT NULL,
	cached_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	expires_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_geocode_cache_expires_at ON geocode_cache(expires_at);
`

// NewPostgres creates a PostgresStore with a connection pool and applies the
// schema. A ttl of zero means DefaultTTL.
func NewPostgres(ctx context.Context, connString string, ttl time.Duration) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "cache: postgres parse config")
	}
	pgxCfg.MaxConns = 4
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "cache: postgres create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "cache: postgres ping")
	}

	s := NewPostgresWithPool(pool, ttl)
	if _, err := pool.Exec(ctx, postgresMigration); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "cache: postgres migrate")
	}
	return s, nil
}

// NewPostgresWithPool wraps an existing pool without applying the schema.
func NewPostgresWithPool(pool Pool, ttl time.Duration) *PostgresStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PostgresStore{pool: pool, ttl: ttl}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var body []byte
	err := s.pool.QueryRow(ctx,
		`SELECT body FROM geocode_cache WHERE key = $1 AND expires_at > now() ORDER BY cached_at DESC LIMIT 1`,
		key,
	).Scan(&body)
	if err == pgx.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, eris.Wrap(err, "cache: postgres get")
	}
	return body, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, body []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO geocode_cache (id, key, body, cached_at, expires_at) VALUES ($1, $2, $3, now(), $4)
		 ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, cached_at = now(), expires_at = EXCLUDED.expires_at`,
		uuid.New().String(), key, body, time.Now().UTC().Add(s.ttl),
	)
	return eris.Wrap(err, "cache: postgres set")
}

func (s *PostgresStore) Purge(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM geocode_cache WHERE expires_at <= now()`)
	if err != nil {
		return 0, eris.Wrap(err, "cache: postgres purge")
	}
	return tag.RowsAffected(), nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
