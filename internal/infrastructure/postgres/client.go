package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolOption tunes the pgx pool before it is opened.
type PoolOption func(*pgxpool.Config)

// WithMaxConns caps the pool size.
func WithMaxConns(n int32) PoolOption {
	return func(c *pgxpool.Config) { c.MaxConns = n }
}

// WithMinConns keeps n connections warm.
func WithMinConns(n int32) PoolOption {
	return func(c *pgxpool.Config) { c.MinConns = n }
}

// WithConnLifetime recycles connections older than life or idle longer than idle.
func WithConnLifetime(life, idle time.Duration) PoolOption {
	return func(c *pgxpool.Config) {
		c.MaxConnLifetime = life
		c.MaxConnIdleTime = idle
	}
}

var defaultPoolOptions = []PoolOption{
	WithMaxConns(25),
	WithMinConns(2),
	WithConnLifetime(time.Hour, 30*time.Minute),
}

// Client owns the pool shared by every postgres repository.
type Client struct {
	pool *pgxpool.Pool
}

// NewClient opens a traced pool for dsn and pings it. opts are applied after
// the defaults.
func NewClient(ctx context.Context, dsn string, opts ...PoolOption) (*Client, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}
	for _, opt := range append(defaultPoolOptions, opts...) {
		opt(poolConfig)
	}
	poolConfig.ConnConfig.Tracer = queryTracer{}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{pool: pool}, nil
}

// Pool is handed to the repository constructors and to Migrate.
func (c *Client) Pool() *pgxpool.Pool {
	return c.pool
}

// Ping satisfies the health checker signature.
func (c *Client) Ping(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

// MaxConns reports the configured pool ceiling.
func (c *Client) MaxConns() int32 {
	return c.pool.Stat().MaxConns()
}

func (c *Client) Close() {
	c.pool.Close()
}
