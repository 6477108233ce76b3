package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Provider hands out database sessions scoped to a single logical
// operation. Every acquisition goes through WithConn so the connection is
// returned to the pool on every exit path, including errors.
type Provider struct {
	pool *pgxpool.Pool
}

func NewProvider(pool *pgxpool.Pool) *Provider {
	return &Provider{pool: pool}
}

// WithConn acquires a pooled connection, runs fn with it, and releases the
// connection when fn returns. Connections are never shared across
// concurrent operations; each call gets its own.
func (p *Provider) WithConn(ctx context.Context, fn func(conn *pgxpool.Conn) error) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire conn: %w", err)
	}
	defer conn.Release()
	return fn(conn)
}

// Ping verifies the backing store is reachable.
func (p *Provider) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
