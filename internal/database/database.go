package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// minConnections keeps a small floor of warm connections so the first
// requests after an idle period do not pay the connect cost.
const minConnections = 2

// Pool is the subset of pgxpool.Pool the rest of the application needs.
// Handlers take this interface so tests can substitute a stub.
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig carries the sizing knobs for the connection pool.
type PoolConfig struct {
	MaxConns    int
	MaxIdleTime time.Duration
	MaxLifetime time.Duration
}

// NewPool opens a PostgreSQL connection pool and verifies it with a ping
// before returning, so a bad DSN fails at startup rather than on the
// first query.
func NewPool(ctx context.Context, connString string, cfg PoolConfig) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	maxConns := cfg.MaxConns
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	if maxConns < minConnections {
		maxConns = minConnections
	}
	pc.MaxConns = int32(maxConns)
	pc.MinConns = minConnections
	pc.MaxConnIdleTime = cfg.MaxIdleTime
	pc.MaxConnLifetime = cfg.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Default().Info("Connected to database", "max_conns", pc.MaxConns)
	return pool, nil
}
