package db

import (
	"context"
	"fmt"
	"time"

	"ratebank/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Open connects to Postgres and pings it. With cfg.AutoMigrate set the embedded
// migrations are applied before the pool is returned.
func Open(ctx context.Context, cfg config.DbServer) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("invalid postgres config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.MaxConnIdleSec) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	if cfg.AutoMigrate {
		if err = Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}
