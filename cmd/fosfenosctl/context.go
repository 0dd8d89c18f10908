package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"fosfenos/internal/config"
	"fosfenos/internal/repository"
	"fosfenos/internal/storage/postgresql"

	"github.com/jackc/pgx/v4/pgxpool"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	pool *pgxpool.Pool
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(*c.configFlag)
		if path == "" {
			path = os.Getenv("CONFIG_PATH")
		}
		if path == "" {
			c.configErr = fmt.Errorf("config path is empty: pass --config or set CONFIG_PATH")
			return
		}
		c.config, c.configErr = config.Load(path)
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	level := slog.LevelWarn
	if c.verbose != nil && *c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// database opens the pool once per invocation.
func (c *commandContext) database(ctx context.Context) (*pgxpool.Pool, error) {
	if c.pool != nil {
		return c.pool, nil
	}

	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	pool, err := postgresql.New(ctx, cfg.DSN, postgresql.PoolConfig{
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
	})
	if err != nil {
		return nil, err
	}
	c.pool = pool
	return pool, nil
}

func (c *commandContext) repository(ctx context.Context) (*repository.Repository, error) {
	pool, err := c.database(ctx)
	if err != nil {
		return nil, err
	}
	return repository.NewRepository(pool), nil
}

func (c *commandContext) close() {
	if c.pool != nil {
		c.pool.Close()
		c.pool = nil
	}
}
