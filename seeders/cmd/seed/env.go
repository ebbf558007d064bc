package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"bank-dashboard/pkg/config"
	"bank-dashboard/pkg/database/postgresql"
	applogger "bank-dashboard/pkg/logger"
)

type environment struct {
	cfg    *config.Config
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func withDB(ctx context.Context, fn func(ctx context.Context, env *environment) error) error {
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer func() { _ = logger.Sync() }()

	pool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, &environment{cfg: cfg, pool: pool, logger: logger})
}
