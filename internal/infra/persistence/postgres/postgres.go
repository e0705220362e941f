package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"contacts/config"
	"contacts/internal/domain/lifecycle"
	"contacts/internal/errors"
	"contacts/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAbove = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry `optional:"true"`
}

// New opens the user and contact store. The pool is pinged and, when
// database.autoMigrate is set, migrated before the app starts serving.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration must be provided")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Multi-step writes go through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Registry != nil {
		if err := metrics.RegisterDBStats(params.Registry, sqlDB); err != nil {
			return nil, errors.Wrap(err, "failed to register pool metrics")
		}
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := start(ctx, params, sqlDB); err != nil {
				return err
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func start(ctx context.Context, params Params, sqlDB *sql.DB) error {
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if params.Config.Database == nil || !params.Config.Database.AutoMigrate {
		return nil
	}

	if err := Migrate(ctx, sqlDB); err != nil {
		return err
	}
	params.Logger.Info("Database schema migrated")

	return nil
}

// watchPoolWaits logs when requests had to wait for a free connection since the
// previous check. Long waits usually mean maxOpenConns is too small.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil {
		return
	}

	ticker := time.NewTicker(poolCheckInterval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		now := sqlDB.Stats()
		waits := now.WaitCount - last.WaitCount
		waited := now.WaitDuration - last.WaitDuration
		last = now

		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= poolWaitWarnAbove {
			level = slog.LevelWarn
		}

		logger.LogAttrs(ctx, level, "Connection pool waits",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avg_wait", waited/time.Duration(waits)),
			slog.Int("in_use", now.InUse),
			slog.Int("idle", now.Idle),
			slog.Int("max_open", now.MaxOpenConnections),
		)
	}
}
