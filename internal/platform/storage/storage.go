// Package storage opens the case store selected by configuration.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/casefile/internal/config"
	"github.com/phrazzld/casefile/internal/platform/dynamodb"
	"github.com/phrazzld/casefile/internal/platform/memory"
	"github.com/phrazzld/casefile/internal/platform/postgres"
	"github.com/phrazzld/casefile/internal/store"
)

// Backend is an opened case store together with the resources behind it.
type Backend struct {
	// Name is the configured backend name.
	Name  string
	Cases store.CaseStore
	// DB is set for the postgres backend only.
	DB *sql.DB
}

// Close releases the resources held by the backend.
func (b *Backend) Close() error {
	if b.DB == nil {
		return nil
	}
	return b.DB.Close()
}

// Open builds the case store named by cfg.Storage.Backend.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		seed := memory.SeedCases(time.Now())
		if !cfg.Storage.Seed {
			seed = nil
		}
		logger.Info("using in-memory case store", slog.Int("seed_cases", len(seed)))
		return &Backend{Name: cfg.Storage.Backend, Cases: memory.NewCaseStore(seed)}, nil

	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, db, postgres.MigrateUp, logger); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		logger.Info("using postgres case store")
		return &Backend{
			Name:  cfg.Storage.Backend,
			Cases: postgres.NewPostgresCaseStore(db, logger),
			DB:    db,
		}, nil

	case config.BackendDynamoDB:
		client, err := dynamodb.NewClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		cases, err := dynamodb.NewCaseStore(
			client,
			cfg.DynamoDB.Table,
			cfg.DynamoDB.PublishedIndex,
			dynamodb.WithLogger(logger),
		)
		if err != nil {
			return nil, err
		}
		logger.Info("using dynamodb case store", slog.String("table", cfg.DynamoDB.Table))
		return &Backend{Name: cfg.Storage.Backend, Cases: cases}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
