// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"release-notes-webhook/config"
	"release-notes-webhook/internal/repository/memory"
	"release-notes-webhook/internal/repository/postgres"
	"release-notes-webhook/internal/repository/sqlite"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	BlobStore
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.StoragePostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.StorageSQLite:
		return sqlite.New(log, cfg.SQLite), nil
	case config.StorageMemory:
		return memory.New(log), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
