package domain

import (
	"context"
	"time"

	"release-notes-webhook/config"
	"release-notes-webhook/internal/devops"
	"release-notes-webhook/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log     *zap.SugaredLogger
	repo    repository.BlobStore
	conn    devops.Connection
	devops  *config.DevOpsConfig
	release *config.ReleaseConfig
	timeout time.Duration
	now     func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.BlobStore,
	conn devops.Connection,
	devopsCfg *config.DevOpsConfig,
	releaseCfg *config.ReleaseConfig,
) *Usecase {
	return &Usecase{
		log:     log.Named("usecase.release"),
		repo:    repo,
		conn:    conn,
		devops:  devopsCfg,
		release: releaseCfg,
		timeout: releaseCfg.RunTimeout,
		now:     time.Now,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
