package usecase

import (
	"release-notes-webhook/config"
	"release-notes-webhook/internal/devops"
	"release-notes-webhook/internal/repository"
	"release-notes-webhook/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ReleaseNotesUsecaseInterface
	PublishedNotesUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.BlobStore, conn devops.Connection, cfg *config.Config) InterfaceUsecase {
	return domain.New(log, repo, conn, &cfg.DevOps, &cfg.Release)
}
