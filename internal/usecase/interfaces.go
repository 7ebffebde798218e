package usecase

import (
	"context"

	"release-notes-webhook/internal/entities"
)

// ReleaseNotesUsecaseInterface abstracts release-notes generation for the delivery layer.
type ReleaseNotesUsecaseInterface interface {
	GenerateReleaseNotes(ctx context.Context, meta entities.ReleaseMetadata) (*entities.ReleaseRun, error)
}

// PublishedNotesUsecaseInterface abstracts reading back published documents.
type PublishedNotesUsecaseInterface interface {
	LatestReleaseNotes(ctx context.Context) (string, error)
	ReleaseNotes(ctx context.Context, name string) (string, error)
	ReleaseExists(ctx context.Context, name string) (bool, error)
}
