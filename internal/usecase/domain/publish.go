package domain

import (
	"context"

	"release-notes-webhook/internal/entities"
	"release-notes-webhook/internal/repository"
)

// SlotKey places name under container.
func SlotKey(container, name string) string {
	if container == "" {
		return name
	}
	return container + "/" + name
}

// NamedSlotKey is the write-once key of a release.
func NamedSlotKey(container, releaseName string) string {
	return SlotKey(container, releaseName+".md")
}

// Publish overwrites latestKey and creates namedKey only if it does not exist yet.
// A failure on the named slot leaves latestKey updated.
func Publish(ctx context.Context, store repository.BlobStore, latestKey, namedKey, document string) (entities.PublishResult, error) {
	res := entities.PublishResult{LatestKey: latestKey, NamedKey: namedKey}
	data := []byte(document)

	if err := store.Write(ctx, latestKey, data); err != nil {
		return res, &entities.PersistenceError{Op: "write", Key: latestKey, Err: err}
	}
	res.LatestUpdated = true

	created, err := store.CreateIfAbsent(ctx, namedKey, data)
	if err != nil {
		return res, &entities.PersistenceError{Op: "create", Key: namedKey, Err: err}
	}
	if created {
		res.Named = entities.NamedSlotCreated
	} else {
		res.Named = entities.NamedSlotSkippedExists
	}
	return res, nil
}
