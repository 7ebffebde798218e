// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// BlobStore is a key-value store of release documents.
type BlobStore interface {
	// Exists reports whether key holds a document.
	Exists(ctx context.Context, key string) (bool, error)
	// Write stores data under key, replacing any previous value.
	Write(ctx context.Context, key string, data []byte) error
	// Read returns the data under key or entities.ErrBlobNotFound.
	Read(ctx context.Context, key string) ([]byte, error)
	// CreateIfAbsent stores data under key only if key is free, atomically.
	// It reports whether the write happened.
	CreateIfAbsent(ctx context.Context, key string, data []byte) (bool, error)
}
