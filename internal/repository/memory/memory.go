// Package memory implements an in-process blob store.
package memory

import (
	"context"
	"sync"

	"release-notes-webhook/internal/entities"

	"go.uber.org/zap"
)

// Store keeps documents in a map guarded by a mutex.
type Store struct {
	log   *zap.SugaredLogger
	mu    sync.Mutex
	blobs map[string][]byte
}

// New creates an empty store.
func New(log *zap.SugaredLogger) *Store {
	return &Store{
		log:   log.Named("repo.memory"),
		blobs: make(map[string][]byte),
	}
}

// OnStart is a no-op.
func (s *Store) OnStart(_ context.Context) error { return nil }

// OnStop is a no-op.
func (s *Store) OnStop(_ context.Context) error { return nil }

// Exists reports whether key holds a document.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[key]
	return ok, nil
}

// Write stores a copy of data under key.
func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), data...)
	return nil
}

// Read returns a copy of the data under key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, entities.ErrBlobNotFound
	}
	return append([]byte(nil), data...), nil
}

// CreateIfAbsent stores data only when key is free.
func (s *Store) CreateIfAbsent(ctx context.Context, key string, data []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[key]; ok {
		return false, nil
	}
	s.blobs[key] = append([]byte(nil), data...)
	s.log.Debugw("blob created", "key", key, "bytes", len(data))
	return true, nil
}
