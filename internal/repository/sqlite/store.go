// Package sqlite provides a SQLite-backed blob store for single-instance deployments.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"release-notes-webhook/config"
	"release-notes-webhook/internal/entities"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	schema = `
CREATE TABLE IF NOT EXISTS release_blobs (
    key        TEXT PRIMARY KEY,
    content    BLOB NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
)`
	existsQuery = `SELECT EXISTS (SELECT 1 FROM release_blobs WHERE key = ?)`
	readQuery   = `SELECT content FROM release_blobs WHERE key = ?`
	upsertQuery = `
INSERT INTO release_blobs(key, content, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at`
	createQuery = `
INSERT INTO release_blobs(key, content, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(key) DO NOTHING`
)

// Store persists release documents in a SQLite file.
type Store struct {
	log   *zap.SugaredLogger
	path  string
	sqlDB *sql.DB
}

// New creates a store for the configured path. OnStart opens it.
func New(log *zap.SugaredLogger, cfg config.SQLiteConfig) *Store {
	return &Store{
		log:  log.Named("repo.sqlite"),
		path: cfg.Path,
	}
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// OnStart opens the database file and creates the schema.
func (s *Store) OnStart(ctx context.Context) error {
	if strings.TrimSpace(s.path) == "" {
		return fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(s.path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.ExecContext(ctx, schema); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	s.sqlDB = sqlDB
	s.log.Infow("sqlite ready", "path", cleanPath)
	return nil
}

// OnStop closes the SQLite handle.
func (s *Store) OnStop(_ context.Context) error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Exists reports whether key holds a document.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	if err := s.ready(ctx); err != nil {
		return false, err
	}
	var exists bool
	if err := s.sqlDB.QueryRowContext(ctx, existsQuery, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("blob exists: %w", err)
	}
	return exists, nil
}

// Write upserts the document under key.
func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	now := toMillis(time.Now())
	if _, err := s.sqlDB.ExecContext(ctx, upsertQuery, key, data, now, now); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	s.log.Infow("blob written", "key", key, "bytes", len(data))
	return nil
}

// Read returns the document under key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	var data []byte
	if err := s.sqlDB.QueryRowContext(ctx, readQuery, key).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrBlobNotFound
		}
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

// CreateIfAbsent inserts the document only when key is free.
func (s *Store) CreateIfAbsent(ctx context.Context, key string, data []byte) (bool, error) {
	if err := s.ready(ctx); err != nil {
		return false, err
	}
	now := toMillis(time.Now())
	res, err := s.sqlDB.ExecContext(ctx, createQuery, key, data, now, now)
	if err != nil {
		return false, fmt.Errorf("create blob: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("create blob rows: %w", err)
	}
	s.log.Infow("blob create-if-absent", "key", key, "created", n == 1)
	return n == 1, nil
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}
