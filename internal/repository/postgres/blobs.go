package postgres

import (
	"context"
	"errors"
	"fmt"

	"release-notes-webhook/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	blobExistsQuery = `SELECT EXISTS (SELECT 1 FROM release_blobs WHERE key=$1)`
	blobReadQuery   = `SELECT content FROM release_blobs WHERE key=$1`
	blobUpsertQuery = `
INSERT INTO release_blobs(key, content, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()
`
	blobCreateQuery = `
INSERT INTO release_blobs(key, content)
VALUES ($1, $2)
ON CONFLICT (key) DO NOTHING
`
)

// Exists reports whether key holds a document.
func (p *Postgres) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, blobExistsQuery, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("blob exists: %w", err)
	}
	return exists, nil
}

// Write upserts the document under key.
func (p *Postgres) Write(ctx context.Context, key string, data []byte) error {
	if _, err := p.db.Exec(ctx, blobUpsertQuery, key, data); err != nil {
		p.log.Errorw("failed to write blob", "error", err, "key", key)
		return fmt.Errorf("write blob: %w", err)
	}
	p.log.Infow("blob written", "key", key, "bytes", len(data))
	return nil
}

// Read returns the document under key.
func (p *Postgres) Read(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	if err := p.db.QueryRow(ctx, blobReadQuery, key).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBlobNotFound
		}
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

// CreateIfAbsent inserts the document only when key is free. The unique key
// makes concurrent callers race on the insert, not on a prior existence check.
func (p *Postgres) CreateIfAbsent(ctx context.Context, key string, data []byte) (bool, error) {
	tag, err := p.db.Exec(ctx, blobCreateQuery, key, data)
	if err != nil {
		p.log.Errorw("failed to create blob", "error", err, "key", key)
		return false, fmt.Errorf("create blob: %w", err)
	}
	created := tag.RowsAffected() == 1
	p.log.Infow("blob create-if-absent", "key", key, "created", created)
	return created, nil
}
