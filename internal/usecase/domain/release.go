package domain

import (
	"context"
	"errors"
	"strings"

	"release-notes-webhook/internal/entities"
	"release-notes-webhook/internal/notes"

	"golang.org/x/sync/errgroup"
)

// GenerateReleaseNotes runs the whole pipeline for one trigger.
func (u *Usecase) GenerateReleaseNotes(ctx context.Context, meta entities.ReleaseMetadata) (*entities.ReleaseRun, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	meta = normalizeMetadata(meta)

	window, err := NewTimeWindow(u.now(), u.release.LookbackDays)
	if err != nil {
		return nil, err
	}

	var (
		workItems    []entities.WorkItemRef
		pullRequests []entities.PullRequestRef
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		client, err := u.conn.NewWorkItemClient(gctx)
		if err != nil {
			return &entities.BackendError{Backend: entities.BackendWorkTracking, Op: "connect", Err: err}
		}
		workItems, err = u.ClosedWorkItems(gctx, client, u.devops.ProjectName, u.release.AreaPath, window)
		return err
	})
	g.Go(func() error {
		client, err := u.conn.NewGitClient(gctx)
		if err != nil {
			return &entities.BackendError{Backend: entities.BackendSourceControl, Op: "connect", Err: err}
		}
		pullRequests, err = u.MergedPullRequests(gctx, client, u.devops.ProjectName, u.devops.RepoName, window)
		return err
	})
	if err := g.Wait(); err != nil {
		u.log.Errorw("release notes aggregation failed", "error", err, "release", meta.Name)
		return nil, err
	}

	doc := notes.Render(entities.ReleaseDocument{
		Metadata:     meta,
		WorkItems:    workItems,
		PullRequests: pullRequests,
	})

	latestKey := SlotKey(u.release.Container, u.release.LatestKey)
	namedKey := NamedSlotKey(u.release.Container, meta.Name)
	published, err := Publish(ctx, u.repo, latestKey, namedKey, doc)
	if err != nil {
		u.log.Errorw("failed to publish release notes", "error", err, "latest_updated", published.LatestUpdated, "named_key", namedKey)
		return nil, err
	}

	u.log.Infow("release notes published",
		"release", meta.Name,
		"work_items", len(workItems),
		"pull_requests", len(pullRequests),
		"named_key", namedKey,
		"named", published.Named,
	)

	return &entities.ReleaseRun{
		Metadata:     meta,
		Window:       window,
		Document:     doc,
		Publish:      published,
		WorkItems:    len(workItems),
		PullRequests: len(pullRequests),
	}, nil
}

// LatestReleaseNotes returns the document of the most recent run.
func (u *Usecase) LatestReleaseNotes(ctx context.Context) (string, error) {
	return u.read(ctx, SlotKey(u.release.Container, u.release.LatestKey))
}

// ReleaseNotes returns the document published under a release name.
func (u *Usecase) ReleaseNotes(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", entities.ErrBlobNotFound
	}
	return u.read(ctx, NamedSlotKey(u.release.Container, name))
}

// ReleaseExists reports whether a document was published under a release name.
func (u *Usecase) ReleaseExists(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, nil
	}
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	key := NamedSlotKey(u.release.Container, name)
	ok, err := u.repo.Exists(ctx, key)
	if err != nil {
		return false, &entities.PersistenceError{Op: "exists", Key: key, Err: err}
	}
	return ok, nil
}

func (u *Usecase) read(ctx context.Context, key string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	data, err := u.repo.Read(ctx, key)
	if err != nil {
		if errors.Is(err, entities.ErrBlobNotFound) {
			return "", err
		}
		return "", &entities.PersistenceError{Op: "read", Key: key, Err: err}
	}
	return string(data), nil
}

func normalizeMetadata(meta entities.ReleaseMetadata) entities.ReleaseMetadata {
	meta.Name = strings.TrimSpace(meta.Name)
	meta.Description = strings.TrimSpace(meta.Description)
	if meta.Name == "" {
		meta.Name = entities.DefaultReleaseName
	}
	if meta.Description == "" {
		meta.Description = entities.DefaultReleaseDescription
	}
	return meta
}
