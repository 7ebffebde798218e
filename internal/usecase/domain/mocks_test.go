package domain

import (
	"context"
	"errors"
	"time"

	"release-notes-webhook/config"
	"release-notes-webhook/internal/devops"
	"release-notes-webhook/internal/repository"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type connMock struct{ mock.Mock }

var _ devops.Connection = (*connMock)(nil)

func (m *connMock) NewWorkItemClient(ctx context.Context) (devops.WorkItemClient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(devops.WorkItemClient), args.Error(1)
}

func (m *connMock) NewGitClient(ctx context.Context) (devops.GitClient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(devops.GitClient), args.Error(1)
}

type workItemsMock struct{ mock.Mock }

var _ devops.WorkItemClient = (*workItemsMock)(nil)

func (m *workItemsMock) QueryByWiql(ctx context.Context, project, query string) (devops.WorkItemQueryResult, error) {
	args := m.Called(ctx, project, query)
	return args.Get(0).(devops.WorkItemQueryResult), args.Error(1)
}

func (m *workItemsMock) GetWorkItems(ctx context.Context, ids []int, fields []string, asOf time.Time) ([]devops.WorkItem, error) {
	args := m.Called(ctx, ids, fields, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]devops.WorkItem), args.Error(1)
}

type gitMock struct{ mock.Mock }

var _ devops.GitClient = (*gitMock)(nil)

func (m *gitMock) GetRepositories(ctx context.Context, project string) ([]devops.Repository, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]devops.Repository), args.Error(1)
}

func (m *gitMock) GetPullRequests(ctx context.Context, project, repositoryID string, search devops.PullRequestSearch) ([]devops.PullRequest, error) {
	args := m.Called(ctx, project, repositoryID, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]devops.PullRequest), args.Error(1)
}

type storeMock struct{ mock.Mock }

var _ repository.BlobStore = (*storeMock)(nil)

func (m *storeMock) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *storeMock) Write(ctx context.Context, key string, data []byte) error {
	return m.Called(ctx, key, data).Error(0)
}

func (m *storeMock) Read(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *storeMock) CreateIfAbsent(ctx context.Context, key string, data []byte) (bool, error) {
	args := m.Called(ctx, key, data)
	return args.Bool(0), args.Error(1)
}

// blockingWorkItems never answers before the context ends.
type blockingWorkItems struct{}

func (blockingWorkItems) QueryByWiql(ctx context.Context, _, _ string) (devops.WorkItemQueryResult, error) {
	<-ctx.Done()
	return devops.WorkItemQueryResult{}, ctx.Err()
}

func (blockingWorkItems) GetWorkItems(context.Context, []int, []string, time.Time) ([]devops.WorkItem, error) {
	return nil, errors.New("unexpected call")
}

func testConfig() *config.Config {
	return &config.Config{
		DevOps: config.DevOpsConfig{
			OrganizationURL: "https://dev.azure.com/contoso",
			ProjectName:     "Platform",
			RepoName:        "platform-api",
			AccessToken:     "pat",
		},
		Release: config.ReleaseConfig{
			LookbackDays: 14,
			AreaPath:     `RiskIQ\EASM`,
			TargetBranch: "refs/heads/main",
			Container:    "releases",
			LatestKey:    "latest",
			RunTimeout:   time.Second,
		},
	}
}

func newTestUsecase(repo repository.BlobStore, conn devops.Connection) *Usecase {
	cfg := testConfig()
	uc := New(zap.NewNop().Sugar(), repo, conn, &cfg.DevOps, &cfg.Release)
	uc.now = func() time.Time { return testNow }
	return uc
}
