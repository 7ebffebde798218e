// Package devops describes the work-tracking and source-control backends the pipeline reads from.
package devops

import (
	"context"
	"time"
)

// Work item field reference names.
const (
	FieldID    = "System.Id"
	FieldTitle = "System.Title"
)

// WorkItemQueryResult is the id list a structured query matched, plus its consistency token.
type WorkItemQueryResult struct {
	IDs  []int
	AsOf time.Time
}

// WorkItem is a minimal projection of a work-tracking item.
type WorkItem struct {
	ID    int
	Title string
}

// Repository is a source-control repository visible in a project.
type Repository struct {
	ID   string
	Name string
}

// PullRequestSearch narrows a pull request listing.
type PullRequestSearch struct {
	TargetRefName string
	Status        string
}

// PullRequest is a pull request as returned by the source-control backend.
type PullRequest struct {
	ID       int
	Title    string
	ClosedAt *time.Time
}

// WorkItemClient queries the work-tracking backend.
type WorkItemClient interface {
	QueryByWiql(ctx context.Context, project, query string) (WorkItemQueryResult, error)
	GetWorkItems(ctx context.Context, ids []int, fields []string, asOf time.Time) ([]WorkItem, error)
}

// GitClient queries the source-control backend.
type GitClient interface {
	GetRepositories(ctx context.Context, project string) ([]Repository, error)
	GetPullRequests(ctx context.Context, project, repositoryID string, search PullRequestSearch) ([]PullRequest, error)
}

// Connection hands out backend clients. Each call returns a fresh handle so that
// concurrent operations never share one.
type Connection interface {
	NewWorkItemClient(ctx context.Context) (WorkItemClient, error)
	NewGitClient(ctx context.Context) (GitClient, error)
}
