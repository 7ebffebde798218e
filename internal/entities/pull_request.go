// Package entities contains core business entities.
package entities

// PullRequestStatus enumerates source-control pull request states the pipeline queries for.
type PullRequestStatus string

const (
	// StatusCompleted marks a PR merged into its target branch.
	StatusCompleted PullRequestStatus = "completed"
)

// PullRequestRef is a merged pull request as it appears in release notes.
type PullRequestRef struct {
	ID    int
	Title string
	Link  string
}
