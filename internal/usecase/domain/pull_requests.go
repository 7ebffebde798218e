package domain

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"release-notes-webhook/internal/devops"
	"release-notes-webhook/internal/entities"
)

const (
	gitRepoPath     = "_git"
	pullRequestPath = "pullrequest"
)

// MergedPullRequests returns completed PRs into the target branch of repoName closed since
// window.Start. Only the first batch the backend returns is considered, and its order is kept.
func (u *Usecase) MergedPullRequests(
	ctx context.Context,
	client devops.GitClient,
	project, repoName string,
	window entities.TimeWindow,
) ([]entities.PullRequestRef, error) {
	repos, err := client.GetRepositories(ctx, project)
	if err != nil {
		u.log.Errorw("failed to list repositories", "error", err, "project", project)
		return nil, &entities.BackendError{Backend: entities.BackendSourceControl, Op: "list repositories", Err: err}
	}

	var repo *devops.Repository
	for i := range repos {
		if repos[i].Name == repoName {
			repo = &repos[i]
			break
		}
	}
	if repo == nil {
		u.log.Errorw("configured repository not found", "project", project, "repo", repoName, "visible", len(repos))
		return nil, fmt.Errorf("%w: %q in project %q", entities.ErrRepositoryNotFound, repoName, project)
	}

	prs, err := client.GetPullRequests(ctx, project, repo.ID, devops.PullRequestSearch{
		TargetRefName: u.release.TargetBranch,
		Status:        string(entities.StatusCompleted),
	})
	if err != nil {
		u.log.Errorw("failed to list pull requests", "error", err, "repo", repoName)
		return nil, &entities.BackendError{Backend: entities.BackendSourceControl, Op: "list pull requests", Err: err}
	}

	refs := make([]entities.PullRequestRef, 0, len(prs))
	for _, pr := range prs {
		if pr.ClosedAt == nil || pr.ClosedAt.Before(window.Start) {
			continue
		}
		link, err := pullRequestLink(u.devops.OrganizationURL, project, repoName, pr.ID)
		if err != nil {
			return nil, err
		}
		refs = append(refs, entities.PullRequestRef{ID: pr.ID, Title: pr.Title, Link: link})
	}

	u.log.Infow("merged pull requests fetched", "repo", repoName, "batch", len(prs), "count", len(refs))
	return refs, nil
}

func pullRequestLink(orgURL, project, repoName string, id int) (string, error) {
	link, err := url.JoinPath(orgURL, project, gitRepoPath, repoName, pullRequestPath, strconv.Itoa(id))
	if err != nil {
		return "", fmt.Errorf("%w: pull request link: %v", entities.ErrConfiguration, err)
	}
	return link, nil
}
