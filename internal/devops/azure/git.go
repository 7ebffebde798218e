package azure

import (
	"context"
	"fmt"

	"release-notes-webhook/internal/devops"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"go.uber.org/zap"
)

type gitClient struct {
	log    *zap.SugaredLogger
	client git.Client
}

func (g *gitClient) GetRepositories(ctx context.Context, project string) ([]devops.Repository, error) {
	res, err := g.client.GetRepositories(ctx, git.GetRepositoriesArgs{Project: &project})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("empty repositories response")
	}

	repos := make([]devops.Repository, 0, len(*res))
	for _, r := range *res {
		repo := devops.Repository{}
		if r.Id != nil {
			repo.ID = r.Id.String()
		}
		if r.Name != nil {
			repo.Name = *r.Name
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

func (g *gitClient) GetPullRequests(ctx context.Context, project, repositoryID string, search devops.PullRequestSearch) ([]devops.PullRequest, error) {
	status := git.PullRequestStatus(search.Status)
	criteria := git.GitPullRequestSearchCriteria{
		TargetRefName: &search.TargetRefName,
		Status:        &status,
	}
	res, err := g.client.GetPullRequests(ctx, git.GetPullRequestsArgs{
		RepositoryId:   &repositoryID,
		Project:        &project,
		SearchCriteria: &criteria,
	})
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("empty pull requests response")
	}

	prs := make([]devops.PullRequest, 0, len(*res))
	for _, p := range *res {
		if p.PullRequestId == nil {
			return nil, fmt.Errorf("pull request without id")
		}
		pr := devops.PullRequest{ID: *p.PullRequestId}
		if p.Title != nil {
			pr.Title = *p.Title
		}
		if p.ClosedDate != nil {
			closed := p.ClosedDate.Time
			pr.ClosedAt = &closed
		}
		prs = append(prs, pr)
	}
	g.log.Debugw("pull requests listed", "repository_id", repositoryID, "count", len(prs))
	return prs, nil
}
