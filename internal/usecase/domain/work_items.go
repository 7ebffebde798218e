package domain

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"release-notes-webhook/internal/devops"
	"release-notes-webhook/internal/entities"
)

const workItemPath = "_workitems/edit"

// ClosedWorkItems returns items of project/areaPath closed since window.Start, in the
// order the backend sorted them (state asc, changed date desc).
func (u *Usecase) ClosedWorkItems(
	ctx context.Context,
	client devops.WorkItemClient,
	project, areaPath string,
	window entities.TimeWindow,
) ([]entities.WorkItemRef, error) {
	query := closedItemsQuery(project, areaPath, window.Start)

	res, err := client.QueryByWiql(ctx, project, query)
	if err != nil {
		u.log.Errorw("failed to query closed work items", "error", err, "project", project)
		return nil, &entities.BackendError{Backend: entities.BackendWorkTracking, Op: "query work items", Err: err}
	}
	if len(res.IDs) == 0 {
		return []entities.WorkItemRef{}, nil
	}

	// Details are read as of the query's timestamp so both calls see the same revision.
	items, err := client.GetWorkItems(ctx, res.IDs, []string{devops.FieldID, devops.FieldTitle}, res.AsOf)
	if err != nil {
		u.log.Errorw("failed to get work items", "error", err, "count", len(res.IDs))
		return nil, &entities.BackendError{Backend: entities.BackendWorkTracking, Op: "get work items", Err: err}
	}

	refs := make([]entities.WorkItemRef, 0, len(items))
	for _, wi := range items {
		link, err := workItemLink(u.devops.OrganizationURL, project, wi.ID)
		if err != nil {
			return nil, err
		}
		refs = append(refs, entities.WorkItemRef{ID: wi.ID, Title: wi.Title, Link: link})
	}

	u.log.Infow("closed work items fetched", "project", project, "count", len(refs))
	return refs, nil
}

func closedItemsQuery(project, areaPath string, since time.Time) string {
	return "SELECT [System.Id], [System.Title] FROM WorkItems WHERE " +
		"[System.TeamProject] = '" + wiqlEscape(project) + "' " +
		"AND [System.State] = '" + string(entities.StateClosed) + "' " +
		"AND [System.AreaPath] = '" + wiqlEscape(areaPath) + "' " +
		"AND [Microsoft.VSTS.Common.ClosedDate] >= '" + since.UTC().Format(time.RFC3339) + "' " +
		"ORDER BY [System.State] ASC, [System.ChangedDate] DESC"
}

func wiqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func workItemLink(orgURL, project string, id int) (string, error) {
	link, err := url.JoinPath(orgURL, project, workItemPath, strconv.Itoa(id))
	if err != nil {
		return "", fmt.Errorf("%w: work item link: %v", entities.ErrConfiguration, err)
	}
	return link, nil
}
