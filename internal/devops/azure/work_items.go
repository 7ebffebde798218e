package azure

import (
	"context"
	"fmt"
	"time"

	"release-notes-webhook/internal/devops"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
	"go.uber.org/zap"
)

type workItemClient struct {
	log    *zap.SugaredLogger
	client workitemtracking.Client
}

func (w *workItemClient) QueryByWiql(ctx context.Context, project, query string) (devops.WorkItemQueryResult, error) {
	timePrecision := true
	res, err := w.client.QueryByWiql(ctx, workitemtracking.QueryByWiqlArgs{
		Wiql:          &workitemtracking.Wiql{Query: &query},
		Project:       &project,
		TimePrecision: &timePrecision,
	})
	if err != nil {
		return devops.WorkItemQueryResult{}, err
	}
	if res == nil {
		return devops.WorkItemQueryResult{}, fmt.Errorf("empty wiql response")
	}

	out := devops.WorkItemQueryResult{}
	if res.AsOf != nil {
		out.AsOf = res.AsOf.Time
	}
	if res.WorkItems == nil {
		return out, nil
	}
	out.IDs = make([]int, 0, len(*res.WorkItems))
	for _, ref := range *res.WorkItems {
		if ref.Id == nil {
			return devops.WorkItemQueryResult{}, fmt.Errorf("wiql result contains a reference without id")
		}
		out.IDs = append(out.IDs, *ref.Id)
	}
	w.log.Debugw("wiql query matched", "project", project, "count", len(out.IDs))
	return out, nil
}

func (w *workItemClient) GetWorkItems(ctx context.Context, ids []int, fields []string, asOf time.Time) ([]devops.WorkItem, error) {
	args := workitemtracking.GetWorkItemsArgs{
		Ids:    &ids,
		Fields: &fields,
	}
	if !asOf.IsZero() {
		args.AsOf = &azuredevops.Time{Time: asOf}
	}

	res, err := w.client.GetWorkItems(ctx, args)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("empty work items response")
	}

	items := make([]devops.WorkItem, 0, len(*res))
	for _, wi := range *res {
		if wi.Id == nil {
			return nil, fmt.Errorf("work item without id")
		}
		item := devops.WorkItem{ID: *wi.Id}
		if wi.Fields != nil {
			if title, ok := (*wi.Fields)[devops.FieldTitle].(string); ok {
				item.Title = title
			}
		}
		items = append(items, item)
	}
	return items, nil
}
