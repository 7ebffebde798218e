// Package azure implements the devops backends on the Azure DevOps REST API.
package azure

import (
	"context"
	"fmt"

	"release-notes-webhook/config"
	"release-notes-webhook/internal/devops"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/git"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/workitemtracking"
	"go.uber.org/zap"
)

// Connection opens Azure DevOps clients for one organization.
type Connection struct {
	log  *zap.SugaredLogger
	conn *azuredevops.Connection
}

var _ devops.Connection = (*Connection)(nil)

// NewConnection authenticates against the organization with basic credentials.
// An empty username falls back to a personal-access-token connection.
func NewConnection(log *zap.SugaredLogger, cfg *config.DevOpsConfig) *Connection {
	conn := azuredevops.NewPatConnection(cfg.OrganizationURL, cfg.AccessToken)
	if cfg.Username != "" {
		conn.AuthorizationString = azuredevops.CreateBasicAuthHeaderValue(cfg.Username, cfg.AccessToken)
	}
	return &Connection{
		log:  log.Named("devops.azure"),
		conn: conn,
	}
}

// NewWorkItemClient returns a fresh work-item tracking client.
func (c *Connection) NewWorkItemClient(ctx context.Context) (devops.WorkItemClient, error) {
	client, err := workitemtracking.NewClient(ctx, c.conn)
	if err != nil {
		return nil, fmt.Errorf("work item tracking client: %w", err)
	}
	return &workItemClient{log: c.log, client: client}, nil
}

// NewGitClient returns a fresh git client.
func (c *Connection) NewGitClient(ctx context.Context) (devops.GitClient, error) {
	client, err := git.NewClient(ctx, c.conn)
	if err != nil {
		return nil, fmt.Errorf("git client: %w", err)
	}
	return &gitClient{log: c.log, client: client}, nil
}
