package tfc

import (
	"context"
	"errors"
	"fmt"

	tfe "github.com/hashicorp/go-tfe"
)

type client struct {
	tfe *tfe.Client
	org string
}

// NewClient creates a Terraform Cloud/Enterprise client bound to one
// organization.
func NewClient(hostname, token, org string) (Client, error) {
	c, err := tfe.NewClient(&tfe.Config{
		Address:           fmt.Sprintf("https://%s", hostname),
		Token:             token,
		RetryServerErrors: true,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to configure TFC client: %w", err)
	}

	return &client{tfe: c, org: org}, nil
}

func (c *client) FindProjectID(ctx context.Context, name string) (string, error) {
	options := &tfe.ProjectListOptions{
		ListOptions: tfe.ListOptions{PageSize: 100},
		Name:        name,
	}
	for {
		list, err := c.tfe.Projects.List(ctx, c.org, options)
		if err != nil {
			return "", fmt.Errorf("failed to list projects: %w", err)
		}
		for _, p := range list.Items {
			if p.Name == name {
				return p.ID, nil
			}
		}
		if list.CurrentPage >= list.TotalPages {
			break
		}
		options.PageNumber = list.NextPage
	}
	return "", fmt.Errorf("project %q not found in organization %q", name, c.org)
}

func (c *client) CreateWorkspace(ctx context.Context, opts *CreateWorkspaceOptions) (string, error) {
	createOpts := tfe.WorkspaceCreateOptions{
		Name:             tfe.String(opts.Name),
		WorkingDirectory: tfe.String(opts.WorkingDirectory),
		VCSRepo: &tfe.VCSRepoOptions{
			Identifier:   tfe.String(opts.VCSRepo),
			OAuthTokenID: tfe.String(opts.OAuthTokenID),
		},
	}
	if opts.ProjectID != "" {
		createOpts.Project = &tfe.Project{ID: opts.ProjectID}
	}

	ws, err := c.tfe.Workspaces.Create(ctx, c.org, createOpts)
	if err != nil {
		return "", fmt.Errorf("failed to create workspace %q: %w", opts.Name, err)
	}
	return ws.ID, nil
}

func (c *client) FindVariableSetID(ctx context.Context, name string) (string, error) {
	// The variable set list endpoint has no exact-name filter, so
	// match client-side across pages.
	options := &tfe.VariableSetListOptions{
		ListOptions: tfe.ListOptions{PageSize: 100},
	}
	for {
		list, err := c.tfe.VariableSets.List(ctx, c.org, options)
		if err != nil {
			return "", fmt.Errorf("failed to list variable sets: %w", err)
		}
		for _, vs := range list.Items {
			if vs.Name == name {
				return vs.ID, nil
			}
		}
		if list.CurrentPage >= list.TotalPages {
			break
		}
		options.PageNumber = list.NextPage
	}
	return "", fmt.Errorf("variable set %q not found in organization %q", name, c.org)
}

func (c *client) ApplyVariableSet(ctx context.Context, varsetID, workspaceID string) error {
	err := c.tfe.VariableSets.ApplyToWorkspaces(ctx, varsetID, &tfe.VariableSetApplyToWorkspacesOptions{
		Workspaces: []*tfe.Workspace{{ID: workspaceID}},
	})
	if err != nil {
		return fmt.Errorf("failed to apply variable set: %w", err)
	}
	return nil
}

func (c *client) CreateVariable(ctx context.Context, workspaceID string, v *Variable) error {
	_, err := c.tfe.Variables.Create(ctx, workspaceID, tfe.VariableCreateOptions{
		Key:       tfe.String(v.Key),
		Value:     tfe.String(v.Value),
		Category:  tfe.Category(tfe.CategoryTerraform),
		HCL:       tfe.Bool(v.HCL),
		Sensitive: tfe.Bool(v.Sensitive),
	})
	if err != nil {
		return fmt.Errorf("failed to create variable %q: %w", v.Key, err)
	}
	return nil
}

func (c *client) CreateRun(ctx context.Context, opts *CreateRunOptions) (string, error) {
	run, err := c.tfe.Runs.Create(ctx, tfe.RunCreateOptions{
		Workspace: &tfe.Workspace{ID: opts.WorkspaceID},
		Message:   tfe.String(opts.Message),
		AutoApply: tfe.Bool(opts.AutoApply),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}
	return run.ID, nil
}

func (c *client) ReadRunStatus(ctx context.Context, runID string) (RunStatus, error) {
	run, err := c.tfe.Runs.Read(ctx, runID)
	if err != nil {
		return "", fmt.Errorf("failed to read run %q: %w", runID, err)
	}
	return RunStatus(run.Status), nil
}

func (c *client) ReadCurrentState(ctx context.Context, workspaceID string) (*StateInfo, error) {
	sv, err := c.tfe.StateVersions.ReadCurrent(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, tfe.ErrResourceNotFound) {
			return nil, ErrStateNotReady
		}
		return nil, fmt.Errorf("failed to read current state version: %w", err)
	}
	return &StateInfo{ID: sv.ID, ResourcesProcessed: sv.ResourcesProcessed}, nil
}

func (c *client) ListStateOutputs(ctx context.Context, stateVersionID string) ([]Output, error) {
	options := &tfe.StateVersionOutputsListOptions{
		ListOptions: tfe.ListOptions{PageSize: 100},
	}
	var outputs []Output
	for {
		list, err := c.tfe.StateVersions.ListOutputs(ctx, stateVersionID, options)
		if err != nil {
			return nil, fmt.Errorf("failed to list state outputs: %w", err)
		}
		for _, o := range list.Items {
			outputs = append(outputs, Output{
				Name:      o.Name,
				Value:     o.Value,
				Sensitive: o.Sensitive,
			})
		}
		if list.CurrentPage >= list.TotalPages {
			break
		}
		options.PageNumber = list.NextPage
	}
	return outputs, nil
}
