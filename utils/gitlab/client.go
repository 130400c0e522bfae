package gitlab

import (
	"context"
	"fmt"

	gogitlab "github.com/xanzy/go-gitlab"
)

type client struct {
	gl        *gogitlab.Client
	projectID string
	branch    string
}

// NewClient creates a GitLab client bound to one project and branch.
func NewClient(baseURL, token, projectID, branch string) (Client, error) {
	gl, err := gogitlab.NewClient(token, gogitlab.WithBaseURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("unable to configure GitLab client: %w", err)
	}

	return &client{gl: gl, projectID: projectID, branch: branch}, nil
}

func (c *client) CreateFile(ctx context.Context, path, content, commitMessage string) error {
	_, _, err := c.gl.RepositoryFiles.CreateFile(c.projectID, path, &gogitlab.CreateFileOptions{
		Branch:        gogitlab.Ptr(c.branch),
		Content:       gogitlab.Ptr(content),
		CommitMessage: gogitlab.Ptr(commitMessage),
	}, gogitlab.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to create %q in project %s: %w", path, c.projectID, err)
	}
	return nil
}
