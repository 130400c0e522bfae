package gitlab

import "context"

// Client defines the GitLab operations the tool needs: committing
// generated configuration files into the project repository.
type Client interface {
	CreateFile(ctx context.Context, path, content, commitMessage string) error
}
