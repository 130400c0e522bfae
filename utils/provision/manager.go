package provision

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"tfcws/utils/gitlab"
	"tfcws/utils/tfc"
)

// Manager sequences the provisioning steps: commit the configuration
// to GitLab, create the workspace, attach the variable set, create
// workspace variables, trigger a run and report outputs. Steps run
// strictly in order; the first failure aborts the rest. Nothing is
// rolled back.
type Manager struct {
	tfcClient    tfc.Client
	glClient     gitlab.Client
	out          io.Writer
	pollInterval time.Duration
}

// NewManager creates a provision manager.
func NewManager(tfcClient tfc.Client, glClient gitlab.Client) *Manager {
	return &Manager{
		tfcClient:    tfcClient,
		glClient:     glClient,
		out:          os.Stdout,
		pollInterval: 5 * time.Second,
	}
}

// SetOutput redirects progress output.
func (m *Manager) SetOutput(w io.Writer) {
	m.out = w
}

// SetPollInterval overrides the run status polling interval.
func (m *Manager) SetPollInterval(d time.Duration) {
	m.pollInterval = d
}

// Execute runs the full provisioning flow with the given options.
func (m *Manager) Execute(ctx context.Context, opts *Options) error {
	if err := m.commitConfig(ctx, opts); err != nil {
		return fmt.Errorf("committing configuration: %w", err)
	}

	workspaceID, err := m.createWorkspace(ctx, opts)
	if err != nil {
		return fmt.Errorf("creating workspace: %w", err)
	}

	if err := m.attachVariableSet(ctx, opts, workspaceID); err != nil {
		return fmt.Errorf("attaching variable set: %w", err)
	}

	if err := m.createVariables(ctx, opts, workspaceID); err != nil {
		return fmt.Errorf("creating workspace variables: %w", err)
	}

	if opts.SkipRun {
		fmt.Fprintln(m.out, "[tfc] Skipping run trigger.")
		return nil
	}

	runID, err := m.triggerRun(ctx, opts, workspaceID)
	if err != nil {
		return fmt.Errorf("triggering run: %w", err)
	}

	if err := m.waitForRun(ctx, runID); err != nil {
		return fmt.Errorf("waiting for run: %w", err)
	}

	if len(opts.Outputs) > 0 {
		if err := m.reportOutputs(ctx, opts, workspaceID); err != nil {
			return fmt.Errorf("reading outputs: %w", err)
		}
	}

	return nil
}

func (m *Manager) commitConfig(ctx context.Context, opts *Options) error {
	fmt.Fprintln(m.out, "[gl] Creating new folder and TF files in repo...")

	commitMessage := fmt.Sprintf("Creating new '%s' config.", opts.Name)

	mainPath := path.Join(opts.Name, "main.tf")
	fmt.Fprintf(m.out, "[gl] Creating '%s'...\n", mainPath)
	if err := m.glClient.CreateFile(ctx, mainPath, opts.MainConfig, commitMessage); err != nil {
		return err
	}

	if opts.Rendered == nil {
		fmt.Fprintln(m.out, "[gl] No input vars were specified. Skipping TFVARS rendering.")
		return nil
	}

	tfvarsPath := path.Join(opts.Name, "terraform.auto.tfvars")
	fmt.Fprintf(m.out, "[gl] Creating '%s'...\n", tfvarsPath)
	return m.glClient.CreateFile(ctx, tfvarsPath, opts.Rendered.Content, commitMessage)
}

func (m *Manager) createWorkspace(ctx context.Context, opts *Options) (string, error) {
	projectID, err := m.tfcClient.FindProjectID(ctx, opts.ProjectName)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(m.out, "[tfc] Creating workspace '%s'...\n", opts.Name)
	return m.tfcClient.CreateWorkspace(ctx, &tfc.CreateWorkspaceOptions{
		Name:             opts.Name,
		ProjectID:        projectID,
		VCSRepo:          opts.VCSRepo,
		OAuthTokenID:     opts.OAuthTokenID,
		WorkingDirectory: opts.WorkingDir,
	})
}

func (m *Manager) attachVariableSet(ctx context.Context, opts *Options, workspaceID string) error {
	fmt.Fprintf(m.out, "[tfc] Fetching variable set ID for '%s'...\n", opts.VarsetName)
	varsetID, err := m.tfcClient.FindVariableSetID(ctx, opts.VarsetName)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "[tfc] Applying variable set to workspace...")
	return m.tfcClient.ApplyVariableSet(ctx, varsetID, workspaceID)
}

func (m *Manager) createVariables(ctx context.Context, opts *Options, workspaceID string) error {
	if opts.Rendered == nil {
		return nil
	}

	for _, entry := range opts.Rendered.Entries {
		value, hcl := entry.Value.WorkspaceValue()
		fmt.Fprintf(m.out, "[tfc] Creating workspace variable '%s'...\n", entry.Key)
		err := m.tfcClient.CreateVariable(ctx, workspaceID, &tfc.Variable{
			Key:   entry.Key,
			Value: value,
			HCL:   hcl,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) triggerRun(ctx context.Context, opts *Options, workspaceID string) (string, error) {
	fmt.Fprintln(m.out, "[tfc] Triggering run...")
	return m.tfcClient.CreateRun(ctx, &tfc.CreateRunOptions{
		WorkspaceID: workspaceID,
		Message:     "Triggered by tfcws.",
		AutoApply:   opts.AutoApply,
	})
}
