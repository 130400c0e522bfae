package tfc

import (
	"context"
	"errors"
)

// ErrStateNotReady signals that the workspace has no readable current
// state version yet. Callers poll until it clears.
var ErrStateNotReady = errors.New("current state version not ready")

// Client defines the Terraform Cloud/Enterprise operations the tool
// needs. Tests substitute an in-memory fake.
type Client interface {
	FindProjectID(ctx context.Context, name string) (string, error)
	CreateWorkspace(ctx context.Context, opts *CreateWorkspaceOptions) (string, error)
	FindVariableSetID(ctx context.Context, name string) (string, error)
	ApplyVariableSet(ctx context.Context, varsetID, workspaceID string) error
	CreateVariable(ctx context.Context, workspaceID string, v *Variable) error
	CreateRun(ctx context.Context, opts *CreateRunOptions) (string, error)
	ReadRunStatus(ctx context.Context, runID string) (RunStatus, error)
	ReadCurrentState(ctx context.Context, workspaceID string) (*StateInfo, error)
	ListStateOutputs(ctx context.Context, stateVersionID string) ([]Output, error)
}

// CreateWorkspaceOptions describes the workspace to create. The VCS
// repository is attached at creation time so runs trigger on commits.
type CreateWorkspaceOptions struct {
	Name             string
	ProjectID        string
	VCSRepo          string
	OAuthTokenID     string
	WorkingDirectory string
}

// Variable is one workspace variable. HCL marks values that must be
// evaluated as HCL expressions to keep a non-string type.
type Variable struct {
	Key       string
	Value     string
	HCL       bool
	Sensitive bool
}

// CreateRunOptions describes the run to trigger after provisioning.
type CreateRunOptions struct {
	WorkspaceID string
	Message     string
	AutoApply   bool
}

// RunStatus mirrors the remote run lifecycle states the tool inspects.
type RunStatus string

const (
	RunPending            RunStatus = "pending"
	RunPlanned            RunStatus = "planned"
	RunPlannedAndFinished RunStatus = "planned_and_finished"
	RunPolicyChecked      RunStatus = "policy_checked"
	RunApplyQueued        RunStatus = "apply_queued"
	RunApplying           RunStatus = "applying"
	RunApplied            RunStatus = "applied"
	RunErrored            RunStatus = "errored"
)

// PlanFinished reports whether the plan phase is over and the run is
// either finished or moving on to apply.
func (s RunStatus) PlanFinished() bool {
	switch s {
	case RunPlanned, RunPlannedAndFinished, RunPolicyChecked,
		RunApplyQueued, RunApplying, RunApplied:
		return true
	}
	return false
}

// ApplyFinished reports whether the run reached a terminal success state.
func (s RunStatus) ApplyFinished() bool {
	return s == RunApplied || s == RunPlannedAndFinished
}

// StateInfo identifies a workspace's current state version.
type StateInfo struct {
	ID                 string
	ResourcesProcessed bool
}

// Output is one named output value of a state version.
type Output struct {
	Name      string
	Value     interface{}
	Sensitive bool
}
