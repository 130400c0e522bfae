package config

import (
	"errors"
	"fmt"
	"strings"
)

// Options holds the invocation parameters supplied as command-line
// flags. Immutable after Validate.
type Options struct {
	Name         string
	ProjectName  string
	VCSRepo      string
	OAuthTokenID string
	VarsetName   string
	TemplatesDir string
	WorkingDir   string
	Vars         []string
	Outputs      []string
	AutoApply    bool
	SkipRun      bool
}

// Validate checks required flags and applies defaults. All missing
// flags are reported together; nothing remote happens before this
// passes.
func (o *Options) Validate() error {
	var missing []string
	if o.Name == "" {
		missing = append(missing, "--name")
	}
	if o.ProjectName == "" {
		missing = append(missing, "--project-name")
	}
	if o.VCSRepo == "" {
		missing = append(missing, "--vcs-repo")
	}
	if o.OAuthTokenID == "" {
		missing = append(missing, "--oauth-token-id")
	}
	if o.VarsetName == "" {
		missing = append(missing, "--varset-name")
	}
	if o.TemplatesDir == "" {
		missing = append(missing, "--templates-dir")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}

	if !strings.Contains(o.VCSRepo, "/") {
		return errors.New("--vcs-repo must be in owner/repo format")
	}

	if o.WorkingDir == "" {
		o.WorkingDir = o.Name
	}

	return nil
}
