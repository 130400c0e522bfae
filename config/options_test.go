package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() *Options {
	return &Options{
		Name:         "demo-ws",
		ProjectName:  "demo-proj",
		VCSRepo:      "org/repo",
		OAuthTokenID: "ot-123",
		VarsetName:   "creds",
		TemplatesDir: "./templates",
	}
}

func TestOptionsValidate(t *testing.T) {
	opts := validOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, "demo-ws", opts.WorkingDir, "working dir defaults to the workspace name")
}

func TestOptionsValidateKeepsExplicitWorkingDir(t *testing.T) {
	opts := validOptions()
	opts.WorkingDir = "infra/demo"
	require.NoError(t, opts.Validate())
	assert.Equal(t, "infra/demo", opts.WorkingDir)
}

func TestOptionsValidateMissingFlags(t *testing.T) {
	tests := []struct {
		flag  string
		unset func(*Options)
	}{
		{"--name", func(o *Options) { o.Name = "" }},
		{"--project-name", func(o *Options) { o.ProjectName = "" }},
		{"--vcs-repo", func(o *Options) { o.VCSRepo = "" }},
		{"--oauth-token-id", func(o *Options) { o.OAuthTokenID = "" }},
		{"--varset-name", func(o *Options) { o.VarsetName = "" }},
		{"--templates-dir", func(o *Options) { o.TemplatesDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			opts := validOptions()
			tt.unset(opts)
			err := opts.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.flag)
		})
	}
}

func TestOptionsValidateVCSRepoFormat(t *testing.T) {
	opts := validOptions()
	opts.VCSRepo = "not-owner-repo"
	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner/repo")
}
