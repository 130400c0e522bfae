package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TFE_TOKEN", "tfe-token")
	t.Setenv("TFE_ORG", "demo-org")
	t.Setenv("GL_TOKEN", "gl-token")
	t.Setenv("GL_PROJECT_ID", "12345")
}

func TestFromEnv(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "tfe-token", cfg.TFEToken)
	assert.Equal(t, "demo-org", cfg.TFEOrganization)
	assert.Equal(t, "gl-token", cfg.GitLabToken)
	assert.Equal(t, "12345", cfg.GitLabProjectID)
}

func TestFromEnvDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TFE_HOSTNAME", "")
	t.Setenv("GL_URL", "")
	t.Setenv("GL_BRANCH", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "app.terraform.io", cfg.TFEHostname)
	assert.Equal(t, "https://gitlab.com", cfg.GitLabURL)
	assert.Equal(t, "main", cfg.GitLabBranch)
}

func TestFromEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TFE_HOSTNAME", "tfe.example.com")
	t.Setenv("GL_URL", "https://gitlab.example.com")
	t.Setenv("GL_BRANCH", "trunk")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "tfe.example.com", cfg.TFEHostname)
	assert.Equal(t, "https://gitlab.example.com", cfg.GitLabURL)
	assert.Equal(t, "trunk", cfg.GitLabBranch)
}

func TestFromEnvMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TFE_TOKEN", "")
	t.Setenv("GL_PROJECT_ID", "")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TFE_TOKEN")
	assert.Contains(t, err.Error(), "GL_PROJECT_ID")
	assert.NotContains(t, err.Error(), "GL_TOKEN")
}
