package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfcws/config"
	"tfcws/utils/tfvars"
)

func writeTemplates(t *testing.T, template string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, tfvars.ConfigFileName),
		[]byte("module \"demo\" {}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, tfvars.TemplateFileName),
		[]byte(template), 0644))
	return dir
}

func setEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TFE_TOKEN", "tfe-token")
	t.Setenv("TFE_ORG", "demo-org")
	t.Setenv("GL_TOKEN", "gl-token")
	t.Setenv("GL_PROJECT_ID", "12345")
}

func TestRunCreateMissingFlags(t *testing.T) {
	err := runCreate(context.Background(), &config.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--name")
}

func TestRunCreateMissingEnv(t *testing.T) {
	t.Setenv("TFE_TOKEN", "")
	t.Setenv("TFE_ORG", "")
	t.Setenv("GL_TOKEN", "")
	t.Setenv("GL_PROJECT_ID", "")

	opts := &config.Options{
		Name:         "demo-ws",
		ProjectName:  "demo-proj",
		VCSRepo:      "org/repo",
		OAuthTokenID: "ot-123",
		VarsetName:   "creds",
		TemplatesDir: t.TempDir(),
	}
	err := runCreate(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment variables")
}

// An unresolved template placeholder stops the run before any client
// is even constructed.
func TestRunCreateUnresolvedPlaceholder(t *testing.T) {
	setEnv(t)

	opts := &config.Options{
		Name:         "demo-ws",
		ProjectName:  "demo-proj",
		VCSRepo:      "org/repo",
		OAuthTokenID: "ot-123",
		VarsetName:   "creds",
		TemplatesDir: writeTemplates(t, "length = 0\nprefix = \"\"\n"),
		Vars:         []string{"length=2"},
	}
	err := runCreate(context.Background(), opts)
	require.Error(t, err)

	var missing *tfvars.MissingVarsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"prefix"}, missing.Keys)
}

func TestRunCreateMissingTemplateDir(t *testing.T) {
	setEnv(t)

	opts := &config.Options{
		Name:         "demo-ws",
		ProjectName:  "demo-proj",
		VCSRepo:      "org/repo",
		OAuthTokenID: "ot-123",
		VarsetName:   "creds",
		TemplatesDir: filepath.Join(t.TempDir(), "does-not-exist"),
	}
	err := runCreate(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration template")
}
