package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultTFEHostname = "app.terraform.io"
	defaultGitLabURL   = "https://gitlab.com"
	defaultBranch      = "main"
)

// Config carries the remote endpoint settings read from the process
// environment. It is built once at startup and passed down explicitly;
// step logic never reads the environment itself.
type Config struct {
	TFEHostname     string
	TFEToken        string
	TFEOrganization string

	GitLabURL       string
	GitLabToken     string
	GitLabProjectID string
	GitLabBranch    string
}

// FromEnv builds the configuration from environment variables. All
// missing required variables are reported in a single error so the
// operator can fix them in one pass.
func FromEnv() (*Config, error) {
	cfg := &Config{
		TFEHostname:     getenvDefault("TFE_HOSTNAME", defaultTFEHostname),
		TFEToken:        os.Getenv("TFE_TOKEN"),
		TFEOrganization: os.Getenv("TFE_ORG"),
		GitLabURL:       getenvDefault("GL_URL", defaultGitLabURL),
		GitLabToken:     os.Getenv("GL_TOKEN"),
		GitLabProjectID: os.Getenv("GL_PROJECT_ID"),
		GitLabBranch:    getenvDefault("GL_BRANCH", defaultBranch),
	}

	var missing []string
	if cfg.TFEToken == "" {
		missing = append(missing, "TFE_TOKEN")
	}
	if cfg.TFEOrganization == "" {
		missing = append(missing, "TFE_ORG")
	}
	if cfg.GitLabToken == "" {
		missing = append(missing, "GL_TOKEN")
	}
	if cfg.GitLabProjectID == "" {
		missing = append(missing, "GL_PROJECT_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s",
			strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
