package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"tfcws/config"
	"tfcws/utils/gitlab"
	"tfcws/utils/provision"
	"tfcws/utils/tfc"
	"tfcws/utils/tfvars"
)

// runCreate validates all input, renders the tfvars template and then
// hands off to the provision manager. Every input error happens before
// any client is constructed, so bad invocations never reach the
// remote APIs.
func runCreate(ctx context.Context, opts *config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	mainConfig, rendered, err := renderTemplates(opts)
	if err != nil {
		return err
	}

	tfcClient, err := tfc.NewClient(cfg.TFEHostname, cfg.TFEToken, cfg.TFEOrganization)
	if err != nil {
		return err
	}
	glClient, err := gitlab.NewClient(cfg.GitLabURL, cfg.GitLabToken, cfg.GitLabProjectID, cfg.GitLabBranch)
	if err != nil {
		return err
	}

	manager := provision.NewManager(tfcClient, glClient)
	return manager.Execute(ctx, &provision.Options{
		Name:         opts.Name,
		ProjectName:  opts.ProjectName,
		VCSRepo:      opts.VCSRepo,
		OAuthTokenID: opts.OAuthTokenID,
		WorkingDir:   opts.WorkingDir,
		VarsetName:   opts.VarsetName,
		MainConfig:   mainConfig,
		Rendered:     rendered,
		Outputs:      opts.Outputs,
		AutoApply:    opts.AutoApply,
		SkipRun:      opts.SkipRun,
	})
}

func renderTemplates(opts *config.Options) (string, *tfvars.Rendered, error) {
	mainConfig, err := os.ReadFile(filepath.Join(opts.TemplatesDir, tfvars.ConfigFileName))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read configuration template: %w", err)
	}

	if len(opts.Vars) == 0 {
		return string(mainConfig), nil, nil
	}

	vars, err := tfvars.ParseVarFlags(opts.Vars)
	if err != nil {
		return "", nil, err
	}

	template, err := os.ReadFile(filepath.Join(opts.TemplatesDir, tfvars.TemplateFileName))
	if err != nil {
		return "", nil, fmt.Errorf("failed to read tfvars template: %w", err)
	}

	fmt.Println("Rendering variable values for new TFVARS file...")
	rendered, err := tfvars.Render(string(template), vars)
	if err != nil {
		return "", nil, err
	}

	return string(mainConfig), rendered, nil
}
