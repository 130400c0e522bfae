package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tfcws/config"
)

// NewRootCmd creates the root command for the tfcws CLI. The tool is
// single-flow, so the provisioning flags live on the root command
// itself.
func NewRootCmd() *cobra.Command {
	opts := &config.Options{}

	rootCmd := &cobra.Command{
		Use:   "tfcws",
		Short: "Create TFC Workspaces wired to GitLab-hosted Terraform configuration.",
		Long: `tfcws commits Terraform configuration into a GitLab repository,
creates a Terraform Cloud/Enterprise Workspace linked to it, attaches a
Variable Set, creates workspace variables from a rendered tfvars
template, and reports run outputs.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCreate(cmd.Context(), opts); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.Name, "name", "", "Name of Workspace to create in TFC.")
	flags.StringVar(&opts.ProjectName, "project-name", "", "Name of TFC Project to place Workspace in.")
	flags.StringVar(&opts.VCSRepo, "vcs-repo", "", "Reference to VCS repository in format of :org/:repo.")
	flags.StringVar(&opts.OAuthTokenID, "oauth-token-id", "", "OAuth Token ID of VCS provider connection in TFC.")
	flags.StringVar(&opts.VarsetName, "varset-name", "", "Name of TFC Variable Set to apply to Workspace.")
	flags.StringVar(&opts.TemplatesDir, "templates-dir", "", "Directory where the Terraform templates reside.")
	flags.StringVar(&opts.WorkingDir, "working-dir", "", "Directory in repo that the Workspace should be linked to (defaults to the workspace name).")
	flags.StringArrayVar(&opts.Vars, "var", nil, "Terraform input variable as key=value; may be repeated.")
	flags.StringSliceVar(&opts.Outputs, "outputs", nil, "Terraform outputs to print after the apply.")
	flags.BoolVar(&opts.AutoApply, "auto-apply", true, "Auto-apply the triggered run.")
	flags.BoolVar(&opts.SkipRun, "skip-run", false, "Create and wire the Workspace without triggering a run.")

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
