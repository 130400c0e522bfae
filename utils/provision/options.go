package provision

import (
	"tfcws/utils/tfvars"
)

// Options represents one provisioning invocation. Rendering already
// happened by the time the manager runs, so every remaining step is a
// remote call.
type Options struct {
	Name         string
	ProjectName  string
	VCSRepo      string
	OAuthTokenID string
	WorkingDir   string
	VarsetName   string

	// MainConfig is the Terraform configuration committed to the
	// repository as <name>/main.tf.
	MainConfig string

	// Rendered is the rendered tfvars artifact; nil when no --var was
	// supplied, in which case only main.tf is committed and no
	// workspace variables are created.
	Rendered *tfvars.Rendered

	Outputs   []string
	AutoApply bool
	SkipRun   bool
}
