package tfvars

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// TemplateFileName is the variables template expected in the templates directory.
const TemplateFileName = "template.tfvars.tpl"

// ConfigFileName is the Terraform configuration expected in the templates directory.
const ConfigFileName = "main.tf"

// Value is a single user-supplied variable value. The raw command-line
// string is kept as-is; values that parse as JSON (numbers, bools,
// lists, maps) additionally carry their decoded form so they render as
// native HCL instead of quoted strings.
type Value struct {
	raw string
	val cty.Value
}

// Entry is one rendered variable assignment.
type Entry struct {
	Key   string
	Value Value
}

// Rendered is the result of substituting values into a template.
type Rendered struct {
	Content string
	Entries []Entry
}

// MissingVarsError reports template placeholders that have no
// corresponding --var on the command line.
type MissingVarsError struct {
	Keys []string
}

func (e *MissingVarsError) Error() string {
	return fmt.Sprintf("template placeholders without a supplied value: %s",
		strings.Join(e.Keys, ", "))
}
