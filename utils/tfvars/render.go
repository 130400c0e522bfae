package tfvars

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// ParseValue interprets a command-line variable value. Anything that
// decodes as JSON keeps its decoded type (number, bool, list, map) so
// it renders as native HCL; everything else is a plain string.
func ParseValue(s string) Value {
	t, err := ctyjson.ImpliedType([]byte(s))
	if err != nil {
		return Value{raw: s}
	}
	v, err := ctyjson.Unmarshal([]byte(s), t)
	if err != nil {
		return Value{raw: s}
	}
	return Value{raw: s, val: v}
}

// ParseVarFlags turns repeated --var key=value flags into a value map.
func ParseVarFlags(pairs []string) (map[string]Value, error) {
	vars := make(map[string]Value, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --var %q: expected key=value", pair)
		}
		vars[key] = ParseValue(raw)
	}
	return vars, nil
}

// Raw returns the original command-line string.
func (v Value) Raw() string {
	return v.raw
}

// HCL returns the value rendered as a canonically formatted HCL
// expression.
func (v Value) HCL() string {
	val := v.val
	if val == cty.NilVal {
		val = cty.StringVal(v.raw)
	}
	return string(hclwrite.Format(hclwrite.TokensForValue(val).Bytes()))
}

// IsTyped reports whether the value carried a non-string JSON type.
func (v Value) IsTyped() bool {
	return v.val != cty.NilVal && !v.val.Type().Equals(cty.String)
}

// WorkspaceValue returns the value to store as a workspace variable and
// whether it must be flagged as an HCL expression to keep its type.
func (v Value) WorkspaceValue() (string, bool) {
	if v.IsTyped() {
		return v.HCL(), true
	}
	if v.val != cty.NilVal {
		return v.val.AsString(), false
	}
	return v.raw, false
}

// Render substitutes the supplied values into a tfvars-shaped template.
// Each template line of the form "key = ..." becomes an assignment of
// the supplied value for that key, aligned on "=". Every placeholder
// key in the template must have a value or rendering fails with a
// MissingVarsError naming all of them; supplied variables without a
// matching placeholder are ignored.
func Render(template string, vars map[string]Value) (*Rendered, error) {
	var keys []string
	var missing []string
	for _, line := range strings.Split(template, "\n") {
		before, _, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key := strings.TrimSpace(before)
		if key == "" || strings.HasPrefix(key, "#") {
			continue
		}
		if _, found := vars[key]; !found {
			missing = append(missing, key)
			continue
		}
		keys = append(keys, key)
	}
	if len(missing) > 0 {
		return nil, &MissingVarsError{Keys: missing}
	}

	maxKeyLen := 0
	for _, key := range keys {
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
	}

	var sb strings.Builder
	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		value := vars[key]
		fmt.Fprintf(&sb, "%-*s = %s\n", maxKeyLen, key, value.HCL())
		entries = append(entries, Entry{Key: key, Value: value})
	}

	return &Rendered{Content: sb.String(), Entries: entries}, nil
}
