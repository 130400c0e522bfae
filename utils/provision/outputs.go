package provision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"

	"tfcws/utils/tfc"
)

// reportOutputs waits for the current state version to finish
// processing, then prints each requested output. A requested name the
// state does not carry is a per-name warning, never a fatal error.
func (m *Manager) reportOutputs(ctx context.Context, opts *Options, workspaceID string) error {
	stateVersionID, err := m.waitForState(ctx, workspaceID)
	if err != nil {
		return err
	}

	outputs, err := m.tfcClient.ListStateOutputs(ctx, stateVersionID)
	if err != nil {
		return err
	}

	byName := make(map[string]tfc.Output, len(outputs))
	for _, o := range outputs {
		byName[o.Name] = o
	}

	fmt.Fprintln(m.out, "[tfc] Printing outputs:")
	for _, name := range opts.Outputs {
		o, ok := byName[name]
		if !ok {
			fmt.Fprintf(m.out, "Warning: output '%s' not found in current state.\n", name)
			continue
		}
		fmt.Fprintf(m.out, "%s: %s\n", name, formatOutputValue(o))
	}
	return nil
}

func (m *Manager) waitForState(ctx context.Context, workspaceID string) (string, error) {
	return retry.DoWithData(
		func() (string, error) {
			state, err := m.tfcClient.ReadCurrentState(ctx, workspaceID)
			if err != nil {
				if errors.Is(err, tfc.ErrStateNotReady) {
					return "", err
				}
				return "", retry.Unrecoverable(err)
			}
			if !state.ResourcesProcessed {
				fmt.Fprintln(m.out, "[tfc] Waiting for outputs to be processed...")
				return "", tfc.ErrStateNotReady
			}
			return state.ID, nil
		},
		retry.Context(ctx),
		retry.Attempts(0),
		retry.Delay(m.pollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
}

func formatOutputValue(o tfc.Output) string {
	if o.Sensitive {
		return "(sensitive)"
	}
	if s, ok := o.Value.(string); ok {
		return s
	}
	encoded, err := json.Marshal(o.Value)
	if err != nil {
		return fmt.Sprintf("%v", o.Value)
	}
	return string(encoded)
}
