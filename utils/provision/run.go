package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/avast/retry-go/v4"

	"tfcws/utils/tfc"
)

var errRunInProgress = errors.New("run still in progress")

// waitForRun polls the run until the plan phase and then the apply
// phase finish. An errored run is fatal; API read failures abort the
// wait rather than being retried.
func (m *Manager) waitForRun(ctx context.Context, runID string) error {
	if err := m.waitForPhase(ctx, runID, "plan", tfc.RunStatus.PlanFinished); err != nil {
		return err
	}
	return m.waitForPhase(ctx, runID, "apply", tfc.RunStatus.ApplyFinished)
}

func (m *Manager) waitForPhase(ctx context.Context, runID, phase string, done func(tfc.RunStatus) bool) error {
	return retry.Do(
		func() error {
			status, err := m.tfcClient.ReadRunStatus(ctx, runID)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			if status == tfc.RunErrored {
				return retry.Unrecoverable(fmt.Errorf("run %s errored during %s", runID, phase))
			}
			if done(status) {
				return nil
			}
			fmt.Fprintf(m.out, "[tfc] Waiting for %s to finish... %s\n", phase, status)
			return errRunInProgress
		},
		retry.Context(ctx),
		retry.Attempts(0),
		retry.Delay(m.pollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
}
