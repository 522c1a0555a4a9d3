// internal/provision/provision.go
package provision

import (
	"context"
	"fmt"

	"github.com/hostprep/hostprep/internal/executor"
	"github.com/hostprep/hostprep/internal/logging"
)

// Step is one unit of the provisioning sequence. Check is the idempotency
// guard: when it reports the desired state already holds, Apply is skipped.
// A nil Check means the step is reapplied unconditionally every run.
type Step struct {
	Name  string
	Label string
	Check func(ctx context.Context, exec executor.Executor) (bool, error)
	Apply func(ctx context.Context, r *Runner) error
}

type StepResult struct {
	Name    string
	Skipped bool
	Error   error
}

// Runner couples an executor with the run log. Do carries the per-command
// contract: INFO on attempt, SUCCESS on zero exit, ERROR on non-zero exit.
type Runner struct {
	Exec executor.Executor
	Log  *logging.Logger
}

func NewRunner(exec executor.Executor, log *logging.Logger) *Runner {
	return &Runner{Exec: exec, Log: log}
}

func (r *Runner) Do(ctx context.Context, desc string, name string, args ...string) error {
	r.Log.Info(desc)
	if _, err := r.Exec.Run(ctx, name, args...); err != nil {
		r.Log.Errorf("%s: %v", desc, err)
		return fmt.Errorf("%s: %w", desc, err)
	}
	r.Log.Success(desc)
	return nil
}

// Run executes the steps in order, fail-fast: the first Apply error ends the
// run, no rollback, no retry. Guard checks never abort the run on their own;
// a failing check just means the step gets applied.
func Run(ctx context.Context, r *Runner, steps []Step) ([]StepResult, error) {
	var results []StepResult

	for _, step := range steps {
		if step.Check != nil {
			done, err := step.Check(ctx, r.Exec)
			if err == nil && done {
				r.Log.Skipf("%s: already configured", step.Label)
				results = append(results, StepResult{Name: step.Name, Skipped: true})
				continue
			}
		}

		if err := step.Apply(ctx, r); err != nil {
			r.Log.Errorf("%s failed: %v", step.Label, err)
			results = append(results, StepResult{Name: step.Name, Error: err})
			return results, err
		}

		r.Log.Success(step.Label)
		results = append(results, StepResult{Name: step.Name})
	}

	return results, nil
}
