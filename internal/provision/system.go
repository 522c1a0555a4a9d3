// internal/provision/system.go
package provision

import (
	"context"
	"fmt"
	"strings"
)

// PrivilegeStep verifies the run has root privileges before anything mutates.
func PrivilegeStep() Step {
	return Step{
		Name:  "privilege",
		Label: "root privileges",
		Apply: func(ctx context.Context, r *Runner) error {
			out, err := r.Exec.Run(ctx, "id", "-u")
			if err != nil {
				return fmt.Errorf("determine effective uid: %w", err)
			}
			if uid := strings.TrimSpace(out); uid != "0" {
				return fmt.Errorf("must be run as root (effective uid %s)", uid)
			}
			return nil
		},
	}
}

// UpdateStep refreshes and updates system packages. Always runs.
func UpdateStep() Step {
	return Step{
		Name:  "update",
		Label: "system packages updated",
		Apply: func(ctx context.Context, r *Runner) error {
			return r.Do(ctx, "update system packages", "dnf", "-y", "update")
		},
	}
}
