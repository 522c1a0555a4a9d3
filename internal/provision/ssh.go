// internal/provision/ssh.go
package provision

import (
	"context"

	"github.com/hostprep/hostprep/internal/executor"
)

// SSHSteps ensures remote access survives the rest of the run: the server
// package is present, the daemon is running, and it comes back after reboot.
// Each concern is guarded separately so a partially set up host only gets
// the missing pieces.
func SSHSteps() []Step {
	return []Step{
		{
			Name:  "ssh_install",
			Label: "openssh-server installed",
			Check: func(ctx context.Context, exec executor.Executor) (bool, error) {
				return PackageInstalled(ctx, exec, "openssh-server")
			},
			Apply: func(ctx context.Context, r *Runner) error {
				return r.Do(ctx, "install openssh-server", "dnf", "-y", "install", "openssh-server")
			},
		},
		{
			Name:  "ssh_active",
			Label: "sshd running",
			Check: func(ctx context.Context, exec executor.Executor) (bool, error) {
				return ServiceActive(ctx, exec, "sshd")
			},
			Apply: func(ctx context.Context, r *Runner) error {
				return r.Do(ctx, "start sshd", "systemctl", "start", "sshd")
			},
		},
		{
			Name:  "ssh_enabled",
			Label: "sshd enabled at boot",
			Check: func(ctx context.Context, exec executor.Executor) (bool, error) {
				return ServiceEnabled(ctx, exec, "sshd")
			},
			Apply: func(ctx context.Context, r *Runner) error {
				return r.Do(ctx, "enable sshd", "systemctl", "enable", "sshd")
			},
		},
	}
}
