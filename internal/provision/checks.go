// internal/provision/checks.go
package provision

import (
	"context"

	"github.com/hostprep/hostprep/internal/executor"
)

// PackageInstalled queries the rpm database for an installed package.
func PackageInstalled(ctx context.Context, exec executor.Executor, pkg string) (bool, error) {
	_, err := exec.Run(ctx, "rpm", "-q", pkg)
	return err == nil, err
}

// ServiceActive reports whether a systemd unit is currently running.
func ServiceActive(ctx context.Context, exec executor.Executor, unit string) (bool, error) {
	_, err := exec.Run(ctx, "systemctl", "is-active", "--quiet", unit)
	return err == nil, err
}

// ServiceEnabled reports whether a systemd unit starts at boot.
func ServiceEnabled(ctx context.Context, exec executor.Executor, unit string) (bool, error) {
	_, err := exec.Run(ctx, "systemctl", "is-enabled", "--quiet", unit)
	return err == nil, err
}

// FirewallRunning reports whether firewalld is up.
func FirewallRunning(ctx context.Context, exec executor.Executor) (bool, error) {
	_, err := exec.Run(ctx, "firewall-cmd", "--state")
	return err == nil, err
}
