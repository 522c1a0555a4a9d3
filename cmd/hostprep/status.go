// cmd/hostprep/status.go
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostprep/hostprep/internal/executor"
	"github.com/hostprep/hostprep/internal/logging"
	"github.com/hostprep/hostprep/internal/provision"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report which provisioning steps are already in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		exec := executor.NewLocalExecutor()

		checks := []struct {
			label string
			fn    func(context.Context, executor.Executor) (bool, error)
		}{
			{"openssh-server installed", func(ctx context.Context, e executor.Executor) (bool, error) {
				return provision.PackageInstalled(ctx, e, "openssh-server")
			}},
			{"sshd running", func(ctx context.Context, e executor.Executor) (bool, error) {
				return provision.ServiceActive(ctx, e, "sshd")
			}},
			{"sshd enabled at boot", func(ctx context.Context, e executor.Executor) (bool, error) {
				return provision.ServiceEnabled(ctx, e, "sshd")
			}},
			{"nginx installed", func(ctx context.Context, e executor.Executor) (bool, error) {
				return provision.PackageInstalled(ctx, e, "nginx")
			}},
			{"nginx running", func(ctx context.Context, e executor.Executor) (bool, error) {
				return provision.ServiceActive(ctx, e, "nginx")
			}},
			{"nginx enabled at boot", func(ctx context.Context, e executor.Executor) (bool, error) {
				return provision.ServiceEnabled(ctx, e, "nginx")
			}},
			{"firewalld running", func(ctx context.Context, e executor.Executor) (bool, error) {
				return provision.FirewallRunning(ctx, e)
			}},
		}

		logging.Header("Host status")
		for _, c := range checks {
			ok, _ := c.fn(ctx, exec)
			if ok {
				logging.Good(c.label)
			} else {
				logging.Bad(c.label)
			}
		}

		// Active connections are informational only.
		out, err := exec.Run(ctx, "nmcli", "-t", "-f", "NAME,DEVICE", "connection", "show", "--active")
		if err == nil {
			fmt.Println()
			for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
				name, device, ok := strings.Cut(line, ":")
				if !ok || device == "lo" {
					continue
				}
				fmt.Printf("  active connection: %s (%s)\n", name, device)
			}
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
