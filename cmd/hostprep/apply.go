// cmd/hostprep/apply.go
package main

import (
	"github.com/hostprep/hostprep/internal/config"
	"github.com/hostprep/hostprep/internal/executor"
	"github.com/hostprep/hostprep/internal/logging"
	"github.com/hostprep/hostprep/internal/netconf"
	"github.com/hostprep/hostprep/internal/provision"
	"github.com/hostprep/hostprep/internal/webserver"
	"github.com/spf13/cobra"
)

var configFlag string

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Provision network, SSH, firewall and nginx on this host",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var params netconf.Params
		var err error
		if configFlag != "" {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			params = cfg.Params()
		} else {
			params, err = netconf.RunWizard(ctx)
			if err != nil {
				return err
			}
		}
		if err := netconf.CheckInterface(params.Interface); err != nil {
			return err
		}

		log, err := logging.New(logging.DefaultPath)
		if err != nil {
			return err
		}
		defer log.Close()

		logging.Header("Provisioning host...")

		r := provision.NewRunner(executor.NewLocalExecutor(), log)
		if _, err := provision.Run(ctx, r, pipeline(params)); err != nil {
			logging.Bad("Provisioning aborted. Inspect " + logging.DefaultPath + " and `journalctl -u nginx` for details.")
			return err
		}

		logging.Result("Host provisioned successfully!")
		return nil
	},
}

// pipeline is the whole provisioning sequence, in its fixed order.
func pipeline(params netconf.Params) []provision.Step {
	steps := []provision.Step{
		provision.PrivilegeStep(),
		provision.UpdateStep(),
	}
	steps = append(steps, provision.SSHSteps()...)
	steps = append(steps, netconf.ConfigureStep(params))
	steps = append(steps, webserver.InstallStep())
	steps = append(steps, provision.FirewallStep())
	steps = append(steps, webserver.ServiceSteps()...)
	steps = append(steps,
		webserver.ContentStep(params.ServerName),
		webserver.ValidateStep(),
	)
	return steps
}

func init() {
	applyCmd.Flags().StringVar(&configFlag, "config", "", "yaml parameters file (skips the interactive wizard)")
	rootCmd.AddCommand(applyCmd)
}
