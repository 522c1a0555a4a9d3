// cmd/hostprep/root.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.2.0"

var rootCmd = &cobra.Command{
	Use:   "hostprep",
	Short: "Turn a fresh server into a working web host in one command",
	Long:  "Hostprep configures static networking, SSH, the firewall and nginx on a fresh RHEL-family server, then publishes a default page.",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print hostprep version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hostprep", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
