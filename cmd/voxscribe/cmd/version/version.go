package version

import (
	"fmt"

	"github.com/spf13/cobra"
	"voxscribe/internal/api/server"
)

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of voxscribe",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), server.Version)
		return nil
	},
}
