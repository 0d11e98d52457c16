package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyonpay/payctl/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		cctx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}

		info := version.GetInfo()
		if cctx.Format == "" || cctx.Format == "text" {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		}
		return writeOutput(cmd, cctx.Format, info)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
