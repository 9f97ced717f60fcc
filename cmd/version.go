package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stocksmcp/stocks-mcp/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of stocks-mcp",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.GetVersion())
	},
	Annotations: map[string]string{
		"group": string(subCommandGroupAdvanced),
		"order": "7",
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
