package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stocksmcp/stocks-mcp/internal"
	"github.com/stocksmcp/stocks-mcp/internal/config"
)

var genTokenCmd = &cobra.Command{
	Use:   "gen-token",
	Short: "Generate an access token for the HTTP server",
	Long: fmt.Sprintf(
		"Prints a random access token.\nSet it in %s before starting the server in http mode,\n"+
			"then send it as a bearer token from MCP clients.", config.AccessTokenEnvVar,
	),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := internal.GenerateAccessToken()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
	Annotations: map[string]string{
		"group": string(subCommandGroupAdvanced),
		"order": "6",
	},
}

func init() {
	rootCmd.AddCommand(genTokenCmd)
}
