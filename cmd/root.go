// Package cmd implements the stocks-mcp command line interface.
package cmd

import (
	"net/http"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stocksmcp/stocks-mcp/client"
	"github.com/stocksmcp/stocks-mcp/internal/config"
)

// subCommandGroup decides under which heading a command is listed in the help output.
type subCommandGroup string

const (
	subCommandGroupBasic    subCommandGroup = "basic"
	subCommandGroupAdvanced subCommandGroup = "advanced"
)

const defaultRegistryURL = "http://127.0.0.1:" + config.DefaultPort

var (
	registryServerURL string

	// apiClient talks to a running stocks-mcp server in http mode.
	// It is created before any subcommand runs.
	apiClient *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "stocks-mcp",
	Short: "MCP server for Indian stock market data",
	Long: "stocks-mcp exposes the stock.indianapi.in REST API as a set of MCP tools.\n\n" +
		"Run `stocks-mcp start` to serve the tools over stdio (default) or http.\n" +
		"The other commands talk to a server running in http mode.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		apiClient = client.NewClient(registryServerURL, os.Getenv(config.AccessTokenEnvVar), &http.Client{})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&registryServerURL,
		"registry",
		defaultRegistryURL,
		"Base URL of the stocks-mcp server (the access token is read from "+config.AccessTokenEnvVar+")",
	)

	rootCmd.AddGroup(
		&cobra.Group{ID: string(subCommandGroupBasic), Title: "Basic Commands:"},
		&cobra.Group{ID: string(subCommandGroupAdvanced), Title: "Advanced Commands:"},
	)
	rootCmd.SetHelpCommandGroupID(string(subCommandGroupAdvanced))
	rootCmd.SetCompletionCommandGroupID(string(subCommandGroupAdvanced))
}

// assignCommandGroups places every subcommand in the group named by its "group" annotation.
// Commands within a group keep the order given by their "order" annotation.
func assignCommandGroups(root *cobra.Command) {
	cmds := root.Commands()
	sort.SliceStable(cmds, func(i, j int) bool {
		return commandOrder(cmds[i]) < commandOrder(cmds[j])
	})
	for _, c := range cmds {
		if g, ok := c.Annotations["group"]; ok {
			c.GroupID = g
		}
	}
}

func commandOrder(c *cobra.Command) int {
	n, err := strconv.Atoi(c.Annotations["order"])
	if err != nil {
		return 1 << 10
	}
	return n
}

func Execute() error {
	// sorting is disabled so that the "order" annotation decides the listing
	cobra.EnableCommandSorting = false
	assignCommandGroups(rootCmd)
	return rootCmd.Execute()
}
