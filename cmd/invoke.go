package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var invokeCmdInput string

var invokeCmd = &cobra.Command{
	Use:   "invoke <name>",
	Short: "Invoke a tool",
	Long: "Invokes a tool and prints the resulting envelope.\n" +
		"Failures of the upstream API are part of the envelope (status \"error\"), not command errors.",
	Example: "  stocks-mcp invoke get_stock_details --input '{\"name\": \"Tata Steel\"}'",
	Args:    cobra.ExactArgs(1),
	RunE:    runInvokeTool,
	Annotations: map[string]string{
		"group": string(subCommandGroupBasic),
		"order": "4",
	},
}

func init() {
	invokeCmd.Flags().StringVar(&invokeCmdInput, "input", "{}", "JSON object of tool arguments")
	rootCmd.AddCommand(invokeCmd)
}

// parseToolInput decodes the --input flag into tool arguments.
func parseToolInput(raw string) (map[string]any, error) {
	var input map[string]any
	if err := json.Unmarshal([]byte(raw), &input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	return input, nil
}

func runInvokeTool(cmd *cobra.Command, args []string) error {
	input, err := parseToolInput(invokeCmdInput)
	if err != nil {
		return err
	}

	env, err := apiClient.InvokeTool(args[0], input)
	if err != nil {
		return fmt.Errorf("failed to invoke tool: %w", err)
	}

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	// the envelope goes to stdout so that it can be piped, the failure note to stderr
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(out)); err != nil {
		return err
	}

	if env.IsError() {
		cmd.PrintErrf("Tool call failed with %s\n", env.ErrorType)
	}
	return nil
}
