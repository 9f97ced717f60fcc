package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	historyCmdLimit int
	historyCmdTool  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recent tool calls",
	Long:  "Lists the tool calls recorded by a server started with --history, most recent first.",
	RunE:  runListHistory,
	Annotations: map[string]string{
		"group": string(subCommandGroupAdvanced),
		"order": "5",
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyCmdLimit, "limit", 0, "maximum number of calls to show (server default if unset)")
	historyCmd.Flags().StringVar(&historyCmdTool, "tool", "", "only show calls to this tool")
	rootCmd.AddCommand(historyCmd)
}

func runListHistory(cmd *cobra.Command, args []string) error {
	calls, err := apiClient.ListCalls(historyCmdLimit, historyCmdTool)
	if err != nil {
		return fmt.Errorf("failed to list call history: %w", err)
	}
	if len(calls) == 0 {
		cmd.Println("No tool calls recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CALLED\tTOOL\tSTATUS\tDURATION")
	for _, c := range calls {
		status := string(c.Status)
		if c.ErrorType != "" {
			status += " (" + string(c.ErrorType) + ")"
		}
		_, _ = fmt.Fprintf(
			w, "%s\t%s\t%s\t%s\n",
			humanize.Time(c.CalledAt), c.Tool, status, time.Duration(c.DurationMs)*time.Millisecond,
		)
	}
	return w.Flush()
}
