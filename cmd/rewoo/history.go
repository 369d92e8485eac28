package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rahul/rewoo/internal/store"
	"github.com/rahul/rewoo/pkg/config"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded runs",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a run with its step results",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show")
}

// openHistoryFromConfig skips Validate: reading history needs no provider.
func openHistoryFromConfig() (*store.RunStore, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return openHistory(cfg)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	history, err := openHistoryFromConfig()
	if err != nil {
		return err
	}
	defer history.Close()

	runs, err := history.ListRuns(historyLimit)
	if err != nil {
		return err
	}
	return printRuns(cmd.OutOrStdout(), runs)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	history, err := openHistoryFromConfig()
	if err != nil {
		return err
	}
	defer history.Close()

	run, err := history.GetRun(args[0])
	if err != nil {
		return err
	}
	return printRun(cmd.OutOrStdout(), run)
}

func printRuns(w io.Writer, runs []store.Run) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tSTATUS\tTASK")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Status, truncate(r.Task, 60))
	}
	return tw.Flush()
}

func printRun(w io.Writer, r *store.Run) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Run:     %s\n", r.ID)
	fmt.Fprintf(&sb, "Created: %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "Status:  %s\n", r.Status)
	fmt.Fprintf(&sb, "Task:    %s\n", r.Task)
	if r.Error != "" {
		fmt.Fprintf(&sb, "Error:   %s\n", r.Error)
	}
	sb.WriteString("\n-- EVIDENCE --\n")
	for _, sr := range r.Results {
		fmt.Fprintf(&sb, "%s: %s\n", sr.StepID, sr.Value)
	}
	if r.Result != "" {
		sb.WriteString("\n-- RESULT --\n")
		sb.WriteString(r.Result)
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
