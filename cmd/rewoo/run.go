package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rahul/rewoo/internal/observability"
	"github.com/rahul/rewoo/internal/source"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a plan and solve the task",
	Long: `Execute every step of a plan in order and answer the task from the results.

The plan is read from a file or fetched from an http(s) URL.

Examples:
  rewoo run --plan legal_research_plan.txt --task "Summarize data privacy law in India"
  rewoo run --plan https://example.com/plan.html --task "..." --json`,
	RunE: runRun,
}

var (
	runPlan    string
	runTask    string
	runNoSave  bool
	runJSON    bool
	runVerbose bool
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runPlan, "plan", "p", "", "plan file or URL")
	runCmd.Flags().StringVarP(&runTask, "task", "t", "", "task description")
	runCmd.Flags().BoolVar(&runNoSave, "no-save", false, "do not record the run in history")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the run state as JSON")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "stream structured events to stderr")
	_ = runCmd.MarkFlagRequired("plan")
	_ = runCmd.MarkFlagRequired("task")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var events io.Writer = io.Discard
	if runVerbose {
		events = observability.NewTermWriter()
	}
	logger := newLogger(cfg, events)

	model, err := newModel(cfg)
	if err != nil {
		return err
	}
	runner, err := newRunner(cfg, model, logger)
	if err != nil {
		return err
	}

	planText, err := source.NewLoader().Load(ctx, runPlan)
	if err != nil {
		return err
	}

	observability.PrintBanner(os.Stderr)
	state, runErr := runner.Run(ctx, planText, runTask)

	if cfg.HistoryEnabled() && !runNoSave {
		history, err := openHistory(cfg)
		if err != nil {
			log.Printf("Warning: failed to open history: %v", err)
		} else {
			if err := history.SaveRun(newRecord(state, runErr)); err != nil {
				log.Printf("Warning: failed to save run %s: %v", state.RunID, err)
			}
			history.Close()
		}
	}

	if runErr != nil {
		return fmt.Errorf("run %s aborted: %w", state.RunID, runErr)
	}

	out := cmd.OutOrStdout()
	if runJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}
	_, err = fmt.Fprintln(out, state.Result)
	return err
}
