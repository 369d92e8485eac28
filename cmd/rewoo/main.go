package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rahul/rewoo/internal/observability"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rewoo",
	Short: "Plan, execute and solve research tasks",
	Long: `rewoo runs a plan of tool steps written as

  Plan: <what to do> #E<n> = <Google|LLM>[<input>]

Each step may use the results of earlier steps by referring to their #E ids.
Once every step has run, the collected evidence is handed to the language
model to answer the task.`,
	SilenceUsage: true,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.json", "config file (.json, .yaml or .yml)")
}

func main() {
	// Route all log output through the terminal mutex so it never
	// interleaves with the banner.
	log.SetOutput(observability.NewTermWriter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
