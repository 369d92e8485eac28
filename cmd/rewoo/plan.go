package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rahul/rewoo/internal/agent"
	"github.com/rahul/rewoo/internal/source"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Draft or revise plans with the language model",
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft a plan for a task",
	Long: `Ask the language model to break a task into Google and LLM steps.

Examples:
  rewoo plan generate --task "Research data privacy law in India" --out legal_research_plan.txt`,
	RunE: runPlanGenerate,
}

var planEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Revise an existing plan",
	Long: `Ask the language model to apply an edit to a plan while keeping its format.

Examples:
  rewoo plan edit --plan legal_research_plan.txt --edit "add a step comparing with GDPR" --out legal_research_plan.txt`,
	RunE: runPlanEdit,
}

var (
	planTask string
	planFile string
	planEdit string
	planOut  string
)

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planEditCmd)

	planCmd.PersistentFlags().StringVarP(&planOut, "out", "o", "", "write the plan to this file instead of stdout")

	planGenerateCmd.Flags().StringVarP(&planTask, "task", "t", "", "task description")
	_ = planGenerateCmd.MarkFlagRequired("task")

	planEditCmd.Flags().StringVarP(&planFile, "plan", "p", "", "plan file or URL to revise")
	planEditCmd.Flags().StringVarP(&planEdit, "edit", "e", "", "description of the required edits")
	_ = planEditCmd.MarkFlagRequired("plan")
	_ = planEditCmd.MarkFlagRequired("edit")
}

func newPlanner() (*agent.Planner, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	model, err := newModel(cfg)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg, io.Discard)
	return agent.NewPlanner(model, agent.NewPromptManager(cfg.App.PromptsDir), logger), nil
}

func runPlanGenerate(cmd *cobra.Command, args []string) error {
	planner, err := newPlanner()
	if err != nil {
		return err
	}
	plan, err := planner.Generate(cmd.Context(), planTask)
	if err != nil {
		return err
	}
	return writePlan(cmd.OutOrStdout(), plan)
}

func runPlanEdit(cmd *cobra.Command, args []string) error {
	planner, err := newPlanner()
	if err != nil {
		return err
	}
	current, err := source.NewLoader().Load(cmd.Context(), planFile)
	if err != nil {
		return err
	}
	plan, err := planner.Edit(cmd.Context(), current, planEdit)
	if err != nil {
		return err
	}
	return writePlan(cmd.OutOrStdout(), plan)
}

func writePlan(stdout io.Writer, plan string) error {
	if planOut == "" {
		_, err := fmt.Fprintln(stdout, plan)
		return err
	}
	if err := os.WriteFile(planOut, []byte(plan+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}
	log.Printf("Plan with %d steps written to %s", len(agent.ParsePlan(plan)), planOut)
	return nil
}
