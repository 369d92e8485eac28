package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rahul/rewoo/internal/agent"
	"github.com/rahul/rewoo/internal/governance"
	"github.com/rahul/rewoo/internal/observability"
	"github.com/rahul/rewoo/internal/store"
	"github.com/rahul/rewoo/internal/tools"
	"github.com/rahul/rewoo/pkg/config"
	"github.com/tmc/langchaingo/llms"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return cfg, nil
}

// newLogger sends events to events (io.Discard when quiet) and keeps the LLM
// exchange log under the configured log directory.
func newLogger(cfg *config.Config, events io.Writer) *observability.Logger {
	dir := cfg.App.LogDir
	if dir == "" {
		dir = filepath.Join(cfg.App.Workspace, "logs")
	}
	return observability.NewLoggerTo(events, dir)
}

func newModel(cfg *config.Config) (llms.Model, error) {
	name, p := cfg.GetDefaultProvider()
	if name == "" {
		return nil, fmt.Errorf("no enabled provider found in config")
	}
	return tools.NewModel(name, p)
}

func newRunner(cfg *config.Config, model llms.Model, logger *observability.Logger) (*agent.Runner, error) {
	search, err := tools.NewSearchTool(cfg.Search)
	if err != nil {
		return nil, err
	}
	policy, err := governance.NewPolicyEngine(cfg.Governance.DenyTools, cfg.Governance.DenyPatterns)
	if err != nil {
		return nil, err
	}
	prompts := agent.NewPromptManager(cfg.App.PromptsDir)

	executor := agent.NewExecutor(search, model, policy, logger)
	solver := agent.NewSolver(model, prompts, logger)
	return agent.NewRunner(executor, solver, logger), nil
}

func openHistory(cfg *config.Config) (*store.RunStore, error) {
	if !cfg.HistoryEnabled() {
		return nil, fmt.Errorf("run history is disabled: set memory.path in %s", configPath)
	}
	return store.NewRunStore(cfg.Memory.Path)
}

// newRecord converts the state of a finished or aborted run into a history record.
func newRecord(state *agent.State, runErr error) store.Run {
	r := store.Run{
		ID:     state.RunID,
		Task:   state.Task,
		Plan:   state.PlanText,
		Result: state.Result,
		Status: store.StatusCompleted,
	}
	if runErr != nil {
		r.Status = store.StatusFailed
		r.Error = runErr.Error()
	}
	for _, id := range state.Results.Keys() {
		v, _ := state.Results.Get(id)
		r.Results = append(r.Results, store.StepResult{StepID: id, Value: v})
	}
	return r
}
