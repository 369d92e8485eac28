package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/rahul/rewoo/internal/observability"
	"github.com/tmc/langchaingo/llms"
)

// plannerTemperature leaves the model some room when drafting a plan.
const plannerTemperature = 0.5

// Planner asks the model to write or revise a plan in the step grammar.
type Planner struct {
	Model   llms.Model
	Prompts *PromptManager
	Logger  *observability.Logger
}

func NewPlanner(model llms.Model, prompts *PromptManager, logger *observability.Logger) *Planner {
	return &Planner{
		Model:   model,
		Prompts: prompts,
		Logger:  logger,
	}
}

// Generate drafts a new plan for task.
func (p *Planner) Generate(ctx context.Context, task string) (string, error) {
	tmpl, err := p.Prompts.GetPlannerPrompt()
	if err != nil {
		return "", err
	}
	prompt := renderPrompt(tmpl, map[string]string{"task": task})
	return p.ask(ctx, "generate", prompt)
}

// Edit revises an existing plan according to a free-text edit request.
func (p *Planner) Edit(ctx context.Context, plan, edit string) (string, error) {
	tmpl, err := p.Prompts.GetEditPrompt()
	if err != nil {
		return "", err
	}
	prompt := renderPrompt(tmpl, map[string]string{
		"checklist": plan,
		"edit":      edit,
	})
	return p.ask(ctx, "edit", prompt)
}

func (p *Planner) ask(ctx context.Context, action, prompt string) (string, error) {
	resp, err := complete(ctx, p.Model, p.Logger, "", action, prompt, plannerTemperature)
	if err != nil {
		return "", fmt.Errorf("failed to %s plan: %w", action, err)
	}
	plan := strings.TrimSpace(resp)
	if n := len(ParsePlan(plan)); n == 0 {
		log.Printf("Warning: %s returned no recognizable steps", action)
	}
	return plan, nil
}
