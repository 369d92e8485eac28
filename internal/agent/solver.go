package agent

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/rahul/rewoo/internal/observability"
	"github.com/tmc/langchaingo/llms"
)

// solveStepID labels the solver's model call in logs and errors.
const solveStepID = "solve"

// Solver turns the executed plan into the final answer with one model call.
type Solver struct {
	Model   llms.Model
	Prompts *PromptManager
	Logger  *observability.Logger
}

func NewSolver(model llms.Model, prompts *PromptManager, logger *observability.Logger) *Solver {
	return &Solver{
		Model:   model,
		Prompts: prompts,
		Logger:  logger,
	}
}

// Solve asks the model to answer the task given the resolved plan.
func (s *Solver) Solve(ctx context.Context, state *State) (string, error) {
	tmpl, err := s.Prompts.GetSolvePrompt()
	if err != nil {
		return "", err
	}
	prompt := renderPrompt(tmpl, map[string]string{
		"plan": Evidence(state.Steps, state.Results),
		"task": state.Task,
	})

	log.Printf("[Solve] %d steps of evidence", len(state.Steps))
	result, err := complete(ctx, s.Model, s.Logger, state.RunID, solveStepID, prompt, 0)
	if err != nil {
		return "", &ToolInvocationError{StepID: solveStepID, Tool: ToolLLM, Err: err}
	}
	return result, nil
}

// Evidence renders every step with results substituted into both its input and
// its ID, one "Plan: ...\n#En = Tool[...]" entry per step.
func Evidence(steps []Step, results *Results) string {
	entries := make([]string, 0, len(steps))
	for _, step := range steps {
		entries = append(entries, fmt.Sprintf("Plan: %s\n%s = %s[%s]",
			step.Plan,
			results.Substitute(step.ID),
			step.Tool,
			results.Substitute(step.Input),
		))
	}
	return strings.Join(entries, "\n")
}
