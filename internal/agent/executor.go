package agent

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rahul/rewoo/internal/governance"
	"github.com/rahul/rewoo/internal/observability"
	"github.com/tmc/langchaingo/llms"
)

var errNoSearcher = errors.New("no search tool configured")

// Executor runs plan steps one at a time against the search tool or the model.
type Executor struct {
	Search Searcher
	Model  llms.Model
	Policy governance.PolicyEngine
	Logger *observability.Logger
}

func NewExecutor(search Searcher, model llms.Model, policy governance.PolicyEngine, logger *observability.Logger) *Executor {
	return &Executor{
		Search: search,
		Model:  model,
		Policy: policy,
		Logger: logger,
	}
}

// Execute runs the first step of the plan that has no result yet and records
// its output. It does nothing when every step already has a result.
func (e *Executor) Execute(ctx context.Context, state *State) error {
	if state.Results == nil {
		state.Results = NewResults()
	}
	idx := state.Results.Len()
	if idx >= len(state.Steps) {
		return nil
	}
	step := state.Steps[idx]
	e.Logger.LogStep(state.RunID, step.ID, step.Plan, idx+1, len(state.Steps))

	if state.Results.Has(step.ID) {
		return &MalformedStepError{StepID: step.ID, Reason: "step id is already used by an earlier step"}
	}
	kind, ok := ParseToolKind(step.Tool)
	if !ok {
		return &UnknownToolError{StepID: step.ID, Tool: step.Tool}
	}

	input := state.Results.Substitute(step.Input)

	if e.Policy != nil {
		res, err := e.Policy.Evaluate(ctx, governance.Request{
			RunID:  state.RunID,
			StepID: step.ID,
			Tool:   string(kind),
			Input:  input,
		})
		if err != nil {
			return fmt.Errorf("step %s: policy evaluation: %w", step.ID, err)
		}
		if res.Effect == governance.EffectDeny {
			return &PolicyDeniedError{StepID: step.ID, Reason: res.Reason}
		}
	}

	log.Printf("[Step %d/%d] %s = %s[%s]", idx+1, len(state.Steps), step.ID, kind, input)
	e.Logger.LogToolCall(state.RunID, step.ID, string(kind), input)

	result, err := e.dispatch(ctx, state.RunID, step.ID, kind, input)
	if err != nil {
		return &ToolInvocationError{StepID: step.ID, Tool: kind, Err: err}
	}

	e.Logger.LogToolResult(state.RunID, step.ID, string(kind), result)
	state.Results.add(step.ID, result)
	return nil
}

func (e *Executor) dispatch(ctx context.Context, runID, stepID string, kind ToolKind, input string) (string, error) {
	switch kind {
	case ToolGoogle:
		if e.Search == nil {
			return "", errNoSearcher
		}
		return e.Search.Search(ctx, input)
	case ToolLLM:
		return complete(ctx, e.Model, e.Logger, runID, stepID, input, 0)
	}
	return "", fmt.Errorf("unhandled tool kind %q", kind)
}

// complete sends a single prompt to the model and returns its text.
func complete(ctx context.Context, model llms.Model, logger *observability.Logger, runID, stepID, prompt string, temperature float64) (string, error) {
	if model == nil {
		return "", errors.New("no language model configured")
	}
	resp, err := llms.GenerateFromSinglePrompt(ctx, model, prompt, llms.WithTemperature(temperature))
	if err != nil {
		return "", err
	}
	logger.LogLLM(runID, stepID, prompt, resp)
	return resp, nil
}
