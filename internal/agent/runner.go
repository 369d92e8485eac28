package agent

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/rahul/rewoo/internal/observability"
)

// State is everything a single run reads and writes. It belongs to one run
// and must not be shared between runs.
type State struct {
	RunID    string   `json:"run_id"`
	Task     string   `json:"task"`
	PlanText string   `json:"-"`
	Steps    []Step   `json:"steps"`
	Results  *Results `json:"results"`
	Result   string   `json:"result,omitempty"`
	// Done is set once the solver has produced Result.
	Done bool `json:"done"`
}

// Runner drives a plan through the plan, tool and solve nodes.
type Runner struct {
	Executor *Executor
	Solver   *Solver
	Logger   *observability.Logger
}

func NewRunner(executor *Executor, solver *Solver, logger *observability.Logger) *Runner {
	return &Runner{
		Executor: executor,
		Solver:   solver,
		Logger:   logger,
	}
}

// Run parses planText, executes its steps in order and solves task with the
// collected evidence. On error the returned state holds the results of the
// steps that completed before the failure.
func (r *Runner) Run(ctx context.Context, planText, task string) (*State, error) {
	state := &State{
		RunID:    uuid.NewString(),
		Task:     task,
		PlanText: planText,
	}

	for node := NodePlan; node != NodeEnd; node = next(node, state) {
		switch node {
		case NodePlan:
			state.Steps = ParsePlan(planText)
			state.Results = NewResults()
			log.Printf("[Plan] run %s: %d steps", state.RunID, len(state.Steps))
			r.Logger.LogPlan(state.RunID, len(state.Steps), task)

		case NodeTool:
			if err := r.Executor.Execute(ctx, state); err != nil {
				r.Logger.LogError(state.RunID, currentStepID(state), err)
				return state, err
			}

		case NodeSolve:
			result, err := r.Solver.Solve(ctx, state)
			if err != nil {
				r.Logger.LogError(state.RunID, solveStepID, err)
				return state, err
			}
			state.Result = result
			state.Done = true
			r.Logger.LogSolve(state.RunID, result)
		}
	}
	return state, nil
}

// currentStepID returns the ID of the step the executor would run next.
func currentStepID(s *State) string {
	if i := s.Results.Len(); i < len(s.Steps) {
		return s.Steps[i].ID
	}
	return ""
}
