package agent

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestEvidence(t *testing.T) {
	steps := ParsePlan("Plan: find capital #E1 = Google[capital of France]\nPlan: later #E2 = LLM[about #E1 and #E3]")
	results := NewResults()
	results.add("#E1", "Paris")

	got := Evidence(steps, results)
	want := "Plan: find capital\nParis = Google[capital of France]\n" +
		"Plan: later\n#E2 = LLM[about Paris and #E3]"
	if got != want {
		t.Errorf("Evidence() =\n%s\nwant\n%s", got, want)
	}

	if got := Evidence(nil, NewResults()); got != "" {
		t.Errorf("Evidence of empty plan = %q, want empty", got)
	}
}

func TestSolver_PromptOverride(t *testing.T) {
	dir := t.TempDir()
	tmpl := "TASK={task}\nEVIDENCE={plan}"
	if err := os.WriteFile(filepath.Join(dir, "solve.md"), []byte(tmpl), 0644); err != nil {
		t.Fatal(err)
	}

	model := staticModel("42")
	s := NewSolver(model, NewPromptManager(dir), nil)
	state := newState("Plan: a #E1 = Google[x]")
	state.Task = "answer {plan}"
	state.Results.add("#E1", "y")

	got, err := s.Solve(context.Background(), state)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if got != "42" {
		t.Errorf("Solve() = %q, want 42", got)
	}

	want := "TASK=answer {plan}\nEVIDENCE=Plan: a\ny = Google[x]"
	if model.prompts[0] != want {
		t.Errorf("prompt =\n%s\nwant\n%s", model.prompts[0], want)
	}
}
