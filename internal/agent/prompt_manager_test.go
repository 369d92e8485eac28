package agent

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPromptManager_Defaults(t *testing.T) {
	pm := NewPromptManager("")

	solve, err := pm.GetSolvePrompt()
	if err != nil {
		t.Fatal(err)
	}
	for _, part := range []string{"{plan}", "{task}", "Response:"} {
		if !strings.Contains(solve, part) {
			t.Errorf("solve prompt missing %s", part)
		}
	}

	planner, err := pm.GetPlannerPrompt()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(planner, "{task}") {
		t.Error("planner prompt missing {task}")
	}
	// the example in the planner prompt must itself be a valid plan
	if n := len(ParsePlan(planner)); n != 3 {
		t.Errorf("planner example has %d parseable steps, want 3", n)
	}

	edit, err := pm.GetEditPrompt()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(edit, "{checklist}") || !strings.Contains(edit, "{edit}") {
		t.Error("edit prompt missing placeholders")
	}
}

func TestPromptManager_Override(t *testing.T) {
	tempDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tempDir, "planner.md"), []byte("Custom planner for {task}"), 0644); err != nil {
		t.Fatal(err)
	}

	pm := NewPromptManager(tempDir)
	planner, err := pm.GetPlannerPrompt()
	if err != nil {
		t.Fatal(err)
	}
	if planner != "Custom planner for {task}" {
		t.Errorf("Expected override, got %q", planner)
	}

	// files that are not overridden fall back to the built-in template
	solve, err := pm.GetSolvePrompt()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(solve, "Solve the following task") {
		t.Errorf("Expected built-in solve prompt, got %q", solve)
	}
}

func TestRenderPrompt(t *testing.T) {
	got := renderPrompt("{task} / {plan} / {other}", map[string]string{
		"task": "uses {plan} literally",
		"plan": "P",
	})
	want := "uses {plan} literally / P / {other}"
	if got != want {
		t.Errorf("renderPrompt() = %q, want %q", got, want)
	}
}
