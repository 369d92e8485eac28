package agent

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed prompts/*.md
var defaultPrompts embed.FS

const (
	solvePromptFile   = "solve.md"
	plannerPromptFile = "planner.md"
	editPromptFile    = "edit.md"
)

// PromptManager resolves prompt templates. A file with the same name in
// Directory takes precedence over the built-in template.
type PromptManager struct {
	Directory string
}

func NewPromptManager(dir string) *PromptManager {
	return &PromptManager{Directory: dir}
}

func (pm *PromptManager) GetSolvePrompt() (string, error) {
	return pm.get(solvePromptFile)
}

func (pm *PromptManager) GetPlannerPrompt() (string, error) {
	return pm.get(plannerPromptFile)
}

func (pm *PromptManager) GetEditPrompt() (string, error) {
	return pm.get(editPromptFile)
}

func (pm *PromptManager) get(name string) (string, error) {
	if pm != nil && pm.Directory != "" {
		path := filepath.Join(pm.Directory, name)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			return string(data), nil
		case !errors.Is(err, fs.ErrNotExist):
			log.Printf("Warning: Failed to read prompt file %s: %v", path, err)
		}
	}
	data, err := defaultPrompts.ReadFile("prompts/" + name)
	if err != nil {
		return "", fmt.Errorf("failed to read built-in prompt %s: %w", name, err)
	}
	return string(data), nil
}

// renderPrompt fills {name} placeholders in a single pass, so values that
// themselves contain placeholders are left as they are.
func renderPrompt(tmpl string, vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	oldnew := make([]string, 0, 2*len(names))
	for _, name := range names {
		oldnew = append(oldnew, "{"+name+"}", vars[name])
	}
	return strings.NewReplacer(oldnew...).Replace(tmpl)
}
