package agent

import (
	"regexp"
)

// planPattern matches one step of a plan: "Plan: <text> #E<n> = <Tool>[<input>]".
// The input runs up to the first closing bracket. Only the input may span lines.
var planPattern = regexp.MustCompile(`Plan:[ \t]*(.+?)[ \t]*(#E\d+)[ \t]*=[ \t]*(\w+)[ \t]*\[([^\]]+)\]`)

// Step represents a single tool invocation in a plan.
type Step struct {
	Plan  string `json:"plan"`
	ID    string `json:"id"`
	Tool  string `json:"tool"`
	Input string `json:"input"`
}

// ParsePlan extracts the steps of a plan in the order they appear in text.
// Text that does not match the step grammar is ignored, so a plan without any
// matching line yields no steps.
func ParsePlan(text string) []Step {
	matches := planPattern.FindAllStringSubmatch(text, -1)
	steps := make([]Step, 0, len(matches))
	for _, m := range matches {
		steps = append(steps, Step{
			Plan:  m[1],
			ID:    m[2],
			Tool:  m[3],
			Input: m[4],
		})
	}
	return steps
}
