package agent

import (
	"context"
)

// ToolKind is the closed set of tools a plan step can call.
type ToolKind string

const (
	ToolGoogle ToolKind = "Google"
	ToolLLM    ToolKind = "LLM"
)

// ParseToolKind maps a tool name from a plan onto a ToolKind. Names are
// case-sensitive.
func ParseToolKind(name string) (ToolKind, bool) {
	switch ToolKind(name) {
	case ToolGoogle:
		return ToolGoogle, true
	case ToolLLM:
		return ToolLLM, true
	}
	return "", false
}

// Searcher runs a web search and returns the results as text.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// SearchFunc adapts a plain function to Searcher.
type SearchFunc func(ctx context.Context, query string) (string, error)

func (f SearchFunc) Search(ctx context.Context, query string) (string, error) {
	return f(ctx, query)
}
