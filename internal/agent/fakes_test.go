package agent

import (
	"context"
	"errors"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// fakeModel is an llms.Model that answers prompts with respond and records
// every prompt it receives.
type fakeModel struct {
	prompts      []string
	temperatures []float64
	respond      func(prompt string) (string, error)
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	var opts llms.CallOptions
	for _, opt := range options {
		opt(&opts)
	}

	var sb strings.Builder
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				sb.WriteString(text.Text)
			}
		}
	}
	prompt := sb.String()
	m.prompts = append(m.prompts, prompt)
	m.temperatures = append(m.temperatures, opts.Temperature)

	if m.respond == nil {
		return nil, errors.New("fake model has no response")
	}
	text, err := m.respond(prompt)
	if err != nil {
		return nil, err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: text}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

// fakeSearch records queries and answers them with respond.
type fakeSearch struct {
	queries []string
	respond func(query string) (string, error)
}

func (s *fakeSearch) Search(ctx context.Context, query string) (string, error) {
	s.queries = append(s.queries, query)
	return s.respond(query)
}

func staticModel(text string) *fakeModel {
	return &fakeModel{respond: func(string) (string, error) { return text, nil }}
}

func staticSearch(text string) *fakeSearch {
	return &fakeSearch{respond: func(string) (string, error) { return text, nil }}
}
