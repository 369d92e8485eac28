package tools

import (
	"fmt"

	"github.com/rahul/rewoo/pkg/config"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewModel creates the language model for a configured provider. Credentials
// come from p only.
func NewModel(name string, p config.ProviderConfig) (llms.Model, error) {
	switch name {
	case "openai", "openrouter":
		if p.APIKey == "" {
			return nil, fmt.Errorf("provider %s requires an api_key", name)
		}
		opts := []openai.Option{
			openai.WithToken(p.APIKey),
		}
		if p.Model != "" {
			opts = append(opts, openai.WithModel(p.Model))
		}
		if p.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(p.BaseURL))
		}
		return openai.New(opts...)

	case "anthropic":
		if p.APIKey == "" {
			return nil, fmt.Errorf("provider %s requires an api_key", name)
		}
		opts := []anthropic.Option{
			anthropic.WithToken(p.APIKey),
		}
		if p.Model != "" {
			opts = append(opts, anthropic.WithModel(p.Model))
		}
		if p.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(p.BaseURL))
		}
		return anthropic.New(opts...)

	case "ollama":
		var opts []ollama.Option
		if p.Model != "" {
			opts = append(opts, ollama.WithModel(p.Model))
		}
		if p.BaseURL != "" {
			opts = append(opts, ollama.WithServerURL(p.BaseURL))
		}
		return ollama.New(opts...)
	}
	return nil, fmt.Errorf("provider %s not supported", name)
}
