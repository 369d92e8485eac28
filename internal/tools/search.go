package tools

import (
	"context"
	"fmt"

	"github.com/rahul/rewoo/pkg/config"
	"github.com/tmc/langchaingo/tools"
	"github.com/tmc/langchaingo/tools/duckduckgo"
	"github.com/tmc/langchaingo/tools/serpapi"
)

const (
	ProviderDuckDuckGo = "duckduckgo"
	ProviderSerpAPI    = "serpapi"

	defaultMaxResults = 10
)

// SearchTool answers the Google steps of a plan.
type SearchTool struct {
	provider string
	client   tools.Tool
}

// NewSearchTool builds the configured search backend. DuckDuckGo needs no key;
// SerpAPI takes its key from cfg and never from the environment.
func NewSearchTool(cfg config.SearchConfig) (*SearchTool, error) {
	switch cfg.Provider {
	case "", ProviderDuckDuckGo:
		maxResults := cfg.MaxResults
		if maxResults <= 0 {
			maxResults = defaultMaxResults
		}
		userAgent := cfg.UserAgent
		if userAgent == "" {
			userAgent = duckduckgo.DefaultUserAgent
		}
		ddg, err := duckduckgo.New(maxResults, userAgent)
		if err != nil {
			return nil, err
		}
		return &SearchTool{provider: ProviderDuckDuckGo, client: ddg}, nil

	case ProviderSerpAPI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("search provider %s requires an api_key", ProviderSerpAPI)
		}
		serp, err := serpapi.New(serpapi.WithAPIKey(cfg.APIKey))
		if err != nil {
			return nil, err
		}
		return &SearchTool{provider: ProviderSerpAPI, client: serp}, nil
	}
	return nil, fmt.Errorf("unknown search provider %q", cfg.Provider)
}

// NewSearchToolFrom wraps an existing langchaingo tool.
func NewSearchToolFrom(provider string, client tools.Tool) *SearchTool {
	return &SearchTool{provider: provider, client: client}
}

func (s *SearchTool) Provider() string {
	return s.provider
}

func (s *SearchTool) Search(ctx context.Context, query string) (string, error) {
	res, err := s.client.Call(ctx, query)
	if err != nil {
		return "", fmt.Errorf("%s search failed: %w", s.provider, err)
	}
	return res, nil
}
