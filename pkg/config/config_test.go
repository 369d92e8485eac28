package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"app": {"name": "rewoo", "prompts_dir": "./prompts"},
		"providers": {
			"openai": {"api_key": "sk-test", "model": "gpt-4o-mini", "enabled": true}
		},
		"search": {"provider": "duckduckgo", "max_results": 5},
		"memory": {"type": "sqlite", "path": "history.db"},
		"governance": {"deny_patterns": ["rm\\s+-rf"]}
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.App.PromptsDir != "./prompts" {
		t.Errorf("prompts_dir = %q", cfg.App.PromptsDir)
	}
	name, p := cfg.GetDefaultProvider()
	if name != "openai" || p.APIKey != "sk-test" {
		t.Errorf("default provider = %s %+v", name, p)
	}
	if cfg.Search.MaxResults != 5 {
		t.Errorf("max_results = %d", cfg.Search.MaxResults)
	}
	if len(cfg.Governance.DenyPatterns) != 1 {
		t.Errorf("deny_patterns = %v", cfg.Governance.DenyPatterns)
	}
	if !cfg.HistoryEnabled() {
		t.Error("history should be enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
providers:
  ollama:
    model: llama3
    base_url: http://localhost:11434
    enabled: true
search:
  provider: serpapi
  api_key: serp-key
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	name, p := cfg.GetDefaultProvider()
	if name != "ollama" || p.BaseURL != "http://localhost:11434" {
		t.Errorf("default provider = %s %+v", name, p)
	}
	if cfg.Search.Provider != "serpapi" || cfg.Search.APIKey != "serp-key" {
		t.Errorf("search = %+v", cfg.Search)
	}
	if cfg.HistoryEnabled() {
		t.Error("history should be disabled without a memory path")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
	if _, err := LoadConfig(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestGetDefaultProvider_Deterministic(t *testing.T) {
	cfg := &Config{Providers: map[string]ProviderConfig{
		"openrouter": {Enabled: true},
		"openai":     {Enabled: true},
		"anthropic":  {Enabled: false},
	}}
	for i := 0; i < 10; i++ {
		if name, _ := cfg.GetDefaultProvider(); name != "openai" {
			t.Fatalf("GetDefaultProvider() = %s, want openai", name)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Search: SearchConfig{Provider: "bing"},
		Memory: MemoryConfig{Type: "postgres"},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"no enabled provider", "bing", "postgres"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}
