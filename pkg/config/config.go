package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig                 `json:"app" yaml:"app"`
	Providers  map[string]ProviderConfig `json:"providers" yaml:"providers"`
	Search     SearchConfig              `json:"search" yaml:"search"`
	Memory     MemoryConfig              `json:"memory" yaml:"memory"`
	Governance GovernanceConfig          `json:"governance" yaml:"governance"`
}

type AppConfig struct {
	Name       string `json:"name" yaml:"name"`
	Workspace  string `json:"workspace" yaml:"workspace"`
	PromptsDir string `json:"prompts_dir,omitempty" yaml:"prompts_dir,omitempty"`
	LogDir     string `json:"log_dir,omitempty" yaml:"log_dir,omitempty"`
}

type ProviderConfig struct {
	APIKey  string `json:"api_key" yaml:"api_key"`
	Model   string `json:"model" yaml:"model"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}

// SearchConfig selects the backend for Google steps.
type SearchConfig struct {
	Provider   string `json:"provider" yaml:"provider"` // duckduckgo (default) or serpapi
	APIKey     string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	MaxResults int    `json:"max_results,omitempty" yaml:"max_results,omitempty"`
	UserAgent  string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

type MemoryConfig struct {
	Type string `json:"type" yaml:"type"`
	Path string `json:"path" yaml:"path"`
}

type GovernanceConfig struct {
	DenyTools    []string `json:"deny_tools,omitempty" yaml:"deny_tools,omitempty"`
	DenyPatterns []string `json:"deny_patterns,omitempty" yaml:"deny_patterns,omitempty"`
}

// LoadConfig reads a JSON or YAML (.yaml, .yml) config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return &cfg, nil
}

// GetDefaultProvider returns the first enabled provider in name order.
func (c *Config) GetDefaultProvider() (string, ProviderConfig) {
	names := make([]string, 0, len(c.Providers))
	for name := range c.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if p := c.Providers[name]; p.Enabled {
			return name, p
		}
	}
	return "", ProviderConfig{}
}

// Validate reports configuration that would prevent a run from starting.
func (c *Config) Validate() error {
	var errs []error
	if name, _ := c.GetDefaultProvider(); name == "" {
		errs = append(errs, errors.New("no enabled provider found"))
	}
	switch c.Search.Provider {
	case "", "duckduckgo":
	case "serpapi":
		if c.Search.APIKey == "" {
			errs = append(errs, errors.New("search provider serpapi requires an api_key"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown search provider %q", c.Search.Provider))
	}
	if c.Memory.Type != "" && c.Memory.Type != "sqlite" {
		errs = append(errs, fmt.Errorf("unsupported memory type %q", c.Memory.Type))
	}
	return errors.Join(errs...)
}

// HistoryEnabled reports whether runs should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.Memory.Path != ""
}
