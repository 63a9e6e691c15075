// Package config loads and validates kestrel's configuration.
package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string

	// System-wide defaults
	Defaults *Defaults

	// Per-subsystem configuration
	Queue     *QueueConfig
	Ambient   *AmbientConfig
	Curiosity *CuriosityConfig
	Summary   *SummaryConfig
	Retention *RetentionConfig
	LLM       *LLMConfig
	Graph     *GraphConfig
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Defaults holds system-wide default settings.
type Defaults struct {
	// UserID is the single deployment user. The daemon is single-user;
	// multi-user rows still carry user_id for partitioning.
	UserID string `yaml:"user_id"`

	// Personality selector applied to new sessions when none is given.
	Personality string `yaml:"personality"`

	// NotificationMethod controls desktop fallback routing:
	// "daemon" means no desktop fallback (delivery agents poll the API).
	NotificationMethod string `yaml:"notification_method"`
}

// DefaultDefaults returns the built-in system defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		UserID:             "default",
		Personality:        "default",
		NotificationMethod: "daemon",
	}
}

// LLMConfig holds LLM adapter settings.
type LLMConfig struct {
	// Model is the Anthropic model identifier.
	Model string `yaml:"model"`

	// SummaryModel is the (usually cheaper) model used by background
	// summarization and queue jobs.
	SummaryModel string `yaml:"summary_model"`

	// MaxTokens caps the response size of a single call.
	MaxTokens int `yaml:"max_tokens"`

	// Timeout bounds every LLM call independently of the caller's deadline.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Model:        "claude-sonnet-4-5",
		SummaryModel: "claude-haiku-4-5",
		MaxTokens:    2048,
		Timeout:      30 * time.Second,
	}
}

// GraphConfig holds knowledge-graph adapter settings.
type GraphConfig struct {
	// BaseURL of the graph sidecar. Empty disables the graph; callers
	// degrade per the availability contract.
	BaseURL string `yaml:"base_url"`

	// GroupID is the tenant partition used for all graph calls.
	GroupID string `yaml:"group_id"`

	// Timeout bounds each graph HTTP call.
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultGraphConfig returns the built-in graph defaults.
func DefaultGraphConfig() *GraphConfig {
	return &GraphConfig{
		GroupID: "default",
		Timeout: 10 * time.Second,
	}
}
