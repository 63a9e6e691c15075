package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// yamlConfig represents the complete kestrel.yaml file structure.
// Every section is optional; missing sections fall back to built-in
// defaults so a deployment can start from an empty config directory.
type yamlConfig struct {
	Defaults  *Defaults        `yaml:"defaults"`
	Queue     *QueueConfig     `yaml:"queue"`
	Ambient   *AmbientConfig   `yaml:"ambient"`
	Curiosity *CuriosityConfig `yaml:"curiosity"`
	Summary   *SummaryConfig   `yaml:"summary"`
	Retention *RetentionConfig `yaml:"retention"`
	LLM       *LLMConfig       `yaml:"llm"`
	Graph     *GraphConfig     `yaml:"graph"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	cfg := &Config{
		configDir: configDir,
		Defaults:  DefaultDefaults(),
		Queue:     DefaultQueueConfig(),
		Ambient:   DefaultAmbientConfig(),
		Curiosity: DefaultCuriosityConfig(),
		Summary:   DefaultSummaryConfig(),
		Retention: DefaultRetentionConfig(),
		LLM:       DefaultLLMConfig(),
		Graph:     DefaultGraphConfig(),
	}

	path := filepath.Join(configDir, "kestrel.yaml")
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg yamlConfig
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		// File sections override defaults wholesale when present.
		if fileCfg.Defaults != nil {
			cfg.Defaults = fileCfg.Defaults
		}
		if fileCfg.Queue != nil {
			cfg.Queue = fileCfg.Queue
		}
		if fileCfg.Ambient != nil {
			cfg.Ambient = fileCfg.Ambient
		}
		if fileCfg.Curiosity != nil {
			cfg.Curiosity = fileCfg.Curiosity
		}
		if fileCfg.Summary != nil {
			cfg.Summary = fileCfg.Summary
		}
		if fileCfg.Retention != nil {
			cfg.Retention = fileCfg.Retention
		}
		if fileCfg.LLM != nil {
			cfg.LLM = fileCfg.LLM
		}
		if fileCfg.Graph != nil {
			cfg.Graph = fileCfg.Graph
		}
		slog.Info("Configuration loaded", "path", path)
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("No kestrel.yaml found, using built-in defaults", "path", path)
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Graph base URL is commonly injected via environment in deployments,
	// with or without a kestrel.yaml present.
	if url := os.Getenv("GRAPH_SERVICE_URL"); url != "" {
		cfg.Graph.BaseURL = url
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects configurations that would violate subsystem invariants.
func validate(cfg *Config) error {
	if cfg.Queue.WorkerCount < 1 {
		return fmt.Errorf("queue.worker_count must be >= 1, got %d", cfg.Queue.WorkerCount)
	}
	if cfg.Queue.MaxRetries < 0 {
		return fmt.Errorf("queue.max_retries must be >= 0, got %d", cfg.Queue.MaxRetries)
	}
	if cfg.Curiosity.MaxPendingPerUser < cfg.Curiosity.MaxPendingPerType {
		return fmt.Errorf("curiosity.max_pending_per_user (%d) must be >= max_pending_per_type (%d)",
			cfg.Curiosity.MaxPendingPerUser, cfg.Curiosity.MaxPendingPerType)
	}
	if cfg.Ambient.ContextChangeThreshold < 0 || cfg.Ambient.ContextChangeThreshold > 1 {
		return fmt.Errorf("ambient.context_change_threshold must be in [0,1], got %f",
			cfg.Ambient.ContextChangeThreshold)
	}
	if cfg.Ambient.DecisionConfidenceFloor < 0 || cfg.Ambient.DecisionConfidenceFloor > 1 {
		return fmt.Errorf("ambient.decision_confidence_floor must be in [0,1], got %f",
			cfg.Ambient.DecisionConfidenceFloor)
	}
	if cfg.Summary.MinMessages < 1 {
		return fmt.Errorf("summary.min_messages must be >= 1, got %d", cfg.Summary.MinMessages)
	}
	if cfg.Defaults.UserID == "" {
		return fmt.Errorf("defaults.user_id must not be empty")
	}
	return nil
}
