package config

import "time"

// AmbientConfig controls the ambient orchestrator loop.
type AmbientConfig struct {
	// CheckInterval is the base tick interval. Each tick sleeps
	// CheckInterval ± 30% uniform jitter.
	CheckInterval time.Duration `yaml:"check_interval"`

	// StartupDelay delays the first tick after process start.
	StartupDelay time.Duration `yaml:"startup_delay"`

	// IdleThreshold is how long since the last user interaction before
	// the user counts as idle. Engagement requires the last interaction
	// to be at least this old (strictly-less means do not engage).
	IdleThreshold time.Duration `yaml:"idle_threshold"`

	// ProactiveCooldown is the minimum gap between proactive contacts.
	ProactiveCooldown time.Duration `yaml:"proactive_cooldown"`

	// ContextChangeThreshold: fingerprint similarity at or above this
	// value means "nothing changed" and the tick stands down (unless
	// overdue tasks or unacknowledged notifications exist).
	ContextChangeThreshold float64 `yaml:"context_change_threshold"`

	// ActivityLookbackHours caps the per-tick activity lookback window.
	ActivityLookbackHours int `yaml:"activity_lookback_hours"`

	// PresenceWindow is the heartbeat staleness bound for "online".
	PresenceWindow time.Duration `yaml:"presence_window"`

	// ExplorationEnabled gates the exploration kickoff path.
	ExplorationEnabled bool `yaml:"exploration_enabled"`

	// MaxExplorationsPerDay caps autonomous exploration kickoffs.
	MaxExplorationsPerDay int `yaml:"max_explorations_per_day"`

	// MaxHoursBetweenExplorations forces an exploration even when the
	// user is not idle, once this many hours have elapsed.
	MaxHoursBetweenExplorations int `yaml:"max_hours_between_explorations"`

	// DecisionConfidenceFloor: LLM decisions below this confidence are
	// discarded without sending.
	DecisionConfidenceFloor float64 `yaml:"decision_confidence_floor"`
}

// DefaultAmbientConfig returns the built-in orchestrator defaults.
func DefaultAmbientConfig() *AmbientConfig {
	return &AmbientConfig{
		CheckInterval:               30 * time.Minute,
		StartupDelay:                60 * time.Second,
		IdleThreshold:               15 * time.Minute,
		ProactiveCooldown:           60 * time.Minute,
		ContextChangeThreshold:      0.7,
		ActivityLookbackHours:       4,
		PresenceWindow:              60 * time.Second,
		ExplorationEnabled:          true,
		MaxExplorationsPerDay:       6,
		MaxHoursBetweenExplorations: 8,
		DecisionConfidenceFloor:     0.5,
	}
}
