package config

// CuriosityConfig bounds the curiosity backlog.
type CuriosityConfig struct {
	// MaxPendingPerUser caps pending curiosity tasks per user.
	MaxPendingPerUser int `yaml:"max_pending_per_user"`

	// MaxPendingPerType caps pending tasks per curiosity type.
	MaxPendingPerType int `yaml:"max_pending_per_type"`

	// MinPriority: pending tasks strictly below this stored priority
	// (0-100 scale) are pruned. A task at exactly MinPriority is kept.
	MinPriority int `yaml:"min_priority"`

	// DefaultTTLDays is the freshness window for non-correction signals.
	DefaultTTLDays int `yaml:"default_ttl_days"`

	// CorrectionTTLDays is the shorter freshness window for corrections.
	CorrectionTTLDays int `yaml:"correction_ttl_days"`
}

// DefaultCuriosityConfig returns the built-in backlog bounds.
func DefaultCuriosityConfig() *CuriosityConfig {
	return &CuriosityConfig{
		MaxPendingPerUser: 100,
		MaxPendingPerType: 25,
		MinPriority:       15,
		DefaultTTLDays:    14,
		CorrectionTTLDays: 7,
	}
}
