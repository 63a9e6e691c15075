package config

import "time"

// SummaryConfig controls the session summary loop.
type SummaryConfig struct {
	// Interval between summary passes.
	Interval time.Duration `yaml:"interval"`

	// IdleAfter: a session qualifies once last_activity is at least this old.
	IdleAfter time.Duration `yaml:"idle_after"`

	// ActivityWindow: sessions with last_activity older than this are skipped.
	ActivityWindow time.Duration `yaml:"activity_window"`

	// MinMessages is the minimum conversation count before summarizing.
	MinMessages int `yaml:"min_messages"`

	// MaxMessages is how many trailing messages feed the summary prompt.
	MaxMessages int `yaml:"max_messages"`

	// MaxInputChars truncates the summary prompt input.
	MaxInputChars int `yaml:"max_input_chars"`

	// RollingSessionLimit is how many recently-summarized sessions feed
	// one rolling-summary merge.
	RollingSessionLimit int `yaml:"rolling_session_limit"`

	// CoreMemoryCharLimit is the default char_limit for the user-scoped
	// task block updated by the loop.
	CoreMemoryCharLimit int `yaml:"core_memory_char_limit"`
}

// DefaultSummaryConfig returns the built-in summary loop defaults.
func DefaultSummaryConfig() *SummaryConfig {
	return &SummaryConfig{
		Interval:            5 * time.Minute,
		IdleAfter:           30 * time.Minute,
		ActivityWindow:      24 * time.Hour,
		MinMessages:         5,
		MaxMessages:         50,
		MaxInputChars:       2000,
		RollingSessionLimit: 20,
		CoreMemoryCharLimit: 8192,
	}
}
