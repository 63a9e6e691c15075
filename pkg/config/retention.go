package config

import "time"

// RetentionConfig controls the background retention sweeper.
type RetentionConfig struct {
	// SweepInterval is how often the sweeper runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`

	// CompletedTaskMaxAge: terminal task_queue rows older than this
	// are deleted.
	CompletedTaskMaxAge time.Duration `yaml:"completed_task_max_age"`

	// DeliveredNotificationMaxAge: delivered ambient notifications older
	// than this are deleted.
	DeliveredNotificationMaxAge time.Duration `yaml:"delivered_notification_max_age"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SweepInterval:               1 * time.Hour,
		CompletedTaskMaxAge:         24 * time.Hour,
		DeliveredNotificationMaxAge: 7 * 24 * time.Hour,
	}
}
