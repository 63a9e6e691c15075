package config

import "time"

// QueueConfig contains work queue and worker pool configuration.
// These values control how queue tasks are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines.
	// Each worker independently polls and claims tasks.
	WorkerCount int `yaml:"worker_count"`

	// ModelName is the model partition this deployment's workers claim from.
	ModelName string `yaml:"model_name"`

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MaxRetries bounds Retry transitions back to pending.
	MaxRetries int `yaml:"max_retries"`

	// TaskTimeout is the maximum time a single task execution may take.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// LeaseTimeout is how long a task may sit in processing before the
	// reaper treats it as abandoned and returns it to pending.
	LeaseTimeout time.Duration `yaml:"lease_timeout"`

	// ReaperInterval is how often the lease reaper scans for stuck tasks.
	ReaperInterval time.Duration `yaml:"reaper_interval"`

	// GracefulShutdownTimeout is the max time to wait for active tasks
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		ModelName:               "default",
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MaxRetries:              3,
		TaskTimeout:             10 * time.Minute,
		LeaseTimeout:            10 * time.Minute,
		ReaperInterval:          1 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}
