package config

import "time"

// QueueConfig contains worker pool configuration. These values control how
// queued sessions are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and claims queued sessions.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentSessions is the global limit of concurrently running
	// sessions across ALL replicas. Enforced by a database COUNT(*) check.
	MaxConcurrentSessions int `yaml:"max_concurrent_sessions"`

	// PollInterval is the base interval for checking queued sessions.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval so
	// replicas do not stampede the claim query.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// SessionTimeout bounds one cascade run.
	SessionTimeout time.Duration `yaml:"session_timeout"`

	// GracefulShutdownTimeout is the max wait for active sessions to finish
	// during shutdown. Should match SessionTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanScanInterval is how often the janitor scans for stale leases.
	OrphanScanInterval time.Duration `yaml:"orphan_scan_interval"`

	// OrphanThreshold is how stale a heartbeat must be before the session is
	// re-classified as orphaned (lease + grace).
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		MaxConcurrentSessions:   8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		SessionTimeout:          30 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Minute,
		OrphanScanInterval:      2 * time.Minute,
		OrphanThreshold:         3 * DefaultHeartbeatInterval,
	}
}
