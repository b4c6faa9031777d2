package config

import "time"

// Engine-wide defaults. YAML and environment settings override these.
const (
	// DefaultMaxTurns bounds the turn loop when rules.max_turns is unset.
	DefaultMaxTurns = 6

	// DefaultMaxAttempts bounds the validation attempt loop.
	DefaultMaxAttempts = 1

	// DefaultMaxParallel caps sounding fan-out workers.
	DefaultMaxParallel = 3

	// DefaultHeartbeatInterval is how often a runner renews its session lease.
	DefaultHeartbeatInterval = 30 * time.Second

	// DefaultCostFetchDelay is how long a pending row waits before the first
	// provider cost lookup (generation stats lag the completion response).
	DefaultCostFetchDelay = 3 * time.Second

	// DefaultCostMaxWait is the deadline after which a pending row is flushed
	// without cost.
	DefaultCostMaxWait = 15 * time.Second

	// DefaultFlushRowThreshold triggers a ready-buffer write.
	DefaultFlushRowThreshold = 100

	// DefaultFlushInterval forces a ready-buffer write regardless of size.
	DefaultFlushInterval = 10 * time.Second

	// DefaultKeepRecentTurns is how many recent turn pairs survive history culling.
	DefaultKeepRecentTurns = 6

	// DefaultKeepRecentImages is how many base64 images survive history culling.
	DefaultKeepRecentImages = 2

	// DefaultCheckpointTimeout bounds checkpoint waits when unset.
	DefaultCheckpointTimeout = 300 * time.Second

	// DefaultCheckpointPollInterval is the store poll cadence while blocked.
	DefaultCheckpointPollInterval = 500 * time.Millisecond

	// DefaultInfraRetries is the transient-failure retry budget per agent call.
	DefaultInfraRetries = 3

	// DefaultInfraRetryBackoff is the pause between transient-failure retries.
	DefaultInfraRetryBackoff = 1 * time.Second

	// DefaultToolCacheTTL is the tool-cache entry lifetime.
	DefaultToolCacheTTL = 10 * time.Minute

	// DefaultToolCacheSize is the tool-cache LRU bound.
	DefaultToolCacheSize = 512

	// DefaultContextWindowBuffer is the safety margin applied when filtering
	// sounding models by context limit.
	DefaultContextWindowBuffer = 0.15

	// DefaultWarningThreshold is the budget fraction that triggers a warning.
	DefaultWarningThreshold = 0.8

	// DefaultEventQueueSize bounds each event-bus subscriber queue.
	DefaultEventQueueSize = 256

	// DefaultHybridPrefilterTopN is the shortlist size for hybrid evaluation.
	DefaultHybridPrefilterTopN = 3

	// DefaultRewriteWinnerExamples caps prior winning rewrites injected into
	// the rewriter prompt.
	DefaultRewriteWinnerExamples = 3
)

// Defaults carries operator-tunable default values from windlass.yaml.
type Defaults struct {
	// Model used when neither phase nor sounding assigns one
	Model string `yaml:"model,omitempty"`

	// Model used by the rewriter agent for rewrite mutations
	RewriteModel string `yaml:"rewrite_model,omitempty"`

	// Model used by evaluators, judges, and the quartermaster when unset
	UtilityModel string `yaml:"utility_model,omitempty"`

	// History culling window (turn pairs)
	KeepRecentTurns int `yaml:"keep_recent_turns,omitempty"`

	// History culling window (base64 images)
	KeepRecentImages int `yaml:"keep_recent_images,omitempty"`
}

// ApplyFallbacks fills unset values from compile-time defaults.
func (d *Defaults) ApplyFallbacks() {
	if d.KeepRecentTurns <= 0 {
		d.KeepRecentTurns = DefaultKeepRecentTurns
	}
	if d.KeepRecentImages <= 0 {
		d.KeepRecentImages = DefaultKeepRecentImages
	}
}
