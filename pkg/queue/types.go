// Package queue claims queued cascade sessions and drives them to
// termination: a worker pool with jittered polling, a global concurrency
// cap, cooperative cancellation, and a lease janitor that reclassifies
// sessions whose pod stopped heartbeating.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/ent/cascadesession"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSessionsAvailable indicates no queued sessions exist.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrAtCapacity indicates the global concurrent session limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Executor runs one claimed session to termination.
//
// The runner owns the whole lifecycle internally: phase execution, status
// transitions, heartbeats, and the terminal status write. The worker only
// claims, bounds the run with a timeout, registers the cancel function, and
// records failures the executor returned before it could persist anything
// itself (unknown cascade, empty phase list).
type Executor interface {
	Execute(ctx context.Context, session *ent.CascadeSession) error
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, session *ent.CascadeSession) error

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, session *ent.CascadeSession) error {
	return f(ctx, session)
}

// SessionStore is the slice of the session service the queue depends on.
type SessionStore interface {
	ClaimNextQueuedSession(ctx context.Context, podID string) (*ent.CascadeSession, error)
	CountActiveSessions(ctx context.Context) (int, error)
	CountQueuedSessions(ctx context.Context) (int, error)
	UpdateStatus(ctx context.Context, sessionID string, status cascadesession.Status, errorMessage *string) error
	FindOrphanedSessions(ctx context.Context, lease time.Duration) ([]*ent.CascadeSession, error)
	MarkOrphaned(ctx context.Context, sessionID string) (bool, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveSessions   int            `json:"active_sessions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentSessionID  string    `json:"current_session_id,omitempty"`
	SessionsProcessed int       `json:"sessions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
