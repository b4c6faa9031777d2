package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// SessionRegistry is the subset of WorkerPool used by Worker for session
// registration.
type SessionRegistry interface {
	RegisterSession(sessionID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// Worker is a single queue worker that polls for and processes sessions.
type Worker struct {
	id       string
	podID    string
	store    SessionStore
	config   *config.QueueConfig
	executor Executor
	pool     SessionRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentSessionID  string
	sessionsProcessed int
	lastActivity      time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, store SessionStore, cfg *config.QueueConfig, executor Executor, pool SessionRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		store:        store,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current
// session. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentSessionID:  w.currentSessionID,
		SessionsProcessed: w.sessionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoSessionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing session", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a session, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check is best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	active, err := w.store.CountActiveSessions(ctx)
	if err != nil {
		return fmt.Errorf("checking active sessions: %w", err)
	}
	if active >= w.config.MaxConcurrentSessions {
		return ErrAtCapacity
	}

	session, err := w.store.ClaimNextQueuedSession(ctx, w.podID)
	if err != nil {
		return fmt.Errorf("claiming session: %w", err)
	}
	if session == nil {
		return ErrNoSessionsAvailable
	}

	log := slog.With("session_id", session.ID, "cascade_id", session.CascadeID, "worker_id", w.id)
	log.Info("Session claimed")

	w.setStatus(WorkerStatusWorking, session.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	sessionCtx, cancelSession := context.WithTimeout(ctx, w.config.SessionTimeout)
	defer cancelSession()

	// Register cancel function for API-triggered cancellation
	w.pool.RegisterSession(session.ID, cancelSession)
	defer w.pool.UnregisterSession(session.ID)

	execErr := w.executor.Execute(sessionCtx, session)
	if execErr != nil {
		// The runner writes its own terminal status once a session starts;
		// an error here means it failed before that point. Record it so the
		// session does not hang in running forever.
		w.recordFailure(session.ID, sessionCtx, execErr)
		log.Error("Session execution failed", "error", execErr)
	} else {
		log.Info("Session processing complete")
	}

	w.mu.Lock()
	w.sessionsProcessed++
	w.mu.Unlock()

	return nil
}

// recordFailure writes a terminal status for a session whose executor bailed
// out before persisting one. Uses a background context; the session context
// may be the thing that failed.
func (w *Worker) recordFailure(sessionID string, sessionCtx context.Context, execErr error) {
	status := cascadesession.StatusError
	msg := execErr.Error()
	switch {
	case errors.Is(sessionCtx.Err(), context.DeadlineExceeded):
		msg = fmt.Sprintf("session timed out after %v", w.config.SessionTimeout)
	case errors.Is(sessionCtx.Err(), context.Canceled):
		status = cascadesession.StatusCancelled
		msg = "cancelled"
	}

	if err := w.store.UpdateStatus(context.Background(), sessionID, status, &msg); err != nil {
		slog.Error("Failed to record session failure",
			"session_id", sessionID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}
