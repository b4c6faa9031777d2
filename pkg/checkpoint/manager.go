package checkpoint

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/windlassio/windlass/pkg/config"
)

// CancelCheck reports whether the session has a pending cancel request.
// Wired to SessionService.IsCancelled; nil disables the check.
type CancelCheck func(ctx context.Context, sessionID string) (bool, error)

// Manager creates checkpoints and blocks runners until a response arrives.
type Manager struct {
	store        Store
	isCancelled  CancelCheck
	pollInterval time.Duration

	mu      sync.Mutex
	waiters map[string]chan map[string]any
}

// NewManager builds a manager over the store.
func NewManager(store Store, isCancelled CancelCheck) *Manager {
	return &Manager{
		store:        store,
		isCancelled:  isCancelled,
		pollInterval: config.DefaultCheckpointPollInterval,
		waiters:      make(map[string]chan map[string]any),
	}
}

// Create persists a new pending checkpoint and returns its id.
func (m *Manager) Create(ctx context.Context, cp *Checkpoint) (string, error) {
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	cp.Status = StatusPending
	cp.CreatedAt = time.Now().UTC()
	if err := m.store.Create(ctx, cp); err != nil {
		return "", fmt.Errorf("create checkpoint: %w", err)
	}

	m.mu.Lock()
	m.waiters[cp.ID] = make(chan map[string]any, 1)
	m.mu.Unlock()

	slog.Info("Checkpoint created",
		"checkpoint_id", cp.ID, "session_id", cp.SessionID, "type", string(cp.Type))
	return cp.ID, nil
}

// PostResponse records a response. In-process waiters unblock immediately;
// the store write makes the response durable for pollers. Returns false when
// the checkpoint has already resolved.
func (m *Manager) PostResponse(ctx context.Context, id string, response map[string]any) (bool, error) {
	ok, err := m.store.SetResponse(ctx, id, response)
	if err != nil || !ok {
		return ok, err
	}

	m.mu.Lock()
	waiter := m.waiters[id]
	m.mu.Unlock()
	if waiter != nil {
		select {
		case waiter <- response:
		default:
		}
	}
	return true, nil
}

// WaitForResponse blocks until a response is posted, the timeout elapses, or
// the session is cancelled. Timeout and cancellation both return nil; the
// checkpoint record is moved to the matching terminal status.
func (m *Manager) WaitForResponse(ctx context.Context, id string, timeout time.Duration) (map[string]any, error) {
	if timeout <= 0 {
		timeout = config.DefaultCheckpointTimeout
	}

	m.mu.Lock()
	waiter := m.waiters[id]
	m.mu.Unlock()

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	poll := time.NewTicker(m.pollInterval)
	defer poll.Stop()

	defer func() {
		m.mu.Lock()
		delete(m.waiters, id)
		m.mu.Unlock()
	}()

	cp, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case response := <-waiterChan(waiter):
			return response, nil

		case <-deadline.C:
			if err := m.store.SetStatus(ctx, id, StatusTimeout); err != nil {
				slog.Warn("Failed to mark checkpoint timeout", "checkpoint_id", id, "error", err)
			}
			slog.Info("Checkpoint timed out", "checkpoint_id", id, "session_id", cp.SessionID)
			return nil, nil

		case <-poll.C:
			if m.isCancelled != nil {
				cancelled, err := m.isCancelled(ctx, cp.SessionID)
				if err == nil && cancelled {
					if err := m.store.SetStatus(ctx, id, StatusCancelled); err != nil {
						slog.Warn("Failed to mark checkpoint cancelled", "checkpoint_id", id, "error", err)
					}
					return nil, nil
				}
			}

			// A response may have been posted by another process
			current, err := m.store.Get(ctx, id)
			if err != nil {
				continue
			}
			switch current.Status {
			case StatusResponded:
				return current.Response, nil
			case StatusCancelled, StatusTimeout:
				return nil, nil
			}
		}
	}
}

// Cancel marks a pending checkpoint cancelled and unblocks its waiter.
func (m *Manager) Cancel(ctx context.Context, id string) error {
	if err := m.store.SetStatus(ctx, id, StatusCancelled); err != nil {
		return err
	}
	m.mu.Lock()
	waiter := m.waiters[id]
	delete(m.waiters, id)
	m.mu.Unlock()
	if waiter != nil {
		close(waiter)
	}
	return nil
}

// Get returns one checkpoint.
func (m *Manager) Get(ctx context.Context, id string) (*Checkpoint, error) {
	return m.store.Get(ctx, id)
}

// List returns checkpoints matching the filter.
func (m *Manager) List(ctx context.Context, filter Filter) ([]*Checkpoint, error) {
	return m.store.List(ctx, filter)
}

// waiterChan tolerates a nil waiter (checkpoint created by another process).
func waiterChan(ch chan map[string]any) <-chan map[string]any {
	if ch == nil {
		return nil
	}
	return ch
}
