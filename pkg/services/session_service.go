package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/ent/cascadesession"
)

// statusTransitions is the legal session state machine. Terminal statuses
// absorb: no transition leaves them.
var statusTransitions = map[cascadesession.Status][]cascadesession.Status{
	cascadesession.StatusQueued: {
		cascadesession.StatusRunning,
		cascadesession.StatusCancelled,
	},
	cascadesession.StatusRunning: {
		cascadesession.StatusBlocked,
		cascadesession.StatusCompleted,
		cascadesession.StatusError,
		cascadesession.StatusCancelled,
		cascadesession.StatusOrphaned,
	},
	cascadesession.StatusBlocked: {
		cascadesession.StatusRunning,
		cascadesession.StatusCompleted,
		cascadesession.StatusError,
		cascadesession.StatusCancelled,
		cascadesession.StatusOrphaned,
	},
}

// isTerminal reports whether a status absorbs.
func isTerminal(status cascadesession.Status) bool {
	switch status {
	case cascadesession.StatusCompleted, cascadesession.StatusError,
		cascadesession.StatusCancelled, cascadesession.StatusOrphaned:
		return true
	}
	return false
}

func validTransition(from, to cascadesession.Status) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// SessionService manages cascade session lifecycle.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new session in queued status.
func (s *SessionService) CreateSession(httpCtx context.Context, req CreateSessionRequest) (*ent.CascadeSession, error) {
	if req.CascadeID == "" {
		return nil, NewValidationError("cascade_id", "required")
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	if req.ParentSessionID != nil && req.Depth < 1 {
		return nil, NewValidationError("depth", "child sessions must declare depth >= 1")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.CascadeSession.Create().
		SetID(req.SessionID).
		SetCascadeID(req.CascadeID).
		SetDepth(req.Depth).
		SetStatus(cascadesession.StatusQueued).
		SetNillableParentSessionID(req.ParentSessionID).
		SetNillableInput(req.Input)
	if req.Metadata != nil {
		builder.SetSessionMetadata(req.Metadata)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// CreateChild creates a queued child session linked to its parent. Used by
// the runner for sub-cascades, async cascades, validator cascades, and
// cascade-level soundings.
func (s *SessionService) CreateChild(ctx context.Context, sessionID, cascadeID, parentID string, depth int) error {
	_, err := s.CreateSession(ctx, CreateSessionRequest{
		SessionID:       sessionID,
		CascadeID:       cascadeID,
		ParentSessionID: &parentID,
		Depth:           depth,
	})
	return err
}

// GetSession retrieves a session by id.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.CascadeSession, error) {
	session, err := s.client.CascadeSession.Query().
		Where(cascadesession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ListSessions lists sessions with filtering and pagination.
func (s *SessionService) ListSessions(ctx context.Context, filters SessionFilters) (*SessionListResponse, error) {
	query := s.client.CascadeSession.Query()

	if filters.Status != "" {
		query = query.Where(cascadesession.StatusEQ(cascadesession.Status(filters.Status)))
	}
	if filters.CascadeID != "" {
		query = query.Where(cascadesession.CascadeIDEQ(filters.CascadeID))
	}
	if filters.ParentSessionID != "" {
		query = query.Where(cascadesession.ParentSessionIDEQ(filters.ParentSessionID))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(cascadesession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateStatus moves a session through the state machine. Illegal transitions
// return ErrInvalidTransition; terminal statuses also set completed_at.
func (s *SessionService) UpdateStatus(ctx context.Context, sessionID string, status cascadesession.Status, errorMessage *string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	current, err := s.GetSession(writeCtx, sessionID)
	if err != nil {
		return err
	}
	if current.Status == status {
		return nil
	}
	if !validTransition(current.Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	update := s.client.CascadeSession.UpdateOneID(sessionID).
		SetStatus(status).
		SetNillableErrorMessage(errorMessage)
	if status == cascadesession.StatusRunning && current.StartedAt == nil {
		update = update.SetStartedAt(time.Now())
	}
	if isTerminal(status) {
		update = update.SetCompletedAt(time.Now())
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session status: %w", err)
	}
	return nil
}

// SetCurrentPhase records the phase the runner is executing.
func (s *SessionService) SetCurrentPhase(ctx context.Context, sessionID, phase string) error {
	err := s.client.CascadeSession.UpdateOneID(sessionID).
		SetCurrentPhase(phase).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set current phase: %w", err)
	}
	return nil
}

// Heartbeat refreshes the session lease. Heartbeat failures never abort a
// run; the caller logs and continues.
func (s *SessionService) Heartbeat(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.CascadeSession.UpdateOneID(sessionID).
		SetHeartbeatAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to write heartbeat: %w", err)
	}
	return nil
}

// RequestCancel flags the session and all its live descendants for
// cooperative cancellation. Runners observe the flag between phases,
// attempts, and turns.
func (s *SessionService) RequestCancel(ctx context.Context, sessionID, reason string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.GetSession(writeCtx, sessionID); err != nil {
		return err
	}

	ids := []string{sessionID}
	frontier := []string{sessionID}
	for len(frontier) > 0 {
		children, err := s.client.CascadeSession.Query().
			Where(
				cascadesession.ParentSessionIDIn(frontier...),
				cascadesession.StatusIn(
					cascadesession.StatusQueued,
					cascadesession.StatusRunning,
					cascadesession.StatusBlocked,
				),
			).
			Select(cascadesession.FieldID).
			Strings(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to walk session descendants: %w", err)
		}
		ids = append(ids, children...)
		frontier = children
	}

	update := s.client.CascadeSession.Update().
		Where(cascadesession.IDIn(ids...)).
		SetCancelRequested(true)
	if reason != "" {
		update = update.SetCancelReason(reason)
	}
	n, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to request cancel: %w", err)
	}

	slog.Info("Cancel requested", "session_id", sessionID, "sessions_flagged", n)
	return nil
}

// IsCancelled reports whether a cancel has been requested for the session.
func (s *SessionService) IsCancelled(ctx context.Context, sessionID string) (bool, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return session.CancelRequested, nil
}

// ClaimNextQueuedSession atomically claims the oldest queued session for this
// pod using FOR UPDATE SKIP LOCKED, so concurrent replicas never double-claim.
// Returns nil when no queued session exists.
func (s *SessionService) ClaimNextQueuedSession(ctx context.Context, podID string) (*ent.CascadeSession, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := tx.CascadeSession.Query().
		Where(cascadesession.StatusEQ(cascadesession.StatusQueued)).
		Order(ent.Asc(cascadesession.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query queued session: %w", err)
	}

	now := time.Now()
	session, err = tx.CascadeSession.UpdateOneID(session.ID).
		SetStatus(cascadesession.StatusRunning).
		SetPodID(podID).
		SetStartedAt(now).
		SetHeartbeatAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return session, nil
}

// CountActiveSessions counts running and blocked sessions across all
// replicas. The worker pool uses it to enforce the global concurrency cap.
func (s *SessionService) CountActiveSessions(ctx context.Context) (int, error) {
	n, err := s.client.CascadeSession.Query().
		Where(cascadesession.StatusIn(cascadesession.StatusRunning, cascadesession.StatusBlocked)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}
	return n, nil
}

// CountQueuedSessions reports the queue depth.
func (s *SessionService) CountQueuedSessions(ctx context.Context) (int, error) {
	n, err := s.client.CascadeSession.Query().
		Where(cascadesession.StatusEQ(cascadesession.StatusQueued)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued sessions: %w", err)
	}
	return n, nil
}

// FindOrphanedSessions finds live sessions whose heartbeat lease has expired.
func (s *SessionService) FindOrphanedSessions(ctx context.Context, lease time.Duration) ([]*ent.CascadeSession, error) {
	threshold := time.Now().Add(-lease)

	sessions, err := s.client.CascadeSession.Query().
		Where(
			cascadesession.StatusIn(cascadesession.StatusRunning, cascadesession.StatusBlocked),
			cascadesession.HeartbeatAtNotNil(),
			cascadesession.HeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned sessions: %w", err)
	}
	return sessions, nil
}

// MarkOrphaned moves a live session to orphaned. Idempotent: sessions already
// terminal are skipped.
func (s *SessionService) MarkOrphaned(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.CascadeSession.Update().
		Where(
			cascadesession.IDEQ(sessionID),
			cascadesession.StatusIn(cascadesession.StatusRunning, cascadesession.StatusBlocked),
		).
		SetStatus(cascadesession.StatusOrphaned).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark session orphaned: %w", err)
	}
	return n > 0, nil
}

// RecoverPodSessions marks sessions left running by a previous incarnation of
// this pod as orphaned. Called once at startup before the pool begins
// claiming.
func (s *SessionService) RecoverPodSessions(ctx context.Context, podID string) (int, error) {
	n, err := s.client.CascadeSession.Update().
		Where(
			cascadesession.PodIDEQ(podID),
			cascadesession.StatusIn(cascadesession.StatusRunning, cascadesession.StatusBlocked),
		).
		SetStatus(cascadesession.StatusOrphaned).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to recover pod sessions: %w", err)
	}
	if n > 0 {
		slog.Warn("Recovered sessions from previous pod run", "pod_id", podID, "count", n)
	}
	return n, nil
}
