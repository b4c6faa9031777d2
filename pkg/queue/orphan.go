package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/pkg/events"
)

// janitorState tracks orphan scan metrics (thread-safe).
type janitorState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runOrphanJanitor periodically scans for sessions whose heartbeat lease has
// expired. All pods run this independently; MarkOrphaned is idempotent, so
// concurrent scans are harmless.
func (p *WorkerPool) runOrphanJanitor(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.scanForOrphans(ctx); err != nil {
				slog.Error("Orphan scan failed", "error", err)
			}
		}
	}
}

// scanForOrphans finds live sessions with stale heartbeats and moves them to
// orphaned (terminal, no resume).
func (p *WorkerPool) scanForOrphans(ctx context.Context) error {
	orphans, err := p.store.FindOrphanedSessions(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned sessions: %w", err)
	}

	if len(orphans) == 0 {
		p.janitor.mu.Lock()
		p.janitor.lastScan = time.Now()
		p.janitor.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned sessions", "count", len(orphans))

	recovered := 0
	for _, session := range orphans {
		marked, err := p.store.MarkOrphaned(ctx, session.ID)
		if err != nil {
			slog.Error("Failed to mark orphaned session",
				"session_id", session.ID, "error", err)
			continue
		}
		if !marked {
			// Another janitor got there first, or the session finished
			// between the scan and the mark.
			continue
		}
		p.publishOrphaned(ctx, session)
		recovered++

		lastHeartbeat := "unknown"
		if session.HeartbeatAt != nil {
			lastHeartbeat = session.HeartbeatAt.Format(time.RFC3339)
		}
		podID := "unknown"
		if session.PodID != nil {
			podID = *session.PodID
		}
		slog.Warn("Orphaned session recovered",
			"session_id", session.ID,
			"old_pod_id", podID,
			"last_heartbeat", lastHeartbeat)
	}

	p.janitor.mu.Lock()
	p.janitor.lastScan = time.Now()
	p.janitor.recovered += recovered
	p.janitor.mu.Unlock()

	return nil
}

// publishOrphaned broadcasts a session.status event for an orphaned session
// so dashboards drop it from their live views. Best-effort.
func (p *WorkerPool) publishOrphaned(ctx context.Context, session *ent.CascadeSession) {
	if p.publisher == nil {
		return
	}
	err := p.publisher.PublishSessionStatus(ctx, session.ID, events.SessionStatusPayload{
		Type:         events.EventTypeSessionStatus,
		SessionID:    session.ID,
		CascadeID:    session.CascadeID,
		Status:       "orphaned",
		ErrorMessage: "heartbeat lease expired",
		Timestamp:    time.Now().Format(time.RFC3339Nano),
	})
	if err != nil {
		slog.Warn("Failed to publish orphaned status",
			"session_id", session.ID, "error", err)
	}
}
