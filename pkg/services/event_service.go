package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/windlassio/windlass/pkg/events"
)

// EventService reads and prunes the WebSocket event outbox. The outbox is
// written with raw SQL inside NOTIFY transactions (see events.EventPublisher),
// so this service speaks SQL directly rather than going through ent.
type EventService struct {
	db *sql.DB
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{db: db}
}

// GetCatchupEvents returns persisted events on a channel after sinceID, oldest
// first, capped at limit. Implements events.CatchupQuerier for WebSocket
// clients reconnecting with a last_event_id.
func (s *EventService) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]events.CatchupEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, payload FROM events WHERE channel = $1 AND id > $2 ORDER BY id ASC LIMIT $3`,
		channel, sinceID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}
	defer rows.Close()

	var out []events.CatchupEvent
	for rows.Next() {
		var (
			id          int
			payloadJSON []byte
		)
		if err := rows.Scan(&id, &payloadJSON); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		var payload map[string]interface{}
		if err := json.Unmarshal(payloadJSON, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode event payload %d: %w", id, err)
		}
		out = append(out, events.CatchupEvent{ID: id, Payload: payload})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event rows: %w", err)
	}
	return out, nil
}

// CleanupSessionEvents removes all persisted events for a session.
func (s *EventService) CleanupSessionEvents(ctx context.Context, sessionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := s.db.ExecContext(writeCtx,
		`DELETE FROM events WHERE session_id = $1`, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup session events: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// CleanupOldEvents removes persisted events older than the TTL.
func (s *EventService) CleanupOldEvents(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := s.db.ExecContext(writeCtx,
		`DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
