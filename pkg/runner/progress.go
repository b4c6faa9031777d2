package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/windlassio/windlass/pkg/events"
)

// ProgressReporter fans fine-grained phase activity out to the in-process bus
// and, when a publisher is wired, to WebSocket clients. Progress is transient;
// the unified log is the durable record.
type ProgressReporter struct {
	bus       *events.Bus
	publisher *events.EventPublisher
	sessionID string
}

// NewProgressReporter creates a reporter for one session. bus and publisher
// may each be nil.
func NewProgressReporter(bus *events.Bus, publisher *events.EventPublisher, sessionID string) *ProgressReporter {
	return &ProgressReporter{bus: bus, publisher: publisher, sessionID: sessionID}
}

// Report publishes one progress beat, e.g. ("research", "turn", "turn 2/6").
func (p *ProgressReporter) Report(ctx context.Context, phase, stage, detail string) {
	if p == nil {
		return
	}
	payload := events.ProgressPayload{
		Type:      events.EventTypeProgress,
		SessionID: p.sessionID,
		PhaseName: phase,
		Stage:     stage,
		Detail:    detail,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if p.bus != nil {
		p.bus.Publish(events.TopicPhaseProgress, payload)
	}
	if p.publisher != nil {
		if err := p.publisher.PublishProgress(ctx, p.sessionID, payload); err != nil {
			slog.Debug("Progress publish failed", "session_id", p.sessionID, "error", err)
		}
	}
}
