package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/echo"
	"github.com/windlassio/windlass/pkg/events"
	"github.com/windlassio/windlass/pkg/trace"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

const (
	statusRunning   = cascadesession.StatusRunning
	statusBlocked   = cascadesession.StatusBlocked
	statusCompleted = cascadesession.StatusCompleted
	statusError     = cascadesession.StatusError
	statusCancelled = cascadesession.StatusCancelled
)

// RunRequest starts one cascade session. ParentSession and Depth are set for
// child runs (sub-cascades, async cascades, validator cascades, cascade-level
// soundings); roots leave them zero.
type RunRequest struct {
	CascadeID     string
	SessionID     string
	Input         string
	Metadata      map[string]any
	ParentSession string
	Depth         int

	// set internally for cascade-sounding children so they do not re-fork
	skipSoundings bool
}

// Result is the outcome of a completed run.
type Result struct {
	SessionID string
	Output    string
	Status    string
	State     map[string]any
	Errors    []echo.SessionError
}

// childSessionID derives a deterministic child session id.
func childSessionID(parent, suffix string) string {
	return parent + "_" + suffix
}

// uniqueChildSessionID derives a child session id for runs that may repeat
// within one parent session (validator cascades, cascade-backed tools).
func uniqueChildSessionID(parent, suffix string) string {
	return parent + "_" + suffix + "_" + uuid.NewString()[:8]
}

// Run executes a cascade session to termination. It is safe for concurrent
// use; each call owns its session.
func (r *Runner) Run(ctx context.Context, req RunRequest) (*Result, error) {
	cascade, err := r.registry.Get(req.CascadeID)
	if err != nil {
		return nil, err
	}
	if req.SessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	if len(cascade.Phases) == 0 {
		return nil, fmt.Errorf("cascade %q declares no phases", req.CascadeID)
	}

	if r.sessions != nil {
		if req.Depth > 0 {
			if err := r.sessions.CreateChild(ctx, req.SessionID, req.CascadeID, req.ParentSession, req.Depth); err != nil {
				return nil, fmt.Errorf("failed to create child session: %w", err)
			}
		}
		if err := r.sessions.UpdateStatus(ctx, req.SessionID, statusRunning, nil); err != nil {
			slog.Warn("Failed to mark session running", "session_id", req.SessionID, "error", err)
		}
	}
	r.publishSessionStatus(ctx, req.SessionID, req.CascadeID, string(statusRunning), "")

	c := r.newCascadeRun(cascade, req.SessionID, req.ParentSession, req.Input, req.Depth)
	// Caller-supplied overrides seed the state map before the first phase.
	for k, v := range req.Metadata {
		c.echo.SetState(k, v)
	}

	stopHeartbeat := r.startHeartbeat(req.SessionID)
	defer stopHeartbeat()

	slog.Info("Cascade run started",
		"session_id", req.SessionID, "cascade_id", req.CascadeID, "depth", req.Depth)

	var result *Result
	if cascade.Soundings != nil && cascade.Soundings.Factor > 1 && !req.skipSoundings {
		result, err = r.runCascadeSoundings(ctx, c, req)
	} else {
		result, err = c.runPhaseLoop(ctx)
	}
	if err != nil && !errors.Is(err, ErrPhaseAborted) && !errors.Is(err, ErrCancelled) {
		return nil, err
	}
	return result, nil
}

// startHeartbeat refreshes the session lease on the configured interval until
// the returned stop function is called.
func (r *Runner) startHeartbeat(sessionID string) func() {
	if r.sessions == nil {
		return func() {}
	}
	interval := r.settings.HeartbeatInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				if err := r.sessions.Heartbeat(ctx, sessionID); err != nil {
					slog.Warn("Heartbeat failed", "session_id", sessionID, "error", err)
				}
				cancel()
			}
		}
	}()
	return func() { close(done) }
}

// runPhaseLoop walks the phase graph from the entry point, following static
// handoffs and dynamic routes until a terminal phase completes or a phase
// fails.
func (c *cascadeRun) runPhaseLoop(ctx context.Context) (*Result, error) {
	current := &c.cascade.Phases[0]

	for current != nil {
		if c.isCancelled(ctx) {
			return c.finish(ctx, statusCancelled), ErrCancelled
		}

		c.spawnAsyncCascades(ctx, current, config.AsyncTriggerOnStart)

		var result *PhaseResult
		var err error
		if current.Soundings != nil && current.Soundings.Factor > 1 {
			result, err = c.runSoundings(ctx, current)
		} else {
			result, err = c.runPhase(ctx, current, phaseOptions{})
		}
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				return c.finish(ctx, statusCancelled), err
			}
			return c.finish(ctx, statusError), err
		}

		c.builder.Record(current.Name, &PhaseArtifacts{
			Output:   result.Output,
			Messages: result.Messages,
			Images:   result.Images,
			State:    c.echo.State(),
		})

		if err := c.runSubCascades(ctx, current, result.Output); err != nil {
			c.echo.AddError(current.Name, ErrTypeConfig, err.Error(), nil)
			return c.finish(ctx, statusError), err
		}
		c.spawnAsyncCascades(ctx, current, config.AsyncTriggerOnEnd)

		next, err := c.resolveNext(current, result.NextPhase)
		if err != nil {
			c.echo.AddError(current.Name, ErrTypeConfig, err.Error(), nil)
			return c.finish(ctx, statusError), err
		}
		current = next
	}

	status := statusCompleted
	if c.echo.HasErrors() {
		status = statusError
	}
	return c.finish(ctx, status), nil
}

// resolveNext picks the successor phase: a dynamic route when the phase
// produced one, otherwise the first declared handoff, otherwise terminal.
func (c *cascadeRun) resolveNext(current *config.PhaseConfig, routed string) (*config.PhaseConfig, error) {
	if routed != "" {
		next := c.cascade.Phase(routed)
		if next == nil {
			return nil, fmt.Errorf("phase %s routed to unknown phase %q", current.Name, routed)
		}
		return next, nil
	}
	if len(current.Handoffs) == 0 {
		return nil, nil
	}
	target := current.Handoffs[0].Target
	next := c.cascade.Phase(target)
	if next == nil {
		return nil, fmt.Errorf("phase %s hands off to unknown phase %q", current.Name, target)
	}
	return next, nil
}

// runSubCascades awaits each declared synchronous child cascade in order.
func (c *cascadeRun) runSubCascades(ctx context.Context, p *config.PhaseConfig, phaseOutput string) error {
	for _, sub := range p.SubCascades {
		input := phaseOutput
		if len(sub.ContextIn) > 0 {
			picked := make(map[string]any, len(sub.ContextIn))
			for _, key := range sub.ContextIn {
				if v, ok := c.echo.StateValue(key); ok {
					picked[key] = v
				}
			}
			encoded, err := json.Marshal(picked)
			if err != nil {
				return fmt.Errorf("sub-cascade %s: failed to encode input: %w", sub.Cascade, err)
			}
			input = string(encoded)
		}

		result, err := c.r.Run(ctx, RunRequest{
			CascadeID:     sub.Cascade,
			SessionID:     childSessionID(c.sessionID, sub.Cascade),
			ParentSession: c.sessionID,
			Depth:         c.depth + 1,
			Input:         input,
		})
		if err != nil {
			return fmt.Errorf("sub-cascade %s failed: %w", sub.Cascade, err)
		}

		key := sub.ContextOut
		if key == "" {
			key = "output_" + sub.Cascade
		}
		c.echo.SetState(key, result.Output)
	}
	return nil
}

// spawnAsyncCascades fires detached child cascades whose trigger matches.
// They outlive the parent phase and are never awaited.
func (c *cascadeRun) spawnAsyncCascades(ctx context.Context, p *config.PhaseConfig, trigger config.AsyncTrigger) {
	for _, async := range p.AsyncCascades {
		declared := async.Trigger
		if declared == "" {
			declared = config.AsyncTriggerOnEnd
		}
		if declared != trigger {
			continue
		}

		cascadeID := async.Cascade
		input := c.input
		if output, ok := c.echo.LastOutput(p.Name); ok {
			input = output
		}
		detached := context.WithoutCancel(ctx)
		go func() {
			_, err := c.r.Run(detached, RunRequest{
				CascadeID:     cascadeID,
				SessionID:     childSessionID(c.sessionID, "async_"+cascadeID),
				ParentSession: c.sessionID,
				Depth:         c.depth + 1,
				Input:         input,
			})
			if err != nil {
				slog.Warn("Async cascade failed",
					"parent_session", c.sessionID, "cascade_id", cascadeID, "error", err)
			}
		}()
	}
}

// finish records the terminal status, persists the trace graph, and flushes
// the unified log. Always returns a Result.
func (c *cascadeRun) finish(ctx context.Context, status cascadesession.Status) *Result {
	output := ""
	if lineage := c.echo.Lineage(); len(lineage) > 0 {
		output = lineage[len(lineage)-1].Output
	}

	var errorMessage *string
	if status == statusError {
		sessionErrors := c.echo.Errors()
		if len(sessionErrors) > 0 {
			last := sessionErrors[len(sessionErrors)-1]
			errorMessage = unifiedlog.Ptr(fmt.Sprintf("%s: %s", last.Type, last.Message))
		}
	}

	c.logLifecycle(status)
	if c.r.log != nil {
		flushCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := c.r.log.Flush(flushCtx); err != nil {
			slog.Warn("Final log flush failed", "session_id", c.sessionID, "error", err)
		}
		cancel()
	}
	c.writeGraph(ctx)

	if c.r.sessions != nil {
		writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := c.r.sessions.UpdateStatus(writeCtx, c.sessionID, status, errorMessage); err != nil {
			slog.Warn("Failed to record terminal status",
				"session_id", c.sessionID, "status", status, "error", err)
		}
		cancel()
	}
	msg := ""
	if errorMessage != nil {
		msg = *errorMessage
	}
	c.r.publishSessionStatus(ctx, c.sessionID, c.cascade.CascadeID, string(status), msg)

	slog.Info("Cascade run finished",
		"session_id", c.sessionID, "cascade_id", c.cascade.CascadeID, "status", status)

	return &Result{
		SessionID: c.sessionID,
		Output:    output,
		Status:    string(status),
		State:     c.echo.State(),
		Errors:    c.echo.Errors(),
	}
}

func (c *cascadeRun) logLifecycle(status cascadesession.Status) {
	c.echo.SetScope(echo.Scope{Depth: c.depth, ParentSession: c.parentSession})
	c.echo.AddHistory(echo.Entry{
		Role:     agent.RoleSystem,
		Content:  fmt.Sprintf("session %s", status),
		TraceID:  trace.NewID(),
		NodeType: unifiedlog.NodeTypeLifecycle,
		Actor:    unifiedlog.ActorFramework,
		Purpose:  unifiedlog.PurposeLifecycle,
		Metadata: map[string]any{"status": string(status)},
	})
}

// writeGraph renders the session's trace tree as Mermaid and persists it
// next to the other session artifacts.
func (c *cascadeRun) writeGraph(ctx context.Context) {
	if c.r.log == nil {
		return
	}
	rows, err := c.r.log.Query(ctx, unifiedlog.Filter{SessionID: c.sessionID})
	if err != nil || len(rows) == 0 {
		return
	}

	refs := make([]trace.RowRef, 0, len(rows))
	for _, row := range rows {
		name := row.NodeType
		if row.PhaseName != nil {
			name = *row.PhaseName
		}
		parent := ""
		if row.ParentID != nil {
			parent = *row.ParentID
		}
		refs = append(refs, trace.RowRef{
			TraceID:   row.TraceID,
			ParentID:  parent,
			NodeType:  row.NodeType,
			Name:      name,
			Depth:     row.Depth,
			Timestamp: row.Timestamp.UnixNano(),
		})
	}

	graph := trace.Mermaid(trace.BuildTree(refs))
	path := c.r.settings.GraphPath(c.sessionID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		slog.Warn("Failed to create graph directory", "path", path, "error", err)
		return
	}
	if err := os.WriteFile(path, []byte(graph), 0o644); err != nil {
		slog.Warn("Failed to write trace graph", "path", path, "error", err)
	}
}

func (r *Runner) publishSessionStatus(ctx context.Context, sessionID, cascadeID, status, errorMessage string) {
	if r.publisher == nil {
		return
	}
	payload := events.SessionStatusPayload{
		Type:         events.EventTypeSessionStatus,
		SessionID:    sessionID,
		CascadeID:    cascadeID,
		Status:       status,
		ErrorMessage: errorMessage,
		Timestamp:    time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := r.publisher.PublishSessionStatus(ctx, sessionID, payload); err != nil {
		slog.Warn("Failed to publish session status",
			"session_id", sessionID, "status", status, "error", err)
	}
}
