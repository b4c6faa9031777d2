package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/checkpoint"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/echo"
	"github.com/windlassio/windlass/pkg/events"
	"github.com/windlassio/windlass/pkg/render"
	"github.com/windlassio/windlass/pkg/tools"
	"github.com/windlassio/windlass/pkg/unifiedlog"
	"github.com/windlassio/windlass/pkg/wards"
)

// SessionControl is the slice of the session service the runner depends on.
// Nil disables durability side effects, which keeps library and test runs
// free of a database.
type SessionControl interface {
	Heartbeat(ctx context.Context, sessionID string) error
	IsCancelled(ctx context.Context, sessionID string) (bool, error)
	SetCurrentPhase(ctx context.Context, sessionID, phase string) error
	UpdateStatus(ctx context.Context, sessionID string, status cascadesession.Status, errorMessage *string) error
	CreateChild(ctx context.Context, sessionID, cascadeID, parentID string, depth int) error
}

// Deps wires the runner's collaborators. Client, Registry, and Settings are
// required; everything else degrades gracefully when nil.
type Deps struct {
	Client      agent.Client
	Registry    *config.CascadeRegistry
	Settings    *config.Settings
	Tools       *tools.Registry
	Log         *unifiedlog.UnifiedLog
	Bus         *events.Bus
	Publisher   *events.EventPublisher
	Checkpoints *checkpoint.Manager
	Sessions    SessionControl
}

// Runner executes cascades. One Runner serves the whole process; per-session
// state lives in cascadeRun.
type Runner struct {
	client      agent.Client
	registry    *config.CascadeRegistry
	settings    *config.Settings
	tools       *tools.Registry
	log         *unifiedlog.UnifiedLog
	bus         *events.Bus
	publisher   *events.EventPublisher
	checkpoints *checkpoint.Manager
	sessions    SessionControl
	renderer    render.Renderer

	audibleMu sync.Mutex
	audibles  map[string]string
}

// New creates a Runner.
func New(d Deps) (*Runner, error) {
	if d.Client == nil {
		return nil, fmt.Errorf("runner: agent client is required")
	}
	if d.Registry == nil {
		return nil, fmt.Errorf("runner: cascade registry is required")
	}
	if d.Settings == nil {
		return nil, fmt.Errorf("runner: settings are required")
	}
	toolReg := d.Tools
	if toolReg == nil {
		toolReg = tools.NewRegistry()
	}
	return &Runner{
		client:      d.Client,
		registry:    d.Registry,
		settings:    d.Settings,
		tools:       toolReg,
		log:         d.Log,
		bus:         d.Bus,
		publisher:   d.Publisher,
		checkpoints: d.Checkpoints,
		sessions:    d.Sessions,
		renderer:    render.NewTemplateRenderer(),
		audibles:    make(map[string]string),
	}, nil
}

// RequestAudible queues a mid-phase user interjection for a session. The
// phase picks it up at its next audible check.
func (r *Runner) RequestAudible(sessionID, message string) {
	r.audibleMu.Lock()
	r.audibles[sessionID] = message
	r.audibleMu.Unlock()
	if r.bus != nil {
		r.bus.Publish(events.TopicAudible, map[string]any{
			"session_id": sessionID,
			"message":    message,
		})
	}
}

// takeAudible consumes a pending audible for the session, if any.
func (r *Runner) takeAudible(sessionID string) (string, bool) {
	r.audibleMu.Lock()
	defer r.audibleMu.Unlock()
	msg, ok := r.audibles[sessionID]
	if ok {
		delete(r.audibles, sessionID)
	}
	return msg, ok
}

// cascadeRun is the per-session execution context shared by the cascade,
// sounding, and phase layers.
type cascadeRun struct {
	r       *Runner
	cascade *config.CascadeConfig

	sessionID     string
	parentSession string
	depth         int
	input         string

	echo     *echo.Echo
	builder  *ContextBuilder
	wards    *wards.Engine
	cache    *tools.Cache
	memory   *tools.MemoryBank
	mutator  *Mutator
	progress *ProgressReporter
	qm       *tools.Quartermaster
}

func (r *Runner) newCascadeRun(cascade *config.CascadeConfig, sessionID, parentSession, input string, depth int) *cascadeRun {
	var sink echo.Sink
	if r.log != nil {
		sink = r.log
	}
	ec := echo.New(sessionID, cascade.CascadeID, sink)
	ec.SetScope(echo.Scope{Depth: depth, ParentSession: parentSession})

	c := &cascadeRun{
		r:             r,
		cascade:       cascade,
		sessionID:     sessionID,
		parentSession: parentSession,
		depth:         depth,
		input:         input,
		echo:          ec,
		builder:       NewContextBuilder(input),
		cache:         tools.NewCache(cascade.ToolCaching),
		mutator:       NewMutator(r.client, r.settings.EffectiveRewriteModel(), r.log),
		progress:      NewProgressReporter(r.bus, r.publisher, sessionID),
		qm:            tools.NewQuartermaster(r.client, r.settings.DefaultModel),
	}
	c.wards = wards.NewEngine(cascade, r.client, r.settings.DefaultModel, c.invokeValidatorCascade)
	if cascade.Memory != nil && cascade.Memory.Enabled {
		c.memory = tools.NewMemoryBank(cascade.Memory.Dir)
	}
	return c
}

// invokeValidatorCascade runs a validator sub-cascade to completion and
// returns its final output. Used by cascade-kind wards.
func (c *cascadeRun) invokeValidatorCascade(ctx context.Context, cascadeID string, input map[string]any) (string, error) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode validator input: %w", err)
	}
	result, err := c.r.Run(ctx, RunRequest{
		CascadeID:     cascadeID,
		SessionID:     uniqueChildSessionID(c.sessionID, "ward_"+cascadeID),
		ParentSession: c.sessionID,
		Depth:         c.depth + 1,
		Input:         string(inputJSON),
	})
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// isCancelled consults the session store; without one, runs are never
// externally cancelled.
func (c *cascadeRun) isCancelled(ctx context.Context) bool {
	if c.r.sessions == nil {
		return false
	}
	cancelled, err := c.r.sessions.IsCancelled(ctx, c.sessionID)
	return err == nil && cancelled
}

// utilityModel is the model used for the framework's own calls (evaluators,
// judges, aggregators).
func (c *cascadeRun) utilityModel() string {
	return c.r.settings.DefaultModel
}

func stateJSON(state map[string]any) string {
	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
