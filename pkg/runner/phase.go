package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/budget"
	"github.com/windlassio/windlass/pkg/checkpoint"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/echo"
	"github.com/windlassio/windlass/pkg/events"
	"github.com/windlassio/windlass/pkg/render"
	"github.com/windlassio/windlass/pkg/tools"
	"github.com/windlassio/windlass/pkg/trace"
	"github.com/windlassio/windlass/pkg/unifiedlog"
	"github.com/windlassio/windlass/pkg/wards"
)

// PhaseResult is what one executed phase hands back to the cascade loop.
type PhaseResult struct {
	Output    string
	NextPhase string
	Messages  []agent.Message
	Images    []string
}

// phaseOptions parameterize one phase execution. Sounding workers pass their
// clone echo, assigned model, resolved mutation, and the shared prebuilt
// context so every attempt starts from an identical snapshot.
type phaseOptions struct {
	model         string
	mutation      Mutation
	soundingIndex *int
	reforgeStep   *int
	echo          *echo.Echo
	prebuilt      []agent.Message
	prebuiltSet   bool
	instructions  string // non-empty overrides the phase template (reforge)
}

var decisionPattern = regexp.MustCompile(`(?s)<decision>\s*(\{.*?\})\s*</decision>`)

// runPhase executes a single phase's contract: context assembly, rendering,
// mutation, tackle, wards, the attempt/turn loops, schema validation,
// extraction, checkpoints, and callouts.
func (c *cascadeRun) runPhase(ctx context.Context, p *config.PhaseConfig, opts phaseOptions) (*PhaseResult, error) {
	ec := opts.echo
	if ec == nil {
		ec = c.echo
	}
	model := opts.model
	if model == "" {
		model = p.Model
	}
	if model == "" {
		model = c.r.settings.DefaultModel
	}

	phaseTrace := trace.NewID()
	ec.SetScope(echo.Scope{
		PhaseName:     p.Name,
		Depth:         c.depth,
		SoundingIndex: opts.soundingIndex,
		ReforgeStep:   opts.reforgeStep,
		ParentSession: c.parentSession,
	})
	speciesHash := trace.SpeciesHash(p)

	if c.r.sessions != nil && opts.soundingIndex == nil {
		if err := c.r.sessions.SetCurrentPhase(ctx, c.sessionID, p.Name); err != nil {
			slog.Warn("Failed to record current phase", "session_id", c.sessionID, "error", err)
		}
	}
	c.publishPhaseStatus(ctx, p.Name, events.PhaseStatusStarted, phaseTrace)

	// 1. Context assembly
	messages := opts.prebuilt
	if !opts.prebuiltSet {
		var err error
		messages, err = c.builder.Build(p.Context)
		if err != nil {
			return nil, c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeConfig, err.Error())
		}
	}

	// 2. Instruction rendering
	instructions := opts.instructions
	if instructions == "" {
		rendered, err := c.renderInstructions(p, ec, opts)
		if err != nil {
			return nil, c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeConfig, err.Error())
		}
		instructions = rendered
	}

	// 3. Mutation application
	instructions = opts.mutation.Apply(instructions)

	// 4. Tool assembly
	descriptors, schemas, err := c.resolveTackle(ctx, ec, p, instructions, phaseTrace)
	if err != nil {
		return nil, c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeConfig, err.Error())
	}
	systemPrompt := instructions
	var nativeTools []agent.ToolSchema
	if len(schemas) > 0 {
		if p.UseNativeTools {
			nativeTools = schemas
		} else {
			systemPrompt += "\n\n" + toolProtocolBlock(schemas)
		}
	}
	ec.AddHistory(echo.Entry{
		Role:        agent.RoleSystem,
		Content:     instructions,
		TraceID:     phaseTrace,
		NodeType:    unifiedlog.NodeTypePhase,
		Purpose:     unifiedlog.PurposeInstructions,
		SpeciesHash: speciesHash,
		MutationApplied:  opts.mutation.Applied,
		MutationType:     string(opts.mutation.Mode),
		MutationTemplate: opts.mutation.Template,
	})

	// 5. Pre-wards
	if failed, reason := c.runWardSet(ctx, ec, p.Name, phaseTrace, p.Wards.Pre, c.input, true); failed {
		return nil, c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeBlockedByWard, reason)
	}

	phaseBudget := c.newBudget(p, model)
	maxAttempts := p.Rules.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = config.DefaultMaxAttempts
	}

	loop := &turnLoop{
		run:         c,
		phase:       p,
		echo:        ec,
		model:       model,
		system:      systemPrompt,
		nativeTools: nativeTools,
		descriptors: descriptors,
		phaseTrace:  phaseTrace,
		species:     speciesHash,
		mutation:    opts.mutation,
		sounding:    opts.soundingIndex,
		budget:      phaseBudget,
		messages:    messages,
	}

	var output string
	var lastErr string
	succeeded := false

attempts:
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if c.isCancelled(ctx) {
			return nil, ErrCancelled
		}
		if attempt > 0 {
			loop.injectRetry(p, lastErr)
		}

		result, err := loop.run_(ctx, attempt)
		if err != nil {
			return nil, err
		}
		if result.failed != "" {
			lastErr = result.failed
			continue
		}
		output = result.output
		if result.nextPhase != "" {
			// Dynamic routing preempts validation
			loop.next = result.nextPhase
		}

		// Schema validation
		if len(p.OutputSchema) > 0 {
			verdict, err := wards.ValidateSchema(p.OutputSchema, output)
			if err != nil || !verdict.Valid {
				reason := verdict.Reason
				if err != nil {
					reason = err.Error()
				}
				ec.SetState("last_schema_error", reason)
				c.logValidation(ec, p.Name, phaseTrace, "output_schema", false, reason)
				lastErr = reason
				continue
			}
		}

		// Post-loop loop_until
		if p.Rules.LoopUntil != "" {
			verdict, err := c.wards.Validate(ctx, p.Rules.LoopUntil, output)
			if err != nil {
				return nil, c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeConfig, err.Error())
			}
			c.logValidation(ec, p.Name, phaseTrace, p.Rules.LoopUntil, verdict.Valid, verdict.Reason)
			if !verdict.Valid {
				ec.SetState("last_validation_error", verdict.Reason)
				lastErr = verdict.Reason
				continue
			}
		}

		// 7. Post-wards
		for _, ward := range p.Wards.Post {
			verdict, err := c.wards.Validate(ctx, ward.Validator, output)
			if err != nil {
				return nil, c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeConfig, err.Error())
			}
			c.logValidation(ec, p.Name, phaseTrace, ward.Validator, verdict.Valid, verdict.Reason)
			if verdict.Valid {
				continue
			}
			switch ward.EffectiveMode() {
			case config.WardModeAdvisory:
			case config.WardModeRetry:
				ec.SetState("last_validation_error", verdict.Reason)
				lastErr = verdict.Reason
				continue attempts
			default:
				return nil, c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeBlockedByWard,
					fmt.Sprintf("post-ward %s: %s", ward.Validator, verdict.Reason))
			}
		}

		succeeded = true
		break
	}
	if !succeeded {
		return nil, c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeLoopUntil,
			fmt.Sprintf("exhausted %d attempts: %s", maxAttempts, lastErr))
	}

	// 8. Output extraction
	if p.OutputExtraction != nil {
		if err := c.extractOutput(ec, p, output); err != nil {
			return nil, c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeOutputExtraction, err.Error())
		}
	}

	// 9. Decision and human-input checkpoints
	nextPhase := loop.next
	if route, err := c.handleDecision(ctx, ec, p, phaseTrace, output); err != nil {
		return nil, err
	} else if route != "" {
		nextPhase = route
	}
	if err := c.handleHumanInput(ctx, ec, p, phaseTrace, output); err != nil {
		return nil, err
	}

	// 10. Callouts
	if p.Callouts != nil && p.Callouts.Name != "" {
		name, err := c.r.renderer.Render(p.Callouts.Name, render.Context(c.input, ec.State(), c.outputs(ec), nil, nil, 0, soundingOf(opts.soundingIndex), opts.soundingIndex != nil, 0))
		if err == nil && name != "" {
			ec.AddHistory(echo.Entry{
				Role:        agent.RoleAssistant,
				Content:     output,
				TraceID:     trace.NewID(),
				ParentID:    phaseTrace,
				NodeType:    unifiedlog.NodeTypeLifecycle,
				Purpose:     unifiedlog.PurposeLifecycle,
				IsCallout:   true,
				CalloutName: name,
			})
		}
	}

	ec.SetState("output_"+p.Name, output)
	ec.AddLineage(p.Name, output, phaseTrace)
	c.publishPhaseStatus(ctx, p.Name, events.PhaseStatusCompleted, phaseTrace)

	if nextPhase == "self" {
		nextPhase = p.Name
	}
	return &PhaseResult{
		Output:    output,
		NextPhase: nextPhase,
		Messages:  loop.messages,
		Images:    loop.images,
	}, nil
}

// renderInstructions evaluates the phase instruction template against the
// standard render context.
func (c *cascadeRun) renderInstructions(p *config.PhaseConfig, ec *echo.Echo, opts phaseOptions) (string, error) {
	var lineage []map[string]any
	for _, l := range ec.Lineage() {
		lineage = append(lineage, map[string]any{"phase": l.Phase, "output": l.Output})
	}
	factor := 0
	if p.Soundings != nil {
		factor = p.Soundings.Factor
	}
	ctx := render.Context(
		c.input, ec.State(), c.outputs(ec), lineage, nil,
		0, soundingOf(opts.soundingIndex), opts.soundingIndex != nil, factor,
	)
	return c.r.renderer.Render(p.Instructions, ctx)
}

func (c *cascadeRun) outputs(ec *echo.Echo) map[string]string {
	out := make(map[string]string)
	for _, l := range ec.Lineage() {
		out[l.Phase] = l.Output
	}
	return out
}

func soundingOf(idx *int) int {
	if idx == nil {
		return 0
	}
	return *idx
}

// resolveTackle turns the phase's tackle declaration into tool descriptors
// and schemas, consulting the quartermaster for "manifest" and the memory
// bank for names the registry does not know.
func (c *cascadeRun) resolveTackle(ctx context.Context, ec *echo.Echo, p *config.PhaseConfig, goal, phaseTrace string) (map[string]*tools.ToolDescriptor, []agent.ToolSchema, error) {
	if p.Tackle.IsEmpty() {
		return nil, nil, nil
	}

	names := p.Tackle.Names
	if p.Tackle.Manifest {
		selected, resp, err := c.qm.Select(ctx, goal, c.r.tools.Manifest())
		if err != nil {
			return nil, nil, fmt.Errorf("quartermaster selection failed: %w", err)
		}
		if resp != nil {
			ec.AddHistory(echo.Entry{
				Role:         agent.RoleAssistant,
				Content:      resp.Content,
				TraceID:      trace.NewID(),
				ParentID:     phaseTrace,
				NodeType:     unifiedlog.NodeTypeMessage,
				Actor:        unifiedlog.ActorQuartermaster,
				Purpose:      unifiedlog.PurposeGeneration,
				Model:        resp.Model,
				RequestID:    resp.RequestID,
				Provider:     resp.Provider,
				TokensIn:     resp.TokensIn,
				TokensOut:    resp.TokensOut,
				DurationMs:   resp.DurationMs,
				FullRequest:  string(resp.FullRequest),
				FullResponse: string(resp.FullResponse),
			})
		}
		names = selected
	}

	descriptors := make(map[string]*tools.ToolDescriptor, len(names))
	var schemas []agent.ToolSchema
	for _, name := range names {
		desc := c.r.tools.Get(name)
		if desc == nil && c.memory != nil {
			desc = c.memory.Resolve(name)
		}
		if desc == nil {
			return nil, nil, fmt.Errorf("unknown tool %q", name)
		}
		descriptors[name] = desc
		schemas = append(schemas, agent.ToolSchema{
			Name:        desc.Name,
			Description: desc.Description,
			Parameters:  desc.Parameters,
		})
	}
	return descriptors, schemas, nil
}

// toolProtocolBlock renders the prompt-form tool protocol appended to the
// system instructions when native tool calling is off.
func toolProtocolBlock(schemas []agent.ToolSchema) string {
	var b strings.Builder
	b.WriteString("You may call the following tools. To call one, emit a fenced block:\n")
	b.WriteString("```json\n{\"tool\": \"<name>\", \"arguments\": {...}}\n```\n")
	b.WriteString("Emit at most one block per tool call. Available tools:\n")
	for _, s := range schemas {
		fmt.Fprintf(&b, "\n- %s: %s", s.Name, s.Description)
		if len(s.Parameters) > 0 {
			if params, err := json.Marshal(s.Parameters); err == nil {
				fmt.Fprintf(&b, "\n  parameters: %s", params)
			}
		}
	}
	return b.String()
}

// newBudget builds the effective token budget for the phase, if any.
func (c *cascadeRun) newBudget(p *config.PhaseConfig, model string) *budget.Budget {
	cfg := p.TokenBudget
	if cfg == nil {
		cfg = c.cascade.TokenBudget
	}
	if cfg == nil {
		return nil
	}
	return budget.New(cfg, c.r.client, model)
}

// runWardSet runs pre-wards. Returns (true, reason) when a blocking ward
// fails; advisory failures are logged only. Retry mode is meaningless before
// the phase ran and is ignored.
func (c *cascadeRun) runWardSet(ctx context.Context, ec *echo.Echo, phase, phaseTrace string, set []config.WardConfig, content string, pre bool) (bool, string) {
	for _, ward := range set {
		verdict, err := c.wards.Validate(ctx, ward.Validator, content)
		if err != nil {
			return true, err.Error()
		}
		c.logValidation(ec, phase, phaseTrace, ward.Validator, verdict.Valid, verdict.Reason)
		if verdict.Valid {
			continue
		}
		switch ward.EffectiveMode() {
		case config.WardModeAdvisory:
		case config.WardModeRetry:
			if pre {
				continue
			}
		default:
			return true, fmt.Sprintf("pre-ward %s: %s", ward.Validator, verdict.Reason)
		}
	}
	return false, ""
}

func (c *cascadeRun) logValidation(ec *echo.Echo, phase, phaseTrace, validator string, valid bool, reason string) {
	verdict := map[string]any{"validator": validator, "valid": valid}
	if reason != "" {
		verdict["reason"] = reason
	}
	content, _ := json.Marshal(verdict)
	ec.AddHistory(echo.Entry{
		Role:     agent.RoleSystem,
		Content:  string(content),
		TraceID:  trace.NewID(),
		ParentID: phaseTrace,
		NodeType: unifiedlog.NodeTypeValidation,
		Actor:    unifiedlog.ActorValidator,
		Purpose:  unifiedlog.PurposeValidationOutput,
		Metadata: verdict,
	})
}

// failPhase records the failure on the echo and publishes the phase.status
// event; callers return ErrPhaseAborted so the cascade loop stops cleanly.
func (c *cascadeRun) failPhase(ctx context.Context, ec *echo.Echo, phase, phaseTrace, errType, message string) error {
	ec.AddError(phase, errType, message, nil)
	ec.AddHistory(echo.Entry{
		Role:     agent.RoleSystem,
		Content:  message,
		TraceID:  trace.NewID(),
		ParentID: phaseTrace,
		NodeType: unifiedlog.NodeTypeError,
		Purpose:  unifiedlog.PurposeError,
		Metadata: map[string]any{"error_type": errType},
	})
	c.publishPhaseStatus(ctx, phase, events.PhaseStatusFailed, phaseTrace)
	return fmt.Errorf("%w: %s: %s", ErrPhaseAborted, errType, message)
}

func (c *cascadeRun) publishPhaseStatus(ctx context.Context, phase, status, traceID string) {
	if c.r.publisher == nil {
		return
	}
	index := 0
	for i := range c.cascade.Phases {
		if c.cascade.Phases[i].Name == phase {
			index = i + 1
			break
		}
	}
	payload := events.PhaseStatusPayload{
		Type:       events.EventTypePhaseStatus,
		SessionID:  c.sessionID,
		PhaseName:  phase,
		PhaseIndex: index,
		Status:     status,
		TraceID:    traceID,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := c.r.publisher.PublishPhaseStatus(ctx, c.sessionID, payload); err != nil {
		slog.Warn("Failed to publish phase status", "session_id", c.sessionID, "phase", phase, "error", err)
	}
}

// extractOutput applies output_extraction to the final output.
func (c *cascadeRun) extractOutput(ec *echo.Echo, p *config.PhaseConfig, output string) error {
	cfg := p.OutputExtraction
	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return fmt.Errorf("invalid extraction pattern: %w", err)
	}
	m := re.FindStringSubmatch(output)
	if m == nil {
		if cfg.Required {
			return fmt.Errorf("required extraction pattern did not match")
		}
		return nil
	}
	captured := m[0]
	if len(m) > 1 {
		captured = m[1]
	}

	switch cfg.Format {
	case config.ExtractionJSON:
		var decoded any
		if err := json.Unmarshal([]byte(captured), &decoded); err != nil {
			if cfg.Required {
				return fmt.Errorf("extracted capture is not valid JSON: %w", err)
			}
			return nil
		}
		ec.SetState(cfg.StoreAs, decoded)
	default:
		ec.SetState(cfg.StoreAs, captured)
	}
	return nil
}

// handleDecision inspects the output for a <decision> block and, when
// decision points are enabled, opens a checkpoint and routes on the response.
// Returns the chosen route ("" for the static default).
func (c *cascadeRun) handleDecision(ctx context.Context, ec *echo.Echo, p *config.PhaseConfig, phaseTrace, output string) (string, error) {
	if p.DecisionPoints == nil || !p.DecisionPoints.Enabled {
		return "", nil
	}
	m := decisionPattern.FindStringSubmatch(output)
	if m == nil {
		return "", nil
	}
	var spec map[string]any
	if err := json.Unmarshal([]byte(m[1]), &spec); err != nil {
		slog.Warn("Ignoring malformed decision block", "session_id", c.sessionID, "phase", p.Name, "error", err)
		return "", nil
	}
	if c.r.checkpoints == nil {
		return "", nil
	}

	id, err := c.r.checkpoints.Create(ctx, &checkpoint.Checkpoint{
		SessionID: c.sessionID,
		CascadeID: c.cascade.CascadeID,
		PhaseName: p.Name,
		Type:      checkpoint.TypeDecision,
		UISpec:    spec,
	})
	if err != nil {
		return "", c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeConfig, err.Error())
	}
	c.logCheckpoint(ec, p.Name, phaseTrace, id, string(checkpoint.TypeDecision))
	c.publishCheckpointCreated(ctx, id, p.Name, string(checkpoint.TypeDecision), spec)

	timeout := time.Duration(p.DecisionPoints.TimeoutSeconds) * time.Second
	response, err := c.r.checkpoints.WaitForResponse(ctx, id, timeout)
	if err != nil {
		return "", err
	}
	if response == nil {
		c.logCheckpointTimeout(ec, p.Name, phaseTrace, id)
		return "", nil
	}

	choice, _ := response["decision_choice"].(string)
	feedback, _ := response["decision_custom"].(string)
	action := decisionAction(spec, choice)
	switch action {
	case "_abort":
		return "", c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeCancelled, "aborted at decision point")
	case "self":
		if feedback != "" {
			ec.SetState("_decision_feedback", feedback)
		}
		return "self", nil
	case "next", "":
		return "", nil
	default:
		return action, nil
	}
}

// decisionAction maps the chosen option id to its declared action. A choice
// with no matching option is taken as the action itself.
func decisionAction(spec map[string]any, choice string) string {
	options, ok := spec["options"].([]any)
	if !ok {
		return choice
	}
	for _, o := range options {
		opt, ok := o.(map[string]any)
		if !ok {
			continue
		}
		if id, _ := opt["id"].(string); id == choice {
			if action, _ := opt["action"].(string); action != "" {
				return action
			}
			return choice
		}
	}
	return choice
}

// handleHumanInput opens a phase-output checkpoint when the configured
// condition holds.
func (c *cascadeRun) handleHumanInput(ctx context.Context, ec *echo.Echo, p *config.PhaseConfig, phaseTrace, output string) error {
	hi := p.HumanInput
	if hi == nil || c.r.checkpoints == nil {
		return nil
	}
	if hi.Condition != "" {
		result, err := c.r.renderer.Render(hi.Condition, render.Context(c.input, ec.State(), c.outputs(ec), nil, nil, 0, 0, false, 0))
		if err != nil {
			return c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeConfig, err.Error())
		}
		if !truthy(result) {
			return nil
		}
	}

	spec := map[string]any{"kind": "phase_output"}
	if hi.Prompt != "" {
		spec["prompt"] = hi.Prompt
	}
	cp := &checkpoint.Checkpoint{
		SessionID:   c.sessionID,
		CascadeID:   c.cascade.CascadeID,
		PhaseName:   p.Name,
		Type:        checkpoint.TypePhaseInput,
		UISpec:      spec,
		PhaseOutput: &output,
	}
	if hi.TimeoutSeconds > 0 {
		cp.TimeoutSeconds = &hi.TimeoutSeconds
	}
	id, err := c.r.checkpoints.Create(ctx, cp)
	if err != nil {
		return c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeConfig, err.Error())
	}
	c.logCheckpoint(ec, p.Name, phaseTrace, id, string(checkpoint.TypePhaseInput))
	c.publishCheckpointCreated(ctx, id, p.Name, string(checkpoint.TypePhaseInput), spec)

	c.setBlocked(ctx, true)
	response, err := c.r.checkpoints.WaitForResponse(ctx, id, time.Duration(hi.TimeoutSeconds)*time.Second)
	c.setBlocked(ctx, false)
	if err != nil {
		return err
	}

	if response == nil {
		c.logCheckpointTimeout(ec, p.Name, phaseTrace, id)
		switch hi.OnTimeout {
		case config.CheckpointTimeoutAbort:
			return c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeCheckpointTimeout, "human input timed out")
		case config.CheckpointTimeoutEscalate:
			ec.AddError(p.Name, ErrTypeCheckpointTimeout, "human input timed out, escalated", nil)
			return nil
		default:
			return nil
		}
	}

	if approved, ok := response["approved"].(bool); ok && !approved {
		return c.failPhase(ctx, ec, p.Name, phaseTrace, ErrTypeBlockedByWard, "output rejected by human reviewer")
	}
	if feedback, ok := response["feedback"].(string); ok && feedback != "" {
		ec.SetState("human_feedback", feedback)
	}
	return nil
}

// setBlocked flips the session between running and blocked around a
// checkpoint wait. Best-effort: a failed write never aborts the wait.
func (c *cascadeRun) setBlocked(ctx context.Context, blocked bool) {
	if c.r.sessions == nil {
		return
	}
	status := statusRunning
	if blocked {
		status = statusBlocked
	}
	if err := c.r.sessions.UpdateStatus(ctx, c.sessionID, status, nil); err != nil {
		slog.Debug("Failed to update blocked status", "session_id", c.sessionID, "error", err)
	}
}

func (c *cascadeRun) logCheckpoint(ec *echo.Echo, phase, phaseTrace, id, kind string) {
	ec.AddHistory(echo.Entry{
		Role:     agent.RoleSystem,
		Content:  fmt.Sprintf("checkpoint %s opened (%s)", id, kind),
		TraceID:  trace.NewID(),
		ParentID: phaseTrace,
		NodeType: unifiedlog.NodeTypeCheckpoint,
		Purpose:  unifiedlog.PurposeLifecycle,
		Metadata: map[string]any{"checkpoint_id": id, "kind": kind},
	})
}

func (c *cascadeRun) logCheckpointTimeout(ec *echo.Echo, phase, phaseTrace, id string) {
	ec.AddHistory(echo.Entry{
		Role:     agent.RoleSystem,
		Content:  "checkpoint_timeout",
		TraceID:  trace.NewID(),
		ParentID: phaseTrace,
		NodeType: unifiedlog.NodeTypeCheckpoint,
		Purpose:  unifiedlog.PurposeLifecycle,
		Metadata: map[string]any{"checkpoint_id": id, "timeout": true},
	})
}

func (c *cascadeRun) publishCheckpointCreated(ctx context.Context, id, phase, kind string, spec map[string]any) {
	if c.r.publisher == nil {
		return
	}
	payload := events.CheckpointPayload{
		Type:         events.EventTypeCheckpointCreated,
		CheckpointID: id,
		SessionID:    c.sessionID,
		PhaseName:    phase,
		Kind:         kind,
		Status:       string(checkpoint.StatusPending),
		UISpec:       spec,
		Timestamp:    time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := c.r.publisher.PublishCheckpoint(ctx, c.sessionID, payload); err != nil {
		slog.Warn("Failed to publish checkpoint event", "checkpoint_id", id, "error", err)
	}
}

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "0", "no", "<no value>":
		return false
	default:
		return true
	}
}
