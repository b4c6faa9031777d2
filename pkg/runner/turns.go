package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/agent/parser"
	"github.com/windlassio/windlass/pkg/budget"
	"github.com/windlassio/windlass/pkg/checkpoint"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/echo"
	"github.com/windlassio/windlass/pkg/events"
	"github.com/windlassio/windlass/pkg/render"
	"github.com/windlassio/windlass/pkg/tools"
	"github.com/windlassio/windlass/pkg/trace"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

// turnLoop drives one phase's conversation: agent calls, tool parsing and
// execution, dynamic routing, loop_until checks, and audibles. One turnLoop
// lives across attempts so the conversation carries over.
type turnLoop struct {
	run         *cascadeRun
	phase       *config.PhaseConfig
	echo        *echo.Echo
	model       string
	system      string
	nativeTools []agent.ToolSchema
	descriptors map[string]*tools.ToolDescriptor
	phaseTrace  string
	species     string
	mutation    Mutation
	sounding    *int
	budget      *budget.Budget

	messages     []agent.Message
	images       []string
	next         string
	audiblesUsed int
}

// turnResult is one attempt's outcome. failed carries the retryable error
// text; empty failed means output holds the attempt's final content.
type turnResult struct {
	output    string
	nextPhase string
	failed    string
}

// injectRetry appends the retry instructions for attempt > 0.
func (l *turnLoop) injectRetry(p *config.PhaseConfig, lastErr string) {
	tmpl := p.Rules.RetryInstructions
	if tmpl == "" {
		tmpl = config.GetBuiltinConfig().RetryDefault
	}
	rendered, err := l.run.r.renderer.Render(tmpl, map[string]any{
		"error": lastErr,
		"state": l.echo.State(),
	})
	if err != nil {
		rendered = "The previous attempt was rejected: " + lastErr
	}
	l.appendUser(rendered, unifiedlog.PurposeRefinement)
}

// run_ executes the turn loop for one attempt.
func (l *turnLoop) run_(ctx context.Context, attempt int) (turnResult, error) {
	maxTurns := l.phase.Rules.MaxTurns
	if maxTurns <= 0 {
		maxTurns = config.DefaultMaxTurns
	}

	var lastContent string
	followUp := false

	for turn := 0; turn < maxTurns; turn++ {
		if l.run.isCancelled(ctx) {
			return turnResult{}, ErrCancelled
		}
		l.run.progress.Report(ctx, l.phase.Name, "turn", fmt.Sprintf("turn %d/%d", turn+1, maxTurns))

		// b. Cull history
		l.messages = cullHistory(l.messages, l.run.r.settings.KeepRecentTurns, l.run.r.settings.KeepRecentImages)

		// c. Budget enforcement
		if l.budget != nil {
			reduced, check, err := l.budget.Enforce(ctx, l.messages, l.nativeTools, l.system)
			if err != nil {
				if errors.Is(err, budget.ErrBudgetExceeded) {
					return turnResult{}, l.run.failPhase(ctx, l.echo, l.phase.Name, l.phaseTrace, ErrTypeBudgetExceeded, err.Error())
				}
				return turnResult{}, err
			}
			if len(reduced) != len(l.messages) {
				l.messages = reduced
				l.publishBudgetEnforced(check)
			}
		}

		// d. Agent call; turn 0 carries the task input, later turns the turn
		// prompt, and follow-up calls after tools add no new user content.
		// An injected prompt (retry, loop_until, audible) already ends the
		// conversation with user content, so no turn prompt is added on top.
		userContent := ""
		switch {
		case turn == 0 && attempt == 0:
			userContent = l.initialUserContent()
		case followUp || l.endsWithUser():
		default:
			userContent = l.turnPrompt()
		}
		if userContent != "" {
			l.appendUser(userContent, turnPurpose(turn))
		}

		resp, err := l.callAgent(ctx, attempt, turn)
		if err != nil {
			return turnResult{}, l.run.failPhase(ctx, l.echo, l.phase.Name, l.phaseTrace, ErrTypeAgentCall, err.Error())
		}
		if resp.Content == "" && len(resp.ToolCalls) == 0 {
			l.logErrorRow("empty agent response")
			return turnResult{failed: "agent returned an empty response"}, nil
		}

		assistant := agent.Message{Role: agent.RoleAssistant, Content: resp.Content, ToolCalls: resp.ToolCalls}
		l.messages = append(l.messages, assistant)
		l.logAssistant(resp, attempt, turn)

		// g. Tool call parsing
		calls, parseErr := l.parseCalls(resp)
		if parseErr != nil {
			l.echo.SetState("last_validation_error", parseErr.Error())
			l.logErrorRow(parseErr.Error())
			return turnResult{failed: parseErr.Error()}, nil
		}

		if len(calls) == 0 {
			lastContent = resp.Content
			followUp = false

			// k. Per-turn loop_until
			if l.phase.Rules.LoopUntil != "" {
				verdict, err := l.run.wards.Validate(ctx, l.phase.Rules.LoopUntil, lastContent)
				if err != nil {
					return turnResult{}, l.run.failPhase(ctx, l.echo, l.phase.Name, l.phaseTrace, ErrTypeConfig, err.Error())
				}
				l.run.logValidation(l.echo, l.phase.Name, l.phaseTrace, l.phase.Rules.LoopUntil, verdict.Valid, verdict.Reason)
				if !verdict.Valid {
					redo, err := l.checkAudible(ctx)
					if err != nil {
						return turnResult{}, err
					}
					if redo {
						turn--
						continue
					}
					l.appendUser(l.loopUntilPrompt(verdict.Reason), unifiedlog.PurposeRefinement)
					continue
				}
			}

			// l. Audible check on the finished turn
			redo, err := l.checkAudible(ctx)
			if err != nil {
				return turnResult{}, err
			}
			if redo {
				turn--
				continue
			}
			break
		}

		// h/i. Execute tools, watch for dynamic routing
		routed, err := l.executeCalls(ctx, calls)
		if err != nil {
			return turnResult{}, err
		}
		if routed != "" {
			return turnResult{output: resp.Content, nextPhase: routed}, nil
		}
		followUp = true
		lastContent = resp.Content
	}

	return turnResult{output: lastContent}, nil
}

func (l *turnLoop) endsWithUser() bool {
	n := len(l.messages)
	return n > 0 && l.messages[n-1].Role == agent.RoleUser
}

func (l *turnLoop) initialUserContent() string {
	if l.phase.Context != nil && l.phase.Context.IncludeInput {
		return "Proceed with the task."
	}
	if l.run.input != "" {
		return l.run.input
	}
	return "Proceed with the task."
}

func (l *turnLoop) turnPrompt() string {
	tmpl := l.phase.Rules.TurnPrompt
	if tmpl == "" {
		return config.GetBuiltinConfig().TurnPromptDefault
	}
	rendered, err := l.run.r.renderer.Render(tmpl, render.Context(l.run.input, l.echo.State(), l.run.outputs(l.echo), nil, nil, 0, soundingOf(l.sounding), l.sounding != nil, 0))
	if err != nil {
		return tmpl
	}
	return rendered
}

func (l *turnLoop) loopUntilPrompt(reason string) string {
	if l.phase.Rules.LoopUntilPrompt != "" {
		return l.phase.Rules.LoopUntilPrompt
	}
	return "The answer is not yet acceptable: " + reason + "\nKeep going."
}

func turnPurpose(turn int) string {
	if turn == 0 {
		return unifiedlog.PurposeTaskInput
	}
	return unifiedlog.PurposeContinuation
}

// callAgent issues the blocking call. Transient provider failures are retried
// inside the client; a hard error here fails the phase.
func (l *turnLoop) callAgent(ctx context.Context, attempt, turn int) (*agent.Response, error) {
	input := agent.CallInput{
		SystemPrompt: l.system,
		History:      l.messages,
		Tools:        l.nativeTools,
		Model:        l.model,
	}
	start := time.Now()
	resp, err := l.run.r.client.Run(ctx, input)
	if err != nil {
		slog.Warn("Agent call failed",
			"session_id", l.run.sessionID, "phase", l.phase.Name,
			"attempt", attempt, "turn", turn, "duration", time.Since(start), "error", err)
		return nil, err
	}
	return resp, nil
}

func (l *turnLoop) logAssistant(resp *agent.Response, attempt, turn int) {
	var toolCallsJSON string
	if len(resp.ToolCalls) > 0 {
		if b, err := json.Marshal(resp.ToolCalls); err == nil {
			toolCallsJSON = string(b)
		}
	}
	l.echo.AddHistory(echo.Entry{
		Role:             agent.RoleAssistant,
		Content:          resp.Content,
		TraceID:          trace.NewID(),
		ParentID:         l.phaseTrace,
		NodeType:         unifiedlog.NodeTypeMessage,
		Model:            resp.Model,
		ModelRequested:   l.model,
		RequestID:        resp.RequestID,
		Provider:         resp.Provider,
		DurationMs:       resp.DurationMs,
		TokensIn:         resp.TokensIn,
		TokensOut:        resp.TokensOut,
		Cost:             resp.Cost,
		FullRequest:      string(resp.FullRequest),
		FullResponse:     string(resp.FullResponse),
		ToolCallsJSON:    toolCallsJSON,
		AttemptNumber:    unifiedlog.Ptr(attempt),
		TurnNumber:       unifiedlog.Ptr(turn),
		SpeciesHash:      l.species,
		MutationApplied:  l.mutation.Applied,
		MutationType:     string(l.mutation.Mode),
		MutationTemplate: l.mutation.Template,
	})
}

func (l *turnLoop) logErrorRow(message string) {
	l.echo.AddHistory(echo.Entry{
		Role:     agent.RoleSystem,
		Content:  message,
		TraceID:  trace.NewID(),
		ParentID: l.phaseTrace,
		NodeType: unifiedlog.NodeTypeError,
		Purpose:  unifiedlog.PurposeError,
	})
}

// parseCalls extracts tool calls from the response: the native protocol's
// structured calls, or the prompt-form parser over the content. A malformed
// would-be tool call is a validation failure, not a silent skip.
func (l *turnLoop) parseCalls(resp *agent.Response) ([]parser.Call, error) {
	if l.phase.UseNativeTools {
		var calls []parser.Call
		for _, tc := range resp.ToolCalls {
			args := map[string]any{}
			if tc.Function.Arguments != "" {
				if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
					return nil, fmt.Errorf("malformed arguments for tool %s: %w", tc.Function.Name, err)
				}
			}
			calls = append(calls, parser.Call{ID: tc.ID, Name: tc.Function.Name, Args: args})
		}
		return calls, nil
	}
	if len(l.descriptors) == 0 && l.next == "" && len(l.phase.Handoffs) == 0 {
		// No tools offered; free text never parses as calls
		return nil, nil
	}
	return parser.Parse(resp.Content)
}

// executeCalls runs each parsed call: route_to records dynamic routing, other
// names resolve through the descriptors with the tool cache in front.
// Returns the routed phase name, if any.
func (l *turnLoop) executeCalls(ctx context.Context, calls []parser.Call) (string, error) {
	routed := ""
	for _, call := range calls {
		if call.Name == "route_to" {
			if target, ok := call.Args["target"].(string); ok && target != "" {
				routed = target
				l.logToolRequest(call)
			}
			continue
		}

		l.run.progress.Report(ctx, l.phase.Name, "tool", "executing "+call.Name)
		l.logToolRequest(call)

		result, errText := l.invoke(ctx, call)
		resultText := renderResult(result, errText)
		l.logToolResult(call, resultText)

		if l.phase.UseNativeTools {
			l.messages = append(l.messages, agent.Message{
				Role:       agent.RoleTool,
				Content:    resultText,
				ToolCallID: call.ID,
			})
		} else {
			l.messages = append(l.messages, agent.Message{
				Role:    agent.RoleUser,
				Content: fmt.Sprintf("Tool %s returned:\n%s", call.Name, resultText),
			})
		}

		if errText == "" {
			if err := l.injectImages(ctx, call.Name, result); err != nil {
				return "", err
			}
		}
	}
	return routed, nil
}

// invoke executes one tool with the cache in front. Tool failures come back
// as error text for the model rather than aborting the phase.
func (l *turnLoop) invoke(ctx context.Context, call parser.Call) (any, string) {
	desc := l.descriptors[call.Name]
	if desc == nil {
		return nil, fmt.Sprintf("unknown tool %q", call.Name)
	}

	if cached, ok := l.run.cache.Get(call.Name, call.Args); ok {
		return cached, ""
	}

	var result any
	var err error
	if desc.Type == tools.ToolTypeCascade {
		result, err = l.invokeCascadeTool(ctx, desc, call.Args)
	} else {
		result, err = desc.Handler(ctx, call.Args)
	}
	if err != nil {
		l.echo.AddError(l.phase.Name, ErrTypeToolExecution, err.Error(), map[string]any{"tool": call.Name})
		return nil, err.Error()
	}

	l.run.cache.Put(call.Name, call.Args, result, desc.InvalidateOn)
	return result, ""
}

// invokeCascadeTool runs a cascade-backed tool as a synchronous child run.
func (l *turnLoop) invokeCascadeTool(ctx context.Context, desc *tools.ToolDescriptor, args map[string]any) (any, error) {
	inputJSON, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool input: %w", err)
	}
	result, err := l.run.r.Run(ctx, RunRequest{
		CascadeID:     desc.CascadePath,
		SessionID:     uniqueChildSessionID(l.run.sessionID, "tool_"+desc.Name),
		ParentSession: l.run.sessionID,
		Depth:         l.run.depth + 1,
		Input:         string(inputJSON),
	})
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// injectImages persists any images the tool produced and follows up with a
// user message carrying them as image parts.
func (l *turnLoop) injectImages(ctx context.Context, toolName string, result any) error {
	images := extractToolImages(result)
	if len(images) == 0 {
		return nil
	}
	paths, parts, err := persistImages(l.run.r.settings.ImagesDir, l.run.sessionID, l.phase.Name, l.sounding, images)
	if err != nil {
		return l.run.failPhase(ctx, l.echo, l.phase.Name, l.phaseTrace, ErrTypeToolExecution, err.Error())
	}
	l.images = append(l.images, paths...)

	msgParts := append([]agent.ContentPart{{
		Type: "text",
		Text: fmt.Sprintf("Images returned by tool %s:", toolName),
	}}, parts...)
	l.messages = append(l.messages, agent.Message{Role: agent.RoleUser, Parts: msgParts})

	if b, err := json.Marshal(paths); err == nil {
		l.echo.AddHistory(echo.Entry{
			Role:       agent.RoleUser,
			Content:    fmt.Sprintf("persisted %d images from %s", len(paths), toolName),
			TraceID:    trace.NewID(),
			ParentID:   l.phaseTrace,
			NodeType:   unifiedlog.NodeTypeToolResult,
			Purpose:    unifiedlog.PurposeContextInjection,
			ImagesJSON: string(b),
			HasImages:  true,
			HasBase64:  true,
		})
	}
	return nil
}

// checkAudible handles a pending mid-phase interjection. Returns true when
// the turn must be redone (the just-produced assistant message is discarded).
func (l *turnLoop) checkAudible(ctx context.Context) (bool, error) {
	if l.phase.Audibles == nil || !l.phase.Audibles.Enabled {
		return false, nil
	}
	if l.audiblesUsed >= l.phase.Audibles.EffectiveBudget() {
		return false, nil
	}
	message, pending := l.run.r.takeAudible(l.run.sessionID)
	if !pending || l.run.r.checkpoints == nil {
		return false, nil
	}
	l.audiblesUsed++

	current := ""
	if len(l.messages) > 0 {
		current = l.messages[len(l.messages)-1].Text()
	}
	spec := map[string]any{"message": message, "current_output": current}
	id, err := l.run.r.checkpoints.Create(ctx, &checkpoint.Checkpoint{
		SessionID: l.run.sessionID,
		CascadeID: l.run.cascade.CascadeID,
		PhaseName: l.phase.Name,
		Type:      checkpoint.TypeAudible,
		UISpec:    spec,
	})
	if err != nil {
		return false, err
	}
	l.run.logCheckpoint(l.echo, l.phase.Name, l.phaseTrace, id, string(checkpoint.TypeAudible))
	l.run.publishCheckpointCreated(ctx, id, l.phase.Name, string(checkpoint.TypeAudible), spec)

	response, err := l.run.r.checkpoints.WaitForResponse(ctx, id, 0)
	if err != nil {
		return false, err
	}
	if response == nil {
		l.run.logCheckpointTimeout(l.echo, l.phase.Name, l.phaseTrace, id)
		return false, nil
	}

	feedback, _ := response["feedback"].(string)
	if feedback == "" {
		feedback = message
	}
	action, _ := response["action"].(string)
	if action == "retry" {
		if n := len(l.messages); n > 0 && l.messages[n-1].Role == agent.RoleAssistant {
			l.messages = l.messages[:n-1]
		}
		l.appendUser(feedback, unifiedlog.PurposeRefinement)
		return true, nil
	}
	l.appendUser(feedback, unifiedlog.PurposeContextInjection)
	return false, nil
}

func (l *turnLoop) appendUser(content, purpose string) {
	l.messages = append(l.messages, agent.Message{Role: agent.RoleUser, Content: content})
	l.echo.AddHistory(echo.Entry{
		Role:     agent.RoleUser,
		Content:  content,
		TraceID:  trace.NewID(),
		ParentID: l.phaseTrace,
		NodeType: unifiedlog.NodeTypeMessage,
		Purpose:  purpose,
	})
}

func (l *turnLoop) logToolRequest(call parser.Call) {
	args, _ := json.Marshal(call.Args)
	l.echo.AddHistory(echo.Entry{
		Role:     agent.RoleAssistant,
		Content:  fmt.Sprintf("%s(%s)", call.Name, args),
		TraceID:  trace.NewID(),
		ParentID: l.phaseTrace,
		NodeType: unifiedlog.NodeTypeToolCall,
		Purpose:  unifiedlog.PurposeToolRequest,
		Metadata: map[string]any{"tool": call.Name, "call_id": call.ID},
	})
}

func (l *turnLoop) logToolResult(call parser.Call, result string) {
	l.echo.AddHistory(echo.Entry{
		Role:     agent.RoleTool,
		Content:  result,
		TraceID:  trace.NewID(),
		ParentID: l.phaseTrace,
		NodeType: unifiedlog.NodeTypeToolResult,
		Purpose:  unifiedlog.PurposeToolResponse,
		Metadata: map[string]any{"tool": call.Name, "call_id": call.ID},
	})
}

func (l *turnLoop) publishBudgetEnforced(check budget.Check) {
	if l.run.r.bus == nil {
		return
	}
	l.run.r.bus.Publish(events.TopicBudgetEnforced, map[string]any{
		"session_id": l.run.sessionID,
		"phase_name": l.phase.Name,
		"current":    check.Current,
		"limit":      check.Limit,
	})
}

// renderResult flattens a tool result for the conversation: strings pass
// through, everything else is JSON.
func renderResult(result any, errText string) string {
	if errText != "" {
		return "ERROR: " + errText
	}
	if s, ok := result.(string); ok {
		return s
	}
	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf("%v", result)
	}
	return string(b)
}

// cullHistory drops conversation older than the keep window, preserving
// system messages, and strips base64 image parts beyond the most recent N.
func cullHistory(messages []agent.Message, keepTurns, keepImages int) []agent.Message {
	if keepTurns <= 0 {
		keepTurns = config.DefaultKeepRecentTurns
	}
	if keepImages <= 0 {
		keepImages = config.DefaultKeepRecentImages
	}

	// A turn pair is one user message and the assistant reply; keep the most
	// recent keepTurns pairs plus every system message.
	var pairStarts []int
	for i, m := range messages {
		if m.Role == agent.RoleUser {
			pairStarts = append(pairStarts, i)
		}
	}
	out := messages
	if len(pairStarts) > keepTurns {
		cutoff := pairStarts[len(pairStarts)-keepTurns]
		var kept []agent.Message
		for i, m := range messages {
			if i >= cutoff || m.Role == agent.RoleSystem {
				kept = append(kept, m)
			}
		}
		out = kept
	} else {
		out = make([]agent.Message, len(messages))
		copy(out, messages)
	}

	// Strip base64 images beyond the most recent keepImages
	seen := 0
	for i := len(out) - 1; i >= 0; i-- {
		if !out[i].HasImages() {
			continue
		}
		var parts []agent.ContentPart
		for _, p := range out[i].Parts {
			if p.Type == "image_url" && len(p.ImageURL) > 7 && p.ImageURL[:5] == "data:" {
				if seen >= keepImages {
					continue
				}
				seen++
			}
			parts = append(parts, p)
		}
		out[i].Parts = parts
	}
	return out
}
