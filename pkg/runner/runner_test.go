package runner

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/checkpoint"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/tools"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

// fakeClient routes calls through fn and records every input. Soundings run
// attempts concurrently, so routing keys off the call content rather than
// call order.
type fakeClient struct {
	mu    sync.Mutex
	fn    func(in agent.CallInput) (*agent.Response, error)
	calls []agent.CallInput
}

func (f *fakeClient) Run(_ context.Context, in agent.CallInput) (*agent.Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, in)
	fn := f.fn
	f.mu.Unlock()
	if fn == nil {
		return &agent.Response{Content: "ok"}, nil
	}
	return fn(in)
}

func (f *fakeClient) inputs() []agent.CallInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]agent.CallInput, len(f.calls))
	copy(out, f.calls)
	return out
}

// scripted returns each response once, in order; extra calls repeat the last.
func scripted(responses ...string) *fakeClient {
	f := &fakeClient{}
	i := 0
	f.fn = func(agent.CallInput) (*agent.Response, error) {
		if i >= len(responses) {
			return &agent.Response{Content: responses[len(responses)-1]}, nil
		}
		r := responses[i]
		i++
		return &agent.Response{Content: r}, nil
	}
	return f
}

type testHarness struct {
	runner *Runner
	client *fakeClient
	log    *unifiedlog.UnifiedLog
	cps    *checkpoint.Manager
}

func newTestRunner(t *testing.T, client *fakeClient, cascades map[string]*config.CascadeConfig, opts ...func(*Deps)) *testHarness {
	t.Helper()

	log := unifiedlog.New(unifiedlog.NewMemoryStore(), nil, nil, unifiedlog.Options{})
	t.Cleanup(func() { _ = log.Close() })

	deps := Deps{
		Client:   client,
		Registry: config.NewCascadeRegistry(cascades),
		Settings: &config.Settings{
			DefaultModel:      "test/model",
			ImagesDir:         t.TempDir(),
			GraphDir:          t.TempDir(),
			HeartbeatInterval: time.Minute,
		},
		Log: log,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	r, err := New(deps)
	require.NoError(t, err)
	return &testHarness{runner: r, client: client, log: log, cps: deps.Checkpoints}
}

func withCheckpoints() func(*Deps) {
	return func(d *Deps) {
		d.Checkpoints = checkpoint.NewManager(checkpoint.NewMemoryStore(), nil)
	}
}

func withTools(reg *tools.Registry) func(*Deps) {
	return func(d *Deps) { d.Tools = reg }
}

func (h *testHarness) rows(t *testing.T, f unifiedlog.Filter) []*unifiedlog.Row {
	t.Helper()
	rows, err := h.log.Query(context.Background(), f)
	require.NoError(t, err)
	return rows
}

func rowContent(row *unifiedlog.Row) string {
	if row.ContentJSON == nil {
		return ""
	}
	return *row.ContentJSON
}

func TestRun_LinearCascade(t *testing.T) {
	client := scripted("ore located at bearing 40", "assay: ore located at bearing 40")
	cascade := &config.CascadeConfig{
		CascadeID: "survey",
		Phases: []config.PhaseConfig{
			{
				Name:         "gather",
				Instructions: "Find the ore deposit.",
				Handoffs:     []config.HandoffConfig{{Target: "analyze"}},
			},
			{
				Name:         "analyze",
				Instructions: "Assay the findings.",
				Context: &config.ContextConfig{
					From: []config.ContextSourceConfig{{Phase: "gather"}},
				},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"survey": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "survey", SessionID: "sess-linear", Input: "find ore",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "assay: ore located at bearing 40", result.Output)
	assert.Equal(t, "ore located at bearing 40", result.State["output_gather"])
	assert.Empty(t, result.Errors)

	calls := client.inputs()
	require.Len(t, calls, 2)
	assert.Equal(t, "Find the ore deposit.", calls[0].SystemPrompt)
	require.Len(t, calls[0].History, 1)
	assert.Equal(t, "find ore", calls[0].History[0].Content)

	// Second phase sees the declared context plus the session input
	require.Len(t, calls[1].History, 2)
	assert.Equal(t, "[Output from phase]:\nore located at bearing 40", calls[1].History[0].Content)
	assert.Equal(t, "find ore", calls[1].History[1].Content)

	rows := h.rows(t, unifiedlog.Filter{SessionID: "sess-linear"})
	require.NotEmpty(t, rows)
	phases := map[string]bool{}
	for _, row := range rows {
		if row.PhaseName != nil {
			phases[*row.PhaseName] = true
		}
	}
	assert.True(t, phases["gather"])
	assert.True(t, phases["analyze"])

	lifecycle := h.rows(t, unifiedlog.Filter{SessionID: "sess-linear", NodeType: unifiedlog.NodeTypeLifecycle})
	require.NotEmpty(t, lifecycle)
	assert.Equal(t, "session completed", rowContent(lifecycle[len(lifecycle)-1]))
}

func TestRun_CleanSlateWithoutContextBlock(t *testing.T) {
	client := scripted("first answer", "second answer")
	cascade := &config.CascadeConfig{
		CascadeID: "twostep",
		Phases: []config.PhaseConfig{
			{Name: "a", Instructions: "Do A.", Handoffs: []config.HandoffConfig{{Target: "b"}}},
			{Name: "b", Instructions: "Do B."},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"twostep": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "twostep", SessionID: "sess-clean", Input: "go",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)

	calls := client.inputs()
	require.Len(t, calls, 2)
	// No context block on b: nothing from a leaks in
	require.Len(t, calls[1].History, 1)
	assert.Equal(t, "go", calls[1].History[0].Content)
	assert.NotContains(t, calls[1].SystemPrompt, "first answer")
}

func TestRun_MetadataSeedsState(t *testing.T) {
	client := scripted("north reef charted")
	cascade := &config.CascadeConfig{
		CascadeID: "chart",
		Phases:    []config.PhaseConfig{{Name: "plot", Instructions: "Chart the region {{.state.region}}."}},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"chart": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "chart",
		SessionID: "sess-meta",
		Input:     "chart it",
		Metadata:  map[string]any{"region": "north reef"},
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "north reef", result.State["region"])

	calls := client.inputs()
	require.Len(t, calls, 1)
	assert.Equal(t, "Chart the region north reef.", calls[0].SystemPrompt)
}

func TestRun_UnknownCascade(t *testing.T) {
	h := newTestRunner(t, scripted("x"), map[string]*config.CascadeConfig{})
	_, err := h.runner.Run(context.Background(), RunRequest{CascadeID: "nope", SessionID: "s"})
	assert.Error(t, err)
}

func TestRun_RequiresSessionID(t *testing.T) {
	cascade := &config.CascadeConfig{
		CascadeID: "c",
		Phases:    []config.PhaseConfig{{Name: "p", Instructions: "x"}},
	}
	h := newTestRunner(t, scripted("x"), map[string]*config.CascadeConfig{"c": cascade})
	_, err := h.runner.Run(context.Background(), RunRequest{CascadeID: "c"})
	assert.Error(t, err)
}

func TestRun_DynamicRouting(t *testing.T) {
	client := &fakeClient{}
	client.fn = func(in agent.CallInput) (*agent.Response, error) {
		if strings.Contains(in.SystemPrompt, "Triage the request") {
			return &agent.Response{
				Content: "Routing.\n```json\n{\"tool\": \"route_to\", \"arguments\": {\"target\": \"fast\"}}\n```",
			}, nil
		}
		return &agent.Response{Content: "fast done"}, nil
	}
	cascade := &config.CascadeConfig{
		CascadeID: "triage",
		Phases: []config.PhaseConfig{
			{
				Name:         "triage",
				Instructions: "Triage the request.",
				Handoffs: []config.HandoffConfig{
					{Target: "slow"},
					{Target: "fast"},
				},
			},
			{Name: "slow", Instructions: "Take the slow path."},
			{Name: "fast", Instructions: "Take the fast path."},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"triage": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "triage", SessionID: "sess-route", Input: "urgent",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "fast done", result.Output)

	for _, call := range client.inputs() {
		assert.NotContains(t, call.SystemPrompt, "Take the slow path.")
	}
}

func TestRun_PromptFormToolExecution(t *testing.T) {
	reg := tools.NewRegistry()
	var mu sync.Mutex
	var gotArgs map[string]any
	require.NoError(t, reg.Register(&tools.ToolDescriptor{
		Name:        "lookup",
		Description: "Look up a claim record.",
		Parameters:  map[string]any{"type": "object"},
		Handler: func(_ context.Context, args map[string]any) (any, error) {
			mu.Lock()
			gotArgs = args
			mu.Unlock()
			return map[string]any{"value": 42}, nil
		},
	}))

	client := &fakeClient{}
	client.fn = func(in agent.CallInput) (*agent.Response, error) {
		for _, m := range in.History {
			if strings.Contains(m.Content, "Tool lookup returned") {
				return &agent.Response{Content: "the value is 42"}, nil
			}
		}
		return &agent.Response{
			Content: "```json\n{\"tool\": \"lookup\", \"arguments\": {\"q\": \"ore\"}}\n```",
		}, nil
	}

	cascade := &config.CascadeConfig{
		CascadeID: "tooluse",
		Phases: []config.PhaseConfig{
			{
				Name:         "work",
				Instructions: "Use the lookup tool.",
				Tackle:       config.Tackle{Names: []string{"lookup"}},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"tooluse": cascade}, withTools(reg))

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "tooluse", SessionID: "sess-tool", Input: "check the claim",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "the value is 42", result.Output)
	assert.Equal(t, map[string]any{"q": "ore"}, gotArgs)

	// The tool protocol rides on the system prompt, and the result came back
	// as a user message
	calls := client.inputs()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[0].SystemPrompt, "lookup: Look up a claim record.")
	found := false
	for _, m := range calls[1].History {
		if strings.HasPrefix(m.Content, "Tool lookup returned:") {
			found = true
			assert.Contains(t, m.Content, `{"value":42}`)
		}
	}
	assert.True(t, found)

	assert.NotEmpty(t, h.rows(t, unifiedlog.Filter{SessionID: "sess-tool", NodeType: unifiedlog.NodeTypeToolCall}))
	assert.NotEmpty(t, h.rows(t, unifiedlog.Filter{SessionID: "sess-tool", NodeType: unifiedlog.NodeTypeToolResult}))
}

func TestRun_LoopUntilRetriesWithinTurns(t *testing.T) {
	client := scripted("no structure yet", `{"x": 1}`)
	cascade := &config.CascadeConfig{
		CascadeID: "until",
		Phases: []config.PhaseConfig{
			{
				Name:         "produce",
				Instructions: "Produce a JSON object.",
				Rules: config.RulesConfig{
					MaxTurns:    2,
					MaxAttempts: 3,
					LoopUntil:   "has_json",
				},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"until": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "until", SessionID: "sess-until", Input: "emit json",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, `{"x": 1}`, result.Output)

	// One attempt, two turns, and no failure note survives the success
	require.Len(t, client.inputs(), 2)
	_, stale := result.State["last_validation_error"]
	assert.False(t, stale)

	second := client.inputs()[1]
	last := second.History[len(second.History)-1]
	assert.Equal(t, agent.RoleUser, last.Role)
	assert.Contains(t, last.Content, "not yet acceptable")
}

func TestRun_OutputExtraction(t *testing.T) {
	client := scripted("The result is <answer>7</answer>, as computed.")
	cascade := &config.CascadeConfig{
		CascadeID: "extract",
		Phases: []config.PhaseConfig{
			{
				Name:         "compute",
				Instructions: "Compute the answer.",
				OutputExtraction: &config.OutputExtractionConfig{
					Pattern:  `<answer>(\d+)</answer>`,
					StoreAs:  "answer",
					Required: true,
				},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"extract": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "extract", SessionID: "sess-extract", Input: "compute",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "7", result.State["answer"])
}

func TestRun_RequiredExtractionMissingFailsPhase(t *testing.T) {
	client := scripted("no markers here")
	cascade := &config.CascadeConfig{
		CascadeID: "extract",
		Phases: []config.PhaseConfig{
			{
				Name:         "compute",
				Instructions: "Compute the answer.",
				OutputExtraction: &config.OutputExtractionConfig{
					Pattern:  `<answer>(\d+)</answer>`,
					StoreAs:  "answer",
					Required: true,
				},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"extract": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "extract", SessionID: "sess-extract-miss", Input: "compute",
	})
	require.NoError(t, err)
	assert.Equal(t, "error", result.Status)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, ErrTypeOutputExtraction, result.Errors[len(result.Errors)-1].Type)
}

// respondToNextCheckpoint polls for the session's next pending checkpoint and
// posts the given response.
func respondToNextCheckpoint(h *testHarness, sessionID string, response map[string]any) {
	go func() {
		ctx := context.Background()
		for i := 0; i < 500; i++ {
			pending, err := h.cps.List(ctx, checkpoint.Filter{
				SessionID: sessionID,
				Status:    checkpoint.StatusPending,
			})
			if err == nil && len(pending) > 0 {
				_, _ = h.cps.PostResponse(ctx, pending[0].ID, response)
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}()
}

func TestRun_DecisionPointRoutesSelfWithFeedback(t *testing.T) {
	client := scripted(
		"Draft ready.\n<decision>{\"question\": \"proceed?\", \"options\": ["+
			"{\"id\": \"yes\", \"action\": \"next\"}, {\"id\": \"no\", \"action\": \"self\"}]}</decision>",
		"all good",
	)
	cascade := &config.CascadeConfig{
		CascadeID: "decide",
		Phases: []config.PhaseConfig{
			{
				Name:           "decide",
				Instructions:   "Draft and decide.",
				DecisionPoints: &config.DecisionPointsConfig{Enabled: true},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"decide": cascade}, withCheckpoints())

	respondToNextCheckpoint(h, "sess-decide", map[string]any{
		"decision_choice": "no",
		"decision_custom": "try again",
	})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "decide", SessionID: "sess-decide", Input: "start",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "all good", result.Output)
	assert.Equal(t, "try again", result.State["_decision_feedback"])
	assert.Len(t, client.inputs(), 2)
}

func TestDecisionAction(t *testing.T) {
	spec := map[string]any{
		"question": "proceed?",
		"options": []any{
			map[string]any{"id": "yes", "action": "next"},
			map[string]any{"id": "no", "action": "self"},
			map[string]any{"id": "escalate", "action": "review"},
		},
	}

	assert.Equal(t, "next", decisionAction(spec, "yes"))
	assert.Equal(t, "self", decisionAction(spec, "no"))
	assert.Equal(t, "review", decisionAction(spec, "escalate"))
	// Unknown ids and option-less blocks pass the choice through as-is
	assert.Equal(t, "self", decisionAction(spec, "self"))
	assert.Equal(t, "next", decisionAction(map[string]any{"question": "?"}, "next"))
}

func TestRun_HumanInputRejectionFailsPhase(t *testing.T) {
	client := scripted("here is the draft")
	cascade := &config.CascadeConfig{
		CascadeID: "review",
		Phases: []config.PhaseConfig{
			{
				Name:         "draft",
				Instructions: "Write the draft.",
				HumanInput:   &config.HumanInputConfig{Prompt: "Review the draft."},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"review": cascade}, withCheckpoints())

	respondToNextCheckpoint(h, "sess-review", map[string]any{"approved": false})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "review", SessionID: "sess-review", Input: "write",
	})
	require.NoError(t, err)
	assert.Equal(t, "error", result.Status)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, ErrTypeBlockedByWard, result.Errors[len(result.Errors)-1].Type)
}

func TestRun_HumanInputFeedbackLandsInState(t *testing.T) {
	client := scripted("here is the draft")
	cascade := &config.CascadeConfig{
		CascadeID: "review",
		Phases: []config.PhaseConfig{
			{
				Name:         "draft",
				Instructions: "Write the draft.",
				HumanInput:   &config.HumanInputConfig{Prompt: "Review the draft."},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"review": cascade}, withCheckpoints())

	respondToNextCheckpoint(h, "sess-review-ok", map[string]any{
		"approved": true,
		"feedback": "ship it",
	})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "review", SessionID: "sess-review-ok", Input: "write",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "ship it", result.State["human_feedback"])
}

func TestRun_SubCascadeOutputInState(t *testing.T) {
	client := &fakeClient{}
	client.fn = func(in agent.CallInput) (*agent.Response, error) {
		if strings.Contains(in.SystemPrompt, "Summarize the findings") {
			return &agent.Response{Content: "summary ready"}, nil
		}
		return &agent.Response{Content: "main output"}, nil
	}
	main := &config.CascadeConfig{
		CascadeID: "main",
		Phases: []config.PhaseConfig{
			{
				Name:         "work",
				Instructions: "Do the work.",
				SubCascades:  []config.SubCascadeConfig{{Cascade: "summarize", ContextOut: "summary"}},
			},
		},
	}
	sub := &config.CascadeConfig{
		CascadeID: "summarize",
		Phases:    []config.PhaseConfig{{Name: "sum", Instructions: "Summarize the findings."}},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"main": main, "summarize": sub})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "main", SessionID: "sess-sub", Input: "go",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "summary ready", result.State["summary"])

	// The child ran under its own derived session
	childRows := h.rows(t, unifiedlog.Filter{SessionID: "sess-sub_summarize"})
	assert.NotEmpty(t, childRows)
}

func TestRun_EmptyResponseExhaustsAttempts(t *testing.T) {
	client := &fakeClient{}
	client.fn = func(agent.CallInput) (*agent.Response, error) {
		return &agent.Response{Content: ""}, nil
	}
	cascade := &config.CascadeConfig{
		CascadeID: "empty",
		Phases: []config.PhaseConfig{
			{Name: "p", Instructions: "Say something.", Rules: config.RulesConfig{MaxAttempts: 2}},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"empty": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "empty", SessionID: "sess-empty", Input: "go",
	})
	require.NoError(t, err)
	assert.Equal(t, "error", result.Status)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, ErrTypeLoopUntil, result.Errors[len(result.Errors)-1].Type)
	assert.Len(t, client.inputs(), 2)
}
