package runner

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/config"
	"github.com/windlassio/windlass/pkg/unifiedlog"
)

func TestRunSoundings_EvaluatorPicksWinner(t *testing.T) {
	short := strings.Repeat("a", 10)
	long := strings.Repeat("b", 30)
	mid := strings.Repeat("c", 20)

	client := &fakeClient{}
	client.fn = func(in agent.CallInput) (*agent.Response, error) {
		switch {
		case strings.Contains(in.SystemPrompt, "pick the longest"):
			return &agent.Response{Content: "attempt 2"}, nil
		case strings.Contains(in.SystemPrompt, "concise style"):
			return &agent.Response{Content: long}, nil
		case strings.Contains(in.SystemPrompt, "elaborate style"):
			return &agent.Response{Content: mid}, nil
		default:
			return &agent.Response{Content: short}, nil
		}
	}

	cascade := &config.CascadeConfig{
		CascadeID: "fanout",
		Phases: []config.PhaseConfig{
			{
				Name:         "brainstorm",
				Instructions: "Propose a plan.",
				Soundings: &config.SoundingsConfig{
					Factor:                3,
					Mutate:                true,
					MutationMode:          config.MutationModeApproach,
					Mutations:             []string{"Prefer a concise style.", "Prefer an elaborate style."},
					EvaluatorInstructions: "pick the longest answer",
				},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"fanout": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "fanout", SessionID: "sess-sound", Input: "plan the dig",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, long, result.Output)
	assert.Equal(t, long, result.State["output_brainstorm"])

	// 3 attempts + 1 evaluator call
	assert.Len(t, client.inputs(), 4)

	// Winner rows carry the selected sounding index
	winners := h.rows(t, unifiedlog.Filter{SessionID: "sess-sound", IsWinner: unifiedlog.Ptr(true)})
	require.NotEmpty(t, winners)
	for _, row := range winners {
		require.NotNil(t, row.SoundingIndex)
		assert.Equal(t, 1, *row.SoundingIndex)
	}
}

func TestRunSoundings_ParetoBalanced(t *testing.T) {
	client := &fakeClient{}
	client.fn = func(in agent.CallInput) (*agent.Response, error) {
		switch {
		case strings.Contains(in.SystemPrompt, "Score every attempt"):
			return &agent.Response{Content: "1: 70\n2: 90\n3: 85"}, nil
		case strings.Contains(in.SystemPrompt, "alpha approach"):
			return &agent.Response{Content: "plan-medium", Cost: unifiedlog.Ptr(0.05)}, nil
		case strings.Contains(in.SystemPrompt, "beta approach"):
			return &agent.Response{Content: "plan-best", Cost: unifiedlog.Ptr(0.02)}, nil
		default:
			return &agent.Response{Content: "plan-cheap", Cost: unifiedlog.Ptr(0.04)}, nil
		}
	}

	cascade := &config.CascadeConfig{
		CascadeID: "pareto",
		Phases: []config.PhaseConfig{
			{
				Name:         "plan",
				Instructions: "Draft a mining plan.",
				Soundings: &config.SoundingsConfig{
					Factor:         3,
					Mutate:         true,
					MutationMode:   config.MutationModeApproach,
					Mutations:      []string{"Use the alpha approach.", "Use the beta approach."},
					ParetoFrontier: &config.ParetoConfig{Enabled: true},
				},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"pareto": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "pareto", SessionID: "sess-pareto", Input: "plan",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)

	// Quality/cost ratios: 70/0.04, 90/0.05, 85/0.02; the last dominates
	assert.Equal(t, "plan-best", result.Output)

	selections := h.rows(t, unifiedlog.Filter{SessionID: "sess-pareto", NodeType: unifiedlog.NodeTypeEvaluation})
	require.NotEmpty(t, selections)
	assert.Equal(t, "sounding 2 selected (pareto_balanced)", rowContent(selections[len(selections)-1]))

	// Attempt 0 (70, $0.04) is dominated by attempt 2 (85, $0.02); the other
	// two sit on the frontier
	var ranks []string
	for _, row := range selections {
		if strings.Contains(rowContent(row), "pareto_rank=") {
			ranks = append(ranks, rowContent(row))
		}
	}
	require.Len(t, ranks, 3)
	assert.Contains(t, ranks, "sounding 0 pareto_rank=2")
	assert.Contains(t, ranks, "sounding 1 pareto_rank=1")
	assert.Contains(t, ranks, "sounding 2 pareto_rank=1")
}

func TestRunSoundings_AggregateMode(t *testing.T) {
	var n atomic.Int32
	client := &fakeClient{}
	client.fn = func(in agent.CallInput) (*agent.Response, error) {
		if strings.Contains(in.SystemPrompt, "Combine the survey attempts") {
			return &agent.Response{Content: "combined report"}, nil
		}
		if n.Add(1) == 1 {
			return &agent.Response{Content: "north survey"}, nil
		}
		return &agent.Response{Content: "south survey"}, nil
	}

	cascade := &config.CascadeConfig{
		CascadeID: "agg",
		Phases: []config.PhaseConfig{
			{
				Name:         "survey",
				Instructions: "Survey the site.",
				Soundings: &config.SoundingsConfig{
					Factor:                 2,
					Mode:                   config.SoundingModeAggregate,
					AggregatorInstructions: "Combine the survey attempts.",
				},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"agg": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "agg", SessionID: "sess-agg", Input: "survey",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "combined report", result.Output)

	// Aggregate mode marks every contributor a winner
	winners := h.rows(t, unifiedlog.Filter{SessionID: "sess-agg", IsWinner: unifiedlog.Ptr(true)})
	indexes := map[int]bool{}
	for _, row := range winners {
		if row.SoundingIndex != nil {
			indexes[*row.SoundingIndex] = true
		}
	}
	assert.True(t, indexes[0])
	assert.True(t, indexes[1])
}

func TestRunSoundings_HumanEvalTimeoutFallsBackToLLM(t *testing.T) {
	var n atomic.Int32
	client := &fakeClient{}
	client.fn = func(in agent.CallInput) (*agent.Response, error) {
		if strings.Contains(in.SystemPrompt, "best fulfils the original task") {
			return &agent.Response{Content: "1"}, nil
		}
		if n.Add(1) == 1 {
			return &agent.Response{Content: "draft-A"}, nil
		}
		return &agent.Response{Content: "draft-B"}, nil
	}

	cascade := &config.CascadeConfig{
		CascadeID: "humaneval",
		Phases: []config.PhaseConfig{
			{
				Name:         "draft",
				Instructions: "Write the draft.",
				Soundings: &config.SoundingsConfig{
					Factor:         2,
					Evaluator:      config.EvaluatorHuman,
					TimeoutSeconds: 1,
					OnTimeout:      config.TimeoutLLMFallback,
				},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"humaneval": cascade}, withCheckpoints())

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "humaneval", SessionID: "sess-heval", Input: "write",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Contains(t, []string{"draft-A", "draft-B"}, result.Output)

	// The timeout is on the record, and the fallback made an LLM selection
	timeouts := 0
	for _, row := range h.rows(t, unifiedlog.Filter{SessionID: "sess-heval", NodeType: unifiedlog.NodeTypeCheckpoint}) {
		if rowContent(row) == "checkpoint_timeout" {
			timeouts++
		}
	}
	assert.Equal(t, 1, timeouts)

	llmPick := false
	for _, row := range h.rows(t, unifiedlog.Filter{SessionID: "sess-heval", NodeType: unifiedlog.NodeTypeEvaluation}) {
		if strings.HasSuffix(rowContent(row), "(llm)") {
			llmPick = true
		}
	}
	assert.True(t, llmPick)
}

func TestRunSoundings_HumanEvalSelection(t *testing.T) {
	var n atomic.Int32
	client := &fakeClient{}
	client.fn = func(agent.CallInput) (*agent.Response, error) {
		if n.Add(1) == 1 {
			return &agent.Response{Content: "draft-A"}, nil
		}
		return &agent.Response{Content: "draft-B"}, nil
	}

	cascade := &config.CascadeConfig{
		CascadeID: "humanpick",
		Phases: []config.PhaseConfig{
			{
				Name:         "draft",
				Instructions: "Write the draft.",
				Soundings: &config.SoundingsConfig{
					Factor:    2,
					Evaluator: config.EvaluatorHuman,
				},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"humanpick": cascade}, withCheckpoints())

	respondToNextCheckpoint(h, "sess-hpick", map[string]any{"selection": 2})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "humanpick", SessionID: "sess-hpick", Input: "write",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Contains(t, []string{"draft-A", "draft-B"}, result.Output)

	humanPick := false
	for _, row := range h.rows(t, unifiedlog.Filter{SessionID: "sess-hpick", NodeType: unifiedlog.NodeTypeEvaluation}) {
		if strings.HasSuffix(rowContent(row), "(human)") {
			humanPick = true
		}
	}
	assert.True(t, humanPick)
}

func TestRunSoundings_PreEvalValidatorAnnotates(t *testing.T) {
	client := &fakeClient{}
	client.fn = func(in agent.CallInput) (*agent.Response, error) {
		switch {
		case strings.Contains(in.SystemPrompt, "best fulfils the original task"):
			// The evaluator sees the validation verdicts alongside the outputs
			for _, m := range in.History {
				if strings.Contains(m.Text(), `{"ok": true}`) && strings.Contains(m.Text(), "validation:") {
					return &agent.Response{Content: "1"}, nil
				}
			}
			return &agent.Response{Content: "1"}, nil
		case strings.Contains(in.SystemPrompt, "structured style"):
			return &agent.Response{Content: `{"ok": true}`}, nil
		default:
			return &agent.Response{Content: "prose only"}, nil
		}
	}

	cascade := &config.CascadeConfig{
		CascadeID: "preval",
		Phases: []config.PhaseConfig{
			{
				Name:         "emit",
				Instructions: "Emit the result.",
				Soundings: &config.SoundingsConfig{
					Factor:       2,
					Mutate:       true,
					MutationMode: config.MutationModeApproach,
					Mutations:    []string{"Use a structured style."},
					Validator:    "has_json",
				},
			},
		},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"preval": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "preval", SessionID: "sess-preval", Input: "emit",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)

	// Only the JSON attempt survives validation; no evaluator call is needed
	assert.Equal(t, `{"ok": true}`, result.Output)
	assert.Len(t, client.inputs(), 2)
}

func TestRunCascadeSoundings_WinnerAdopted(t *testing.T) {
	var n atomic.Int32
	client := &fakeClient{}
	client.fn = func(in agent.CallInput) (*agent.Response, error) {
		if strings.Contains(in.SystemPrompt, "best fulfils the original task") {
			return &agent.Response{Content: "2"}, nil
		}
		if n.Add(1) == 1 {
			return &agent.Response{Content: "route-one"}, nil
		}
		return &agent.Response{Content: "route-two"}, nil
	}

	cascade := &config.CascadeConfig{
		CascadeID: "forked",
		Phases:    []config.PhaseConfig{{Name: "solve", Instructions: "Solve it."}},
		Soundings: &config.SoundingsConfig{Factor: 2},
	}
	h := newTestRunner(t, client, map[string]*config.CascadeConfig{"forked": cascade})

	result, err := h.runner.Run(context.Background(), RunRequest{
		CascadeID: "forked", SessionID: "sess-fork", Input: "solve",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
	assert.Contains(t, []string{"route-one", "route-two"}, result.Output)

	// Child cascades ran under derived sessions; the parent records the pick
	assert.NotEmpty(t, h.rows(t, unifiedlog.Filter{SessionID: "sess-fork_sounding_0"}))
	assert.NotEmpty(t, h.rows(t, unifiedlog.Filter{SessionID: "sess-fork_sounding_1"}))

	picked := false
	for _, row := range h.rows(t, unifiedlog.Filter{SessionID: "sess-fork", NodeType: unifiedlog.NodeTypeSounding}) {
		if strings.Contains(rowContent(row), "cascade sounding") {
			picked = true
		}
	}
	assert.True(t, picked)
}

func TestAssignModels(t *testing.T) {
	cascade := &config.CascadeConfig{
		CascadeID: "m",
		Phases:    []config.PhaseConfig{{Name: "p", Instructions: "x"}},
	}
	h := newTestRunner(t, scripted("x"), map[string]*config.CascadeConfig{"m": cascade})
	c := h.runner.newCascadeRun(cascade, "sess-models", "", "", 0)

	t.Run("default model fills the factor", func(t *testing.T) {
		models := c.assignModels(&config.SoundingsConfig{Factor: 3}, &config.PhaseConfig{})
		assert.Equal(t, []string{"test/model", "test/model", "test/model"}, models)
	})

	t.Run("phase model wins over default", func(t *testing.T) {
		models := c.assignModels(&config.SoundingsConfig{Factor: 2}, &config.PhaseConfig{Model: "phase/model"})
		assert.Equal(t, []string{"phase/model", "phase/model"}, models)
	})

	t.Run("list round-robins", func(t *testing.T) {
		sc := &config.SoundingsConfig{
			Factor: 3,
			Models: config.ModelAssignment{List: []string{"m1", "m2"}},
		}
		models := c.assignModels(sc, &config.PhaseConfig{})
		assert.Equal(t, []string{"m1", "m2", "m1"}, models)
	})

	t.Run("weights expand and override the factor", func(t *testing.T) {
		sc := &config.SoundingsConfig{
			Factor: 2,
			Models: config.ModelAssignment{Weights: map[string]int{"m1": 2, "m2": 1}},
		}
		models := c.assignModels(sc, &config.PhaseConfig{})
		counts := map[string]int{}
		for _, m := range models {
			counts[m]++
		}
		assert.Equal(t, map[string]int{"m1": 2, "m2": 1}, counts)
	})
}
