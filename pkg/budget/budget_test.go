package budget

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/config"
)

func TestEstimateText(t *testing.T) {
	assert.Equal(t, 0, EstimateText(""))
	assert.Equal(t, 1, EstimateText("abc"))
	assert.Equal(t, 1, EstimateText("abcd"))
	assert.Equal(t, 2, EstimateText("abcde"))
	assert.Equal(t, 25, EstimateText(strings.Repeat("x", 100)))
}

func TestEstimate(t *testing.T) {
	messages := []agent.Message{
		{Role: agent.RoleUser, Content: strings.Repeat("a", 40)}, // 10 + 4
		{Role: agent.RoleAssistant, Content: strings.Repeat("b", 40)},
	}
	tools := []agent.ToolSchema{
		{Name: "search", Description: strings.Repeat("d", 40)},
	}
	system := strings.Repeat("s", 40) // 10

	got := Estimate(messages, tools, system)
	// system(10) + 2*(4+10) + tool(24 + 2 + 10)
	assert.Equal(t, 10+28+36, got)
}

func TestBudget_Check(t *testing.T) {
	cfg := &config.TokenBudgetConfig{MaxTotal: 120, ReserveForOutput: 20}
	b := New(cfg, nil, "m")

	under := b.Check([]agent.Message{{Role: agent.RoleUser, Content: strings.Repeat("a", 40)}}, nil, "")
	assert.False(t, under.OverBudget)
	assert.False(t, under.Warning)
	assert.Equal(t, 100, under.Limit)

	warning := b.Check([]agent.Message{{Role: agent.RoleUser, Content: strings.Repeat("a", 330)}}, nil, "")
	assert.False(t, warning.OverBudget)
	assert.True(t, warning.Warning)

	over := b.Check([]agent.Message{{Role: agent.RoleUser, Content: strings.Repeat("a", 500)}}, nil, "")
	assert.True(t, over.OverBudget)
}

func TestBudget_EnforceSlidingWindow(t *testing.T) {
	cfg := &config.TokenBudgetConfig{MaxTotal: 60, Strategy: config.BudgetSlidingWindow}
	b := New(cfg, nil, "m")

	messages := []agent.Message{
		{Role: agent.RoleSystem, Content: strings.Repeat("s", 40)},
		{Role: agent.RoleUser, Content: strings.Repeat("a", 80)},
		{Role: agent.RoleAssistant, Content: strings.Repeat("b", 80)},
		{Role: agent.RoleUser, Content: strings.Repeat("c", 80)},
	}

	out, check, err := b.Enforce(context.Background(), messages, nil, "")
	require.NoError(t, err)
	assert.True(t, check.OverBudget)
	assert.Less(t, len(out), len(messages))

	// System message survives sliding_window
	assert.Equal(t, agent.RoleSystem, out[0].Role)
	// Newest message survives
	assert.Equal(t, strings.Repeat("c", 80), out[len(out)-1].Content)
}

func TestBudget_EnforcePruneOldestDropsSystem(t *testing.T) {
	cfg := &config.TokenBudgetConfig{MaxTotal: 30, Strategy: config.BudgetPruneOldest}
	b := New(cfg, nil, "m")

	messages := []agent.Message{
		{Role: agent.RoleSystem, Content: strings.Repeat("s", 80)},
		{Role: agent.RoleUser, Content: strings.Repeat("a", 80)},
	}

	out, _, err := b.Enforce(context.Background(), messages, nil, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, agent.RoleUser, out[0].Role)
}

func TestBudget_EnforceFail(t *testing.T) {
	cfg := &config.TokenBudgetConfig{MaxTotal: 10, Strategy: config.BudgetFail}
	b := New(cfg, nil, "m")

	_, _, err := b.Enforce(context.Background(), []agent.Message{
		{Role: agent.RoleUser, Content: strings.Repeat("a", 200)},
	}, nil, "")
	assert.ErrorIs(t, err, ErrBudgetExceeded)
}

type fakeSummarizer struct {
	calls int
	seen  string
}

func (f *fakeSummarizer) Run(_ context.Context, input agent.CallInput) (*agent.Response, error) {
	f.calls++
	f.seen = input.UserPrompt
	return &agent.Response{Content: "summary of earlier turns"}, nil
}

func TestBudget_EnforceSummarize(t *testing.T) {
	cfg := &config.TokenBudgetConfig{MaxTotal: 60, Strategy: config.BudgetSummarize}
	summarizer := &fakeSummarizer{}
	b := New(cfg, summarizer, "m")

	messages := []agent.Message{
		{Role: agent.RoleUser, Content: strings.Repeat("a", 100)},
		{Role: agent.RoleAssistant, Content: strings.Repeat("b", 100)},
		{Role: agent.RoleUser, Content: strings.Repeat("c", 80)},
	}

	out, _, err := b.Enforce(context.Background(), messages, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 1, summarizer.calls)
	assert.Contains(t, summarizer.seen, strings.Repeat("a", 100))

	// Dropped prefix replaced by one summary message
	require.GreaterOrEqual(t, len(out), 2)
	assert.Contains(t, out[0].Content, "summary of earlier turns")
	assert.Equal(t, strings.Repeat("c", 80), out[len(out)-1].Content)
}

func TestBudget_EnforceNoOpUnderBudget(t *testing.T) {
	cfg := &config.TokenBudgetConfig{MaxTotal: 10000}
	b := New(cfg, nil, "m")

	messages := []agent.Message{{Role: agent.RoleUser, Content: "short"}}
	out, check, err := b.Enforce(context.Background(), messages, nil, "")
	require.NoError(t, err)
	assert.False(t, check.OverBudget)
	assert.Equal(t, messages, out)
}
