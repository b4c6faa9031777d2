package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/config"
)

func recordedBuilder() *ContextBuilder {
	b := NewContextBuilder("dig here")
	b.Record("gather", &PhaseArtifacts{
		Output: "ore found",
		Messages: []agent.Message{
			{Role: agent.RoleUser, Content: "find ore"},
			{Role: agent.RoleAssistant, Content: "searching"},
			{Role: agent.RoleUser, Content: "keep going"},
			{Role: agent.RoleAssistant, Content: "ore found"},
		},
		State: map[string]any{"depth": 30},
	})
	b.Record("assay", &PhaseArtifacts{Output: "high grade"})
	return b
}

func TestContextBuilder_NilConfigIsCleanSlate(t *testing.T) {
	msgs, err := recordedBuilder().Build(nil)
	require.NoError(t, err)
	assert.Nil(t, msgs)
}

func TestContextBuilder_IncludeInput(t *testing.T) {
	msgs, err := recordedBuilder().Build(&config.ContextConfig{IncludeInput: true})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Session input:\ndig here", msgs[0].Content)
}

func TestContextBuilder_LiteralPhaseOutput(t *testing.T) {
	cfg := &config.ContextConfig{
		From: []config.ContextSourceConfig{{Phase: "gather"}},
	}
	msgs, err := recordedBuilder().Build(cfg)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "[Output from phase]:\nore found", msgs[0].Content)
}

func TestContextBuilder_UnknownPhaseErrors(t *testing.T) {
	cfg := &config.ContextConfig{
		From: []config.ContextSourceConfig{{Phase: "refine"}},
	}
	_, err := recordedBuilder().Build(cfg)
	assert.Error(t, err)
}

func TestContextBuilder_AllWithExclude(t *testing.T) {
	cfg := &config.ContextConfig{
		From: []config.ContextSourceConfig{{Phase: "all", Exclude: []string{"assay"}}},
	}
	msgs, err := recordedBuilder().Build(cfg)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Content, "phase gather")
}

func TestContextBuilder_PreviousKeyword(t *testing.T) {
	cfg := &config.ContextConfig{
		From: []config.ContextSourceConfig{{Phase: "previous"}},
	}
	msgs, err := recordedBuilder().Build(cfg)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "[Output from phase]:\nhigh grade", msgs[0].Content)
}

func TestContextBuilder_IncludeState(t *testing.T) {
	cfg := &config.ContextConfig{
		From: []config.ContextSourceConfig{{
			Phase:   "gather",
			Include: []config.ContextInclude{config.ContextIncludeState},
		}},
	}
	msgs, err := recordedBuilder().Build(cfg)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Content, "Session state after phase gather")
	assert.Contains(t, msgs[0].Content, `"depth": 30`)
}

func TestContextBuilder_RerecordKeepsPosition(t *testing.T) {
	b := recordedBuilder()
	b.Record("gather", &PhaseArtifacts{Output: "re-run output"})

	cfg := &config.ContextConfig{
		From: []config.ContextSourceConfig{{Phase: "previous"}},
	}
	msgs, err := b.Build(cfg)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	// gather keeps its original slot; assay is still the most recent phase
	assert.Contains(t, msgs[0].Content, "phase assay")
}

func TestFilterMessages(t *testing.T) {
	msgs := []agent.Message{
		{Role: agent.RoleUser, Content: "u1"},
		{Role: agent.RoleAssistant, Content: "a1"},
		{Role: agent.RoleUser, Content: "u2"},
		{Role: agent.RoleAssistant, Content: "a2"},
	}

	t.Run("default replays everything", func(t *testing.T) {
		out := filterMessages(msgs, "")
		assert.Len(t, out, 4)
	})

	t.Run("assistant only", func(t *testing.T) {
		out := filterMessages(msgs, config.MessageFilterAssistantOnly)
		require.Len(t, out, 2)
		assert.Equal(t, "a1", out[0].Content)
		assert.Equal(t, "a2", out[1].Content)
	})

	t.Run("last turn", func(t *testing.T) {
		out := filterMessages(msgs, config.MessageFilterLastTurn)
		require.Len(t, out, 2)
		assert.Equal(t, "u2", out[0].Content)
		assert.Equal(t, "a2", out[1].Content)
	})
}
