package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/config"
)

func TestMutationApply(t *testing.T) {
	t.Run("not applied passes through", func(t *testing.T) {
		m := Mutation{}
		assert.Equal(t, "base", m.Apply("base"))
	})

	t.Run("augment prepends", func(t *testing.T) {
		m := Mutation{Applied: true, Mode: config.MutationModeAugment, Template: "Think first."}
		assert.Equal(t, "Think first.\n\nbase", m.Apply("base"))
	})

	t.Run("approach appends", func(t *testing.T) {
		m := Mutation{Applied: true, Mode: config.MutationModeApproach, Template: "Work backwards."}
		assert.Equal(t, "base\n\nWork backwards.", m.Apply("base"))
	})

	t.Run("rewrite replaces", func(t *testing.T) {
		m := Mutation{Applied: true, Mode: config.MutationModeRewrite, Rewritten: "entirely new"}
		assert.Equal(t, "entirely new", m.Apply("base"))
	})

	t.Run("rewrite without replacement keeps original", func(t *testing.T) {
		m := Mutation{Applied: true, Mode: config.MutationModeRewrite}
		assert.Equal(t, "base", m.Apply("base"))
	})
}

func TestMutatorPrepare_TextModes(t *testing.T) {
	m := NewMutator(nil, "", nil)
	sc := &config.SoundingsConfig{
		Factor:       4,
		Mutate:       true,
		MutationMode: config.MutationModeApproach,
		Mutations:    []string{"one", "two"},
	}

	t.Run("index zero is the baseline", func(t *testing.T) {
		mut, err := m.Prepare(context.Background(), sc, "prompt", "hash", 0)
		require.NoError(t, err)
		assert.False(t, mut.Applied)
	})

	t.Run("templates cycle", func(t *testing.T) {
		for i, want := range map[int]string{1: "one", 2: "two", 3: "one"} {
			mut, err := m.Prepare(context.Background(), sc, "prompt", "hash", i)
			require.NoError(t, err)
			assert.True(t, mut.Applied)
			assert.Equal(t, want, mut.Template)
		}
	})

	t.Run("mutate off yields baseline", func(t *testing.T) {
		off := &config.SoundingsConfig{Factor: 2, MutationMode: config.MutationModeApproach}
		mut, err := m.Prepare(context.Background(), off, "prompt", "hash", 1)
		require.NoError(t, err)
		assert.False(t, mut.Applied)
	})

	t.Run("builtin bank backs an empty list", func(t *testing.T) {
		bare := &config.SoundingsConfig{Factor: 2, Mutate: true, MutationMode: config.MutationModeApproach}
		mut, err := m.Prepare(context.Background(), bare, "prompt", "hash", 1)
		require.NoError(t, err)
		assert.True(t, mut.Applied)
		bank := config.GetBuiltinConfig().MutationBanks[config.MutationModeApproach]
		assert.Equal(t, bank[0], mut.Template)
	})
}

func TestMutatorPrepare_RewriteCallsRewriter(t *testing.T) {
	client := &fakeClient{}
	client.fn = func(in agent.CallInput) (*agent.Response, error) {
		return &agent.Response{Content: "  rewritten prompt  "}, nil
	}
	m := NewMutator(client, "rewrite/model", nil)
	sc := &config.SoundingsConfig{
		Factor:       2,
		Mutate:       true,
		MutationMode: config.MutationModeRewriteFree,
	}

	mut, err := m.Prepare(context.Background(), sc, "original prompt", "hash", 1)
	require.NoError(t, err)
	assert.True(t, mut.Applied)
	assert.Equal(t, "rewritten prompt", mut.Rewritten)

	calls := client.inputs()
	require.Len(t, calls, 1)
	assert.Equal(t, "rewrite/model", calls[0].Model)
	assert.Contains(t, calls[0].UserPrompt, "Original prompt:\noriginal prompt")
	assert.Contains(t, calls[0].UserPrompt, "Rewrite directive:")
}

func TestMutatorPrepare_RewriteEmptyResponseFails(t *testing.T) {
	client := &fakeClient{}
	client.fn = func(agent.CallInput) (*agent.Response, error) {
		return &agent.Response{Content: "   "}, nil
	}
	m := NewMutator(client, "rewrite/model", nil)
	sc := &config.SoundingsConfig{
		Factor:       2,
		Mutate:       true,
		MutationMode: config.MutationModeRewriteFree,
	}

	_, err := m.Prepare(context.Background(), sc, "original prompt", "hash", 1)
	assert.Error(t, err)
}
