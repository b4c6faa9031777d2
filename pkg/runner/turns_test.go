package runner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/agent"
)

func turnPairs(n int) []agent.Message {
	var msgs []agent.Message
	for i := 1; i <= n; i++ {
		msgs = append(msgs,
			agent.Message{Role: agent.RoleUser, Content: fmt.Sprintf("u%d", i)},
			agent.Message{Role: agent.RoleAssistant, Content: fmt.Sprintf("a%d", i)},
		)
	}
	return msgs
}

func imageMsg(label string) agent.Message {
	return agent.Message{
		Role: agent.RoleUser,
		Parts: []agent.ContentPart{
			{Type: "text", Text: label},
			{Type: "image_url", ImageURL: "data:image/png;base64,AAAA"},
		},
	}
}

func TestCullHistory_UnderLimitUnchanged(t *testing.T) {
	msgs := turnPairs(3)
	out := cullHistory(msgs, 6, 2)
	assert.Equal(t, msgs, out)
}

func TestCullHistory_KeepsRecentTurnsAndSystem(t *testing.T) {
	msgs := append([]agent.Message{{Role: agent.RoleSystem, Content: "sys"}}, turnPairs(5)...)
	out := cullHistory(msgs, 2, 2)

	require.Len(t, out, 5)
	assert.Equal(t, "sys", out[0].Content)
	assert.Equal(t, "u4", out[1].Content)
	assert.Equal(t, "a4", out[2].Content)
	assert.Equal(t, "u5", out[3].Content)
	assert.Equal(t, "a5", out[4].Content)
}

func TestCullHistory_DoesNotMutateInput(t *testing.T) {
	msgs := turnPairs(5)
	_ = cullHistory(msgs, 2, 2)
	assert.Equal(t, "u1", msgs[0].Content)
	assert.Len(t, msgs, 10)
}

func TestCullHistory_StripsOldBase64Images(t *testing.T) {
	msgs := []agent.Message{
		imageMsg("oldest"),
		{Role: agent.RoleAssistant, Content: "a1"},
		imageMsg("middle"),
		{Role: agent.RoleAssistant, Content: "a2"},
		imageMsg("newest"),
	}
	out := cullHistory(msgs, 6, 1)
	require.Len(t, out, 5)

	// Only the newest image payload survives; the text parts always do
	assert.False(t, out[0].HasImages())
	assert.Equal(t, "oldest", out[0].Parts[0].Text)
	assert.False(t, out[2].HasImages())
	assert.True(t, out[4].HasImages())
}

func TestCullHistory_NonDataImagesKept(t *testing.T) {
	msgs := []agent.Message{
		{Role: agent.RoleUser, Parts: []agent.ContentPart{
			{Type: "image_url", ImageURL: "https://example.com/a.png"},
		}},
		imageMsg("inline"),
	}
	out := cullHistory(msgs, 6, 1)
	// Remote references are not base64 payloads and are never stripped
	assert.True(t, out[0].HasImages())
	assert.True(t, out[1].HasImages())
}
