package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/config"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	err := r.Register(&ToolDescriptor{
		Name:        "search_index",
		Description: "Search the runbook index",
		Parameters:  map[string]any{"type": "object"},
		Handler: func(_ context.Context, args map[string]any) (any, error) {
			return "result for " + args["query"].(string), nil
		},
	})
	require.NoError(t, err)

	d := r.Get("search_index")
	require.NotNil(t, d)
	assert.Equal(t, ToolTypeFunction, d.Type)

	out, err := d.Handler(context.Background(), map[string]any{"query": "pods"})
	require.NoError(t, err)
	assert.Equal(t, "result for pods", out)

	assert.Nil(t, r.Get("missing"))
}

func TestRegistry_RejectsDuplicatesAndInvalid(t *testing.T) {
	r := NewRegistry()
	handler := func(_ context.Context, _ map[string]any) (any, error) { return nil, nil }

	require.NoError(t, r.Register(&ToolDescriptor{Name: "a", Handler: handler}))
	assert.Error(t, r.Register(&ToolDescriptor{Name: "a", Handler: handler}))
	assert.Error(t, r.Register(&ToolDescriptor{Handler: handler}))
	assert.Error(t, r.Register(&ToolDescriptor{Name: "no_handler"}))

	// Cascade tools carry a path instead of a handler
	require.NoError(t, r.Register(&ToolDescriptor{
		Name: "triage", Type: ToolTypeCascade, CascadePath: "cascades/triage.yaml",
	}))
}

func TestRegistry_Manifest(t *testing.T) {
	r := NewRegistry()
	handler := func(_ context.Context, _ map[string]any) (any, error) { return nil, nil }
	require.NoError(t, r.Register(&ToolDescriptor{
		Name: "b", Description: "second", Handler: handler,
	}))
	require.NoError(t, r.Register(&ToolDescriptor{
		Name: "a", Description: "first", Handler: handler,
		Parameters: map[string]any{"type": "object"},
	}))

	manifest := r.Manifest()
	require.Len(t, manifest, 2)
	assert.Equal(t, "first", manifest["a"].Description)
	assert.NotNil(t, manifest["a"].Schema)
	assert.Equal(t, []string{"a", "b"}, r.Names())
}

func TestMemoryBank_Resolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "incident_playbook.md"),
		[]byte("# Incident playbook\n\nSteps to follow.\n"), 0o644))

	bank := NewMemoryBank(dir)

	d := bank.Resolve("incident_playbook")
	require.NotNil(t, d)
	assert.Equal(t, "Incident playbook", d.Description)

	content, err := d.Handler(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, content.(string), "Steps to follow")

	assert.Nil(t, bank.Resolve("missing"))
	assert.Nil(t, bank.Resolve("../etc/passwd"))

	list := bank.List()
	require.Len(t, list, 1)
	assert.Equal(t, "incident_playbook", list[0].Name)
}

type scriptedClient struct {
	responses []string
	calls     []agent.CallInput
}

func (c *scriptedClient) Run(_ context.Context, input agent.CallInput) (*agent.Response, error) {
	c.calls = append(c.calls, input)
	content := c.responses[0]
	if len(c.responses) > 1 {
		c.responses = c.responses[1:]
	}
	return &agent.Response{Content: content, RequestID: "req-qm"}, nil
}

func TestQuartermaster_Select(t *testing.T) {
	manifest := map[string]ManifestEntry{
		"search_index": {Type: ToolTypeFunction, Description: "search"},
		"fetch_page":   {Type: ToolTypeFunction, Description: "fetch"},
		"send_email":   {Type: ToolTypeFunction, Description: "email"},
	}

	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{"bare array", `["search_index", "fetch_page"]`, []string{"search_index", "fetch_page"}},
		{"fenced", "```json\n[\"search_index\"]\n```", []string{"search_index"}},
		{"with prose", `Sure, these fit best: ["fetch_page"] — done.`, []string{"fetch_page"}},
		{"unknown names dropped", `["search_index", "nonexistent"]`, []string{"search_index"}},
		{"empty selection", `[]`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &scriptedClient{responses: []string{tt.response}}
			qm := NewQuartermaster(client, "gpt-test")

			names, resp, err := qm.Select(context.Background(), "investigate failing pods", manifest)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names)
			require.NotNil(t, resp)
			require.Len(t, client.calls, 1)
			assert.Contains(t, client.calls[0].UserPrompt, "investigate failing pods")
			assert.Contains(t, client.calls[0].UserPrompt, "search_index")
		})
	}
}

func TestQuartermaster_MalformedResponse(t *testing.T) {
	client := &scriptedClient{responses: []string{"no array here"}}
	qm := NewQuartermaster(client, "gpt-test")

	_, resp, err := qm.Select(context.Background(), "goal", map[string]ManifestEntry{"a": {}})
	assert.Error(t, err)
	assert.NotNil(t, resp)
}

func TestQuartermaster_EmptyManifest(t *testing.T) {
	client := &scriptedClient{responses: []string{`["a"]`}}
	qm := NewQuartermaster(client, "gpt-test")

	names, resp, err := qm.Select(context.Background(), "goal", nil)
	require.NoError(t, err)
	assert.Nil(t, names)
	assert.Nil(t, resp)
	assert.Empty(t, client.calls)
}

func TestCache_HitAndKeyModes(t *testing.T) {
	c := NewCache(&config.ToolCachingConfig{Enabled: true})

	args := map[string]any{"query": "pods", "limit": 10}
	_, ok := c.Get("search_index", args)
	assert.False(t, ok)

	c.Put("search_index", args, "cached result", nil)

	// Argument order in the map never matters; canonical hashing collapses it
	got, ok := c.Get("search_index", map[string]any{"limit": 10, "query": "pods"})
	require.True(t, ok)
	assert.Equal(t, "cached result", got)

	// Different args miss
	_, ok = c.Get("search_index", map[string]any{"query": "nodes", "limit": 10})
	assert.False(t, ok)

	// Same args, different tool miss
	_, ok = c.Get("fetch_page", args)
	assert.False(t, ok)
}

func TestCache_QueryKeyMode(t *testing.T) {
	c := NewCache(&config.ToolCachingConfig{Enabled: true, Key: config.CacheKeyQuery})

	c.Put("search_index", map[string]any{"query": "pods", "limit": 10}, "r1", nil)

	// Only the query argument participates in the key
	got, ok := c.Get("search_index", map[string]any{"query": "pods", "limit": 999})
	require.True(t, ok)
	assert.Equal(t, "r1", got)

	_, ok = c.Get("search_index", map[string]any{"query": "nodes"})
	assert.False(t, ok)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := NewCache(&config.ToolCachingConfig{Enabled: true, TTL: "1m"})
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Put("search_index", map[string]any{"query": "pods"}, "r1", nil)
	_, ok := c.Get("search_index", map[string]any{"query": "pods"})
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("search_index", map[string]any{"query": "pods"})
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_LRUEviction(t *testing.T) {
	c := NewCache(&config.ToolCachingConfig{Enabled: true, MaxEntries: 2})

	c.Put("t", map[string]any{"n": 1}, "r1", nil)
	c.Put("t", map[string]any{"n": 2}, "r2", nil)

	// Touch entry 1 so entry 2 becomes the eviction candidate
	_, ok := c.Get("t", map[string]any{"n": 1})
	require.True(t, ok)

	c.Put("t", map[string]any{"n": 3}, "r3", nil)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("t", map[string]any{"n": 2})
	assert.False(t, ok)
	_, ok = c.Get("t", map[string]any{"n": 1})
	assert.True(t, ok)
}

func TestCache_InvalidateByEvent(t *testing.T) {
	c := NewCache(&config.ToolCachingConfig{Enabled: true})

	c.Put("list_pods", map[string]any{"ns": "a"}, "r1", []string{"deploy"})
	c.Put("list_pods", map[string]any{"ns": "b"}, "r2", []string{"deploy", "scale"})
	c.Put("read_docs", map[string]any{"q": "x"}, "r3", nil)

	dropped := c.Invalidate("deploy")
	assert.Equal(t, 2, dropped)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("read_docs", map[string]any{"q": "x"})
	assert.True(t, ok)
}

func TestCache_DisabledAndExcluded(t *testing.T) {
	disabled := NewCache(nil)
	disabled.Put("t", map[string]any{"n": 1}, "r", nil)
	_, ok := disabled.Get("t", map[string]any{"n": 1})
	assert.False(t, ok)

	c := NewCache(&config.ToolCachingConfig{Enabled: true, Exclude: []string{"volatile"}})
	c.Put("volatile", map[string]any{"n": 1}, "r", nil)
	_, ok = c.Get("volatile", map[string]any{"n": 1})
	assert.False(t, ok)
	assert.False(t, c.Cacheable("volatile"))
	assert.True(t, c.Cacheable("stable"))
}
