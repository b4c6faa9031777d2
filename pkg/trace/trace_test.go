package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/config"
)

func TestCanonicalJSON_SortsKeysRecursively(t *testing.T) {
	a, err := CanonicalJSON(map[string]any{
		"b": 1,
		"a": map[string]any{"z": true, "y": []any{"x", 2}},
	})
	require.NoError(t, err)

	b, err := CanonicalJSON(map[string]any{
		"a": map[string]any{"y": []any{"x", 2}, "z": true},
		"b": 1,
	})
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
	assert.Equal(t, `{"a":{"y":["x",2],"z":true},"b":1}`, string(a))
}

func TestCanonicalJSON_PreservesNumbers(t *testing.T) {
	out, err := CanonicalJSON(map[string]any{"cost": 0.000123, "n": 42})
	require.NoError(t, err)
	assert.Equal(t, `{"cost":0.000123,"n":42}`, string(out))
}

func TestSpeciesHash_StableAcrossIrrelevantChanges(t *testing.T) {
	phase := &config.PhaseConfig{
		Name:         "draft",
		Instructions: "Write a draft about {{.topic}}",
		Model:        "gpt-4o",
		Rules:        config.RulesConfig{MaxTurns: 3},
	}

	h1 := SpeciesHash(phase)
	assert.Len(t, h1, 16)

	// Model and name are not part of the DNA
	phase.Model = "claude-sonnet"
	phase.Name = "renamed"
	assert.Equal(t, h1, SpeciesHash(phase))

	// Instructions are
	phase.Instructions = "Write a poem about {{.topic}}"
	assert.NotEqual(t, h1, SpeciesHash(phase))
}

func TestSpeciesHash_ChangesWithRulesAndWards(t *testing.T) {
	phase := &config.PhaseConfig{Instructions: "x"}
	h1 := SpeciesHash(phase)

	phase.Rules.MaxAttempts = 5
	h2 := SpeciesHash(phase)
	assert.NotEqual(t, h1, h2)

	phase.Wards.Post = []config.WardConfig{{Validator: "has_json"}}
	h3 := SpeciesHash(phase)
	assert.NotEqual(t, h2, h3)
}

func TestBuildTree(t *testing.T) {
	rows := []RowRef{
		{TraceID: "root", NodeType: "cascade", Name: "blog_pipeline", Timestamp: 1},
		{TraceID: "p1", ParentID: "root", NodeType: "phase", Name: "draft", Depth: 1, Timestamp: 2},
		{TraceID: "p1", ParentID: "root", NodeType: "message", Name: "draft", Depth: 1, Timestamp: 3},
		{TraceID: "p2", ParentID: "root", NodeType: "phase", Name: "review", Depth: 1, Timestamp: 4},
		{TraceID: "s1", ParentID: "p1", NodeType: "sounding", Name: "draft[0]", Depth: 2, Timestamp: 2},
	}

	roots := BuildTree(rows)
	require.Len(t, roots, 1)
	root := roots[0]
	assert.Equal(t, "blog_pipeline", root.Name)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "draft", root.Children[0].Name)
	assert.Equal(t, "phase", root.Children[0].NodeType)
	assert.Equal(t, "review", root.Children[1].Name)
	require.Len(t, root.Children[0].Children, 1)
	assert.Equal(t, "draft[0]", root.Children[0].Children[0].Name)
}

func TestBuildTree_OrphanedParentBecomesRoot(t *testing.T) {
	rows := []RowRef{
		{TraceID: "a", ParentID: "missing", NodeType: "phase", Name: "a", Timestamp: 1},
	}
	roots := BuildTree(rows)
	require.Len(t, roots, 1)
	assert.Equal(t, "a", roots[0].Name)
}

func TestMermaid(t *testing.T) {
	roots := []*Node{{
		ID: "r", NodeType: "cascade", Name: "pipeline",
		Children: []*Node{
			{ID: "c1", NodeType: "phase", Name: "draft"},
			{ID: "c2", NodeType: "phase", Name: "review"},
		},
	}}

	out := Mermaid(roots)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, `n0["pipeline"]`)
	assert.Contains(t, out, `n1["draft"]`)
	assert.Contains(t, out, "n0 --> n1")
	assert.Contains(t, out, "n0 --> n2")
	assert.Contains(t, out, "class n1 phase")
}
