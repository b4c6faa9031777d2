package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each case embeds one call to search_index({"query":"failing pods"}) in a
// different dialect; all must parse to the same canonical call.
func TestParse_RecognizedFormats(t *testing.T) {
	wantArgs := map[string]any{"query": "failing pods"}

	tests := []struct {
		name string
		text string
	}{
		{
			"fenced json with tool key",
			"Here is my call:\n```json\n{\"tool\": \"search_index\", \"arguments\": {\"query\": \"failing pods\"}}\n```",
		},
		{
			"fenced json without language",
			"```\n{\"tool\": \"search_index\", \"arguments\": {\"query\": \"failing pods\"}}\n```",
		},
		{
			"fenced block named after tool",
			"```search_index\n{\"query\": \"failing pods\"}\n```",
		},
		{
			"tool_call tag",
			`<tool_call>{"name": "search_index", "arguments": {"query": "failing pods"}}</tool_call>`,
		},
		{
			"function_call tag",
			`<function_call>{"name": "search_index", "arguments": {"query": "failing pods"}}</function_call>`,
		},
		{
			"tools tag",
			`<tools>{"tool": "search_index", "arguments": {"query": "failing pods"}}</tools>`,
		},
		{
			"invoke with json body",
			`<invoke name="search_index">{"query": "failing pods"}</invoke>`,
		},
		{
			"invoke with parameter children",
			`<invoke name="search_index"><parameter name="query">failing pods</parameter></invoke>`,
		},
		{
			"function call syntax",
			`I will run search_index({"query": "failing pods"}) to find them.`,
		},
		{
			"react",
			"Thought: I should search.\nAction: search_index\nAction Input: {\"query\": \"failing pods\"}",
		},
		{
			"mistral",
			`[TOOL_CALLS] [{"name": "search_index", "arguments": {"query": "failing pods"}}]`,
		},
		{
			"hermes with stringified arguments",
			`<tool_call>{"name": "search_index", "arguments": "{\"query\": \"failing pods\"}"}</tool_call>`,
		},
		{
			"bare single-line json",
			`{"tool": "search_index", "arguments": {"query": "failing pods"}}`,
		},
		{
			"xml name attribute",
			`<function_call name="search_index">{"query": "failing pods"}</function_call>`,
		},
		{
			"tool tag with name attribute",
			`<tool name="search_index">{"query": "failing pods"}</tool>`,
		},
		{
			"yaml fenced",
			"```yaml\ntool: search_index\nquery: failing pods\n```",
		},
		{
			"openai wrapper",
			`{"type": "function", "function": {"name": "search_index", "arguments": "{\"query\": \"failing pods\"}"}}`,
		},
		{
			"cohere",
			`{"tool_name": "search_index", "parameters": {"query": "failing pods"}}`,
		},
		{
			"gemini",
			`{"function_call": {"name": "search_index", "args": {"query": "failing pods"}}}`,
		},
		{
			"wrapped tool_calls array",
			`<tool_calls>[{"name": "search_index", "arguments": {"query": "failing pods"}}]</tool_calls>`,
		},
		{
			"raw top-of-line array",
			`[{"name": "search_index", "arguments": {"query": "failing pods"}}]`,
		},
		{
			"special token",
			`<|tool_call|>{"name": "search_index", "arguments": {"query": "failing pods"}}<|/tool_call|>`,
		},
		{
			"bracket token",
			`[TOOL_CALL]{"name": "search_index", "arguments": {"query": "failing pods"}}[/TOOL_CALL]`,
		},
		{
			"use directive",
			"Use: search_index\nWith: {\"query\": \"failing pods\"}",
		},
		{
			"execute directive",
			"Execute: search_index\nWith: {\"query\": \"failing pods\"}",
		},
		{
			"markdown tool section",
			"## Tool: search_index\n### Arguments:\n```json\n{\"query\": \"failing pods\"}\n```",
		},
		{
			"simple kv",
			"tool: search_index\nquery: failing pods",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls, err := Parse(tt.text)
			require.NoError(t, err)
			require.Len(t, calls, 1, "expected exactly one call")
			assert.Equal(t, "search_index", calls[0].Name)
			assert.Equal(t, wantArgs, calls[0].Args)
			assert.NotEmpty(t, calls[0].ID)
		})
	}
}

func TestParse_DeduplicatesAcrossFormats(t *testing.T) {
	text := "```json\n{\"tool\": \"lookup\", \"arguments\": {\"id\": \"a1\"}}\n```\n" +
		`<tool_call>{"name": "lookup", "arguments": {"id": "a1"}}</tool_call>`

	calls, err := Parse(text)
	require.NoError(t, err)
	assert.Len(t, calls, 1)
}

func TestParse_DistinctArgsSurvive(t *testing.T) {
	text := "```json\n{\"tool\": \"lookup\", \"arguments\": {\"id\": \"a1\"}}\n```\n" +
		"```json\n{\"tool\": \"lookup\", \"arguments\": {\"id\": \"a2\"}}\n```"

	calls, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, "a1", calls[0].Args["id"])
	assert.Equal(t, "a2", calls[1].Args["id"])
}

func TestParse_MultipleCallsInArray(t *testing.T) {
	calls, err := Parse(`[TOOL_CALLS] [` +
		`{"name": "first", "arguments": {"a": 1}},` +
		`{"name": "second", "arguments": {"b": 2}}]`)
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, "first", calls[0].Name)
	assert.Equal(t, "second", calls[1].Name)
	assert.Equal(t, "call_0", calls[0].ID)
	assert.Equal(t, "call_1", calls[1].ID)
}

func TestParse_MalformedJSONIsAnError(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"fenced json", "```json\n{\"tool\": \"lookup\", \"arguments\": {broken}\n```"},
		{"tagged", `<tool_call>{"name": "lookup", "arguments": {broken}</tool_call>`},
		{"react input", "Action: lookup\nAction Input: {\"id\": }"},
		{"stringified arguments", `<tool_call>{"name": "lookup", "arguments": "{not json"}</tool_call>`},
		{"mistral", `[TOOL_CALLS] [{"name": "lookup", "arguments": {]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestParse_IgnoresPlainText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"prose", "The investigation shows three pods in CrashLoopBackOff."},
		{"code fence in known language", "Run this:\n```python\nsearch_index({\"query\": \"x\"})\n```"},
		{"builtin function syntax", `Then print({"a": 1}) shows the result.`},
		{"json without tool shape", "```json\n{\"result\": \"ok\", \"count\": 3}\n```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Empty(t, calls)
		})
	}
}

func TestParse_ReActEdgeCases(t *testing.T) {
	t.Run("empty action input", func(t *testing.T) {
		calls, err := Parse("Action: list_pods\nAction Input:")
		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, "list_pods", calls[0].Name)
		assert.Empty(t, calls[0].Args)
	})

	t.Run("scalar action input", func(t *testing.T) {
		calls, err := Parse("Action: describe\nAction Input: my-pod")
		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, map[string]any{"input": "my-pod"}, calls[0].Args)
	})

	t.Run("observation terminates input", func(t *testing.T) {
		calls, err := Parse("Action: describe\nAction Input: {\"pod\": \"x\"}\nObservation: pod is healthy")
		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, map[string]any{"pod": "x"}, calls[0].Args)
	})
}

func TestParse_PreservesProvidedID(t *testing.T) {
	calls, err := Parse(`{"id": "call_xyz", "type": "function", "function": {"name": "lookup", "arguments": "{}"}}`)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "call_xyz", calls[0].ID)
}

func TestParse_NestedArgsCanonicalEquality(t *testing.T) {
	// Key order differences collapse in dedup
	text := `<tool_call>{"name": "q", "arguments": {"a": 1, "b": {"x": true, "y": [1, 2]}}}</tool_call>` + "\n" +
		`<tool_call>{"name": "q", "arguments": {"b": {"y": [1, 2], "x": true}, "a": 1}}</tool_call>`

	calls, err := Parse(text)
	require.NoError(t, err)
	assert.Len(t, calls, 1)
}
