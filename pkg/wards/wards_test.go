package wards

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/config"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    any
		ok      bool
	}{
		{"direct object", `{"a": 1}`, map[string]any{"a": float64(1)}, true},
		{"direct array", `[1, 2]`, []any{float64(1), float64(2)}, true},
		{"fenced", "Here:\n```json\n{\"a\": 1}\n```\ndone", map[string]any{"a": float64(1)}, true},
		{"greedy in prose", `The result is {"a": 1} as requested.`, map[string]any{"a": float64(1)}, true},
		{"no json", "plain text only", nil, false},
		{"broken json", `{"a": `, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.content)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBuiltinValidators(t *testing.T) {
	tests := []struct {
		validator string
		content   string
		valid     bool
	}{
		{"non_empty", "hello", true},
		{"non_empty", "   \n ", false},
		{"has_json", `result: {"ok": true}`, true},
		{"has_json", "no json here", false},
		{"has_code", "```go\nfmt.Println()\n```", true},
		{"has_code", "inline `code` only", false},
		{"has_markdown", "# Title\n\nbody", true},
		{"has_markdown", "- item one\n- item two", true},
		{"has_markdown", "plain paragraph", false},
		{"no_error", "all good", true},
		{"no_error", "Traceback (most recent call last)", false},
		{"no_error", "FATAL: connection refused", false},
	}

	e := NewEngine(nil, nil, "", nil)
	for _, tt := range tests {
		t.Run(tt.validator+"/"+tt.content[:min(len(tt.content), 20)], func(t *testing.T) {
			v, err := e.Validate(context.Background(), tt.validator, tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, v.Valid)
			if !tt.valid {
				assert.NotEmpty(t, v.Reason)
			}
		})
	}
}

func TestEngine_UnknownValidator(t *testing.T) {
	e := NewEngine(nil, nil, "", nil)
	_, err := e.Validate(context.Background(), "nope", "content")
	assert.Error(t, err)
}

func TestRegexValidator(t *testing.T) {
	cascade := &config.CascadeConfig{
		Validators: map[string]config.InlineValidatorConfig{
			"has_ticket": {Pattern: `TICKET-\d+`},
		},
	}
	e := NewEngine(cascade, nil, "", nil)

	v, err := e.Validate(context.Background(), "has_ticket", "fixed in TICKET-42")
	require.NoError(t, err)
	assert.True(t, v.Valid)

	v, err = e.Validate(context.Background(), "has_ticket", "no reference")
	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Reason, "TICKET")
}

func TestSchemaValidator(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []any{"severity"},
		"properties": map[string]any{
			"severity": map[string]any{"type": "string", "enum": []any{"low", "high"}},
			"count":    map[string]any{"type": "integer"},
		},
	}
	cascade := &config.CascadeConfig{
		Validators: map[string]config.InlineValidatorConfig{
			"report_schema": {Schema: schema},
		},
	}
	e := NewEngine(cascade, nil, "", nil)

	v, err := e.Validate(context.Background(), "report_schema", `{"severity": "high", "count": 3}`)
	require.NoError(t, err)
	assert.True(t, v.Valid)

	// Fenced JSON is extracted before validation
	v, err = e.Validate(context.Background(), "report_schema", "```json\n{\"severity\": \"low\"}\n```")
	require.NoError(t, err)
	assert.True(t, v.Valid)

	v, err = e.Validate(context.Background(), "report_schema", `{"severity": "medium"}`)
	require.NoError(t, err)
	assert.False(t, v.Valid)

	v, err = e.Validate(context.Background(), "report_schema", "no json at all")
	require.NoError(t, err)
	assert.False(t, v.Valid)
}

type judgeClient struct {
	response string
	err      error
	inputs   []agent.CallInput
}

func (c *judgeClient) Run(_ context.Context, input agent.CallInput) (*agent.Response, error) {
	c.inputs = append(c.inputs, input)
	if c.err != nil {
		return nil, c.err
	}
	return &agent.Response{Content: c.response}, nil
}

func TestLLMValidator(t *testing.T) {
	cascade := &config.CascadeConfig{
		Validators: map[string]config.InlineValidatorConfig{
			"is_actionable": {Instructions: "The output must contain at least one concrete next step."},
		},
	}

	t.Run("valid verdict", func(t *testing.T) {
		client := &judgeClient{response: `{"valid": true}`}
		e := NewEngine(cascade, client, "gpt-test", nil)

		v, err := e.Validate(context.Background(), "is_actionable", "1. restart the pod")
		require.NoError(t, err)
		assert.True(t, v.Valid)
		require.Len(t, client.inputs, 1)
		assert.Contains(t, client.inputs[0].UserPrompt, "concrete next step")
		assert.Contains(t, client.inputs[0].UserPrompt, "restart the pod")
	})

	t.Run("invalid with reason", func(t *testing.T) {
		client := &judgeClient{response: "```json\n{\"valid\": false, \"reason\": \"no steps\"}\n```"}
		e := NewEngine(cascade, client, "gpt-test", nil)

		v, err := e.Validate(context.Background(), "is_actionable", "vague musings")
		require.NoError(t, err)
		assert.False(t, v.Valid)
		assert.Equal(t, "no steps", v.Reason)
	})

	t.Run("keyword fallback", func(t *testing.T) {
		client := &judgeClient{response: "INVALID: the output lists no steps"}
		e := NewEngine(cascade, client, "gpt-test", nil)

		v, err := e.Validate(context.Background(), "is_actionable", "x")
		require.NoError(t, err)
		assert.False(t, v.Valid)
	})

	t.Run("client error propagates", func(t *testing.T) {
		client := &judgeClient{err: errors.New("provider down")}
		e := NewEngine(cascade, client, "gpt-test", nil)

		_, err := e.Validate(context.Background(), "is_actionable", "x")
		assert.Error(t, err)
	})

	t.Run("no client configured", func(t *testing.T) {
		e := NewEngine(cascade, nil, "", nil)
		_, err := e.Validate(context.Background(), "is_actionable", "x")
		assert.Error(t, err)
	})
}

func TestCascadeValidator(t *testing.T) {
	cascade := &config.CascadeConfig{
		Validators: map[string]config.InlineValidatorConfig{
			"deep_check": {Cascade: "validation_cascade"},
		},
	}

	var gotInput map[string]any
	invoker := func(_ context.Context, cascadeID string, input map[string]any) (string, error) {
		assert.Equal(t, "validation_cascade", cascadeID)
		gotInput = input
		return `{"valid": true, "reason": ""}`, nil
	}

	e := NewEngine(cascade, nil, "", invoker)
	v, err := e.Validate(context.Background(), "deep_check", "the content blob")
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Equal(t, "the content blob", gotInput["content"])
}

func TestCascadeValidator_NoInvoker(t *testing.T) {
	cascade := &config.CascadeConfig{
		Validators: map[string]config.InlineValidatorConfig{
			"deep_check": {Cascade: "validation_cascade"},
		},
	}
	e := NewEngine(cascade, nil, "", nil)
	_, err := e.Validate(context.Background(), "deep_check", "x")
	assert.Error(t, err)
}

func TestParseVerdict_Unparseable(t *testing.T) {
	_, err := parseVerdict("the weather is nice")
	assert.Error(t, err)
}
