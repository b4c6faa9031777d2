package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatStub(t *testing.T, handler http.HandlerFunc) (*OpenAIClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewOpenAIClient(ClientConfig{
		APIKey:   "test-key",
		BaseURL:  server.URL + "/v1",
		Provider: "test",
	})
	client.retryDelay = 0
	return client, server
}

func chatResponse(content string, toolCalls []map[string]any) map[string]any {
	message := map[string]any{"role": "assistant", "content": content}
	if toolCalls != nil {
		message["tool_calls"] = toolCalls
	}
	return map[string]any{
		"id":    "gen-abc123",
		"model": "test-model",
		"choices": []map[string]any{
			{"index": 0, "message": message, "finish_reason": "stop"},
		},
		"usage": map[string]any{
			"prompt_tokens":     120,
			"completion_tokens": 45,
			"total_tokens":      165,
		},
	}
}

func TestOpenAIClient_Run(t *testing.T) {
	var captured openaiRequestCapture
	client, _ := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(chatResponse("hello there", nil))
	})

	resp, err := client.Run(context.Background(), CallInput{
		SystemPrompt: "You are a navigator.",
		UserPrompt:   "Plot a course.",
		History: []Message{
			{Role: RoleUser, Content: "previous question"},
			{Role: RoleAssistant, Content: "previous answer"},
		},
		Model: "test-model",
	})
	require.NoError(t, err)

	assert.Equal(t, "hello there", resp.Content)
	assert.Equal(t, "gen-abc123", resp.RequestID)
	assert.Equal(t, "test-model", resp.Model)
	assert.Equal(t, "test", resp.Provider)
	assert.Equal(t, 120, resp.TokensIn)
	assert.Equal(t, 45, resp.TokensOut)
	assert.Nil(t, resp.Cost)
	assert.NotEmpty(t, resp.FullRequest)
	assert.NotEmpty(t, resp.FullResponse)

	// system, two history turns, trailing user prompt
	require.Len(t, captured.Messages, 4)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "You are a navigator.", captured.contentString(0))
	assert.Equal(t, "user", captured.Messages[3].Role)
	assert.Equal(t, "Plot a course.", captured.contentString(3))
}

type openaiRequestCapture struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"messages"`
	Tools []struct {
		Type     string `json:"type"`
		Function struct {
			Name       string         `json:"name"`
			Parameters map[string]any `json:"parameters"`
		} `json:"function"`
	} `json:"tools"`
}

func (c openaiRequestCapture) contentString(i int) string {
	var s string
	if json.Unmarshal(c.Messages[i].Content, &s) == nil {
		return s
	}
	return string(c.Messages[i].Content)
}

func TestOpenAIClient_NativeToolCalls(t *testing.T) {
	client, _ := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse("", []map[string]any{
			{
				"id":   "call_1",
				"type": "function",
				"function": map[string]any{
					"name":      "lookup_chart",
					"arguments": `{"region":"north"}`,
				},
			},
		}))
	})

	resp, err := client.Run(context.Background(), CallInput{
		UserPrompt: "go",
		Model:      "test-model",
		Tools: []ToolSchema{
			{Name: "lookup_chart", Description: "Chart lookup", Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{"region": map[string]any{"type": "string"}},
			}},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "call_1", resp.ToolCalls[0].ID)
	assert.Equal(t, "lookup_chart", resp.ToolCalls[0].Function.Name)
	assert.JSONEq(t, `{"region":"north"}`, resp.ToolCalls[0].Function.Arguments)
}

func TestOpenAIClient_RetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	client, _ := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(chatResponse("recovered", nil))
	})

	resp, err := client.Run(context.Background(), CallInput{UserPrompt: "hi", Model: "test-model"})
	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Content)
	assert.Equal(t, int32(3), calls.Load())
}

func TestOpenAIClient_RetriesEmptyResponse(t *testing.T) {
	var calls atomic.Int32
	client, _ := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			json.NewEncoder(w).Encode(map[string]any{
				"id": "gen-empty", "model": "test-model", "choices": []any{},
			})
			return
		}
		json.NewEncoder(w).Encode(chatResponse("second time lucky", nil))
	})

	resp, err := client.Run(context.Background(), CallInput{UserPrompt: "hi", Model: "test-model"})
	require.NoError(t, err)
	assert.Equal(t, "second time lucky", resp.Content)
	assert.Equal(t, int32(2), calls.Load())
}

func TestOpenAIClient_EmptyResponseExhausted(t *testing.T) {
	var calls atomic.Int32
	client, _ := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(map[string]any{
			"id": "gen-empty", "model": "test-model", "choices": []any{},
		})
	})

	_, err := client.Run(context.Background(), CallInput{UserPrompt: "hi", Model: "test-model"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetriesExceeded)
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, int32(3), calls.Load())
}

func TestOpenAIClient_RetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	client, _ := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Run(context.Background(), CallInput{UserPrompt: "hi", Model: "test-model"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetriesExceeded)
	assert.Equal(t, int32(3), calls.Load())

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "test", provErr.Provider)
	assert.NotEmpty(t, provErr.FullRequest)
}

func TestOpenAIClient_NonRetryableFailsFast(t *testing.T) {
	var calls atomic.Int32
	client, _ := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "invalid api key"}})
	})

	_, err := client.Run(context.Background(), CallInput{UserPrompt: "hi", Model: "test-model"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOpenAIClient_NoAPIKey(t *testing.T) {
	client := NewOpenAIClient(ClientConfig{})
	_, err := client.Run(context.Background(), CallInput{UserPrompt: "hi", Model: "m"})
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestOpenAIClient_ImageMessages(t *testing.T) {
	var captured map[string]any
	client, _ := newChatStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(chatResponse("seen", nil))
	})

	_, err := client.Run(context.Background(), CallInput{
		History: []Message{
			{Role: RoleUser, Parts: []ContentPart{
				{Type: "text", Text: "What is in image 1?"},
				{Type: "image_url", ImageURL: "data:image/png;base64,AAAA"},
			}},
		},
		Model: "test-model",
	})
	require.NoError(t, err)

	messages := captured["messages"].([]any)
	require.Len(t, messages, 1)
	content := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, content, 2)
	assert.Equal(t, "text", content[0].(map[string]any)["type"])
	assert.Equal(t, "image_url", content[1].(map[string]any)["type"])
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"rate limit", errors.New("error, status code: 429, message: rate limit exceeded"), true},
		{"server error", errors.New("error, status code: 502"), true},
		{"timeout", errors.New("context deadline exceeded"), true},
		{"auth", errors.New("error, status code: 401, message: invalid api key"), false},
		{"validation", errors.New("error, status code: 400, message: bad request"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableError(tt.err))
		})
	}
}

func TestMessage_Text(t *testing.T) {
	assert.Equal(t, "plain", Message{Content: "plain"}.Text())
	assert.Equal(t, "a b", Message{Parts: []ContentPart{
		{Type: "text", Text: "a "},
		{Type: "image_url", ImageURL: "http://x"},
		{Type: "text", Text: "b"},
	}}.Text())
}
