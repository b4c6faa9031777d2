package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the blocking LLM interface consumed by the runners. One call, one
// full response; streaming is a transport detail the engine does not see.
type Client interface {
	Run(ctx context.Context, input CallInput) (*Response, error)
}

// OpenAIClient talks to any OpenAI-compatible endpoint (OpenAI, OpenRouter,
// vLLM, LM Studio) via github.com/sashabaranov/go-openai.
type OpenAIClient struct {
	client     *openai.Client
	provider   string
	maxRetries int
	retryDelay time.Duration
}

// ClientConfig configures an OpenAIClient.
type ClientConfig struct {
	APIKey   string
	BaseURL  string // empty means api.openai.com
	Provider string // label recorded on log rows, e.g. "openrouter"
	Timeout  time.Duration
}

// NewOpenAIClient creates a client for an OpenAI-compatible provider.
// A missing API key is tolerated until the first Run call.
func NewOpenAIClient(cfg ClientConfig) *OpenAIClient {
	c := &OpenAIClient{
		provider:   cfg.Provider,
		maxRetries: 3,
		retryDelay: time.Second,
	}
	if c.provider == "" {
		c.provider = "openai"
	}
	if cfg.APIKey == "" {
		return c
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	c.client = openai.NewClientWithConfig(clientConfig)
	return c
}

// Run issues one blocking chat completion. Transient failures (rate limits,
// 5xx, timeouts) are retried up to 3 times with linear backoff.
func (c *OpenAIClient) Run(ctx context.Context, input CallInput) (*Response, error) {
	if c.client == nil {
		return nil, ErrNoAPIKey
	}

	chatReq := openai.ChatCompletionRequest{
		Model:    input.Model,
		Messages: c.convertMessages(input),
	}
	if input.MaxTokens > 0 {
		chatReq.MaxTokens = input.MaxTokens
	}
	if len(input.Tools) > 0 {
		chatReq.Tools = c.convertTools(input.Tools)
	}

	fullRequest, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize request: %w", err)
	}

	start := time.Now()
	var resp openai.ChatCompletionResponse
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("Retrying provider call",
				"provider", c.provider, "model", input.Model,
				"attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			}
		}

		resp, lastErr = c.client.CreateChatCompletion(ctx, chatReq)
		if lastErr == nil && len(resp.Choices) == 0 {
			// An empty completion is as transient as a 5xx
			lastErr = ErrEmptyResponse
		}
		if lastErr == nil {
			break
		}
		if lastErr != ErrEmptyResponse && !isRetryableError(lastErr) {
			return nil, &ProviderError{Provider: c.provider, Model: input.Model, Err: lastErr, FullRequest: fullRequest}
		}
	}
	if lastErr != nil {
		return nil, &ProviderError{
			Provider: c.provider, Model: input.Model,
			Err:         fmt.Errorf("%w: %w", ErrRetriesExceeded, lastErr),
			FullRequest: fullRequest,
		}
	}

	fullResponse, _ := json.Marshal(resp)
	choice := resp.Choices[0]

	out := &Response{
		Content:      choice.Message.Content,
		RequestID:    resp.ID,
		Model:        resp.Model,
		Provider:     c.provider,
		TokensIn:     resp.Usage.PromptTokens,
		TokensOut:    resp.Usage.CompletionTokens,
		DurationMs:   int(time.Since(start).Milliseconds()),
		FullRequest:  fullRequest,
		FullResponse: fullResponse,
	}
	if out.Model == "" {
		out.Model = input.Model
	}
	for _, tc := range choice.Message.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID: tc.ID,
			Function: FunctionCall{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}
	return out, nil
}

// convertMessages assembles the OpenAI message array: system first, then
// history, then the optional trailing user prompt.
func (c *OpenAIClient) convertMessages(input CallInput) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(input.History)+2)

	if input.SystemPrompt != "" {
		result = append(result, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: input.SystemPrompt,
		})
	}

	for _, msg := range input.History {
		oaiMsg := openai.ChatCompletionMessage{Role: msg.Role}

		switch {
		case msg.HasImages():
			parts := make([]openai.ChatMessagePart, 0, len(msg.Parts))
			for _, p := range msg.Parts {
				switch p.Type {
				case "image_url":
					parts = append(parts, openai.ChatMessagePart{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    p.ImageURL,
							Detail: openai.ImageURLDetailAuto,
						},
					})
				default:
					parts = append(parts, openai.ChatMessagePart{
						Type: openai.ChatMessagePartTypeText,
						Text: p.Text,
					})
				}
			}
			oaiMsg.MultiContent = parts
		default:
			oaiMsg.Content = msg.Text()
		}

		if msg.Role == RoleAssistant && len(msg.ToolCalls) > 0 {
			oaiMsg.ToolCalls = make([]openai.ToolCall, len(msg.ToolCalls))
			for i, tc := range msg.ToolCalls {
				oaiMsg.ToolCalls[i] = openai.ToolCall{
					ID:   tc.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tc.Function.Name,
						Arguments: tc.Function.Arguments,
					},
				}
			}
		}
		if msg.Role == RoleTool {
			oaiMsg.ToolCallID = msg.ToolCallID
		}

		result = append(result, oaiMsg)
	}

	if input.UserPrompt != "" {
		result = append(result, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: input.UserPrompt,
		})
	}

	return result
}

func (c *OpenAIClient) convertTools(tools []ToolSchema) []openai.Tool {
	result := make([]openai.Tool, len(tools))
	for i, t := range tools {
		params := t.Parameters
		if params == nil {
			params = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		result[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  params,
			},
		}
	}
	return result
}
