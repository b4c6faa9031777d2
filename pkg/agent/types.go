// Package agent provides the blocking LLM client used by runners, its
// OpenAI-compatible implementation, and deferred cost lookup against the
// provider's generation endpoint.
package agent

import "encoding/json"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ContentPart is one block of a multi-part message (text or image).
type ContentPart struct {
	Type     string `json:"type"` // "text" or "image_url"
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"` // https URL or data: URI
}

// Message is one conversation entry in the provider-agnostic format.
// Either Content or Parts is set; Parts is used when images are attached.
type Message struct {
	Role       string        `json:"role"`
	Content    string        `json:"content,omitempty"`
	Parts      []ContentPart `json:"parts,omitempty"`
	ToolCalls  []ToolCall    `json:"tool_calls,omitempty"`
	ToolCallID string        `json:"tool_call_id,omitempty"` // for role=tool replies
}

// HasImages reports whether any part is an image.
func (m Message) HasImages() bool {
	for _, p := range m.Parts {
		if p.Type == "image_url" {
			return true
		}
	}
	return false
}

// Text returns the textual content of the message, flattening parts.
func (m Message) Text() string {
	if m.Content != "" {
		return m.Content
	}
	var out string
	for _, p := range m.Parts {
		if p.Type == "text" {
			out += p.Text
		}
	}
	return out
}

// ToolCall is a provider tool invocation request in the wire shape the
// runner logs and replays: {id, function: {name, arguments}}.
type ToolCall struct {
	ID       string       `json:"id"`
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the function name and its raw JSON arguments.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON object string
}

// ToolSchema describes one tool offered to the model (native protocol) or
// rendered into the prompt-form tackle block.
type ToolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"` // JSON Schema
}

// CallInput is one blocking agent call.
type CallInput struct {
	SystemPrompt string
	UserPrompt   string // optional; appended after History when set
	History      []Message
	Tools        []ToolSchema // nil unless the phase uses native tools
	Model        string
	MaxTokens    int
}

// Response is the result of one agent call. FullRequest and FullResponse
// carry the raw provider payloads for the unified log.
type Response struct {
	Content   string
	ToolCalls []ToolCall

	// RequestID is the provider request id; key for deferred cost lookup.
	RequestID string
	Model     string
	Provider  string
	TokensIn  int
	TokensOut int
	// Cost is set when the provider reports it inline; usually resolved
	// later via CostFetcher.
	Cost *float64

	DurationMs   int
	FullRequest  json.RawMessage
	FullResponse json.RawMessage
}
