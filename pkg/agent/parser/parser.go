// Package parser extracts tool invocations from free-form model text. It
// decouples the engine from provider tool-calling dialects: each recognized
// format is a distinct extractor, candidates are canonicalized to a single
// internal structure and deduplicated by (name, canonical-args).
package parser

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/windlassio/windlass/pkg/trace"
)

// Call is one canonicalized tool invocation.
type Call struct {
	ID   string
	Name string
	Args map[string]any
}

// candidate is an extractor hit before dedup and id assignment.
type candidate struct {
	id   string
	name string
	args map[string]any
}

// extractor scans text for tool calls in one dialect. A non-nil error means
// the text contained a would-be tool call with malformed content; the runner
// treats that as a validation failure rather than silently ignoring it.
type extractor func(text string) ([]candidate, error)

// extractors in preference order. Fenced JSON is preferred; later extractors
// only contribute calls the earlier ones did not already find.
var extractors = []extractor{
	extractFencedJSON,
	extractFencedToolName,
	extractTaggedCalls,
	extractInvokeTags,
	extractSpecialTokens,
	extractMistral,
	extractWrappedArrays,
	extractXMLNameAttr,
	extractReAct,
	extractDirective,
	extractMarkdownTool,
	extractFunctionSyntax,
	extractBareJSON,
	extractYAMLFenced,
	extractSimpleKV,
}

// Parse extracts every tool call it can recognize in text. Formats are
// order-agnostic; duplicates (same name and canonically-equal args) collapse
// to the first hit. Missing ids are assigned call_<n> in output order.
func Parse(text string) ([]Call, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var all []candidate
	for _, extract := range extractors {
		found, err := extract(text)
		if err != nil {
			return nil, err
		}
		all = append(all, found...)
	}

	seen := make(map[string]bool)
	var calls []Call
	for _, c := range all {
		if c.name == "" {
			continue
		}
		key, err := dedupeKey(c.name, c.args)
		if err != nil {
			return nil, err
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		id := c.id
		if id == "" {
			id = fmt.Sprintf("call_%d", len(calls))
		}
		args := c.args
		if args == nil {
			args = map[string]any{}
		}
		calls = append(calls, Call{ID: id, Name: c.name, Args: args})
	}
	return calls, nil
}

func dedupeKey(name string, args map[string]any) (string, error) {
	canonical, err := trace.CanonicalJSON(args)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize args for %s: %w", name, err)
	}
	sum := sha256.Sum256(canonical)
	return name + ":" + hex.EncodeToString(sum[:]), nil
}

// normalizeCallObject maps the known JSON tool-call shapes onto a candidate:
//
//	{"tool": N, "arguments": A}                                 (fenced JSON)
//	{"name": N, "arguments": A}                                 (Hermes/ChatML)
//	{"function": N, "arguments": A}
//	{"type":"function","function":{"name":N,"arguments":"..."}} (OpenAI)
//	{"tool_name": N, "parameters": A}                           (Cohere)
//	{"function_call": {"name": N, "args": A}}                   (Gemini)
//
// Returns ok=false when the object does not look like a tool call at all.
// Returns an error when it does but the payload is malformed.
func normalizeCallObject(obj map[string]any) (candidate, bool, error) {
	var c candidate
	if id, ok := obj["id"].(string); ok {
		c.id = id
	}

	// OpenAI wrapper
	if fn, ok := obj["function"].(map[string]any); ok {
		name, _ := fn["name"].(string)
		if name == "" {
			return c, false, nil
		}
		c.name = name
		args, err := coerceArgs(fn["arguments"], name)
		if err != nil {
			return c, true, err
		}
		c.args = args
		return c, true, nil
	}

	// Gemini
	if fc, ok := obj["function_call"].(map[string]any); ok {
		name, _ := fc["name"].(string)
		if name == "" {
			return c, false, nil
		}
		c.name = name
		args, err := coerceArgs(fc["args"], name)
		if err != nil {
			return c, true, err
		}
		c.args = args
		return c, true, nil
	}

	// Flat shapes: tool/name/function key plus an args-ish key
	var name string
	for _, key := range []string{"tool", "tool_name", "name", "function", "action"} {
		if v, ok := obj[key].(string); ok && v != "" {
			name = v
			break
		}
	}
	if name == "" {
		return c, false, nil
	}
	c.name = name

	for _, key := range []string{"arguments", "args", "parameters", "input", "with"} {
		if v, ok := obj[key]; ok {
			args, err := coerceArgs(v, name)
			if err != nil {
				return c, true, err
			}
			c.args = args
			return c, true, nil
		}
	}
	c.args = map[string]any{}
	return c, true, nil
}

// coerceArgs accepts an args value that is either an object or a
// JSON-encoded string of an object.
func coerceArgs(v any, toolName string) (map[string]any, error) {
	switch args := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return args, nil
	case string:
		if strings.TrimSpace(args) == "" {
			return map[string]any{}, nil
		}
		var decoded map[string]any
		if err := json.Unmarshal([]byte(args), &decoded); err != nil {
			return nil, fmt.Errorf("malformed arguments for tool %s: %w", toolName, err)
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("malformed arguments for tool %s: expected object, got %T", toolName, v)
	}
}

// normalizeAny handles a decoded JSON value that may be a single call object
// or an array of them.
func normalizeAny(v any) ([]candidate, error) {
	switch val := v.(type) {
	case map[string]any:
		c, ok, err := normalizeCallObject(val)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return []candidate{c}, nil
	case []any:
		var out []candidate
		for _, item := range val {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			c, ok, err := normalizeCallObject(obj)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, c)
			}
		}
		return out, nil
	default:
		return nil, nil
	}
}
