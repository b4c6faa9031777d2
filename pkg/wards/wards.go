// Package wards runs named validators against phase content. A validator is
// a builtin check, a regex, a JSON Schema, an LLM judge, or a whole child
// cascade; every kind reduces to a {valid, reason} verdict. Enforcement
// modes (blocking, advisory, retry) belong to the phase runner.
package wards

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/windlassio/windlass/pkg/agent"
	"github.com/windlassio/windlass/pkg/config"
)

// Verdict is the outcome of one validation.
type Verdict struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// CascadeInvoker runs a child cascade synchronously and returns its final
// output. Provided by the runner so validators can be cascade-backed without
// this package depending on it.
type CascadeInvoker func(ctx context.Context, cascadeID string, input map[string]any) (string, error)

// Engine resolves validator names declared by a cascade and executes them.
type Engine struct {
	cascade *config.CascadeConfig
	client  agent.Client
	model   string
	invoker CascadeInvoker
}

// NewEngine builds a validator engine for one cascade. client may be nil if
// the cascade declares no llm validators; invoker likewise for cascade kind.
func NewEngine(cascade *config.CascadeConfig, client agent.Client, model string, invoker CascadeInvoker) *Engine {
	return &Engine{cascade: cascade, client: client, model: model, invoker: invoker}
}

// Validate runs the named validator over content.
func (e *Engine) Validate(ctx context.Context, name, content string) (Verdict, error) {
	if decl, ok := e.declared(name); ok {
		return e.runDeclared(ctx, name, decl, content)
	}
	if config.IsBuiltinValidator(name) {
		return runBuiltin(name, content), nil
	}
	return Verdict{}, fmt.Errorf("validator %q not found", name)
}

func (e *Engine) declared(name string) (config.InlineValidatorConfig, bool) {
	if e.cascade == nil {
		return config.InlineValidatorConfig{}, false
	}
	decl, ok := e.cascade.Validators[name]
	return decl, ok
}

func (e *Engine) runDeclared(ctx context.Context, name string, decl config.InlineValidatorConfig, content string) (Verdict, error) {
	switch decl.EffectiveKind() {
	case config.ValidatorBuiltin:
		return runBuiltin(name, content), nil
	case config.ValidatorRegex:
		return runRegex(decl.Pattern, content)
	case config.ValidatorSchema:
		return runSchema(decl.Schema, content)
	case config.ValidatorLLM:
		return e.runJudge(ctx, name, decl.Instructions, content)
	case config.ValidatorCascade:
		return e.runCascade(ctx, decl.Cascade, content)
	default:
		return Verdict{}, fmt.Errorf("validator %q: unknown kind %s", name, decl.Kind)
	}
}

func runRegex(pattern, content string) (Verdict, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Verdict{}, fmt.Errorf("invalid validator pattern: %w", err)
	}
	if re.MatchString(content) {
		return Verdict{Valid: true}, nil
	}
	return Verdict{Reason: fmt.Sprintf("output does not match pattern %q", pattern)}, nil
}

// ValidateSchema checks content against a JSON Schema declared as a plain
// map. Content may be bare JSON, fenced, or embedded in prose.
func ValidateSchema(schema map[string]any, content string) (Verdict, error) {
	return runSchema(schema, content)
}

func runSchema(schema map[string]any, content string) (Verdict, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", normalizeSchema(schema)); err != nil {
		return Verdict{}, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return Verdict{}, fmt.Errorf("compile schema: %w", err)
	}

	payload, ok := ExtractJSON(content)
	if !ok {
		return Verdict{Reason: "output contains no parseable JSON"}, nil
	}
	if err := compiled.Validate(payload); err != nil {
		return Verdict{Reason: err.Error()}, nil
	}
	return Verdict{Valid: true}, nil
}

// normalizeSchema rebuilds the map with plain types so the compiler sees
// json-decoded values rather than yaml-decoded ones.
func normalizeSchema(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeSchema(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprintf("%v", k)] = normalizeSchema(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeSchema(val)
		}
		return out
	case int:
		return float64(t)
	default:
		return v
	}
}

func (e *Engine) runCascade(ctx context.Context, cascadeID, content string) (Verdict, error) {
	if e.invoker == nil {
		return Verdict{}, fmt.Errorf("cascade validator %q: no invoker configured", cascadeID)
	}
	output, err := e.invoker(ctx, cascadeID, map[string]any{"content": content})
	if err != nil {
		return Verdict{}, fmt.Errorf("cascade validator %q: %w", cascadeID, err)
	}
	return parseVerdict(output)
}

// parseVerdict interprets judge output: a {valid, reason} JSON object when
// present, otherwise a VALID/INVALID keyword scan.
func parseVerdict(output string) (Verdict, error) {
	if v, ok := ExtractJSON(output); ok {
		if m, ok := v.(map[string]any); ok {
			if valid, ok := m["valid"].(bool); ok {
				reason, _ := m["reason"].(string)
				return Verdict{Valid: valid, Reason: reason}, nil
			}
		}
	}

	upper := strings.ToUpper(output)
	if strings.Contains(upper, "INVALID") {
		return Verdict{Reason: strings.TrimSpace(output)}, nil
	}
	if strings.Contains(upper, "VALID") {
		return Verdict{Valid: true}, nil
	}
	return Verdict{}, fmt.Errorf("unparseable validator verdict: %q", truncate(output, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
