// Package render evaluates instruction and prompt templates against runner
// context. Templates use Go text/template syntax: {{.input}}, {{.state.key}},
// {{.turn}}.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"
)

// Renderer renders a template string against a context map.
type Renderer interface {
	Render(tmpl string, ctx map[string]any) (string, error)
}

// TemplateRenderer is the default text/template implementation. Missing keys
// render as zero values so optional context never breaks a prompt.
type TemplateRenderer struct {
	funcs template.FuncMap
}

// NewTemplateRenderer creates a renderer with the builtin helper functions.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		funcs: template.FuncMap{
			"json": func(v any) string {
				b, err := json.Marshal(v)
				if err != nil {
					return ""
				}
				return string(b)
			},
			"jsonIndent": func(v any) string {
				b, err := json.MarshalIndent(v, "", "  ")
				if err != nil {
					return ""
				}
				return string(b)
			},
		},
	}
}

// Render executes tmpl with ctx. Plain text without template syntax passes
// through unchanged.
func (r *TemplateRenderer) Render(tmpl string, ctx map[string]any) (string, error) {
	t, err := template.New("instructions").Option("missingkey=zero").Funcs(r.funcs).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

// Context assembles the standard render context the phase runner passes to
// instruction templates.
func Context(input string, state map[string]any, outputs map[string]string, lineage []map[string]any, history []map[string]any, turn int, soundingIndex int, isSounding bool, soundingFactor int) map[string]any {
	if state == nil {
		state = map[string]any{}
	}
	if outputs == nil {
		outputs = map[string]string{}
	}
	return map[string]any{
		"input":           input,
		"state":           state,
		"outputs":         outputs,
		"lineage":         lineage,
		"history":         history,
		"turn":            turn,
		"sounding_index":  soundingIndex,
		"is_sounding":     isSounding,
		"sounding_factor": soundingFactor,
	}
}
