package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/windlassio/windlass/pkg/agent"
)

const quartermasterSystemPrompt = `You select tools for an autonomous agent.
Given the agent's current goal and a catalog of available tools, choose the
smallest set of tools the agent needs. Respond with ONLY a JSON array of tool
names, e.g. ["search_index", "fetch_page"]. Choose an empty array if no tool
applies.`

// Quartermaster picks a tool subset from the manifest for a phase goal using
// one model call.
type Quartermaster struct {
	client agent.Client
	model  string
}

// NewQuartermaster creates a quartermaster bound to a model.
func NewQuartermaster(client agent.Client, model string) *Quartermaster {
	return &Quartermaster{client: client, model: model}
}

// Select asks the model to pick tools for goal out of manifest. The raw
// response is returned alongside the names so the caller can log the call.
func (q *Quartermaster) Select(ctx context.Context, goal string, manifest map[string]ManifestEntry) ([]string, *agent.Response, error) {
	if len(manifest) == 0 {
		return nil, nil, nil
	}

	resp, err := q.client.Run(ctx, agent.CallInput{
		SystemPrompt: quartermasterSystemPrompt,
		UserPrompt:   buildCatalogPrompt(goal, manifest),
		Model:        q.model,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("quartermaster selection failed: %w", err)
	}

	names, err := parseToolNames(resp.Content)
	if err != nil {
		return nil, resp, err
	}

	// Unknown names are dropped rather than failing the phase
	var selected []string
	for _, name := range names {
		if _, ok := manifest[name]; ok {
			selected = append(selected, name)
		}
	}
	return selected, resp, nil
}

func buildCatalogPrompt(goal string, manifest map[string]ManifestEntry) string {
	names := make([]string, 0, len(manifest))
	for name := range manifest {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Goal:\n")
	b.WriteString(goal)
	b.WriteString("\n\nAvailable tools:\n")
	for _, name := range names {
		entry := manifest[name]
		fmt.Fprintf(&b, "- %s (%s): %s\n", name, entry.Type, entry.Description)
	}
	return b.String()
}

// parseToolNames extracts the JSON string array from the model response,
// tolerating code fences and surrounding prose.
func parseToolNames(content string) ([]string, error) {
	text := strings.TrimSpace(content)
	if fenced := extractFence(text); fenced != "" {
		text = fenced
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("quartermaster response contains no JSON array: %q", truncate(content, 200))
	}

	var names []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &names); err != nil {
		return nil, fmt.Errorf("quartermaster response is not a string array: %w", err)
	}
	return names, nil
}

func extractFence(text string) string {
	start := strings.Index(text, "```")
	if start < 0 {
		return ""
	}
	rest := text[start+3:]
	if nl := strings.Index(rest, "\n"); nl >= 0 {
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
