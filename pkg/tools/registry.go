// Package tools holds the tool registry consumed by the phase runner: typed
// tool descriptors with handlers, the declarative manifest, the quartermaster
// (LLM tool selection), and the content-addressed result cache.
package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// ToolType distinguishes in-process functions from cascade-backed tools.
type ToolType string

const (
	ToolTypeFunction ToolType = "function"
	ToolTypeCascade  ToolType = "cascade"
)

// Handler executes one tool call. Args come from the model (parsed or
// native); the return value must be JSON-serializable. A result map with an
// "images" key is treated by the runner as image output.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// ToolDescriptor declares one tool: name, schema, and a typed handler.
type ToolDescriptor struct {
	Name        string
	Description string
	Type        ToolType

	// Parameters is the JSON Schema of the arguments object
	Parameters map[string]any

	// CascadePath is set for cascade-backed tools instead of Handler
	CascadePath string

	// InvalidateOn lists cache-invalidation events this tool's cached
	// results subscribe to
	InvalidateOn []string

	Handler Handler
}

// ManifestEntry is the declarative view of a tool given to the quartermaster
// and exposed through the API catalog.
type ManifestEntry struct {
	Type        ToolType       `json:"type"`
	Description string         `json:"description"`
	Schema      map[string]any `json:"schema,omitempty"`
	Path        string         `json:"path,omitempty"`
}

// Registry resolves tools by name and produces the manifest.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*ToolDescriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*ToolDescriptor)}
}

// Register adds a descriptor. Names must be unique.
func (r *Registry) Register(d *ToolDescriptor) error {
	if d.Name == "" {
		return fmt.Errorf("tool descriptor requires a name")
	}
	if d.Type == "" {
		d.Type = ToolTypeFunction
	}
	if d.Type == ToolTypeFunction && d.Handler == nil {
		return fmt.Errorf("tool %q: function tools require a handler", d.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[d.Name]; exists {
		return fmt.Errorf("tool %q already registered", d.Name)
	}
	r.tools[d.Name] = d
	return nil
}

// Get returns the named descriptor, or nil.
func (r *Registry) Get(name string) *ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Manifest returns the declarative tool catalog.
func (r *Registry) Manifest() map[string]ManifestEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	manifest := make(map[string]ManifestEntry, len(r.tools))
	for name, d := range r.tools {
		manifest[name] = ManifestEntry{
			Type:        d.Type,
			Description: d.Description,
			Schema:      d.Parameters,
			Path:        d.CascadePath,
		}
	}
	return manifest
}
