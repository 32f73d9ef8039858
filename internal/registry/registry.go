// Package registry holds the process-wide mapping from tool name to its
// descriptor/handler pair. It is populated once at startup and read-only
// afterwards; lookups never silently no-op.
package registry

import (
	"context"
	"sync"

	"github.com/tripstack/travel-mcp-server/internal/errdefs"
)

// Param describes a single tool parameter in declaration order.
type Param struct {
	// Name is the parameter key as seen on the wire.
	Name string
	// Type is the JSON Schema type ("string", "integer", "number", "array").
	Type string
	// Description explains the parameter for the agent.
	Description string
	// Required marks the parameter as mandatory.
	Required bool
	// Default is advertised in the schema for optional parameters.
	Default any
	// Enum restricts string values when non-empty.
	Enum []string
	// Items sets the item type for array parameters.
	Items string
}

// Descriptor describes a tool: its unique name, documentation, and ordered
// parameter specs. Immutable after registration.
type Descriptor struct {
	// Name is the unique tool name.
	Name string
	// Title is the human-friendly tool title.
	Title string
	// Description explains the tool for the agent.
	Description string
	// Params lists parameters in a fixed declaration order.
	Params []Param
}

// InputSchema renders the descriptor as a JSON Schema object map.
func (d Descriptor) InputSchema() map[string]any {
	properties := make(map[string]any, len(d.Params))
	var required []string
	for _, p := range d.Params {
		prop := map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		if p.Type == "array" && p.Items != "" {
			prop["items"] = map[string]any{"type": p.Items}
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Handler executes one tool call against a loosely-typed argument map.
type Handler interface {
	// Execute validates args, runs the search, and returns a result envelope.
	Execute(ctx context.Context, args map[string]any) (map[string]any, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, args map[string]any) (map[string]any, error)

// Execute calls the wrapped function.
func (f HandlerFunc) Execute(ctx context.Context, args map[string]any) (map[string]any, error) {
	return f(ctx, args)
}

type entry struct {
	descriptor Descriptor
	handler    Handler
}

// Registry maps tool names to descriptor/handler pairs, preserving
// registration order for deterministic client-facing listings.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
	order   []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register inserts a tool. A duplicate name fails with DuplicateToolError;
// existing entries are never overwritten.
func (r *Registry) Register(descriptor Descriptor, handler Handler) error {
	if descriptor.Name == "" {
		return &errdefs.ValidationError{Field: "name", Reason: "tool name is empty"}
	}
	if handler == nil {
		return &errdefs.ValidationError{Field: "handler", Reason: "handler is nil"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[descriptor.Name]; exists {
		return &errdefs.DuplicateToolError{Name: descriptor.Name}
	}
	r.entries[descriptor.Name] = entry{descriptor: descriptor, handler: handler}
	r.order = append(r.order, descriptor.Name)
	return nil
}

// Unregister removes a tool; absent names fail with UnknownToolError.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; !exists {
		return &errdefs.UnknownToolError{Name: name}
	}
	delete(r.entries, name)
	for i, existing := range r.order {
		if existing == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns descriptors in registration order. The slice is a fresh
// copy; repeated calls without intervening writes yield identical output.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].descriptor)
	}
	return out
}

// Get returns the handler bound to name, or UnknownToolError.
func (r *Registry) Get(name string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.entries[name]
	if !exists {
		return nil, &errdefs.UnknownToolError{Name: name}
	}
	return e.handler, nil
}

// Len reports the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
