// Package simulator implements a self-contained MCP gateway good enough
// to run the demo flows against: a tool registry, a memory store, bearer
// auth, per-caller rate limits and the JSON-RPC surface the client speaks.
package simulator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mcpflow/mcpflow/internal/mcp"
)

// Sentinel errors the RPC handler maps onto JSON-RPC codes.
var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrInvalidParams = errors.New("invalid params")
)

// ToolFunc executes one simulated tool call.
type ToolFunc func(params map[string]any) (map[string]any, error)

// Registry holds the simulator's tool set. Listing preserves registration
// order so /tools output stays stable across runs.
type Registry struct {
	mu    sync.RWMutex
	order []string
	tools map[string]registeredTool
}

type registeredTool struct {
	desc mcp.ToolDescriptor
	fn   ToolFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]registeredTool)}
}

// Register adds a tool. Registering a name twice replaces the
// implementation but keeps the original listing position.
func (r *Registry) Register(desc mcp.ToolDescriptor, fn ToolFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[desc.Name]; !exists {
		r.order = append(r.order, desc.Name)
	}
	r.tools[desc.Name] = registeredTool{desc: desc, fn: fn}
}

// List returns descriptors in registration order.
func (r *Registry) List() []mcp.ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]mcp.ToolDescriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name].desc)
	}
	return out
}

// Invoke runs the named tool with the given params.
func (r *Registry) Invoke(name string, params map[string]any) (map[string]any, error) {
	r.mu.RLock()
	tool, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if params == nil {
		params = map[string]any{}
	}
	return tool.fn(params)
}
