package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/ports"
)

// Color is an RGB title color with components in [0, 1].
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

// Descriptor is the editor-facing metadata of a node type.
type Descriptor struct {
	Name     string `json:"name" yaml:"name"`
	Title    string `json:"title" yaml:"title"`
	Tooltip  string `json:"tooltip" yaml:"tooltip"`
	Category string `json:"category" yaml:"category"`
	Color    Color  `json:"color" yaml:"color"`
}

// Params carries the per-instance settings handed to a factory.
type Params struct {
	Name   string
	Config domain.Config
	Hooks  domain.LifecycleHooks
	Logger *slog.Logger
}

// Factory builds a node instance over two pose sources.
type Factory func(a, b ports.PoseSource, p Params) (ports.BlendNode, error)

type entry struct {
	desc    Descriptor
	factory Factory
}

// Registry manages the available node types.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
	}
}

// Register adds a node type to the registry.
// If a type with the same name exists, it is overwritten.
func (r *Registry) Register(desc Descriptor, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[desc.Name] = entry{desc: desc, factory: fn}
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e.desc, ok
}

// Descriptors returns every registered descriptor sorted by name.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	out := make([]Descriptor, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.desc)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Build looks up a node type by name and builds an instance.
// Returns an error if the type is not found.
func (r *Registry) Build(name string, a, b ports.PoseSource, p Params) (ports.BlendNode, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("node type not found: %s", name)
	}
	return e.factory(a, b, p)
}
