package registry

import (
	"github.com/aretw0/inertia"
	"github.com/aretw0/inertia/pkg/ports"
)

// InertialBlendName is the registry key of the inertialization blend node.
const InertialBlendName = "inertial_blend"

// InertialBlend describes the inertialization blend node.
var InertialBlend = Descriptor{
	Name:     InertialBlendName,
	Title:    "Inertial Blend",
	Tooltip:  "Inertial Blend",
	Category: "Blends",
	Color:    Color{R: 0.823, G: 0.867, B: 0.914},
}

// NewInertialBlend is the factory of the inertialization blend node.
func NewInertialBlend(a, b ports.PoseSource, p Params) (ports.BlendNode, error) {
	opts := []inertia.Option{
		inertia.WithConfig(p.Config),
		inertia.WithLifecycleHooks(p.Hooks),
	}
	if p.Name != "" {
		opts = append(opts, inertia.WithName(p.Name))
	}
	if p.Logger != nil {
		opts = append(opts, inertia.WithLogger(p.Logger))
	}
	node, err := inertia.New(a, b, opts...)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// Default returns a registry with every built-in node type.
func Default() *Registry {
	r := NewRegistry()
	r.Register(InertialBlend, NewInertialBlend)
	return r
}
