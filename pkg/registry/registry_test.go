package registry_test

import (
	"testing"

	"github.com/aretw0/inertia/pkg/adapters/clip"
	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/ports"
	"github.com/aretw0/inertia/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_InertialBlend(t *testing.T) {
	r := registry.Default()

	desc, ok := r.Lookup(registry.InertialBlendName)
	require.True(t, ok)
	assert.Equal(t, "Inertial Blend", desc.Title)
	assert.Equal(t, "Blends", desc.Category)
	assert.Equal(t, registry.Color{R: 0.823, G: 0.867, B: 0.914}, desc.Color)

	cfg := domain.DefaultConfig()
	cfg.SourceASelected = false
	node, err := r.Build(registry.InertialBlendName,
		clip.NewStatic("a", domain.NewPose(1)),
		clip.NewStatic("b", domain.NewPose(1)),
		registry.Params{Name: "hips", Config: cfg},
	)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceB, node.Active())
}

func TestRegistry_BuildUnknown(t *testing.T) {
	r := registry.NewRegistry()
	_, err := r.Build("missing", nil, nil, registry.Params{})
	assert.ErrorContains(t, err, "node type not found: missing")
}

func TestRegistry_BuildPropagatesFactoryError(t *testing.T) {
	r := registry.Default()
	_, err := r.Build(registry.InertialBlendName, nil, nil, registry.Params{})
	assert.ErrorIs(t, err, domain.ErrNoSource)
}

func TestRegistry_DescriptorsSorted(t *testing.T) {
	r := registry.NewRegistry()
	noop := func(a, b ports.PoseSource, p registry.Params) (ports.BlendNode, error) { return nil, nil }
	r.Register(registry.Descriptor{Name: "zeta"}, noop)
	r.Register(registry.Descriptor{Name: "alpha"}, noop)
	r.Register(registry.Descriptor{Name: "alpha", Title: "Alpha"}, noop)

	descs := r.Descriptors()
	require.Len(t, descs, 2)
	assert.Equal(t, "alpha", descs[0].Name)
	assert.Equal(t, "Alpha", descs[0].Title)
	assert.Equal(t, "zeta", descs[1].Name)
}
