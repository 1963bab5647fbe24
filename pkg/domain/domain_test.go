package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/inertia/pkg/domain"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPose_CloneAndCopyInto(t *testing.T) {
	p := domain.NewPose(2)
	p[0].Translation = mgl64.Vec3{1, 2, 3}

	c := p.Clone()
	c[0].Translation = mgl64.Vec3{}
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, p[0].Translation)

	dst := make(domain.Pose, 0, 4)
	out := p.CopyInto(dst)
	assert.Equal(t, p, out)
	assert.Equal(t, 4, cap(out), "backing array is reused")

	assert.Nil(t, domain.Pose(nil).Clone())
}

func TestCanonicalQuat(t *testing.T) {
	q := mgl64.QuatRotate(0.5, mgl64.Vec3{0, 1, 0}).Scale(-3)
	c := domain.CanonicalQuat(q)
	assert.InDelta(t, 1, c.Len(), 1e-12)
	assert.GreaterOrEqual(t, c.W, 0.0)
	assert.InDelta(t, 1, c.Dot(mgl64.QuatRotate(0.5, mgl64.Vec3{0, 1, 0})), 1e-12)

	p := domain.Pose{{Rotation: q}}
	p.NormalizeRotations()
	assert.Equal(t, c, p[0].Rotation)
}

func TestBoneMapping(t *testing.T) {
	m := domain.NewBoneMapping("root", "spine", "head")
	assert.Equal(t, 3, m.Len())

	i, ok := m.Index("spine")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = m.Index("tail")
	assert.False(t, ok)

	assert.Equal(t, "head", m.Name(2))
	assert.Equal(t, "", m.Name(3))

	names := m.Names()
	names[0] = "changed"
	assert.Equal(t, "root", m.Name(0))

	var nilMapping *domain.BoneMapping
	assert.Zero(t, nilMapping.Len())
	assert.Nil(t, nilMapping.Names())
}

func TestSourceID(t *testing.T) {
	assert.Equal(t, domain.SourceB, domain.SourceA.Other())
	assert.Equal(t, domain.SourceA, domain.SourceB.Other())
	assert.Equal(t, domain.SourceA, domain.SourceFor(true))
	assert.Equal(t, domain.SourceB, domain.SourceFor(false))
	assert.False(t, domain.SourceID("c").Valid())

	cfg := domain.DefaultConfig()
	assert.True(t, cfg.SourceASelected)
	assert.Equal(t, 0.4, cfg.BlendTime)
	assert.False(t, cfg.ResetOnActivation)
}

func TestBoneCountError(t *testing.T) {
	err := domain.CheckBoneCount("evaluated pose", 3, domain.NewPose(2))
	require.Error(t, err)
	assert.EqualError(t, err, "evaluated pose: expected 3 bones, got 2")

	wrapped := fmt.Errorf("failed to fit transition: %w", err)
	assert.True(t, errors.Is(wrapped, domain.ErrBoneCountMismatch))

	var bce *domain.BoneCountError
	require.ErrorAs(t, wrapped, &bce)
	assert.Equal(t, 3, bce.Want)

	assert.NoError(t, domain.CheckBoneCount("ok", 2, domain.NewPose(2)))
}

func TestDebugData(t *testing.T) {
	var d domain.DebugData
	d.Add("blend")
	d.Branch(func() {
		d.Add("a")
		d.Branch(func() { d.Add("a.child") })
		d.Add("b")
	})
	d.Add("sibling")

	assert.Equal(t, []domain.DebugItem{
		{Depth: 0, Label: "blend"},
		{Depth: 1, Label: "a"},
		{Depth: 2, Label: "a.child"},
		{Depth: 1, Label: "b"},
		{Depth: 0, Label: "sibling"},
	}, d.Items())
}

func TestChainHooks(t *testing.T) {
	var calls []string
	first := domain.LifecycleHooks{
		OnActivation: func(context.Context, *domain.ActivationEvent) { calls = append(calls, "first") },
	}
	second := domain.LifecycleHooks{
		OnActivation:      func(context.Context, *domain.ActivationEvent) { calls = append(calls, "second") },
		OnTransitionStart: func(context.Context, *domain.TransitionEvent) { calls = append(calls, "start") },
	}

	hooks := domain.ChainHooks(first, domain.LifecycleHooks{}, second)
	hooks.OnActivation(context.Background(), &domain.ActivationEvent{})
	hooks.OnTransitionStart(context.Background(), &domain.TransitionEvent{})

	assert.Equal(t, []string{"first", "second", "start"}, calls)
	assert.Nil(t, hooks.OnTransitionEnd)
}
