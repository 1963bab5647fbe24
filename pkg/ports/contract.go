package ports

import (
	"context"
	"testing"

	"github.com/aretw0/inertia/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunPoseSourceContract runs a suite of tests to verify that a PoseSource implementation
// adheres to the lifecycle contract for the given bone mapping.
// newSource must return a fresh, uninitialized source on every call.
func RunPoseSourceContract(t *testing.T, bones *domain.BoneMapping, newSource func() PoseSource) {
	ctx := context.Background()
	frame := &domain.Frame{DeltaSeconds: 1.0 / 60, Bones: bones}

	setup := func(t *testing.T) PoseSource {
		t.Helper()
		src := newSource()
		require.NoError(t, src.Initialize(ctx, frame), "Initialize should not return error")
		require.NoError(t, src.CacheBones(ctx, frame), "CacheBones should not return error")
		return src
	}

	t.Run("Evaluate returns one transform per bone", func(t *testing.T) {
		src := setup(t)
		for i := 0; i < 3; i++ {
			require.NoError(t, src.Update(ctx, frame))
			pose, err := src.Evaluate(ctx, frame)
			require.NoError(t, err)
			assert.Len(t, pose, bones.Len())
		}
	})

	t.Run("Rotations are unit length", func(t *testing.T) {
		src := setup(t)
		require.NoError(t, src.Update(ctx, frame))
		pose, err := src.Evaluate(ctx, frame)
		require.NoError(t, err)
		for i, bt := range pose {
			assert.InDelta(t, 1, bt.Rotation.Len(), 1e-9, "bone %d", i)
		}
	})

	t.Run("Caller owns the evaluated pose", func(t *testing.T) {
		src := setup(t)
		require.NoError(t, src.Update(ctx, frame))
		first, err := src.Evaluate(ctx, frame)
		require.NoError(t, err)
		want := first.Clone()

		for i := range first {
			first[i] = domain.BoneTransform{}
		}

		again, err := src.Evaluate(ctx, frame)
		require.NoError(t, err)
		assert.Equal(t, want, again, "mutating a returned pose must not leak into the source")
	})

	t.Run("GatherDebugData adds at least one entry", func(t *testing.T) {
		src := setup(t)
		var debug domain.DebugData
		src.GatherDebugData(&debug)
		assert.NotEmpty(t, debug.Items())
	})
}
