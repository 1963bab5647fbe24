package clip_test

import (
	"context"
	"math"
	"testing"

	"github.com/aretw0/inertia/pkg/adapters/clip"
	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/ports"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poseAt(x float64, angle float64) domain.Pose {
	p := domain.NewPose(2)
	p[0].Translation = mgl64.Vec3{x, 0, 0}
	p[1].Rotation = mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0})
	return p
}

func walk(t *testing.T, opts ...clip.ClipOption) *clip.Clip {
	t.Helper()
	c, err := clip.NewClip("walk", []clip.Keyframe{
		{Time: 1, Pose: poseAt(10, math.Pi/2)},
		{Time: 0, Pose: poseAt(0, 0)},
	}, opts...)
	require.NoError(t, err)
	return c
}

func TestStatic_Contract(t *testing.T) {
	bones := domain.NewBoneMapping("root", "spine")
	ports.RunPoseSourceContract(t, bones, func() ports.PoseSource {
		return clip.NewStatic("idle", poseAt(1, 0.3))
	})
}

func TestClip_Contract(t *testing.T) {
	bones := domain.NewBoneMapping("root", "spine")
	ports.RunPoseSourceContract(t, bones, func() ports.PoseSource {
		return walk(t, clip.WithLoop(true))
	})
}

func TestNewClip_Errors(t *testing.T) {
	_, err := clip.NewClip("empty", nil)
	assert.ErrorIs(t, err, clip.ErrNoKeyframes)

	_, err = clip.NewClip("ragged", []clip.Keyframe{
		{Time: 0, Pose: domain.NewPose(2)},
		{Time: 1, Pose: domain.NewPose(3)},
	})
	assert.ErrorIs(t, err, domain.ErrBoneCountMismatch)
}

func TestClip_CacheBonesRejectsMismatch(t *testing.T) {
	c := walk(t)
	frame := &domain.Frame{Bones: domain.NewBoneMapping("root")}
	err := c.CacheBones(context.Background(), frame)
	assert.ErrorIs(t, err, domain.ErrBoneCountMismatch)
}

func TestClip_Sample(t *testing.T) {
	c := walk(t)

	mid := c.Sample(0.5)
	assert.InDelta(t, 5, mid[0].Translation.X(), 1e-9)

	_, angle := axisAngle(mid[1].Rotation)
	assert.InDelta(t, math.Pi/4, angle, 1e-9)
	assert.InDelta(t, 1, mid[1].Rotation.Len(), 1e-12)

	assert.Equal(t, 0.0, c.Sample(-1)[0].Translation.X())
	assert.Equal(t, 10.0, c.Sample(5)[0].Translation.X())
}

func TestClip_UpdateClampsOrWraps(t *testing.T) {
	ctx := context.Background()
	frame := &domain.Frame{DeltaSeconds: 0.75}

	t.Run("Clamp", func(t *testing.T) {
		c := walk(t)
		require.NoError(t, c.Update(ctx, frame))
		require.NoError(t, c.Update(ctx, frame))
		assert.Equal(t, 1.0, c.Time())
	})

	t.Run("Loop", func(t *testing.T) {
		c := walk(t, clip.WithLoop(true))
		require.NoError(t, c.Update(ctx, frame))
		require.NoError(t, c.Update(ctx, frame))
		assert.InDelta(t, 0.5, c.Time(), 1e-12)
	})

	t.Run("Rate", func(t *testing.T) {
		c := walk(t, clip.WithRate(0.5))
		require.NoError(t, c.Update(ctx, frame))
		assert.InDelta(t, 0.375, c.Time(), 1e-12)
	})

	t.Run("Initialize rewinds", func(t *testing.T) {
		c := walk(t)
		require.NoError(t, c.Update(ctx, frame))
		require.NoError(t, c.Initialize(ctx, frame))
		assert.Zero(t, c.Time())
	})
}

func TestInterpolate_ShortestPath(t *testing.T) {
	from := domain.NewPose(1)
	to := domain.NewPose(1)
	from[0].Rotation = mgl64.QuatRotate(0.1, mgl64.Vec3{0, 0, 1})
	// Same rotation on the opposite hemisphere must not swing the long way round.
	to[0].Rotation = mgl64.QuatRotate(0.3, mgl64.Vec3{0, 0, 1}).Scale(-1)

	out := clip.Interpolate(from, to, 0.5)
	_, angle := axisAngle(out[0].Rotation)
	assert.InDelta(t, 0.2, angle, 1e-9)
	assert.GreaterOrEqual(t, out[0].Rotation.W, 0.0)
}

func axisAngle(q mgl64.Quat) (mgl64.Vec3, float64) {
	s := q.V.Len()
	if s == 0 {
		return mgl64.Vec3{1, 0, 0}, 0
	}
	return q.V.Mul(1 / s), 2 * math.Atan2(s, q.W)
}
