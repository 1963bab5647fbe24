package transition_test

import (
	"math"
	"testing"

	"github.com/aretw0/inertia/pkg/transition"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func sameRotation(t *testing.T, want, got mgl64.Quat, tol float64) {
	t.Helper()
	d := math.Abs(want.Normalize().Dot(got.Normalize()))
	assert.InDelta(t, 1, d, tol, "rotations differ: want %v got %v", want, got)
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{1.5 * math.Pi, -0.5 * math.Pi},
		{-1.5 * math.Pi, 0.5 * math.Pi},
		{2*math.Pi + 0.1, 0.1},
		{-0.3, -0.3},
		{4 * math.Pi, 0},
	}
	for _, tt := range tests {
		got := transition.WrapAngle(tt.in)
		assert.InDelta(t, tt.want, got, 1e-12, "WrapAngle(%g)", tt.in)
		assert.Greater(t, got, -math.Pi)
		assert.LessOrEqual(t, got, math.Pi)
	}
}

func TestAxisAngle(t *testing.T) {
	axis, angle := transition.AxisAngle(mgl64.QuatRotate(0.7, mgl64.Vec3{0, 0, 1}))
	assert.True(t, axis.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-12))
	assert.InDelta(t, 0.7, angle, 1e-12)

	axis, angle = transition.AxisAngle(mgl64.QuatIdent())
	assert.Equal(t, mgl64.Vec3{1, 0, 0}, axis)
	assert.Equal(t, 0.0, angle)

	// The negated quaternion is the same rotation; its angle wraps to the short way round.
	_, angle = transition.AxisAngle(mgl64.QuatRotate(0.7, mgl64.Vec3{0, 1, 0}).Scale(-1))
	assert.InDelta(t, -0.7, transition.WrapAngle(angle), 1e-12)
}

func TestFitQuaternion(t *testing.T) {
	up := mgl64.Vec3{0, 1, 0}

	t.Run("Starts at the previous output", func(t *testing.T) {
		target := mgl64.QuatRotate(0.4, mgl64.Vec3{1, 0, 0})
		primary := mgl64.QuatRotate(1.1, mgl64.Vec3{0, 0.6, 0.8})
		secondary := mgl64.QuatRotate(1.0, mgl64.Vec3{0, 0.6, 0.8})

		q := transition.FitQuaternion(target, primary, secondary, 1.0/30, 0.5)

		sameRotation(t, primary, q.Apply(target, 0), 1e-12)
		sameRotation(t, target, q.Apply(target, q.T1), 1e-9)
		sameRotation(t, target, q.Apply(target, 2), 1e-9)
	})

	t.Run("Angular velocity about the offset axis", func(t *testing.T) {
		q := transition.FitQuaternion(
			mgl64.QuatIdent(),
			mgl64.QuatRotate(0.3, up),
			mgl64.QuatRotate(0.2, up),
			0.1, 0.5,
		)
		assert.InDelta(t, 0.3, q.X0, 1e-12)
		assert.True(t, q.Axis.ApproxEqualThreshold(up, 1e-12))
		assert.InDelta(t, 1.0, q.V0, 1e-9)
	})

	t.Run("Opposite hemisphere input is the same offset", func(t *testing.T) {
		a := transition.FitQuaternion(mgl64.QuatIdent(), mgl64.QuatRotate(0.3, up), mgl64.QuatRotate(0.2, up), 0.1, 0.5)
		b := transition.FitQuaternion(mgl64.QuatIdent(), mgl64.QuatRotate(0.3, up).Scale(-1), mgl64.QuatRotate(0.2, up), 0.1, 0.5)

		sameRotation(t, a.Apply(mgl64.QuatIdent(), 0), b.Apply(mgl64.QuatIdent(), 0), 1e-12)
		assert.InDelta(t, math.Abs(a.X0), math.Abs(b.X0), 1e-12)
	})

	t.Run("Half-turn history falls back to pi", func(t *testing.T) {
		dt := 0.1
		q := transition.FitQuaternion(
			mgl64.QuatIdent(),
			mgl64.QuatRotate(0.3, up),
			mgl64.QuatRotate(math.Pi, up),
			dt, 0.5,
		)
		assert.InDelta(t, transition.WrapAngle(0.3-math.Pi)/dt, q.V0, 1e-9)
	})

	t.Run("No discontinuity", func(t *testing.T) {
		target := mgl64.QuatRotate(0.9, up)
		q := transition.FitQuaternion(target, target, mgl64.QuatIdent(), 0.1, 0.5)

		assert.Equal(t, 0.0, q.X0)
		assert.Equal(t, 0.0, q.Evaluate(0.2))
		sameRotation(t, target, q.Apply(target, 0.2), 1e-12)
	})
}
