package transition

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vector is the curve of a translation or scale channel.
// The offset is applied along Axis, the unit direction from the target to the last output.
type Vector struct {
	Scalar
	Axis mgl64.Vec3
}

// FitVector builds a vector channel transition.
//
//   - target is this frame's value from the newly active source
//   - primary is the previous frame's output value
//   - secondary is the output value one frame older
//   - dt is the time between secondary and primary
func FitVector(target, primary, secondary mgl64.Vec3, dt, blendTime float64) Vector {
	var v Vector

	offset := primary.Sub(target)
	v.X0 = offset.Len()

	if v.X0 >= Epsilon {
		v.Axis = offset.Mul(1 / v.X0)
		xn1 := secondary.Sub(target).Dot(v.Axis)
		v.V0 = finiteDifference(v.X0, xn1, dt)
	}

	v.Fit(blendTime)
	if v.X0 == 0 {
		v.Axis = mgl64.Vec3{}
	}
	return v
}

// Apply returns current displaced by the channel offset at time t.
func (v *Vector) Apply(current mgl64.Vec3, t float64) mgl64.Vec3 {
	return current.Add(v.Axis.Mul(v.Evaluate(t)))
}
