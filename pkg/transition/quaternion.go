package transition

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion is the curve of a rotation channel.
// The offset is an angle in radians about the unit Axis.
type Quaternion struct {
	Scalar
	Axis mgl64.Vec3
}

// FitQuaternion builds a rotation channel transition, with the same argument roles as FitVector.
func FitQuaternion(target, primary, secondary mgl64.Quat, dt, blendTime float64) Quaternion {
	var q Quaternion

	inv := target.Inverse()

	axis, angle := AxisAngle(primary.Mul(inv))
	q.Axis = axis
	q.X0 = WrapAngle(angle)

	rel := secondary.Mul(inv)
	xn1 := math.Pi
	if math.Abs(rel.W) >= Epsilon {
		xn1 = WrapAngle(2 * math.Atan(rel.V.Dot(q.Axis)/rel.W))
	}
	if dt > 0 {
		q.V0 = WrapAngle(q.X0-xn1) / dt
	}

	q.Fit(blendTime)
	return q
}

// Apply returns current rotated by the channel offset at time t.
func (q *Quaternion) Apply(current mgl64.Quat, t float64) mgl64.Quat {
	return mgl64.QuatRotate(q.Evaluate(t), q.Axis).Mul(current)
}

// AxisAngle decomposes q into a unit rotation axis and an angle in [0, 2π].
// When the rotation is too small to define an axis, +X and a zero angle are returned.
func AxisAngle(q mgl64.Quat) (mgl64.Vec3, float64) {
	q = q.Normalize()
	sinHalf := q.V.Len()
	if sinHalf < Epsilon {
		return mgl64.Vec3{1, 0, 0}, 0
	}
	return q.V.Mul(1 / sinHalf), 2 * math.Atan2(sinHalf, q.W)
}

// WrapAngle maps rad into (-π, π].
func WrapAngle(rad float64) float64 {
	rad = math.Mod(rad+math.Pi, 2*math.Pi)
	if rad <= 0 {
		rad += 2 * math.Pi
	}
	return rad - math.Pi
}
