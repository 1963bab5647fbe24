package transition

import (
	"math"
)

// Epsilon is the offset magnitude below which a channel has no discontinuity to remove.
const Epsilon = 1e-8

// Scalar is a quintic decay curve fitted to an initial offset X0 and velocity V0.
type Scalar struct {
	X0 float64 // initial offset
	V0 float64 // initial offset velocity
	T1 float64 // time at which the curve reaches zero, never above the configured blend time
	A0 float64 // initial acceleration
	A  float64
	B  float64
	C  float64
}

// Fit computes T1 and the polynomial coefficients from X0, V0 and blendTime.
// A channel with |X0| < Epsilon, or a non-positive blend time, becomes the zero curve.
func (s *Scalar) Fit(blendTime float64) {
	if math.Abs(s.X0) < Epsilon || blendTime <= 0 {
		*s = Scalar{}
		return
	}

	t1 := blendTime
	if s.V0 != 0 && s.X0/s.V0 < 0 {
		// Offset already closing: settle within five times the time it would take at V0.
		t1 = math.Min(blendTime, -5*s.X0/s.V0)
	}
	s.T1 = t1

	t2 := t1 * t1
	t3 := t2 * t1
	t4 := t3 * t1
	t5 := t4 * t1

	s.A0 = (-8*s.V0*t1 - 20*s.X0) / t2
	s.A = -(s.A0*t2 + 6*s.V0*t1 + 12*s.X0) / (2 * t5)
	s.B = (3*s.A0*t2 + 16*s.V0*t1 + 30*s.X0) / (2 * t4)
	s.C = -(3*s.A0*t2 + 12*s.V0*t1 + 20*s.X0) / (2 * t3)
}

// Evaluate returns the offset at time t, clamped into [0, T1].
func (s *Scalar) Evaluate(t float64) float64 {
	t = clamp(t, 0, s.T1)
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t

	return s.A*t5 +
		s.B*t4 +
		s.C*t3 +
		0.5*s.A0*t2 +
		s.V0*t +
		s.X0
}

// finiteDifference returns (x0 - xn1) / dt, or 0 when dt does not describe a real frame.
func finiteDifference(x0, xn1, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return (x0 - xn1) / dt
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
