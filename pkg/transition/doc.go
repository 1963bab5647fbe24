/*
Package transition fits and evaluates inertialization curves.

When a blend node switches sources, each bone channel is given a quintic decay curve that
starts at the offset between the pose last shown and the new target, with the velocity
estimated from the two most recent output frames, and reaches zero offset, velocity and
acceleration at its end time T1:

	x(t) = A·t⁵ + B·t⁴ + C·t³ + ½·A0·t² + V0·t + X0,  t ∈ [0, T1]

Evaluation clamps t into [0, T1], so a settled channel holds at zero offset.

  - Scalar: the curve itself, shared by every channel kind.
  - Vector: translation and scale channels; the offset is measured along a unit direction.
  - Quaternion: rotation channels; the offset is an angle about a unit axis.
  - Transform: one Vector/Quaternion/Vector triple per bone.
  - Pose: one Transform per bone plus the elapsed time of the whole transition.
*/
package transition
