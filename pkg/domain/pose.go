package domain

import (
	"github.com/go-gl/mathgl/mgl64"
)

// BoneTransform is the local transform of one bone.
type BoneTransform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// IdentityTransform returns a transform with no translation, no rotation and unit scale.
func IdentityTransform() BoneTransform {
	return BoneTransform{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// Pose is an ordered list of bone transforms, index-aligned with the skeleton's bone mapping.
type Pose []BoneTransform

// NewPose returns a pose of n identity transforms.
func NewPose(n int) Pose {
	p := make(Pose, n)
	for i := range p {
		p[i] = IdentityTransform()
	}
	return p
}

// Clone returns a deep copy of the pose.
func (p Pose) Clone() Pose {
	if p == nil {
		return nil
	}
	out := make(Pose, len(p))
	copy(out, p)
	return out
}

// CopyInto writes p into dst, reusing dst's backing array when it is large enough.
func (p Pose) CopyInto(dst Pose) Pose {
	return append(dst[:0], p...)
}

// NormalizeRotations rescales every rotation to unit length with a non-negative scalar part.
func (p Pose) NormalizeRotations() {
	for i := range p {
		p[i].Rotation = CanonicalQuat(p[i].Rotation)
	}
}

// CanonicalQuat normalizes q and flips it onto the hemisphere with W >= 0.
func CanonicalQuat(q mgl64.Quat) mgl64.Quat {
	q = q.Normalize()
	if q.W < 0 {
		q = q.Scale(-1)
	}
	return q
}
