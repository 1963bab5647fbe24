package transition

import (
	"github.com/aretw0/inertia/pkg/domain"
)

// Transform holds the three channel transitions of one bone.
type Transform struct {
	Translation Vector
	Rotation    Quaternion
	Scale       Vector
}

// FitTransform fits every channel of one bone.
func FitTransform(target, primary, secondary domain.BoneTransform, dt, blendTime float64) Transform {
	return Transform{
		Translation: FitVector(target.Translation, primary.Translation, secondary.Translation, dt, blendTime),
		Rotation:    FitQuaternion(target.Rotation, primary.Rotation, secondary.Rotation, dt, blendTime),
		Scale:       FitVector(target.Scale, primary.Scale, secondary.Scale, dt, blendTime),
	}
}

// Apply composes the blended transform of one bone at time t.
func (tr *Transform) Apply(current domain.BoneTransform, t float64) domain.BoneTransform {
	return domain.BoneTransform{
		Translation: tr.Translation.Apply(current.Translation, t),
		Rotation:    tr.Rotation.Apply(current.Rotation, t),
		Scale:       tr.Scale.Apply(current.Scale, t),
	}
}
