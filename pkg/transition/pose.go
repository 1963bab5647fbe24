package transition

import (
	"math"

	"github.com/aretw0/inertia/pkg/domain"
)

// Pose is an in-flight transition covering every bone of a skeleton.
type Pose struct {
	Bones   []Transform
	Elapsed float64
}

// FitPose fits a transition for every bone.
// target, primary and secondary must have the same bone count.
func FitPose(target, primary, secondary domain.Pose, dt, blendTime float64) (*Pose, error) {
	if err := domain.CheckBoneCount("primary cache", len(target), primary); err != nil {
		return nil, err
	}
	if err := domain.CheckBoneCount("secondary cache", len(target), secondary); err != nil {
		return nil, err
	}

	p := &Pose{Bones: make([]Transform, len(target))}
	for i := range target {
		p.Bones[i] = FitTransform(target[i], primary[i], secondary[i], dt, blendTime)
	}
	return p, nil
}

// Advance moves the transition forward by dt seconds.
func (p *Pose) Advance(dt float64) {
	p.Elapsed += dt
}

// Apply overwrites every bone of pose with its blended transform at the current elapsed time,
// then renormalizes all rotations.
func (p *Pose) Apply(pose domain.Pose) error {
	if err := domain.CheckBoneCount("evaluated pose", len(p.Bones), pose); err != nil {
		return err
	}
	for i := range p.Bones {
		pose[i] = p.Bones[i].Apply(pose[i], p.Elapsed)
	}
	pose.NormalizeRotations()
	return nil
}

// Offsets returns the largest initial offset magnitude per channel.
func (p *Pose) Offsets() domain.ChannelOffsets {
	var o domain.ChannelOffsets
	for i := range p.Bones {
		b := &p.Bones[i]
		o.Translation = math.Max(o.Translation, math.Abs(b.Translation.X0))
		o.Rotation = math.Max(o.Rotation, math.Abs(b.Rotation.X0))
		o.Scale = math.Max(o.Scale, math.Abs(b.Scale.X0))
	}
	return o
}
