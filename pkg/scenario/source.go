package scenario

import (
	"fmt"

	"github.com/aretw0/inertia/pkg/adapters/clip"
	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/ports"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/mitchellh/mapstructure"
)

// SourceSpec is the decoded form of a sources.a or sources.b section.
type SourceSpec struct {
	Type      string              `mapstructure:"type"`
	Pose      map[string]BoneSpec `mapstructure:"pose"`
	Keyframes []KeyframeSpec      `mapstructure:"keyframes"`
	Loop      bool                `mapstructure:"loop"`
	Rate      float64             `mapstructure:"rate"`
}

// KeyframeSpec is one keyframe of a clip source.
type KeyframeSpec struct {
	Time float64             `mapstructure:"time"`
	Pose map[string]BoneSpec `mapstructure:"pose"`
}

// BoneSpec overrides the identity transform of one bone.
// The rotation is given as an axis and an angle in degrees.
type BoneSpec struct {
	Translation []float64 `mapstructure:"translation"`
	Axis        []float64 `mapstructure:"axis"`
	Angle       float64   `mapstructure:"angle"`
	Scale       []float64 `mapstructure:"scale"`
}

// BuildSource decodes a raw source section and builds the pose source it describes.
func BuildSource(name string, raw map[string]any, bones *domain.BoneMapping) (ports.PoseSource, error) {
	var spec SourceSpec
	if err := mapstructure.Decode(raw, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode source: %w", err)
	}

	switch spec.Type {
	case "static":
		pose, err := buildPose(spec.Pose, bones)
		if err != nil {
			return nil, err
		}
		return clip.NewStatic(name, pose), nil

	case "clip":
		keyframes := make([]clip.Keyframe, 0, len(spec.Keyframes))
		for i, kf := range spec.Keyframes {
			pose, err := buildPose(kf.Pose, bones)
			if err != nil {
				return nil, fmt.Errorf("keyframe %d: %w", i, err)
			}
			keyframes = append(keyframes, clip.Keyframe{Time: kf.Time, Pose: pose})
		}

		opts := []clip.ClipOption{clip.WithLoop(spec.Loop)}
		if spec.Rate != 0 {
			opts = append(opts, clip.WithRate(spec.Rate))
		}
		return clip.NewClip(name, keyframes, opts...)
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSourceType, spec.Type)
}

func buildPose(bonesSpec map[string]BoneSpec, bones *domain.BoneMapping) (domain.Pose, error) {
	pose := domain.NewPose(bones.Len())
	for name, bs := range bonesSpec {
		i, ok := bones.Index(name)
		if !ok {
			return nil, fmt.Errorf("unknown bone %q", name)
		}
		bt, err := bs.transform()
		if err != nil {
			return nil, fmt.Errorf("bone %q: %w", name, err)
		}
		pose[i] = bt
	}
	return pose, nil
}

func (bs BoneSpec) transform() (domain.BoneTransform, error) {
	bt := domain.IdentityTransform()

	if bs.Translation != nil {
		v, err := vec3("translation", bs.Translation)
		if err != nil {
			return bt, err
		}
		bt.Translation = v
	}
	if bs.Scale != nil {
		v, err := vec3("scale", bs.Scale)
		if err != nil {
			return bt, err
		}
		bt.Scale = v
	}
	if bs.Axis != nil {
		axis, err := vec3("axis", bs.Axis)
		if err != nil {
			return bt, err
		}
		if axis.Len() == 0 {
			return bt, fmt.Errorf("axis must not be zero")
		}
		bt.Rotation = domain.CanonicalQuat(mgl64.QuatRotate(mgl64.DegToRad(bs.Angle), axis.Normalize()))
	}
	return bt, nil
}

func vec3(field string, v []float64) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("%s needs 3 components, got %d", field, len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}
