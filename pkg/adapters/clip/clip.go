package clip

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/ports"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrNoKeyframes is returned when a clip is built without keyframes.
var ErrNoKeyframes = errors.New("clip has no keyframes")

// Keyframe is a pose pinned to a clip-local time in seconds.
type Keyframe struct {
	Time float64
	Pose domain.Pose
}

// Clip is a keyframed animation source.
// Local time starts at zero, advances on Update and is reset by Initialize.
type Clip struct {
	name      string
	keyframes []Keyframe
	duration  float64
	loop      bool
	rate      float64

	time float64
}

var _ ports.PoseSource = (*Clip)(nil)

// ClipOption configures a Clip.
type ClipOption func(*Clip)

// WithLoop makes local time wrap around the clip duration instead of holding the last keyframe.
func WithLoop(loop bool) ClipOption {
	return func(c *Clip) {
		c.loop = loop
	}
}

// WithRate scales how fast local time advances (default 1).
func WithRate(rate float64) ClipOption {
	return func(c *Clip) {
		c.rate = rate
	}
}

// NewClip builds a clip from keyframes. Keyframes are sorted by time and must share one bone count.
func NewClip(name string, keyframes []Keyframe, opts ...ClipOption) (*Clip, error) {
	if len(keyframes) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoKeyframes)
	}

	kfs := make([]Keyframe, len(keyframes))
	for i, kf := range keyframes {
		p := kf.Pose.Clone()
		p.NormalizeRotations()
		kfs[i] = Keyframe{Time: kf.Time, Pose: p}
	}
	sort.SliceStable(kfs, func(i, j int) bool { return kfs[i].Time < kfs[j].Time })

	bones := len(kfs[0].Pose)
	for i, kf := range kfs {
		if err := domain.CheckBoneCount(fmt.Sprintf("%s keyframe %d", name, i), bones, kf.Pose); err != nil {
			return nil, err
		}
	}

	c := &Clip{
		name:      name,
		keyframes: kfs,
		duration:  kfs[len(kfs)-1].Time - kfs[0].Time,
		rate:      1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Time returns the clip-local time in seconds.
func (c *Clip) Time() float64 {
	return c.time
}

// Duration returns the span between the first and last keyframe.
func (c *Clip) Duration() float64 {
	return c.duration
}

// Initialize rewinds the clip to its start.
func (c *Clip) Initialize(_ context.Context, _ *domain.Frame) error {
	c.time = 0
	return nil
}

// CacheBones checks the keyframe poses against the frame's bone mapping.
func (c *Clip) CacheBones(_ context.Context, frame *domain.Frame) error {
	return checkMapping(c.name, frame, c.keyframes[0].Pose)
}

// Update advances local time by the frame delta scaled by the playback rate.
func (c *Clip) Update(_ context.Context, frame *domain.Frame) error {
	c.time += frame.DeltaSeconds * c.rate
	switch {
	case c.loop && c.duration > 0:
		c.time = math.Mod(c.time, c.duration)
		if c.time < 0 {
			c.time += c.duration
		}
	case c.time > c.duration:
		c.time = c.duration
	case c.time < 0:
		c.time = 0
	}
	return nil
}

// Evaluate samples the clip at its local time.
func (c *Clip) Evaluate(_ context.Context, _ *domain.Frame) (domain.Pose, error) {
	return c.Sample(c.time), nil
}

// Sample returns the pose at clip-local time t without changing the clip state.
func (c *Clip) Sample(t float64) domain.Pose {
	t += c.keyframes[0].Time

	last := len(c.keyframes) - 1
	if t <= c.keyframes[0].Time {
		return c.keyframes[0].Pose.Clone()
	}
	if t >= c.keyframes[last].Time {
		return c.keyframes[last].Pose.Clone()
	}

	next := sort.Search(len(c.keyframes), func(i int) bool { return c.keyframes[i].Time > t })
	from, to := c.keyframes[next-1], c.keyframes[next]

	span := to.Time - from.Time
	if span <= 0 {
		return to.Pose.Clone()
	}
	return Interpolate(from.Pose, to.Pose, (t-from.Time)/span)
}

// GatherDebugData adds one line with the clip name and local time.
func (c *Clip) GatherDebugData(debug *domain.DebugData) {
	debug.Add(fmt.Sprintf("Clip(%s, t=%.3f/%.3f)", c.name, c.time, c.duration))
}

// Interpolate blends two poses of equal length: linear for translation and scale,
// shortest-path slerp for rotation.
func Interpolate(from, to domain.Pose, alpha float64) domain.Pose {
	out := make(domain.Pose, len(from))
	for i := range from {
		a, b := from[i], to[i]
		out[i] = domain.BoneTransform{
			Translation: lerp(a.Translation, b.Translation, alpha),
			Rotation:    slerp(a.Rotation, b.Rotation, alpha),
			Scale:       lerp(a.Scale, b.Scale, alpha),
		}
	}
	return out
}

func lerp(a, b mgl64.Vec3, alpha float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(alpha))
}

func slerp(a, b mgl64.Quat, alpha float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return domain.CanonicalQuat(mgl64.QuatSlerp(a, b, alpha))
}
