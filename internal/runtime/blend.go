package runtime

import (
	"fmt"

	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/transition"
)

// BlendResult reports what happened to the transition during one Blend call.
type BlendResult struct {
	// Started is set when a new transition was fitted this frame.
	Started bool
	// Superseded is set when Started replaced a transition that was still running.
	Superseded bool
	// Completed is set when the running transition expired this frame.
	Completed bool
	// Fitted is the transition started this frame, if any.
	Fitted *transition.Pose
	// Replaced is the transition that was superseded, if any.
	Replaced *transition.Pose
	// Expired is the transition that completed, if any.
	Expired *transition.Pose
}

// Blender owns the output history and the in-flight pose transition of one node.
// It is not safe for concurrent use; callers serialize access per node instance.
type Blender struct {
	cache      *CacheRing
	transition *transition.Pose
	requested  bool
	bones      int
}

// NewBlender returns a blender for a skeleton of the given bone count.
// A zero count binds to the length of the first evaluated pose.
func NewBlender(bones int) *Blender {
	return &Blender{
		cache: NewCacheRing(bones),
		bones: bones,
	}
}

// Request marks that a transition should start as soon as the history allows it.
// The request stays pending across frames until both cache slots are populated.
func (b *Blender) Request() {
	b.requested = true
}

// Pending reports whether a transition request is waiting for history.
func (b *Blender) Pending() bool {
	return b.requested
}

// Transition returns the in-flight transition, or nil when none is live.
// The returned value is owned by the blender and valid until the next Blend call.
func (b *Blender) Transition() *transition.Pose {
	return b.transition
}

// Cache exposes the output history.
func (b *Blender) Cache() *CacheRing {
	return b.cache
}

// Reset drops history, pending requests and any live transition.
func (b *Blender) Reset() {
	b.cache.Reset()
	b.transition = nil
	b.requested = false
}

// Blend applies the transition to pose in place and records the result as this frame's output.
//
// pose is the newly evaluated pose of the active source. deltaSeconds is this frame's time step
// and blendTime the currently configured blend duration.
func (b *Blender) Blend(pose domain.Pose, deltaSeconds, blendTime float64) (BlendResult, error) {
	var res BlendResult

	if b.bones == 0 {
		b.bones = len(pose)
	}
	if err := domain.CheckBoneCount("evaluated pose", b.bones, pose); err != nil {
		return res, err
	}

	if b.requested && b.cache.BothEnabled() {
		primary, secondary := b.cache.Primary(), b.cache.Secondary()

		next, err := transition.FitPose(pose, primary.Pose, secondary.Pose, primary.DeltaSeconds, blendTime)
		if err != nil {
			return res, fmt.Errorf("failed to fit transition: %w", err)
		}

		b.requested = false
		if b.transition != nil {
			res.Superseded = true
			res.Replaced = b.transition
		}
		b.transition = next
		res.Started = true
		res.Fitted = next
	}

	if b.transition != nil {
		b.transition.Advance(deltaSeconds)

		if b.transition.Elapsed < blendTime {
			if err := b.transition.Apply(pose); err != nil {
				return res, err
			}
		} else {
			res.Completed = true
			res.Expired = b.transition
			b.transition = nil
		}
	}

	b.cache.Record(pose, deltaSeconds)
	return res, nil
}
