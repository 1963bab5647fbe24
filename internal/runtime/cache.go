package runtime

import (
	"github.com/aretw0/inertia/pkg/domain"
)

// PoseCache is one slot of the output history.
type PoseCache struct {
	Enabled      bool
	Pose         domain.Pose
	DeltaSeconds float64
}

// CacheRing keeps the two most recent output poses.
// Recording flips which slot is primary instead of copying the older pose.
type CacheRing struct {
	slots   [2]PoseCache
	primary int
}

// NewCacheRing preallocates both slots for a skeleton of the given bone count.
func NewCacheRing(bones int) *CacheRing {
	r := &CacheRing{}
	for i := range r.slots {
		r.slots[i].Pose = make(domain.Pose, 0, bones)
	}
	return r
}

// Record stores this frame's output pose and delta time as the new primary slot.
// The previous primary becomes secondary.
func (r *CacheRing) Record(pose domain.Pose, deltaSeconds float64) {
	r.primary ^= 1
	slot := &r.slots[r.primary]
	slot.Pose = pose.CopyInto(slot.Pose)
	slot.DeltaSeconds = deltaSeconds
	slot.Enabled = true
}

// Primary returns the slot holding the previous frame's output.
func (r *CacheRing) Primary() *PoseCache {
	return &r.slots[r.primary]
}

// Secondary returns the slot holding the output from two frames ago.
func (r *CacheRing) Secondary() *PoseCache {
	return &r.slots[r.primary^1]
}

// BothEnabled reports whether two frames have been recorded.
func (r *CacheRing) BothEnabled() bool {
	return r.slots[0].Enabled && r.slots[1].Enabled
}

// Reset disables both slots, keeping their storage.
func (r *CacheRing) Reset() {
	for i := range r.slots {
		r.slots[i].Enabled = false
		r.slots[i].Pose = r.slots[i].Pose[:0]
		r.slots[i].DeltaSeconds = 0
	}
	r.primary = 0
}
