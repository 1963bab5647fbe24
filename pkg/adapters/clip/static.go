package clip

import (
	"context"
	"fmt"

	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/ports"
)

// Static is a source that returns the same pose every frame.
type Static struct {
	name string
	pose domain.Pose
}

var _ ports.PoseSource = (*Static)(nil)

// NewStatic returns a source holding a copy of pose.
func NewStatic(name string, pose domain.Pose) *Static {
	p := pose.Clone()
	p.NormalizeRotations()
	return &Static{name: name, pose: p}
}

// Initialize is a no-op.
func (s *Static) Initialize(_ context.Context, _ *domain.Frame) error {
	return nil
}

// CacheBones checks the held pose against the frame's bone mapping.
func (s *Static) CacheBones(_ context.Context, frame *domain.Frame) error {
	return checkMapping(s.name, frame, s.pose)
}

// Update is a no-op.
func (s *Static) Update(_ context.Context, _ *domain.Frame) error {
	return nil
}

// Evaluate returns a copy of the held pose.
func (s *Static) Evaluate(_ context.Context, _ *domain.Frame) (domain.Pose, error) {
	return s.pose.Clone(), nil
}

// GatherDebugData adds one line naming the source.
func (s *Static) GatherDebugData(debug *domain.DebugData) {
	debug.Add(fmt.Sprintf("Static(%s)", s.name))
}

func checkMapping(name string, frame *domain.Frame, p domain.Pose) error {
	if frame == nil || frame.Bones.Len() == 0 {
		return nil
	}
	return domain.CheckBoneCount(name, frame.Bones.Len(), p)
}
