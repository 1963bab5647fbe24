package ports

import (
	"context"

	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/transition"
)

// PoseSource is the lifecycle contract of any node in a host animation graph.
//
// Calls for one instance are never concurrent. Within a frame Update always precedes Evaluate.
type PoseSource interface {
	// Initialize (re)establishes the source's start state.
	Initialize(ctx context.Context, frame *domain.Frame) error

	// CacheBones binds the source to the frame's bone mapping. Called once per topology change.
	CacheBones(ctx context.Context, frame *domain.Frame) error

	// Update advances source-local time and state by frame.DeltaSeconds.
	Update(ctx context.Context, frame *domain.Frame) error

	// Evaluate produces this frame's pose with frame.Bones.Len() transforms.
	// The returned pose is owned by the caller, which may modify it in place.
	Evaluate(ctx context.Context, frame *domain.Frame) (domain.Pose, error)

	// GatherDebugData appends this source's entries to the debug tree.
	GatherDebugData(debug *domain.DebugData)
}

// BlendNode is a PoseSource that switches between two children from externally driven inputs.
type BlendNode interface {
	PoseSource

	SetSourceASelected(selected bool)
	SetBlendTime(seconds float64)
	SetResetOnActivation(reset bool)
	Active() domain.SourceID

	// Transition returns the live transition, or nil when the output passes through.
	Transition() *transition.Pose
}
