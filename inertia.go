package inertia

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/inertia/internal/logging"
	"github.com/aretw0/inertia/internal/runtime"
	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/ports"
	"github.com/aretw0/inertia/pkg/transition"
)

// DefaultName is the node name used when WithName is not given.
const DefaultName = "InertialBlend"

// Node is the inertialization blend node.
// It evaluates exactly one of its two sources per frame and smooths selection flips.
type Node struct {
	a, b ports.PoseSource

	cfg        domain.Config
	activation *runtime.Activation
	blender    *runtime.Blender
	bones      int

	hooks  domain.LifecycleHooks
	logger *slog.Logger
	name   string
}

var _ ports.BlendNode = (*Node)(nil)

// New builds a blend node over sources a and b.
func New(a, b ports.PoseSource, opts ...Option) (*Node, error) {
	if a == nil || b == nil {
		return nil, domain.ErrNoSource
	}

	n := &Node{
		a:    a,
		b:    b,
		cfg:  domain.DefaultConfig(),
		name: DefaultName,
	}
	for _, opt := range opts {
		opt(n)
	}

	if n.logger == nil {
		n.logger = logging.NewNop()
	}
	n.logger = n.logger.With("node", n.name)

	n.activation = runtime.NewActivation(n.cfg.SourceASelected)
	n.blender = runtime.NewBlender(n.bones)
	return n, nil
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// Config returns the current configuration.
func (n *Node) Config() domain.Config {
	return n.cfg
}

// SetConfig replaces the configuration; it takes effect on the next Update.
func (n *Node) SetConfig(cfg domain.Config) {
	n.cfg = cfg
}

// SetSourceASelected sets the "source A selected" input sampled by the next Update.
func (n *Node) SetSourceASelected(selected bool) {
	n.cfg.SourceASelected = selected
}

// SetBlendTime sets the blend duration in seconds.
func (n *Node) SetBlendTime(seconds float64) {
	n.cfg.BlendTime = seconds
}

// SetResetOnActivation sets whether a flip reinitializes the branch becoming active.
func (n *Node) SetResetOnActivation(reset bool) {
	n.cfg.ResetOnActivation = reset
}

// Active returns the source evaluated by this node.
func (n *Node) Active() domain.SourceID {
	return n.activation.Active()
}

// Transition returns the live transition, or nil. The value is owned by the node
// and must not be modified; it is valid until the next Evaluate.
func (n *Node) Transition() *transition.Pose {
	return n.blender.Transition()
}

// Initialize initializes both sources and re-arms flip detection on the current input.
func (n *Node) Initialize(ctx context.Context, frame *domain.Frame) error {
	if err := n.a.Initialize(ctx, frame); err != nil {
		return fmt.Errorf("failed to initialize source a: %w", err)
	}
	if err := n.b.Initialize(ctx, frame); err != nil {
		return fmt.Errorf("failed to initialize source b: %w", err)
	}
	n.activation.Arm(n.cfg.SourceASelected)
	return nil
}

// CacheBones binds both sources to the frame's bone mapping.
// A change of bone count discards the output history and any live transition.
func (n *Node) CacheBones(ctx context.Context, frame *domain.Frame) error {
	if err := n.a.CacheBones(ctx, frame); err != nil {
		return fmt.Errorf("failed to cache bones for source a: %w", err)
	}
	if err := n.b.CacheBones(ctx, frame); err != nil {
		return fmt.Errorf("failed to cache bones for source b: %w", err)
	}

	if count := frame.Bones.Len(); count > 0 && count != n.bones {
		n.logger.Debug("bone mapping bound", "bones", count, "previous", n.bones)
		n.bones = count
		n.blender = runtime.NewBlender(count)
	}
	return nil
}

// Update samples the selection input, requests a transition on a flip,
// and advances only the active source.
func (n *Node) Update(ctx context.Context, frame *domain.Frame) error {
	flipped, err := n.activation.Sample(n.cfg.SourceASelected, n.cfg.ResetOnActivation, func(id domain.SourceID) error {
		return n.source(id).Initialize(ctx, frame)
	})
	if flipped {
		n.blender.Request()
		n.logger.Debug("source flipped", "active", n.Active(), "reset", n.cfg.ResetOnActivation)
		if n.hooks.OnActivation != nil {
			n.hooks.OnActivation(ctx, &domain.ActivationEvent{
				EventBase: n.eventBase(domain.EventActivation),
				Active:    n.Active(),
				Reset:     n.cfg.ResetOnActivation,
			})
		}
	}
	if err != nil {
		return fmt.Errorf("failed to reinitialize source %s: %w", n.Active(), err)
	}

	if err := n.source(n.Active()).Update(ctx, frame); err != nil {
		return fmt.Errorf("failed to update source %s: %w", n.Active(), err)
	}
	return nil
}

// Evaluate evaluates the active source, applies the live transition and records the output.
func (n *Node) Evaluate(ctx context.Context, frame *domain.Frame) (domain.Pose, error) {
	active := n.Active()

	pose, err := n.source(active).Evaluate(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate source %s: %w", active, err)
	}

	res, err := n.blender.Blend(pose, frame.DeltaSeconds, n.cfg.BlendTime)
	if err != nil {
		return nil, err
	}
	n.report(ctx, res)

	return pose, nil
}

// GatherDebugData adds a line for this node, then the entries of both sources nested below it.
func (n *Node) GatherDebugData(debug *domain.DebugData) {
	label := fmt.Sprintf("%s(active: %s", n.name, n.Active())
	if tr := n.blender.Transition(); tr != nil {
		label += fmt.Sprintf(", blending %.3f/%.3fs", tr.Elapsed, n.cfg.BlendTime)
	} else if n.blender.Pending() {
		label += ", transition pending"
	}
	debug.Add(label + ")")

	debug.Branch(func() {
		n.a.GatherDebugData(debug)
		n.b.GatherDebugData(debug)
	})
}

func (n *Node) source(id domain.SourceID) ports.PoseSource {
	if id == domain.SourceA {
		return n.a
	}
	return n.b
}

func (n *Node) report(ctx context.Context, res runtime.BlendResult) {
	if res.Superseded {
		n.logger.Debug("transition superseded", "elapsed", res.Replaced.Elapsed)
		if n.hooks.OnTransitionSuperseded != nil {
			n.hooks.OnTransitionSuperseded(ctx, n.transitionEvent(domain.EventTransitionSuperseded, res.Replaced))
		}
	}
	if res.Started {
		offsets := res.Fitted.Offsets()
		n.logger.Debug("transition started",
			"active", n.Active(),
			"blend_time", n.cfg.BlendTime,
			"translation_offset", offsets.Translation,
			"rotation_offset", offsets.Rotation,
		)
		if n.hooks.OnTransitionStart != nil {
			n.hooks.OnTransitionStart(ctx, n.transitionEvent(domain.EventTransitionStart, res.Fitted))
		}
	}
	if res.Completed {
		n.logger.Debug("transition completed", "elapsed", res.Expired.Elapsed)
		if n.hooks.OnTransitionEnd != nil {
			n.hooks.OnTransitionEnd(ctx, n.transitionEvent(domain.EventTransitionEnd, res.Expired))
		}
	}
}

func (n *Node) transitionEvent(typ domain.EventType, tr *transition.Pose) *domain.TransitionEvent {
	return &domain.TransitionEvent{
		EventBase: n.eventBase(typ),
		Active:    n.Active(),
		Bones:     len(tr.Bones),
		BlendTime: n.cfg.BlendTime,
		Elapsed:   tr.Elapsed,
		Offsets:   tr.Offsets(),
	}
}

func (n *Node) eventBase(typ domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      typ,
		Node:      n.name,
	}
}
