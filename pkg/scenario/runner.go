package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/aretw0/inertia/internal/logging"
	"github.com/aretw0/inertia/pkg/domain"
	"github.com/aretw0/inertia/pkg/ports"
	"github.com/aretw0/inertia/pkg/registry"
	"github.com/aretw0/inertia/pkg/transition"
)

// scheduleEpsilon absorbs float drift when matching event times to frame times.
const scheduleEpsilon = 1e-9

// Runner simulates scenarios with a fixed frame step.
type Runner struct {
	registry *registry.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRegistry sets the registry used to build the scenario's node type.
func WithRegistry(r *registry.Registry) RunnerOption {
	return func(rn *Runner) {
		rn.registry = r
	}
}

// WithHooks adds lifecycle hooks to every simulated node.
func WithHooks(hooks domain.LifecycleHooks) RunnerOption {
	return func(rn *Runner) {
		rn.hooks = hooks
	}
}

// WithLogger sets the logger handed to simulated nodes.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(rn *Runner) {
		rn.logger = logger
	}
}

// NewRunner creates a runner backed by the default registry.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: registry.Default(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Build validates sc and returns an initialized node bound to its skeleton, with extra hooks chained in.
func (r *Runner) Build(ctx context.Context, sc *Scenario, name string, hooks domain.LifecycleHooks) (ports.BlendNode, *domain.Frame, error) {
	if err := sc.Validate(); err != nil {
		return nil, nil, err
	}

	bones := sc.BoneMapping()
	a, err := BuildSource(string(domain.SourceA), sc.Sources[string(domain.SourceA)], bones)
	if err != nil {
		return nil, nil, err
	}
	b, err := BuildSource(string(domain.SourceB), sc.Sources[string(domain.SourceB)], bones)
	if err != nil {
		return nil, nil, err
	}

	node, err := r.registry.Build(sc.Node, a, b, registry.Params{
		Name: name,
		Config: domain.Config{
			SourceASelected:   sc.Initial == domain.SourceA,
			BlendTime:         sc.BlendTime,
			ResetOnActivation: sc.ResetOnActivation,
		},
		Hooks:  domain.ChainHooks(hooks, r.hooks),
		Logger: r.logger,
	})
	if err != nil {
		return nil, nil, err
	}

	frame := &domain.Frame{DeltaSeconds: sc.DeltaSeconds(), Bones: bones}
	if err := node.Initialize(ctx, frame); err != nil {
		return nil, nil, err
	}
	if err := node.CacheBones(ctx, frame); err != nil {
		return nil, nil, err
	}
	return node, frame, nil
}

// Run simulates sc from time zero and returns the per-frame trace.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Trace, error) {
	trace := &Trace{Scenario: sc.Name, FrameRate: sc.FrameRate}
	summary := &trace.Summary

	counters := domain.LifecycleHooks{
		OnActivation:           func(context.Context, *domain.ActivationEvent) { summary.Flips++ },
		OnTransitionStart:      func(context.Context, *domain.TransitionEvent) { summary.TransitionsStarted++ },
		OnTransitionEnd:        func(context.Context, *domain.TransitionEvent) { summary.TransitionsCompleted++ },
		OnTransitionSuperseded: func(context.Context, *domain.TransitionEvent) { summary.TransitionsSuperseded++ },
	}

	node, frame, err := r.Build(ctx, sc, sc.Name, counters)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("simulation started", "scenario", sc.Name, "frames", sc.Frames())

	var prev domain.Pose
	next := 0
	for i := 0; i < sc.Frames(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		now := float64(i) * frame.DeltaSeconds
		for next < len(sc.Schedule) && sc.Schedule[next].At <= now+scheduleEpsilon {
			ev := sc.Schedule[next]
			node.SetSourceASelected(ev.Select == domain.SourceA)
			if ev.BlendTime != nil {
				node.SetBlendTime(*ev.BlendTime)
			}
			next++
		}

		if err := node.Update(ctx, frame); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		pose, err := node.Evaluate(ctx, frame)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}

		sample := FrameSample{
			Frame:  i,
			Time:   now,
			Active: node.Active(),
			Bones:  SamplePose(pose, frame.Bones),
		}
		if tr := node.Transition(); tr != nil {
			sample.Blending = true
			sample.Elapsed = tr.Elapsed
		}
		trace.Samples = append(trace.Samples, sample)

		if prev != nil {
			summary.MaxTranslationStep = math.Max(summary.MaxTranslationStep, maxTranslationStep(prev, pose))
			summary.MaxRotationStep = math.Max(summary.MaxRotationStep, maxRotationStep(prev, pose))
		}
		prev = pose
	}

	summary.Frames = len(trace.Samples)
	r.logger.Debug("simulation finished", "scenario", sc.Name, "flips", summary.Flips)
	return trace, nil
}

// SamplePose converts a pose into named bone samples.
func SamplePose(pose domain.Pose, bones *domain.BoneMapping) []BoneSample {
	out := make([]BoneSample, len(pose))
	for i, bt := range pose {
		out[i] = BoneSample{
			Bone:        bones.Name(i),
			Translation: bt.Translation,
			Rotation:    [4]float64{bt.Rotation.W, bt.Rotation.V[0], bt.Rotation.V[1], bt.Rotation.V[2]},
			Scale:       bt.Scale,
		}
	}
	return out
}

func maxTranslationStep(prev, cur domain.Pose) float64 {
	var step float64
	for i := range cur {
		step = math.Max(step, cur[i].Translation.Sub(prev[i].Translation).Len())
	}
	return step
}

func maxRotationStep(prev, cur domain.Pose) float64 {
	var step float64
	for i := range cur {
		_, angle := transition.AxisAngle(cur[i].Rotation.Mul(prev[i].Rotation.Inverse()))
		step = math.Max(step, math.Abs(transition.WrapAngle(angle)))
	}
	return step
}
