package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/inertia/pkg/domain"
)

// LogHooks returns lifecycle hooks that log every event at Info level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	transition := func(msg string) func(context.Context, *domain.TransitionEvent) {
		return func(ctx context.Context, e *domain.TransitionEvent) {
			logger.InfoContext(ctx, msg,
				"node", e.Node,
				"active", e.Active,
				"elapsed", e.Elapsed,
				"blend_time", e.BlendTime,
				"rotation_offset", e.Offsets.Rotation,
			)
		}
	}

	return domain.LifecycleHooks{
		OnActivation: func(ctx context.Context, e *domain.ActivationEvent) {
			logger.InfoContext(ctx, "activation", "node", e.Node, "active", e.Active, "reset", e.Reset)
		},
		OnTransitionStart:      transition("transition_start"),
		OnTransitionEnd:        transition("transition_end"),
		OnTransitionSuperseded: transition("transition_superseded"),
	}
}
