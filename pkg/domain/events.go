package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventActivation           EventType = "activation"
	EventTransitionStart      EventType = "transition_start"
	EventTransitionEnd        EventType = "transition_end"
	EventTransitionSuperseded EventType = "transition_superseded"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Node      string    `json:"node"`
}

// ActivationEvent is emitted when the selected source flips.
type ActivationEvent struct {
	EventBase
	Active SourceID `json:"active"`
	Reset  bool     `json:"reset"`
}

// ChannelOffsets holds the largest initial offset per channel across all bones.
// Translation and scale are distances, rotation is an angle in radians.
type ChannelOffsets struct {
	Translation float64 `json:"translation"`
	Rotation    float64 `json:"rotation"`
	Scale       float64 `json:"scale"`
}

// TransitionEvent describes a pose transition when it starts, ends or is replaced.
type TransitionEvent struct {
	EventBase
	Active    SourceID       `json:"active"`
	Bones     int            `json:"bones"`
	BlendTime float64        `json:"blend_time"`
	Elapsed   float64        `json:"elapsed"`
	Offsets   ChannelOffsets `json:"offsets"`
}

// LifecycleHooks defines callbacks for node observability.
// Hooks run synchronously inside Update/Evaluate and must not block.
type LifecycleHooks struct {
	OnActivation           func(context.Context, *ActivationEvent)
	OnTransitionStart      func(context.Context, *TransitionEvent)
	OnTransitionEnd        func(context.Context, *TransitionEvent)
	OnTransitionSuperseded func(context.Context, *TransitionEvent)
}

// ChainHooks returns hooks that invoke every given hook set in order.
func ChainHooks(sets ...LifecycleHooks) LifecycleHooks {
	var out LifecycleHooks
	for _, h := range sets {
		out.OnActivation = chain(out.OnActivation, h.OnActivation)
		out.OnTransitionStart = chain(out.OnTransitionStart, h.OnTransitionStart)
		out.OnTransitionEnd = chain(out.OnTransitionEnd, h.OnTransitionEnd)
		out.OnTransitionSuperseded = chain(out.OnTransitionSuperseded, h.OnTransitionSuperseded)
	}
	return out
}

func chain[E any](first, second func(context.Context, E)) func(context.Context, E) {
	switch {
	case first == nil:
		return second
	case second == nil:
		return first
	}
	return func(ctx context.Context, e E) {
		first(ctx, e)
		second(ctx, e)
	}
}
