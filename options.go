package inertia

import (
	"log/slog"

	"github.com/aretw0/inertia/pkg/domain"
)

// Option defines a functional option for configuring a Node.
type Option func(*Node)

// WithName sets the node name used in logs, events and debug output (default: "InertialBlend").
func WithName(name string) Option {
	return func(n *Node) {
		n.name = name
	}
}

// WithConfig replaces the whole initial configuration.
func WithConfig(cfg domain.Config) Option {
	return func(n *Node) {
		n.cfg = cfg
	}
}

// WithBlendTime sets the initial blend duration in seconds.
func WithBlendTime(seconds float64) Option {
	return func(n *Node) {
		n.cfg.BlendTime = seconds
	}
}

// WithSourceASelected sets which source is active before the first update.
func WithSourceASelected(selected bool) Option {
	return func(n *Node) {
		n.cfg.SourceASelected = selected
	}
}

// WithResetOnActivation makes a flip reinitialize the branch becoming active.
func WithResetOnActivation(reset bool) Option {
	return func(n *Node) {
		n.cfg.ResetOnActivation = reset
	}
}

// WithBoneCount binds the node to a bone count before CacheBones is called.
func WithBoneCount(bones int) Option {
	return func(n *Node) {
		n.bones = bones
	}
}

// WithLogger sets a custom structured logger for the node.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Node) {
		n.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(n *Node) {
		n.hooks = hooks
	}
}
