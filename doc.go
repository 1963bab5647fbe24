/*
Package inertia implements an inertialization blend node for skeletal animation graphs.

When the selected pose source switches, the node does not cross-fade between the two sources.
Instead it fits, per bone channel, a quintic decay curve that starts exactly at the pose that was
last displayed (with its estimated velocity) and converges to zero offset from the newly active
source within the configured blend time. Position and velocity stay continuous and no
blend-of-animations artifacts appear, because only one source is ever evaluated.

# Concept

The host graph owns the skeleton and the pose sources, and drives every node through a fixed
lifecycle once per frame: Initialize → CacheBones → Update → Evaluate. The node keeps the two
most recent output poses to estimate velocity, detects flips of the "source A selected" input,
and blends the active source's pose until the transition expires.

# Usage

	bones := domain.NewBoneMapping("root", "spine", "head")
	node, err := inertia.New(idle, run, inertia.WithBlendTime(0.3))
	if err != nil {
		log.Fatal(err)
	}

	frame := &domain.Frame{DeltaSeconds: 1.0 / 60, Bones: bones}
	_ = node.Initialize(ctx, frame)
	_ = node.CacheBones(ctx, frame)

	for {
		node.SetSourceASelected(!wantsToRun)
		if err := node.Update(ctx, frame); err != nil {
			log.Fatal(err)
		}
		pose, err := node.Evaluate(ctx, frame)
		if err != nil {
			log.Fatal(err)
		}
		render(pose)
	}

# Concurrency

A Node is not safe for concurrent use. Many nodes may be evaluated in parallel on different
goroutines as long as each instance is driven by one goroutine at a time; see package session
for a manager that enforces this.
*/
package inertia
