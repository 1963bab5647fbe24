package inertia_test

import (
	"context"
	"fmt"

	"github.com/aretw0/inertia"
	"github.com/aretw0/inertia/pkg/adapters/clip"
	"github.com/aretw0/inertia/pkg/domain"
	"github.com/go-gl/mathgl/mgl64"
)

func Example() {
	ctx := context.Background()
	frame := &domain.Frame{DeltaSeconds: 0.1, Bones: domain.NewBoneMapping("root")}

	idle := domain.NewPose(1)
	run := domain.NewPose(1)
	run[0].Translation = mgl64.Vec3{10, 0, 0}

	node, err := inertia.New(clip.NewStatic("idle", idle), clip.NewStatic("run", run), inertia.WithBlendTime(0.5))
	if err != nil {
		panic(err)
	}
	_ = node.Initialize(ctx, frame)
	_ = node.CacheBones(ctx, frame)

	for i := 0; i < 8; i++ {
		if i == 2 {
			node.SetSourceASelected(false)
		}
		_ = node.Update(ctx, frame)
		pose, _ := node.Evaluate(ctx, frame)
		fmt.Printf("frame %d: source %s x=%.3f\n", i, node.Active(), pose[0].Translation.X())
	}
	// Output:
	// frame 0: source a x=0.000
	// frame 1: source a x=0.000
	// frame 2: source b x=2.627
	// frame 3: source b x=6.630
	// frame 4: source b x=9.130
	// frame 5: source b x=9.933
	// frame 6: source b x=10.000
	// frame 7: source b x=10.000
}
