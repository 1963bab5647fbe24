package runtime

import (
	"testing"

	"github.com/aretw0/inertia/pkg/domain"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func marker(x float64) domain.Pose {
	p := domain.NewPose(1)
	p[0].Translation = mgl64.Vec3{x, 0, 0}
	return p
}

func TestCacheRing_Ordering(t *testing.T) {
	r := NewCacheRing(1)
	assert.False(t, r.BothEnabled())

	r.Record(marker(1), 0.1)
	assert.False(t, r.BothEnabled())
	assert.True(t, r.Primary().Enabled)
	assert.False(t, r.Secondary().Enabled)

	r.Record(marker(2), 0.2)
	assert.True(t, r.BothEnabled())
	assert.Equal(t, marker(2), r.Primary().Pose)
	assert.Equal(t, marker(1), r.Secondary().Pose)
	assert.Equal(t, 0.2, r.Primary().DeltaSeconds)

	r.Record(marker(3), 0.3)
	assert.Equal(t, marker(3), r.Primary().Pose)
	assert.Equal(t, marker(2), r.Secondary().Pose)
	assert.Equal(t, 0.2, r.Secondary().DeltaSeconds)
}

func TestCacheRing_RecordCopies(t *testing.T) {
	r := NewCacheRing(1)
	p := marker(1)
	r.Record(p, 0.1)

	p[0].Translation = mgl64.Vec3{99, 0, 0}
	assert.Equal(t, 1.0, r.Primary().Pose[0].Translation.X())
}

func TestCacheRing_Reset(t *testing.T) {
	r := NewCacheRing(1)
	r.Record(marker(1), 0.1)
	r.Record(marker(2), 0.1)

	r.Reset()
	assert.False(t, r.Primary().Enabled)
	assert.False(t, r.Secondary().Enabled)
	assert.Empty(t, r.Primary().Pose)

	r.Record(marker(3), 0.1)
	assert.False(t, r.BothEnabled())
	assert.Equal(t, marker(3), r.Primary().Pose)
}
