package runtime

import (
	"errors"
	"testing"

	"github.com/aretw0/inertia/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivation_Sample(t *testing.T) {
	var initialized []domain.SourceID
	init := func(id domain.SourceID) error {
		initialized = append(initialized, id)
		return nil
	}

	a := NewActivation(true)
	assert.Equal(t, domain.SourceA, a.Active())

	flipped, err := a.Sample(true, true, init)
	require.NoError(t, err)
	assert.False(t, flipped)

	flipped, err = a.Sample(false, false, init)
	require.NoError(t, err)
	assert.True(t, flipped)
	assert.Equal(t, domain.SourceB, a.Active())
	assert.Empty(t, initialized, "no reinit without reset")

	flipped, err = a.Sample(true, true, init)
	require.NoError(t, err)
	assert.True(t, flipped)
	assert.Equal(t, []domain.SourceID{domain.SourceA}, initialized, "only the branch becoming active is reset")
}

func TestActivation_Arm(t *testing.T) {
	a := NewActivation(true)
	a.Arm(false)
	assert.Equal(t, domain.SourceB, a.Active())

	flipped, err := a.Sample(false, false, nil)
	require.NoError(t, err)
	assert.False(t, flipped)
}

func TestActivation_InitError(t *testing.T) {
	a := NewActivation(true)
	boom := errors.New("boom")

	flipped, err := a.Sample(false, true, func(domain.SourceID) error { return boom })
	assert.True(t, flipped, "the flip still happens")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.SourceB, a.Active())
}
