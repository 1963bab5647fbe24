package runtime

import (
	"github.com/aretw0/inertia/pkg/domain"
)

// Initializer re-establishes the start state of one source branch.
type Initializer func(domain.SourceID) error

// Activation tracks which source is active and detects selection flips.
// It is a two-state machine whose only edge, "input flipped", is always taken.
type Activation struct {
	lastA bool
}

// NewActivation returns a controller with the given source selected.
func NewActivation(sourceASelected bool) *Activation {
	return &Activation{lastA: sourceASelected}
}

// Arm records the current input without reporting a flip. Used on (re)initialization.
func (a *Activation) Arm(sourceASelected bool) {
	a.lastA = sourceASelected
}

// Active returns the currently active source.
func (a *Activation) Active() domain.SourceID {
	return domain.SourceFor(a.lastA)
}

// Sample compares the input with the previous sample and reports a flip.
// On a flip with reset set, the branch becoming active is reinitialized through init.
func (a *Activation) Sample(sourceASelected, reset bool, init Initializer) (bool, error) {
	if sourceASelected == a.lastA {
		return false, nil
	}
	a.lastA = sourceASelected

	if reset && init != nil {
		if err := init(a.Active()); err != nil {
			return true, err
		}
	}
	return true, nil
}
