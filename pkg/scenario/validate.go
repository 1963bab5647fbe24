package scenario

import (
	"errors"
	"fmt"

	"github.com/aretw0/inertia/pkg/domain"
)

// Validate checks the scenario for structural errors. All problems are reported together.
func (sc *Scenario) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if sc.FrameRate <= 0 {
		fail("frame_rate must be positive, got %g", sc.FrameRate)
	}
	if sc.Duration <= 0 {
		fail("duration must be positive, got %g", sc.Duration)
	}
	if sc.BlendTime <= 0 {
		fail("blend_time must be positive, got %g", sc.BlendTime)
	}
	if !sc.Initial.Valid() {
		fail("initial must be a or b, got %q", sc.Initial)
	}

	if len(sc.Bones) == 0 {
		fail("bones must not be empty")
	}
	seen := make(map[string]bool, len(sc.Bones))
	for _, name := range sc.Bones {
		if seen[name] {
			fail("duplicate bone %q", name)
		}
		seen[name] = true
	}

	bones := sc.BoneMapping()
	for _, id := range []domain.SourceID{domain.SourceA, domain.SourceB} {
		raw, ok := sc.Sources[string(id)]
		if !ok {
			fail("sources.%s is missing", id)
			continue
		}
		if _, err := BuildSource(string(id), raw, bones); err != nil {
			fail("sources.%s: %w", id, err)
		}
	}
	for key := range sc.Sources {
		if !domain.SourceID(key).Valid() {
			fail("unknown source %q", key)
		}
	}

	last := -1.0
	for i, ev := range sc.Schedule {
		if !ev.Select.Valid() {
			fail("schedule[%d]: select must be a or b, got %q", i, ev.Select)
		}
		if ev.At < 0 {
			fail("schedule[%d]: at must not be negative", i)
		}
		if ev.At < last {
			fail("schedule[%d]: events must be ordered by time", i)
		}
		if ev.BlendTime != nil && *ev.BlendTime <= 0 {
			fail("schedule[%d]: blend_time must be positive", i)
		}
		last = ev.At
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidScenario, errors.Join(errs...))
	}
	return nil
}
