package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/inertia/pkg/domain"
)

// BoneSample is the output transform of one bone. Rotation is ordered w, x, y, z.
type BoneSample struct {
	Bone        string     `json:"bone"`
	Translation [3]float64 `json:"translation"`
	Rotation    [4]float64 `json:"rotation"`
	Scale       [3]float64 `json:"scale"`
}

// FrameSample is the node state and output after one simulated frame.
type FrameSample struct {
	Frame    int             `json:"frame"`
	Time     float64         `json:"time"`
	Active   domain.SourceID `json:"active"`
	Blending bool            `json:"blending"`
	Elapsed  float64         `json:"elapsed,omitempty"`
	Bones    []BoneSample    `json:"bones"`
}

// Summary aggregates a trace.
type Summary struct {
	Frames                int     `json:"frames"`
	Flips                 int     `json:"flips"`
	TransitionsStarted    int     `json:"transitions_started"`
	TransitionsSuperseded int     `json:"transitions_superseded"`
	TransitionsCompleted  int     `json:"transitions_completed"`
	MaxTranslationStep    float64 `json:"max_translation_step"`
	MaxRotationStep       float64 `json:"max_rotation_step"`
}

// Trace is the result of a simulation run.
type Trace struct {
	Scenario  string        `json:"scenario"`
	FrameRate float64       `json:"frame_rate"`
	Samples   []FrameSample `json:"samples"`
	Summary   Summary       `json:"summary"`
}

// WriteJSONL writes one JSON object per frame sample.
func (t *Trace) WriteJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for i := range t.Samples {
		if err := enc.Encode(&t.Samples[i]); err != nil {
			return fmt.Errorf("failed to write frame %d: %w", t.Samples[i].Frame, err)
		}
	}
	return nil
}

// Markdown renders the summary as a markdown report.
func (t *Trace) Markdown() string {
	s := t.Summary
	var b strings.Builder

	fmt.Fprintf(&b, "# Simulation: %s\n\n", t.Scenario)
	fmt.Fprintf(&b, "%d frames at %g fps.\n\n", s.Frames, t.FrameRate)
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Selection flips | %d |\n", s.Flips)
	fmt.Fprintf(&b, "| Transitions started | %d |\n", s.TransitionsStarted)
	fmt.Fprintf(&b, "| Transitions superseded | %d |\n", s.TransitionsSuperseded)
	fmt.Fprintf(&b, "| Transitions completed | %d |\n", s.TransitionsCompleted)
	fmt.Fprintf(&b, "| Max translation step | %.4f |\n", s.MaxTranslationStep)
	fmt.Fprintf(&b, "| Max rotation step (rad) | %.4f |\n", s.MaxRotationStep)

	if len(t.Samples) > 0 {
		b.WriteString("\n## Timeline\n\n")
		prev := domain.SourceID("")
		for _, fs := range t.Samples {
			if fs.Active != prev {
				fmt.Fprintf(&b, "- `%.3fs` frame %d: source **%s** active\n", fs.Time, fs.Frame, fs.Active)
				prev = fs.Active
			}
		}
	}
	return b.String()
}
