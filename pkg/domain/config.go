package domain

// DefaultBlendTime is the blend duration in seconds used when none is configured.
const DefaultBlendTime = 0.4

// SourceID names one of the two inputs of a blend node.
type SourceID string

const (
	SourceA SourceID = "a"
	SourceB SourceID = "b"
)

// Other returns the opposite source.
func (s SourceID) Other() SourceID {
	if s == SourceA {
		return SourceB
	}
	return SourceA
}

// Valid reports whether s names one of the two sources.
func (s SourceID) Valid() bool {
	return s == SourceA || s == SourceB
}

// SourceFor maps the "source A selected" input to a SourceID.
func SourceFor(sourceASelected bool) SourceID {
	if sourceASelected {
		return SourceA
	}
	return SourceB
}

// Config holds the externally driven inputs of a blend node.
// Every field may be re-supplied each frame; none of it is persisted.
type Config struct {
	SourceASelected   bool    `json:"source_a_selected" yaml:"source_a_selected"`
	BlendTime         float64 `json:"blend_time" yaml:"blend_time"`
	ResetOnActivation bool    `json:"reset_on_activation" yaml:"reset_on_activation"`
}

// DefaultConfig returns source A selected with the default blend time.
func DefaultConfig() Config {
	return Config{
		SourceASelected: true,
		BlendTime:       DefaultBlendTime,
	}
}
