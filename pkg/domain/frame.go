package domain

// Frame is the per-frame context handed to every lifecycle callback.
type Frame struct {
	// DeltaSeconds is the time elapsed since the previous frame.
	DeltaSeconds float64

	// Bones maps bone names to pose indices. It is fixed for the lifetime of a node.
	Bones *BoneMapping
}

// BoneMapping binds bone names to pose indices.
// It is immutable after construction and safe to share between goroutines.
type BoneMapping struct {
	names []string
	index map[string]int
}

// NewBoneMapping builds a mapping from ordered bone names.
func NewBoneMapping(names ...string) *BoneMapping {
	m := &BoneMapping{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	copy(m.names, names)
	for i, name := range names {
		m.index[name] = i
	}
	return m
}

// Len returns the bone count. A nil mapping has no bones.
func (m *BoneMapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Index returns the pose index of the named bone.
func (m *BoneMapping) Index(name string) (int, bool) {
	if m == nil {
		return 0, false
	}
	i, ok := m.index[name]
	return i, ok
}

// Name returns the bone name at index i, or "" when out of range.
func (m *BoneMapping) Name(i int) string {
	if m == nil || i < 0 || i >= len(m.names) {
		return ""
	}
	return m.names[i]
}

// Names returns a copy of the ordered bone names.
func (m *BoneMapping) Names() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}
