package domain

// DebugItem is one line of a gathered debug tree.
type DebugItem struct {
	Depth int    `json:"depth"`
	Label string `json:"label"`
}

// DebugData collects an indented debug tree from a node and its children.
type DebugData struct {
	items []DebugItem
	depth int
}

// Add appends a line at the current depth.
func (d *DebugData) Add(label string) {
	d.items = append(d.items, DebugItem{Depth: d.depth, Label: label})
}

// Branch runs fn with the depth increased by one, so items added by children nest under the last line.
func (d *DebugData) Branch(fn func()) {
	d.depth++
	defer func() { d.depth-- }()
	fn()
}

// Items returns the gathered lines in order.
func (d *DebugData) Items() []DebugItem {
	out := make([]DebugItem, len(d.items))
	copy(out, d.items)
	return out
}
