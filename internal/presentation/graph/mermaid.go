package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/inertia/pkg/domain"
)

// Overlay contains dynamic state data to visualize on the debug tree.
type Overlay struct {
	// Current lists the item indices to highlight.
	Current []int
}

// ActiveOverlay highlights the root item and the child of the active source.
// A blend node lists source A before source B directly below its own line.
func ActiveOverlay(items []domain.DebugItem, active domain.SourceID) *Overlay {
	if len(items) == 0 {
		return nil
	}
	o := &Overlay{Current: []int{0}}

	want := 0
	if active == domain.SourceB {
		want = 1
	}
	child := 0
	for i := 1; i < len(items); i++ {
		if items[i].Depth != items[0].Depth+1 {
			continue
		}
		if child == want {
			o.Current = append(o.Current, i)
			break
		}
		child++
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart of a gathered debug tree.
// Every item becomes a node linked to the closest preceding item one level up.
func GenerateMermaid(items []domain.DebugItem, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	last := make(map[int]int)
	for i, item := range items {
		id := nodeID(i)
		opener, closer := "[", "]"
		if item.Depth == 0 {
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, escapeLabel(item.Label), closer)

		if parent, ok := last[item.Depth-1]; ok && item.Depth > 0 {
			fmt.Fprintf(&sb, "    %s --> %s\n", nodeID(parent), id)
		}
		last[item.Depth] = i
	}

	if overlay != nil && len(overlay.Current) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, i := range overlay.Current {
			if i >= 0 && i < len(items) {
				fmt.Fprintf(&sb, "    class %s current;\n", nodeID(i))
			}
		}
	}

	return sb.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("d%d", i)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
