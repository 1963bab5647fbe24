package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/inertia/internal/presentation/graph"
	"github.com/aretw0/inertia/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func blendTree() []domain.DebugItem {
	var d domain.DebugData
	d.Add(`InertialBlend(active: b, "blending")`)
	d.Branch(func() {
		d.Add("Static(idle)")
		d.Add("Clip(run, t=0.100/1.000)")
	})
	return d.Items()
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.DebugItem
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name:  "Root Shape And Edges",
			items: blendTree(),
			contains: []string{
				"graph TD\n",
				`d0(("InertialBlend(active: b, 'blending')"))`,
				`d1["Static(idle)"]`,
				"d0 --> d1",
				"d0 --> d2",
			},
			excludes: []string{"d1 --> d2", "classDef"},
		},
		{
			name: "Nested Blend",
			items: []domain.DebugItem{
				{Depth: 0, Label: "outer"},
				{Depth: 1, Label: "inner"},
				{Depth: 2, Label: "leaf a"},
				{Depth: 2, Label: "leaf b"},
				{Depth: 1, Label: "sibling"},
			},
			contains: []string{"d0 --> d1", "d1 --> d2", "d1 --> d3", "d0 --> d4"},
		},
		{
			name:    "Overlay",
			items:   blendTree(),
			overlay: &graph.Overlay{Current: []int{0, 2, 9}},
			contains: []string{
				"classDef current",
				"class d0 current;",
				"class d2 current;",
			},
			excludes: []string{"class d9 current;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.items, tt.overlay)
			for _, want := range tt.contains {
				assert.True(t, strings.Contains(got, want), "missing %q in:\n%s", want, got)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestActiveOverlay(t *testing.T) {
	items := blendTree()

	assert.Equal(t, []int{0, 1}, graph.ActiveOverlay(items, domain.SourceA).Current)
	assert.Equal(t, []int{0, 2}, graph.ActiveOverlay(items, domain.SourceB).Current)
	assert.Nil(t, graph.ActiveOverlay(nil, domain.SourceA))
}
