// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"math"
	"slices"
	"testing"

	"github.com/2dChan/r2voronoi/clip"
	"github.com/2dChan/r2voronoi/vec"
	"github.com/google/go-cmp/cmp"
)

// Cell

func TestCell_SiteIndex(t *testing.T) {
	r := mustResult(t, 100)
	for i := range r.ControlPoints {
		c := mustCell(t, r, i)
		if got := c.SiteIndex(); got != i {
			t.Errorf("c.SiteIndex() = %v, want %v", got, i)
		}
	}
}

func TestCell_Site(t *testing.T) {
	r := mustResult(t, 100)
	for i, want := range r.ControlPoints {
		c := mustCell(t, r, i)
		if got := c.Site(); got != want {
			t.Errorf("c.Site() = %v, want %v", got, want)
		}
	}
}

func TestCell_NumEdges(t *testing.T) {
	r := mustResult(t, 100)
	for i := range r.ControlPoints {
		c := mustCell(t, r, i)
		want := r.CellOffsets[i+1] - r.CellOffsets[i]
		if got := c.NumEdges(); got != want {
			t.Errorf("c.NumEdges() = %v, want %v", got, want)
		}
		if got := c.NumNeighbors(); got != want {
			t.Errorf("c.NumNeighbors() = %v, want %v", got, want)
		}
	}
}

func TestCell_EdgeIndices(t *testing.T) {
	r := mustResult(t, 100)
	for i := range r.ControlPoints {
		c := mustCell(t, r, i)
		want := r.CellEdges[r.CellOffsets[i]:r.CellOffsets[i+1]]
		got := c.EdgeIndices()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("c.EdgeIndices() mismatch (-want +got):\n%s", diff)
		}
		for _, e := range got {
			if s := r.EdgeSites[e]; s[0] != i && s[1] != i {
				t.Errorf("cell %d lists edge %d between sites %v", i, e, s)
			}
		}
	}
}

func TestCell_EdgeIndices_CounterClockwise(t *testing.T) {
	r := mustResult(t, 100)
	for i := range r.ControlPoints {
		c := mustCell(t, r, i)
		prev := -math.Pi - 1
		for _, e := range c.EdgeIndices() {
			p := r.edgeProbe(e).Sub(c.Site())
			a := math.Atan2(p.Y, p.X)
			if a < prev {
				t.Errorf("cell %d: edge %d at angle %v follows angle %v", i, e, a, prev)
			}
			prev = a
		}
	}
}

func TestCell_Edge(t *testing.T) {
	r := mustResult(t, 100)
	for i := range r.ControlPoints {
		c := mustCell(t, r, i)
		for j, idx := range c.EdgeIndices() {
			got, err := c.Edge(j)
			if err != nil {
				t.Fatalf("c.Edge(%d) error = %v, want nil", j, err)
			}
			if got != r.Edges[idx] {
				t.Errorf("c.Edge(%d) = %v, want %v", j, got, r.Edges[idx])
			}
		}
	}
}

func TestCell_Edge_OutOfRange(t *testing.T) {
	r := mustResult(t, 10)
	c := mustCell(t, r, 0)
	for _, i := range []int{-1, c.NumEdges()} {
		if _, err := c.Edge(i); err == nil {
			t.Errorf("c.Edge(%d) error = nil, want non-nil", i)
		}
	}
}

func TestCell_VertexIndices(t *testing.T) {
	r := mustResult(t, 100)
	for i := range r.ControlPoints {
		c := mustCell(t, r, i)
		idx := c.VertexIndices()
		seen := make(map[int]bool)
		for _, v := range idx {
			if seen[v] {
				t.Errorf("cell %d: vertex %d listed twice", i, v)
			}
			seen[v] = true
		}
		for j := 1; j < len(idx); j++ {
			a := r.Points[idx[j-1]].Sub(c.Site())
			b := r.Points[idx[j]].Sub(c.Site())
			if math.Atan2(a.Y, a.X) > math.Atan2(b.Y, b.X) {
				t.Errorf("cell %d: vertices %v are not counter-clockwise", i, idx)
				break
			}
		}
	}
}

func TestCell_Polygon(t *testing.T) {
	r := mustResult(t, 100)
	bounded := 0
	for i := range r.ControlPoints {
		c := mustCell(t, r, i)
		poly, err := c.Polygon()
		if !c.Bounded() {
			if err == nil {
				t.Errorf("cell %d: c.Polygon() error = nil for unbounded cell", i)
			}
			continue
		}
		bounded++
		if err != nil {
			t.Fatalf("c.Polygon() error = %v, want nil", err)
		}
		if len(poly) != c.NumEdges() {
			t.Errorf("cell %d: len(c.Polygon()) = %v, want %v", i, len(poly), c.NumEdges())
		}
		if clip.SignedArea(poly) <= 0 {
			t.Errorf("cell %d: polygon is not counter-clockwise", i)
		}
		if !clip.ContainsPoint(poly, c.Site()) {
			t.Errorf("cell %d: polygon does not contain its site", i)
		}
	}
	if bounded == 0 {
		t.Errorf("no bounded cells among 100 random sites")
	}
}

func TestCell_Neighbors(t *testing.T) {
	r := mustResult(t, 100)
	for i := range r.ControlPoints {
		c := mustCell(t, r, i)
		neighbors := c.NeighborIndices()
		if len(neighbors) != c.NumEdges() {
			t.Fatalf("len(c.NeighborIndices()) = %v, want %v", len(neighbors), c.NumEdges())
		}
		for j, want := range neighbors {
			n, err := c.Neighbor(j)
			if err != nil {
				t.Fatalf("c.Neighbor(%d) error = %v, want nil", j, err)
			}
			if got := n.SiteIndex(); got != want {
				t.Errorf("c.Neighbor(%d).SiteIndex() = %v, want %v", j, got, want)
			}
			// Adjacency is symmetric.
			if !slices.Contains(n.NeighborIndices(), i) {
				t.Errorf("cell %d is a neighbor of %d but not vice versa", want, i)
			}
		}
	}
}

func TestCell_Neighbor_Errors(t *testing.T) {
	r := mustResult(t, 10)
	c := mustCell(t, r, 0)
	for _, i := range []int{-1, c.NumEdges()} {
		if _, err := c.Neighbor(i); err == nil {
			t.Errorf("c.Neighbor(%d) error = nil, want non-nil", i)
		}
	}

	capped, err := CapVoronoi(r)
	if err != nil {
		t.Fatalf("CapVoronoi(...) error = %v, want nil", err)
	}
	outer := 0
	for i := range capped.ControlPoints {
		c := mustCell(t, capped, i)
		for j, n := range c.NeighborIndices() {
			if n >= 0 {
				continue
			}
			outer++
			if _, err := c.Neighbor(j); err == nil {
				t.Errorf("cell %d: c.Neighbor(%d) across the outer boundary error = nil, want non-nil", i, j)
			}
		}
	}
	if outer == 0 {
		t.Errorf("capped diagram has no outer boundary edges")
	}
}

func TestCell_Bounded_Capped(t *testing.T) {
	r := mustResult(t, 50)
	capped, err := CapVoronoi(r)
	if err != nil {
		t.Fatalf("CapVoronoi(...) error = %v, want nil", err)
	}
	for i := range capped.ControlPoints {
		if c := mustCell(t, capped, i); !c.Bounded() {
			t.Errorf("capped cell %d is unbounded", i)
		}
	}
	for i, e := range capped.Edges {
		if e.Kind != vec.Segment {
			t.Errorf("capped.Edges[%d].Kind = %v, want %v", i, e.Kind, vec.Segment)
		}
	}
}

// Helpers

func mustResult(t *testing.T, n int) *Result {
	t.Helper()
	return mustComputeVoronoi(t, n).Result()
}

func mustCell(t *testing.T, r *Result, i int) Cell {
	t.Helper()
	c, err := r.Cell(i)
	if err != nil {
		t.Fatalf("r.Cell(%d) error = %v, want nil", i, err)
	}
	return c
}
