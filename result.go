// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
)

// Result is a Voronoi diagram as control points, a deduplicated point buffer
// and edges referring to it by index.
type Result struct {
	ControlPoints []r2.Point
	Points        []r2.Point
	Edges         []vec.Edge
	// EdgeSites holds the control points on both sides of each edge. The
	// second entry is -1 for the outer boundary of a capped diagram.
	EdgeSites [][2]int

	// NOTE: Sort in CCW per Cell
	CellEdges   []int
	CellOffsets []int
}

// Result converts the graph into a Result with per-cell edge grouping.
// Line edges get their fixed point appended to Points.
func (g *Graph) Result() *Result {
	r := &Result{
		ControlPoints: slices.Clone(g.Sites),
		Points:        slices.Clone(g.Vertices),
		Edges:         make([]vec.Edge, len(g.Edges)),
		EdgeSites:     make([][2]int, len(g.Edges)),
	}
	byKey := make(map[vec.Key]int, len(r.Points))
	for i, p := range r.Points {
		byKey[vec.KeyOf(p)] = i
	}
	for i, e := range g.Edges {
		r.EdgeSites[i] = [2]int{e.Left, e.Right}
		switch e.Kind() {
		case vec.Segment:
			r.Edges[i] = vec.NewSegment(e.A, e.B)
		case vec.Ray:
			r.Edges[i] = vec.NewRay(e.A, e.Dir)
		case vec.Line:
			p := g.FixedPoint(i)
			k := vec.KeyOf(p)
			idx, ok := byKey[k]
			if !ok {
				idx = len(r.Points)
				r.Points = append(r.Points, p)
				byKey[k] = idx
			}
			r.Edges[i] = vec.NewLine(idx, e.Dir)
		}
	}
	r.Group()
	return r
}

// Grouped reports whether the per-cell edge grouping is present.
func (r *Result) Grouped() bool {
	return len(r.CellOffsets) == len(r.ControlPoints)+1
}

// Group rebuilds CellEdges and CellOffsets from EdgeSites, ordering the
// edges of every cell counter-clockwise around its control point.
func (r *Result) Group() {
	n := len(r.ControlPoints)
	r.CellOffsets = make([]int, n+1)
	for _, s := range r.EdgeSites {
		for _, c := range s {
			if c >= 0 {
				r.CellOffsets[c+1]++
			}
		}
	}
	for i := range n {
		r.CellOffsets[i+1] += r.CellOffsets[i]
	}
	r.CellEdges = make([]int, r.CellOffsets[n])
	next := slices.Clone(r.CellOffsets[:n])
	for e, s := range r.EdgeSites {
		for k, c := range s {
			if c < 0 || (k == 1 && s[0] == c) {
				continue
			}
			r.CellEdges[next[c]] = e
			next[c]++
		}
	}
	for i := range n {
		edges := r.CellEdges[r.CellOffsets[i]:next[i]]
		site := r.ControlPoints[i]
		angle := make(map[int]float64, len(edges))
		for _, e := range edges {
			p := r.edgeProbe(e).Sub(site)
			angle[e] = math.Atan2(p.Y, p.X)
		}
		sort.SliceStable(edges, func(a, b int) bool {
			return angle[edges[a]] < angle[edges[b]]
		})
	}
	// Compact away slots reserved for edges with the same cell on both sides.
	if slices.Equal(next, r.CellOffsets[1:]) {
		return
	}
	out := make([]int, 0, len(r.CellEdges))
	offsets := make([]int, n+1)
	for i := range n {
		out = append(out, r.CellEdges[r.CellOffsets[i]:next[i]]...)
		offsets[i+1] = len(out)
	}
	r.CellEdges = out
	r.CellOffsets = offsets
}

// edgeProbe returns a point on edge e.
func (r *Result) edgeProbe(e int) r2.Point {
	edge := r.Edges[e]
	a := r.Points[edge.A]
	switch edge.Kind {
	case vec.Segment:
		b := r.Points[edge.B]
		return r2.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	case vec.Ray:
		return a.Add(edge.Dir)
	}
	return a
}

func (r *Result) NumCells() int {
	return len(r.ControlPoints)
}

// Cell returns the view of cell i.
// It returns an error if the index is out of range or the result is not
// grouped.
func (r *Result) Cell(i int) (Cell, error) {
	if !r.Grouped() {
		return Cell{}, ErrNotGrouped
	}
	if i < 0 || i >= r.NumCells() {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, r.NumCells())
	}
	return Cell{idx: i, r: r}, nil
}

// Bounded reports whether every edge is a finite segment.
func (r *Result) Bounded() bool {
	for _, e := range r.Edges {
		if !e.Bounded() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	return &Result{
		ControlPoints: slices.Clone(r.ControlPoints),
		Points:        slices.Clone(r.Points),
		Edges:         slices.Clone(r.Edges),
		EdgeSites:     slices.Clone(r.EdgeSites),
		CellEdges:     slices.Clone(r.CellEdges),
		CellOffsets:   slices.Clone(r.CellOffsets),
	}
}
