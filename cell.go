// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a cell in a Result.
// The cell's index corresponds to the index of its control point in the Result's ControlPoints.
type Cell struct {
	idx int
	r   *Result
}

// SiteIndex returns the index of the control point in the Result's ControlPoints.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the control point of the cell.
func (c Cell) Site() r2.Point {
	return c.r.ControlPoints[c.idx]
}

// NumEdges returns the number of edges bounding the cell.
// This equals the number of neighbors.
func (c Cell) NumEdges() int {
	return c.r.CellOffsets[c.idx+1] - c.r.CellOffsets[c.idx]
}

// EdgeIndices returns the indices of the edges bounding the cell in the Result's Edges,
// sorted in counter-clockwise order around the control point.
func (c Cell) EdgeIndices() []int {
	return c.r.CellEdges[c.r.CellOffsets[c.idx]:c.r.CellOffsets[c.idx+1]]
}

// Edge returns the edge at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Edge(i int) (vec.Edge, error) {
	start := c.r.CellOffsets[c.idx]
	end := c.r.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return vec.Edge{}, fmt.Errorf("Edge: index %d out of range [0 %d)", i, end-start)
	}
	return c.r.Edges[c.r.CellEdges[start+i]], nil
}

// Bounded reports whether every edge of the cell is a finite segment.
func (c Cell) Bounded() bool {
	for _, e := range c.EdgeIndices() {
		if !c.r.Edges[e].Bounded() {
			return false
		}
	}
	return true
}

// VertexIndices returns the distinct point indices referenced by the cell's
// edges, sorted in counter-clockwise order around the control point.
func (c Cell) VertexIndices() []int {
	site := c.Site()
	seen := make(map[int]bool)
	var idx []int
	for _, e := range c.EdgeIndices() {
		edge := c.r.Edges[e]
		ends := []int{edge.A}
		if edge.Kind == vec.Segment {
			ends = append(ends, edge.B)
		}
		for _, v := range ends {
			if !seen[v] {
				seen[v] = true
				idx = append(idx, v)
			}
		}
	}
	angle := func(v int) float64 {
		p := c.r.Points[v].Sub(site)
		return math.Atan2(p.Y, p.X)
	}
	sort.Slice(idx, func(a, b int) bool {
		return angle(idx[a]) < angle(idx[b])
	})
	return idx
}

// Polygon returns the vertices of a bounded cell in counter-clockwise order.
// It returns an error for unbounded cells.
func (c Cell) Polygon() ([]r2.Point, error) {
	if !c.Bounded() {
		return nil, errors.New("Polygon: cell is unbounded")
	}
	idx := c.VertexIndices()
	poly := make([]r2.Point, len(idx))
	for i, v := range idx {
		poly[i] = c.r.Points[v]
	}
	return poly, nil
}

// NumNeighbors returns the number of edges bounding the cell, including the
// outer boundary of a capped diagram.
// This equals the number of edges.
func (c Cell) NumNeighbors() int {
	return c.NumEdges()
}

// NeighborIndices returns, per edge, the index of the cell across it,
// or -1 on the outer boundary of a capped diagram.
func (c Cell) NeighborIndices() []int {
	edges := c.EdgeIndices()
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = c.other(e)
	}
	return out
}

// Neighbor returns the neighboring cell across the edge at the specified index.
// It returns an error if the index is out of range or the edge lies on the
// outer boundary.
func (c Cell) Neighbor(i int) (Cell, error) {
	start := c.r.CellOffsets[c.idx]
	end := c.r.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return Cell{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, end-start)
	}
	o := c.other(c.r.CellEdges[start+i])
	if o < 0 {
		return Cell{}, fmt.Errorf("Neighbor: edge %d lies on the outer boundary", i)
	}
	return c.r.Cell(o)
}

func (c Cell) other(e int) int {
	s := c.r.EdgeSites[e]
	if s[0] == c.idx {
		return s[1]
	}
	return s[0]
}
