// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"math"

	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
)

const (
	// Unknown marks an edge end that the sweep has not reached yet.
	Unknown = -1
	// Infinite marks an edge end at infinity.
	Infinite = -2
)

// GraphEdge is a Voronoi edge between the cells of sites Left and Right.
// A and B are vertex indices, or Infinite. Rays keep their finite vertex in A.
type GraphEdge struct {
	Left, Right int
	A, B        int
	// Dir is the unit direction of a ray or a line.
	Dir r2.Point
}

// Kind returns whether the edge is a segment, a ray or a full line.
func (e GraphEdge) Kind() vec.EdgeKind {
	switch {
	case e.A >= 0 && e.B >= 0:
		return vec.Segment
	case e.A >= 0 || e.B >= 0:
		return vec.Ray
	}
	return vec.Line
}

// Graph is a Voronoi diagram as a planar graph.
// Sites keep the caller's order; edges refer to sites and vertices by index.
type Graph struct {
	Sites    []r2.Point
	Vertices []r2.Point
	Edges    []GraphEdge
}

func (g *Graph) NumCells() int {
	return len(g.Sites)
}

// Direction returns the unit direction of edge i.
func (g *Graph) Direction(i int) r2.Point {
	e := g.Edges[i]
	if e.Kind() == vec.Segment {
		return g.Vertices[e.B].Sub(g.Vertices[e.A]).Normalize()
	}
	return e.Dir
}

// Length returns the length of edge i, +Inf for rays and lines.
func (g *Graph) Length(i int) float64 {
	e := g.Edges[i]
	if e.Kind() != vec.Segment {
		return math.Inf(1)
	}
	return vec.Dist(g.Vertices[e.A], g.Vertices[e.B])
}

// FixedPoint returns a point on edge i: its first vertex, or the midpoint of
// its sites for a line.
func (g *Graph) FixedPoint(i int) r2.Point {
	e := g.Edges[i]
	if e.A >= 0 {
		return g.Vertices[e.A]
	}
	l, r := g.Sites[e.Left], g.Sites[e.Right]
	return vec.P((l.X+r.X)/2, (l.Y+r.Y)/2)
}

func (g *Graph) addVertex(p r2.Point) int {
	g.Vertices = append(g.Vertices, vec.RoundPoint(p))
	return len(g.Vertices) - 1
}

func (g *Graph) addEdge(left, right int) int {
	g.Edges = append(g.Edges, GraphEdge{Left: left, Right: right, A: Unknown, B: Unknown})
	return len(g.Edges) - 1
}

// attach records v as the next known end of edge e. It reports false if
// both ends are already known.
func (g *Graph) attach(e, v int) bool {
	edge := &g.Edges[e]
	switch {
	case edge.A == Unknown:
		edge.A = v
	case edge.B == Unknown:
		edge.B = v
	default:
		return false
	}
	return true
}

// finalize resolves pending ends to Infinite, merges coincident vertices,
// drops the zero-length edges left behind and orients unbounded edges.
// It returns the number of dropped edges.
func (g *Graph) finalize() int {
	for i := range g.Edges {
		e := &g.Edges[i]
		if e.A == Unknown {
			e.A = Infinite
		}
		if e.B == Unknown {
			e.B = Infinite
		}
		if e.A == Infinite && e.B != Infinite {
			e.A, e.B = e.B, e.A
		}
	}

	canon := make([]int, len(g.Vertices))
	byKey := make(map[vec.Key]int, len(g.Vertices))
	for i, v := range g.Vertices {
		k := vec.KeyOf(v)
		if j, ok := byKey[k]; ok {
			canon[i] = j
			continue
		}
		byKey[k] = i
		canon[i] = i
	}
	find := func(i int) int {
		for canon[i] != i {
			i = canon[i]
		}
		return i
	}
	for _, e := range g.Edges {
		if e.Kind() != vec.Segment {
			continue
		}
		a, b := find(e.A), find(e.B)
		if a != b && vec.Near(g.Vertices[a], g.Vertices[b], vec.Eps) {
			canon[b] = a
		}
	}

	dropped := 0
	edges := g.Edges[:0]
	for _, e := range g.Edges {
		if e.A >= 0 {
			e.A = find(e.A)
		}
		if e.B >= 0 {
			e.B = find(e.B)
		}
		if e.A >= 0 && e.A == e.B {
			dropped++
			continue
		}
		edges = append(edges, e)
	}
	g.Edges = edges

	remap := make([]int, len(g.Vertices))
	for i := range remap {
		remap[i] = -1
	}
	vertices := make([]r2.Point, 0, len(byKey))
	use := func(v int) int {
		if v < 0 {
			return v
		}
		if remap[v] < 0 {
			remap[v] = len(vertices)
			vertices = append(vertices, g.Vertices[v])
		}
		return remap[v]
	}
	for i := range g.Edges {
		g.Edges[i].A = use(g.Edges[i].A)
		g.Edges[i].B = use(g.Edges[i].B)
	}
	g.Vertices = vertices

	g.orientUnbounded()
	return dropped
}

// orientUnbounded sets Dir on rays and lines. A ray leaves its vertex along
// the bisector of its sites, on the side away from every other site meeting
// at that vertex.
func (g *Graph) orientUnbounded() {
	incident := make([][]int, len(g.Vertices))
	for _, e := range g.Edges {
		for _, v := range [2]int{e.A, e.B} {
			if v >= 0 {
				incident[v] = append(incident[v], e.Left, e.Right)
			}
		}
	}

	for i := range g.Edges {
		e := &g.Edges[i]
		kind := e.Kind()
		if kind == vec.Segment {
			continue
		}
		l, r := g.Sites[e.Left], g.Sites[e.Right]
		d := r2.Point{X: l.Y - r.Y, Y: r.X - l.X}.Normalize()
		if kind == vec.Ray {
			for _, s := range incident[e.A] {
				if s == e.Left || s == e.Right {
					continue
				}
				if d.Dot(g.Sites[s].Sub(l)) > 0 {
					d = d.Mul(-1)
				}
				break
			}
		}
		e.Dir = vec.RoundPoint(d)
	}
}
