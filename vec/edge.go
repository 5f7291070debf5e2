// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package vec

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// EdgeKind discriminates the Edge variants.
type EdgeKind uint8

const (
	// Segment joins points A and B.
	Segment EdgeKind = iota
	// Ray starts at point A and extends along Dir.
	Ray
	// Line passes through point A and extends along Dir in both directions.
	Line
)

func (k EdgeKind) String() string {
	switch k {
	case Segment:
		return "segment"
	case Ray:
		return "ray"
	case Line:
		return "line"
	}
	return fmt.Sprintf("EdgeKind(%d)", uint8(k))
}

// Edge is a 2D edge referencing a shared point buffer by index.
// B is -1 for rays and lines.
type Edge struct {
	Kind EdgeKind
	A, B int
	Dir  r2.Point
}

func NewSegment(a, b int) Edge {
	return Edge{Kind: Segment, A: a, B: b}
}

func NewRay(a int, dir r2.Point) Edge {
	return Edge{Kind: Ray, A: a, B: -1, Dir: dir}
}

func NewLine(a int, dir r2.Point) Edge {
	return Edge{Kind: Line, A: a, B: -1, Dir: dir}
}

// Bounded reports whether e is a finite segment.
func (e Edge) Bounded() bool {
	return e.Kind == Segment
}

// Canonical returns e with segment endpoints ordered so that A <= B.
// Rays and lines are returned unchanged.
func (e Edge) Canonical() Edge {
	if e.Kind == Segment && e.B < e.A {
		e.A, e.B = e.B, e.A
	}
	return e
}

// SameAs reports whether e and o describe the same edge.
// Segments compare by unordered indices only.
func (e Edge) SameAs(o Edge) bool {
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case Segment:
		return e.Canonical() == o.Canonical()
	case Ray:
		return e.A == o.A && Near(e.Dir, o.Dir, Eps)
	case Line:
		return e.A == o.A && (Near(e.Dir, o.Dir, Eps) || Near(e.Dir, o.Dir.Mul(-1), Eps))
	}
	return false
}

// Length returns the segment length, or +Inf for rays and lines.
func (e Edge) Length(points []r2.Point) float64 {
	if e.Kind != Segment {
		return math.Inf(1)
	}
	return Dist(points[e.A], points[e.B])
}

// Distance returns the distance from p to the edge.
func (e Edge) Distance(p r2.Point, points []r2.Point) float64 {
	a := points[e.A]
	var d r2.Point
	switch e.Kind {
	case Segment:
		d = points[e.B].Sub(a)
	case Ray, Line:
		d = e.Dir
	}
	l2 := d.Dot(d)
	if l2 == 0 {
		return Dist(p, a)
	}
	t := p.Sub(a).Dot(d) / l2
	switch e.Kind {
	case Segment:
		t = math.Max(0, math.Min(1, t))
	case Ray:
		t = math.Max(0, t)
	}
	return Dist(p, a.Add(d.Mul(t)))
}

func (e Edge) String() string {
	switch e.Kind {
	case Segment:
		return fmt.Sprintf("segment(%d, %d)", e.A, e.B)
	case Ray, Line:
		return fmt.Sprintf("%v(%d, %v)", e.Kind, e.A, e.Dir)
	}
	return fmt.Sprintf("edge(%v)", e.Kind)
}
