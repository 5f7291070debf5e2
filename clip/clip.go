// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package clip intersects polygons with the Sutherland–Hodgman algorithm and
// provides the winding helpers the other packages rely on.
package clip

import (
	"errors"
	"math"
	"slices"

	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
)

// ErrTooFewPoints is returned when a polygon has fewer than 3 points.
var ErrTooFewPoints = errors.New("clip: polygon needs at least 3 points")

// SignedArea returns the shoelace area of poly: positive for
// counter-clockwise winding, negative for clockwise.
func SignedArea(poly []r2.Point) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// IsClockwise reports whether poly winds clockwise.
func IsClockwise(poly []r2.Point) bool {
	return SignedArea(poly) < 0
}

// EnsureClockwise returns poly, or a reversed copy if it winds
// counter-clockwise.
func EnsureClockwise(poly []r2.Point) []r2.Point {
	if SignedArea(poly) > 0 {
		out := slices.Clone(poly)
		slices.Reverse(out)
		return out
	}
	return poly
}

// EnsureCounterClockwise returns poly, or a reversed copy if it winds
// clockwise.
func EnsureCounterClockwise(poly []r2.Point) []r2.Point {
	if SignedArea(poly) < 0 {
		out := slices.Clone(poly)
		slices.Reverse(out)
		return out
	}
	return poly
}

// Centroid returns the area centroid of poly, or the vertex mean for a
// degenerate polygon.
func Centroid(poly []r2.Point) r2.Point {
	a := SignedArea(poly)
	if math.Abs(a) < vec.Eps {
		var c r2.Point
		for _, p := range poly {
			c = c.Add(p)
		}
		return c.Mul(1 / float64(len(poly)))
	}
	var cx, cy float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		f := p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * f
		cy += (p.Y + q.Y) * f
	}
	return r2.Point{X: cx / (6 * a), Y: cy / (6 * a)}
}

// ContainsPoint reports whether p lies inside poly using the even-odd rule.
// Points on the boundary may go either way.
func ContainsPoint(poly []r2.Point, p r2.Point) bool {
	in := false
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				in = !in
			}
		}
	}
	return in
}

// ClipPolygons returns the intersection of subject with the convex polygon
// clipPoly, wound clockwise. It returns nil when the polygons only touch or do
// not overlap.
func ClipPolygons(subject, clipPoly []r2.Point) ([]r2.Point, error) {
	if len(subject) < 3 || len(clipPoly) < 3 {
		return nil, ErrTooFewPoints
	}
	out := EnsureClockwise(subject)
	edges := EnsureClockwise(clipPoly)
	for i, a := range edges {
		b := edges[(i+1)%len(edges)]
		out = HalfPlane(out, a, b)
		if len(out) == 0 {
			return nil, nil
		}
	}
	out = dedupe(out)
	if len(out) < 3 || math.Abs(SignedArea(out)) <= vec.Eps {
		return nil, nil
	}
	return out, nil
}

// HalfPlane clips poly against the half-plane right of the directed line
// a->b, which is the inside of a clockwise polygon having that edge. Points on
// the line count as inside.
func HalfPlane(poly []r2.Point, a, b r2.Point) []r2.Point {
	if len(poly) == 0 {
		return nil
	}
	scale := math.Max(1, vec.Dist(a, b))
	inside := func(p r2.Point) bool {
		return vec.Cross(a, b, p) <= vec.Eps*scale
	}
	out := make([]r2.Point, 0, len(poly)+1)
	s := poly[len(poly)-1]
	for _, e := range poly {
		switch sIn, eIn := inside(s), inside(e); {
		case sIn && eIn:
			out = append(out, e)
		case sIn && !eIn:
			out = append(out, intersect(s, e, a, b))
		case !sIn && eIn:
			out = append(out, intersect(s, e, a, b), e)
		}
		s = e
	}
	return out
}

// intersect returns the intersection of segment s->e with the line a->b.
func intersect(s, e, a, b r2.Point) r2.Point {
	d1 := e.Sub(s)
	d2 := b.Sub(a)
	den := d1.Cross(d2)
	if den == 0 {
		return e
	}
	t := a.Sub(s).Cross(d2) / den
	return r2.Point{X: s.X + t*d1.X, Y: s.Y + t*d1.Y}
}

// dedupe drops consecutive near-equal points, including a closing repeat of
// the first point.
func dedupe(poly []r2.Point) []r2.Point {
	out := poly[:0:0]
	for _, p := range poly {
		if len(out) > 0 && vec.Near(out[len(out)-1], p, vec.Eps) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && vec.Near(out[0], out[len(out)-1], vec.Eps) {
		out = out[:len(out)-1]
	}
	return out
}
