// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull computes planar convex hulls with QuickHull.
package hull

import (
	"math"

	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
)

// ConvexHull returns the indices of the hull vertices of points in clockwise
// order, starting at the point with the smallest x. Points on hull edges are
// excluded. Fewer than 3 points are returned as a degenerate hull, and
// collinear input yields its two extreme points.
func ConvexHull(points []r2.Point) ([]int, error) {
	n := len(points)
	if n < 3 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}

	lo, hi := 0, 0
	for i, p := range points {
		if p.X < points[lo].X || (p.X == points[lo].X && p.Y < points[lo].Y) {
			lo = i
		}
		if p.X > points[hi].X || (p.X == points[hi].X && p.Y > points[hi].Y) {
			hi = i
		}
	}
	if vec.Near(points[lo], points[hi], vec.Eps) {
		return []int{lo}, nil
	}

	q := quickHull{points: points, eps: tolerance(points)}
	var upper, lower []int
	for i := range points {
		if i == lo || i == hi {
			continue
		}
		switch c := vec.Cross(points[lo], points[hi], points[i]); {
		case c > q.eps:
			upper = append(upper, i)
		case c < -q.eps:
			lower = append(lower, i)
		}
	}

	out := []int{lo}
	out = q.expand(out, upper, lo, hi)
	out = append(out, hi)
	out = q.expand(out, lower, hi, lo)
	return out, nil
}

type quickHull struct {
	points []r2.Point
	eps    float64
}

// expand appends, in order, the hull vertices strictly left of a->b drawn
// from set.
func (q *quickHull) expand(out, set []int, a, b int) []int {
	if len(set) == 0 {
		return out
	}
	pa, pb := q.points[a], q.points[b]
	d := pb.Sub(pa)
	// Among points tied for the farthest line, take the one furthest along
	// a->b so that the rest of the tie falls on a hull edge.
	far, best, along := -1, 0.0, 0.0
	for _, i := range set {
		p := q.points[i]
		c := vec.Cross(pa, pb, p)
		t := p.Sub(pa).Dot(d)
		if c > best+q.eps || (c > best-q.eps && t > along) {
			far, best, along = i, c, t
		}
	}
	if far < 0 {
		return out
	}
	if len(set) == 1 {
		return append(out, far)
	}

	pf := q.points[far]
	var left, right []int
	for _, i := range set {
		if i == far {
			continue
		}
		p := q.points[i]
		if vec.Cross(pa, pf, p) > q.eps {
			left = append(left, i)
		} else if vec.Cross(pf, pb, p) > q.eps {
			right = append(right, i)
		}
	}
	out = q.expand(out, left, a, far)
	out = append(out, far)
	return q.expand(out, right, far, b)
}

// tolerance scales vec.Eps to the extent of points.
func tolerance(points []r2.Point) float64 {
	b := vec.Bounds(points)
	s := math.Max(b.Size().X, b.Size().Y)
	return vec.Eps * math.Max(1, s*s)
}
