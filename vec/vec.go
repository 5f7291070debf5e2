// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package vec provides the fixed-precision point and vector primitives shared
// by the geometry packages: decimal rounding, tolerant equality, hashable
// keys, N-dimensional vectors and index-based 2D edges.
package vec

import (
	"math"

	"github.com/golang/geo/r2"
)

const (
	// Precision is the number of decimal digits kept by Round.
	Precision = 10
	// Eps is the tolerance used by geometric predicates.
	Eps = 1e-10
	// MatchEps is the looser tolerance used when matching points that went
	// through a transformation.
	MatchEps = 1e-7
)

var pow10 = func() [16]float64 {
	var p [16]float64
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// Round rounds x to Precision decimal digits.
func Round(x float64) float64 {
	return RoundTo(x, Precision)
}

// RoundTo rounds x to the given number of decimal digits.
// Values whose magnitude would overflow the scaled representation, NaN and
// infinities are returned unchanged.
func RoundTo(x float64, digits int) float64 {
	if digits < 0 || digits >= len(pow10) {
		return x
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	s := pow10[digits]
	y := x * s
	if math.Abs(y) >= 1<<52 {
		return x
	}
	return math.Round(y) / s
}

// P returns the point (x, y) rounded to Precision.
func P(x, y float64) r2.Point {
	return r2.Point{X: Round(x), Y: Round(y)}
}

// RoundPoint rounds both coordinates of p to Precision.
func RoundPoint(p r2.Point) r2.Point {
	return P(p.X, p.Y)
}

// Near reports whether every coordinate of a and b differs by less than eps.
func Near(a, b r2.Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// Key is a hashable identity for a rounded point.
type Key [2]float64

// KeyOf returns the key of p after rounding to Precision.
func KeyOf(p r2.Point) Key {
	return Key{Round(p.X), Round(p.Y)}
}

// Cross returns the z component of (a-o) x (b-o).
func Cross(o, a, b r2.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b r2.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Circumcircle returns the center and radius of the circle through a, b and c.
// ok is false when the points are collinear.
func Circumcircle(a, b, c r2.Point) (center r2.Point, radius float64, ok bool) {
	b, c = b.Sub(a), c.Sub(a)
	d := 2 * (b.X*c.Y - b.Y*c.X)
	if math.Abs(d) < Eps*Eps {
		return r2.Point{}, 0, false
	}
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	o := r2.Point{
		X: (c.Y*b2 - b.Y*c2) / d,
		Y: (b.X*c2 - c.X*b2) / d,
	}
	return a.Add(o), o.Norm(), true
}

// InCircle returns Cross(a, b, c) times the power of d with respect to the
// circle through a, b and c, negated. For a counter-clockwise triangle it is
// positive when d is strictly inside the circle and zero when d is on it.
func InCircle(a, b, c, d r2.Point) float64 {
	a, b, c = a.Sub(d), b.Sub(d), c.Sub(d)
	al := a.X*a.X + a.Y*a.Y
	bl := b.X*b.X + b.Y*b.Y
	cl := c.X*c.X + c.Y*c.Y
	return a.X*(b.Y*cl-bl*c.Y) - a.Y*(b.X*cl-bl*c.X) + al*(b.X*c.Y-b.Y*c.X)
}

// Bounds returns the bounding rectangle of points.
func Bounds(points []r2.Point) r2.Rect {
	return r2.RectFromPoints(points...)
}
