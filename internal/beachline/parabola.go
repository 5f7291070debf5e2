// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package beachline

import (
	"math"

	"github.com/2dChan/r2voronoi/internal/fault"
	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
)

// Breakpoint returns the x coordinate where the parabola of site a, lying to
// the left, meets the parabola of site b, lying to the right, for a sweep
// line at y = ys. The sweep advances towards +y, so every site satisfies
// site.Y <= ys.
func Breakpoint(a, b r2.Point, ys float64) float64 {
	if a == b {
		fault.Fatalf("beachline: identical sites %v in breakpoint", a)
	}
	da := ys - a.Y
	db := ys - b.Y
	switch {
	case da == 0 && db == 0:
		return vec.Round((a.X + b.X) / 2)
	case da == 0:
		return a.X
	case db == 0:
		return b.X
	}

	// A*x^2 + B*x + C is proportional to ya(x) - yb(x) with a positive
	// factor, so it is positive where a is on top.
	A := da - db
	B := 2 * (db*a.X - da*b.X)
	C := da*b.X*b.X - db*a.X*a.X + (a.Y-b.Y)*da*db
	if math.Abs(A) < vec.Eps {
		return vec.Round((a.X + b.X) / 2)
	}

	disc := math.Max(B*B-4*A*C, 0)
	q := -(B + math.Copysign(math.Sqrt(disc), B)) / 2
	if q == 0 {
		return vec.Round(0)
	}
	x1 := q / A
	x2 := C / q
	// a must be on top to the left of the breakpoint, so the polynomial
	// changes sign from + to - there.
	if A > 0 {
		return vec.Round(math.Min(x1, x2))
	}
	return vec.Round(math.Max(x1, x2))
}
