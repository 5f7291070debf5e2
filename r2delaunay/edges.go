// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"fmt"
	"math"

	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/vec"
	"go.uber.org/zap"
)

// Edges returns every triangle edge once, as an index pair with the smaller
// index first, in order of first appearance.
func (dt *Triangulation) Edges() [][2]int {
	seen := make(map[[2]int]bool, 3*len(dt.Triangles)/2+1)
	var out [][2]int
	for _, t := range dt.Triangles {
		for _, e := range triangleEdges(t) {
			e = undirected(e)
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

// ThrowOutThinTriangles peels long thin triangles off the outer boundary.
// A boundary triangle goes when its outer edge is longer than ratio times
// the sum of its other two edges. Ratios close to 1 only remove nearly flat
// triangles. Removal repeats on the new boundary until nothing qualifies.
// It returns the number of removed triangles.
func (dt *Triangulation) ThrowOutThinTriangles(ratio float64) (int, error) {
	if !(ratio > 0 && ratio < 1) {
		return 0, ErrBadRatio
	}

	removed := 0
	for {
		count := make(map[[2]int]int, 3*len(dt.Triangles)/2+1)
		for _, t := range dt.Triangles {
			for _, e := range triangleEdges(t) {
				count[undirected(e)]++
			}
		}
		kept := dt.Triangles[:0]
		for _, t := range dt.Triangles {
			if dt.isThinBoundary(t, count, ratio) {
				removed++
				continue
			}
			kept = append(kept, t)
		}
		if len(kept) == len(dt.Triangles) {
			break
		}
		dt.Triangles = kept
	}
	dt.index()

	logging.Named("delaunay").Debug("thin triangles removed",
		zap.Float64("ratio", ratio),
		zap.Int("removed", removed),
		zap.Int("triangles", len(dt.Triangles)),
	)
	return removed, nil
}

func (dt *Triangulation) isThinBoundary(t Triangle, count map[[2]int]int, ratio float64) bool {
	edges := triangleEdges(t)
	for k, e := range edges {
		if count[undirected(e)] != 1 {
			continue
		}
		c := vec.Dist(dt.Points[e[0]], dt.Points[e[1]])
		var other float64
		for m, f := range edges {
			if m != k {
				other += vec.Dist(dt.Points[f[0]], dt.Points[f[1]])
			}
		}
		if c > ratio*other {
			return true
		}
	}
	return false
}

// Validate checks that every triangle refers to distinct points, winds
// counter-clockwise and has no point strictly inside its circumcircle.
func (dt *Triangulation) Validate() error {
	n := len(dt.Points)
	size := vec.Bounds(dt.Points).Size()
	tol := 1e-9 * math.Max(size.X*size.X, size.Y*size.Y)
	for i, t := range dt.Triangles {
		for _, v := range t.Indices() {
			if v < 0 || v >= n {
				return fmt.Errorf("Validate: triangle %d index %d out of range [0 %d)", i, v, n)
			}
		}
		if t.A == t.B || t.B == t.C || t.C == t.A {
			return fmt.Errorf("Validate: triangle %d repeats a vertex: %v", i, t.Indices())
		}
		a, b, c := dt.Points[t.A], dt.Points[t.B], dt.Points[t.C]
		if vec.Cross(a, b, c) <= 0 {
			return fmt.Errorf("Validate: triangle %d is not counter-clockwise", i)
		}
		for j, p := range dt.Points {
			if j == t.A || j == t.B || j == t.C {
				continue
			}
			if vec.InCircle(a, b, c, p) > tol*vec.Cross(a, b, c) {
				return fmt.Errorf("Validate: point %d inside circumcircle of triangle %d", j, i)
			}
		}
	}
	return nil
}

func triangleEdges(t Triangle) [3][2]int {
	return [3][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}
