// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package earclip triangulates simple polygons by ear clipping.
package earclip

import (
	"slices"

	"github.com/2dChan/r2voronoi/clip"
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// TriangulateConcave splits the simple polygon into triangles and returns
// them as counter-clockwise index triples into polygon. The winding of the
// input does not matter.
//
// On degenerate input it returns the ears found so far instead of failing.
// Fewer than 3 points yield nil.
func TriangulateConcave(polygon []r2.Point) [][3]int {
	n := len(polygon)
	if n < 3 {
		return nil
	}

	ring := make([]int, n)
	for i := range ring {
		ring[i] = i
	}
	if clip.SignedArea(polygon) < 0 {
		slices.Reverse(ring)
	}

	tris := make([][3]int, 0, n-2)
	cursor := 0
	for len(ring) > 3 {
		m := len(ring)
		found := false
		for attempt := 0; attempt < 2*m; attempt++ {
			i := cursor % m
			prev, next := ring[(i+m-1)%m], ring[(i+1)%m]
			if isEar(polygon, ring, prev, ring[i], next) {
				tris = append(tris, [3]int{prev, ring[i], next})
				ring = slices.Delete(ring, i, i+1)
				cursor = i
				found = true
				break
			}
			cursor++
		}
		if !found {
			logging.Named("earclip").Debug("polygon not fully triangulated",
				zap.Int("points", n),
				zap.Int("triangles", len(tris)),
				zap.Int("remaining", len(ring)),
			)
			return tris
		}
	}
	if vec.Cross(polygon[ring[0]], polygon[ring[1]], polygon[ring[2]]) > vec.Eps {
		tris = append(tris, [3]int{ring[0], ring[1], ring[2]})
	}
	return tris
}

// isEar reports whether tip is a convex vertex of the counter-clockwise ring
// whose triangle holds no other reflex vertex.
func isEar(polygon []r2.Point, ring []int, prev, tip, next int) bool {
	a, b, c := polygon[prev], polygon[tip], polygon[next]
	if vec.Cross(a, b, c) <= vec.Eps {
		return false
	}
	m := len(ring)
	for k, v := range ring {
		if v == prev || v == tip || v == next {
			continue
		}
		p := polygon[v]
		if vec.Near(p, a, vec.Eps) || vec.Near(p, b, vec.Eps) || vec.Near(p, c, vec.Eps) {
			continue
		}
		pp, pn := polygon[ring[(k+m-1)%m]], polygon[ring[(k+1)%m]]
		if vec.Cross(pp, p, pn) > vec.Eps {
			continue
		}
		if inTriangle(a, b, c, p) {
			return false
		}
	}
	return true
}

// inTriangle reports whether p is inside or on the counter-clockwise
// triangle abc.
func inTriangle(a, b, c, p r2.Point) bool {
	return vec.Cross(a, b, p) >= -vec.Eps &&
		vec.Cross(b, c, p) >= -vec.Eps &&
		vec.Cross(c, a, p) >= -vec.Eps
}
