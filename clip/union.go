// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package clip

import (
	"github.com/ctessum/geom"
	"github.com/golang/geo/r2"
)

// Union merges polys with a general boolean polygon engine and returns the
// resulting rings. Unlike ClipPolygons the inputs may be concave and
// disjoint. Rings are returned open: the last point is not a repeat of the
// first. Inputs with fewer than 3 points are ignored.
func Union(polys ...[]r2.Point) [][]r2.Point {
	var acc geom.Polygon
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		g := toGeom(p)
		if acc == nil {
			acc = g
			continue
		}
		acc = acc.Union(g).(geom.Polygon)
	}
	out := make([][]r2.Point, 0, len(acc))
	for _, ring := range acc {
		r := fromGeom(ring)
		if len(r) >= 3 {
			out = append(out, r)
		}
	}
	return out
}

func toGeom(poly []r2.Point) geom.Polygon {
	ring := make([]geom.Point, len(poly))
	for i, p := range poly {
		ring[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return geom.Polygon{ring}
}

func fromGeom(ring []geom.Point) []r2.Point {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	out := make([]r2.Point, n)
	for i := range n {
		out[i] = r2.Point{X: ring[i].X, Y: ring[i].Y}
	}
	return out
}
