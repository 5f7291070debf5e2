// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides deterministic random point sets for tests,
// benchmarks and demos.
package utils

import (
	"math/rand"

	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates cnt random points in the unit square
// [0,1)x[0,1). The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	return GenerateRandomPointsInRect(cnt, seed, r2.Rect{
		X: r1.Interval{Lo: 0, Hi: 1},
		Y: r1.Interval{Lo: 0, Hi: 1},
	})
}

// GenerateRandomPointsInRect generates cnt random points uniformly
// distributed in rect. Coordinates are rounded to vec.Precision.
func GenerateRandomPointsInRect(cnt int, seed int64, rect r2.Rect) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]r2.Point, cnt)

	size := rect.Size()
	for i := range cnt {
		sites[i] = vec.P(
			rect.X.Lo+random.Float64()*size.X,
			rect.Y.Lo+random.Float64()*size.Y,
		)
	}

	return sites
}
