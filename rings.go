// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"math"
	"sync"

	"github.com/golang/geo/r2"
)

var defaultRingCache = NewRingCache()

// RingCache holds regular polygons inscribed in the unit circle, keyed by
// side count. It is safe for concurrent use.
type RingCache struct {
	mu    sync.Mutex
	rings map[int][]r2.Point
}

func NewRingCache() *RingCache {
	return &RingCache{rings: make(map[int][]r2.Point)}
}

// Ring returns the counter-clockwise unit polygon with the given number of
// sides, starting at (1, 0). The returned slice is shared and must not be
// modified.
func (c *RingCache) Ring(sides int) []r2.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ring, ok := c.rings[sides]; ok {
		return ring
	}
	ring := make([]r2.Point, sides)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / float64(sides)
		ring[i] = r2.Point{X: math.Cos(a), Y: math.Sin(a)}
	}
	c.rings[sides] = ring
	return ring
}

// Len returns the number of cached rings.
func (c *RingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.rings)
}

// scaledRing returns a copy of the unit ring moved to center with vertices
// at distance radius.
func (c *RingCache) scaledRing(center r2.Point, radius float64, sides int) []r2.Point {
	unit := c.Ring(sides)
	out := make([]r2.Point, len(unit))
	for i, p := range unit {
		out[i] = center.Add(p.Mul(radius))
	}
	return out
}
