// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"github.com/2dChan/r2voronoi/clip"
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Relax performs steps rounds of Lloyd relaxation: every point moves to the
// centroid of its capped Voronoi cell. It returns the moved points in input
// order.
func Relax(points []r2.Point, steps int, setters ...Option) ([]r2.Point, error) {
	if steps < 0 {
		return nil, errors.Errorf("r2voronoi: negative relaxation steps %d", steps)
	}
	out := make([]r2.Point, len(points))
	copy(out, points)
	for step := range steps {
		g, err := ComputeVoronoi(out, setters...)
		if err != nil {
			return nil, errors.Wrapf(err, "relax step %d", step)
		}
		capped, err := CapVoronoi(g.Result(), setters...)
		if err != nil {
			return nil, errors.Wrapf(err, "relax step %d", step)
		}
		var moved float64
		for i := range out {
			cell, err := capped.Cell(i)
			if err != nil {
				return nil, err
			}
			poly, err := cell.Polygon()
			if err != nil || len(poly) < 3 {
				continue
			}
			c := vec.RoundPoint(clip.Centroid(poly))
			moved = max(moved, vec.Dist(c, out[i]))
			out[i] = c
		}
		logging.Named("relax").Debug("relax step",
			zap.Int("step", step),
			zap.Float64("maxMove", moved),
		)
	}
	return out, nil
}
