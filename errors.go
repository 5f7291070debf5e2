// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import "errors"

var (
	// ErrTooFewPoints is returned when no site is given.
	ErrTooFewPoints = errors.New("r2voronoi: at least one point is required")
	// ErrIdenticalSites is returned when two sites coincide. Callers must
	// deduplicate their input.
	ErrIdenticalSites = errors.New("r2voronoi: identical sites")
	// ErrNotGrouped is returned by CapVoronoi for a result without per-cell
	// edge grouping.
	ErrNotGrouped = errors.New("r2voronoi: result has no per-cell edge grouping")
	// ErrNilResult is returned by CapVoronoi for a nil result.
	ErrNilResult = errors.New("r2voronoi: nil result")
)
