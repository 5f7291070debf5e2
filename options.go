// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import "errors"

const (
	defaultCircleEps        = 1e-10
	defaultBoundMultiplier  = 0.75
	defaultSingleCellRadius = 1.0
	defaultMinRingSides     = 7
)

// Options configures ComputeVoronoi, CapVoronoi and Relax.
type Options struct {
	// CircleEps is how far above the sweep line a circle event may close and
	// still be scheduled, and how deep inside a pending circle a new site
	// must fall to cancel it.
	CircleEps float64
	// BoundMultiplier scales the distance from an unbound site to its
	// nearest unbounded edge when estimating the cap radius.
	BoundMultiplier float64
	// SingleCellRadius is the radius of the polygon returned when capping a
	// single-site diagram.
	SingleCellRadius float64
	// MinRingSides is the minimum side count of capping polygons.
	MinRingSides int
	// RingCache supplies unit circle polygons to the capper.
	RingCache *RingCache
}

type Option func(*Options) error

func defaultOptions() Options {
	return Options{
		CircleEps:        defaultCircleEps,
		BoundMultiplier:  defaultBoundMultiplier,
		SingleCellRadius: defaultSingleCellRadius,
		MinRingSides:     defaultMinRingSides,
		RingCache:        defaultRingCache,
	}
}

func newOptions(setters []Option) (Options, error) {
	opts := defaultOptions()
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

func WithCircleEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return errors.New("r2voronoi: circle eps must be positive")
		}
		o.CircleEps = eps
		return nil
	}
}

func WithBoundMultiplier(m float64) Option {
	return func(o *Options) error {
		if m <= 0 {
			return errors.New("r2voronoi: bound multiplier must be positive")
		}
		o.BoundMultiplier = m
		return nil
	}
}

func WithSingleCellRadius(r float64) Option {
	return func(o *Options) error {
		if r <= 0 {
			return errors.New("r2voronoi: single cell radius must be positive")
		}
		o.SingleCellRadius = r
		return nil
	}
}

func WithMinRingSides(n int) Option {
	return func(o *Options) error {
		if n < 3 {
			return errors.New("r2voronoi: a ring needs at least 3 sides")
		}
		o.MinRingSides = n
		return nil
	}
}

// WithRingCache makes the capper use c instead of the package cache.
func WithRingCache(c *RingCache) Option {
	return func(o *Options) error {
		if c == nil {
			return errors.New("r2voronoi: nil ring cache")
		}
		o.RingCache = c
		return nil
	}
}
