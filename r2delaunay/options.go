// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import "errors"

const (
	defaultEps        = 1e-10
	defaultSuperScale = 1e4
	minSuperScale     = 10.0
)

type Options struct {
	// Eps is the relative tolerance of the thinness test. The in-circle test
	// allows Eps times the squared extent of the input.
	Eps float64
	// SuperScale inflates the bounding box of the input into the seed
	// triangle. Larger values lose fewer hull triangles.
	SuperScale float64
}

type Option func(*Options) error

func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 || eps >= 1 {
			return errors.New("r2delaunay: eps must be in (0, 1)")
		}
		o.Eps = eps
		return nil
	}
}

func WithSuperScale(s float64) Option {
	return func(o *Options) error {
		if s < minSuperScale {
			return errors.New("r2delaunay: super scale must be at least 10")
		}
		o.SuperScale = s
		return nil
	}
}
