// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package vec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
)

// Vector is an N-dimensional vector with coordinates rounded to Precision.
type Vector []float64

// NewVector returns a vector holding the rounded coordinates.
func NewVector(coords ...float64) Vector {
	v := make(Vector, len(coords))
	for i, c := range coords {
		v[i] = Round(c)
	}
	return v
}

// ParseVector parses whitespace or comma separated coordinates.
func ParseVector(s string) (Vector, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("ParseVector: no coordinates in %q", s)
	}
	coords := make([]float64, len(fields))
	for i, f := range fields {
		c, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("ParseVector: coordinate %d: %w", i, err)
		}
		coords[i] = c
	}
	return NewVector(coords...), nil
}

// Dim returns the number of coordinates.
func (v Vector) Dim() int {
	return len(v)
}

func (v Vector) Add(w Vector) Vector {
	mustSameDim(v, w)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = Round(v[i] + w[i])
	}
	return out
}

func (v Vector) Sub(w Vector) Vector {
	mustSameDim(v, w)
	out := make(Vector, len(v))
	for i := range v {
		out[i] = Round(v[i] - w[i])
	}
	return out
}

func (v Vector) Mul(s float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = Round(v[i] * s)
	}
	return out
}

func (v Vector) Dot(w Vector) float64 {
	mustSameDim(v, w)
	var d float64
	for i := range v {
		d += v[i] * w[i]
	}
	return d
}

func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Near reports whether v and w have the same dimension and every coordinate
// differs by less than eps.
func (v Vector) Near(w Vector, eps float64) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-w[i]) >= eps {
			return false
		}
	}
	return true
}

// Point returns the first two coordinates as a 2D point.
// Missing coordinates are zero.
func (v Vector) Point() r2.Point {
	var p r2.Point
	if len(v) > 0 {
		p.X = v[0]
	}
	if len(v) > 1 {
		p.Y = v[1]
	}
	return p
}

func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func mustSameDim(v, w Vector) {
	if len(v) != len(w) {
		panic(fmt.Sprintf("vec: dimension mismatch %d != %d", len(v), len(w)))
	}
}
