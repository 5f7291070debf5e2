// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := GenerateRandomPoints(tt.cnt, tt.seed)
			if len(points) != tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, %v) len = %v, want %v", tt.cnt, tt.seed,
					len(points), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_InUnitSquare(t *testing.T) {
	const (
		cnt  = 100
		seed = 0
	)
	points := GenerateRandomPoints(cnt, seed)
	for i, p := range points {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Errorf("GenerateRandomPoints(%v, %v)[%d] = %v, want inside unit square", cnt, seed,
				i, p)
		}
	}
}

func TestGenerateRandomPointsInRect(t *testing.T) {
	rect := r2.Rect{
		X: r1.Interval{Lo: -10, Hi: -5},
		Y: r1.Interval{Lo: 100, Hi: 200},
	}
	points := GenerateRandomPointsInRect(50, 1, rect)
	for i, p := range points {
		if !rect.ContainsPoint(p) {
			t.Errorf("GenerateRandomPointsInRect(50, 1, %v)[%d] = %v, want inside", rect, i, p)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, seed)
	b := GenerateRandomPoints(cnt, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, %v) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
	if c := GenerateRandomPoints(cnt, seed+1); cmp.Equal(a, c) {
		t.Errorf("GenerateRandomPoints(%v, %v) equals seed %v output", cnt, seed, seed+1)
	}
}
