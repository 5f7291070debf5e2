// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/2dChan/r2voronoi/hull"
	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/2dChan/r2voronoi/utils"
	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Options

func TestWithCircleEps(t *testing.T) {
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps positive", 1e-6, false},
		{"eps zero", 0, true},
		{"eps negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			err := WithCircleEps(tt.eps)(&opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithCircleEps(%v) error = %v, wantErr %v", tt.eps, err, tt.wantErr)
			}
			if err == nil && opts.CircleEps != tt.eps {
				t.Errorf("WithCircleEps(%v) opts.CircleEps = %v, want %v", tt.eps, opts.CircleEps, tt.eps)
			}
		})
	}
}

func TestOptions_Validation(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		wantErr bool
	}{
		{"bound multiplier", WithBoundMultiplier(1.5), false},
		{"bound multiplier zero", WithBoundMultiplier(0), true},
		{"single cell radius", WithSingleCellRadius(2), false},
		{"single cell radius negative", WithSingleCellRadius(-1), true},
		{"min ring sides", WithMinRingSides(3), false},
		{"min ring sides too few", WithMinRingSides(2), true},
		{"ring cache", WithRingCache(NewRingCache()), false},
		{"ring cache nil", WithRingCache(nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			if err := tt.opt(&opts); (err != nil) != tt.wantErr {
				t.Errorf("opt(...) error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewOptions_Defaults(t *testing.T) {
	opts, err := newOptions(nil)
	if err != nil {
		t.Fatalf("newOptions(nil) error = %v, want nil", err)
	}
	if opts.RingCache != defaultRingCache {
		t.Errorf("opts.RingCache = %p, want package cache %p", opts.RingCache, defaultRingCache)
	}
	want := Options{
		CircleEps:        defaultCircleEps,
		BoundMultiplier:  defaultBoundMultiplier,
		SingleCellRadius: defaultSingleCellRadius,
		MinRingSides:     defaultMinRingSides,
	}
	if diff := cmp.Diff(want, opts, cmpopts.IgnoreFields(Options{}, "RingCache")); diff != "" {
		t.Errorf("newOptions(nil) mismatch (-want +got):\n%s", diff)
	}
}

// ComputeVoronoi

func TestComputeVoronoi_Errors(t *testing.T) {
	tests := []struct {
		name    string
		points  []r2.Point
		opts    []Option
		wantErr error
	}{
		{"no points", nil, nil, ErrTooFewPoints},
		{"identical", []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}, nil, ErrIdenticalSites},
		{"identical after rounding", []r2.Point{{X: 0.5, Y: 0.5}, {X: 0.5 + 1e-13, Y: 0.5}}, nil, ErrIdenticalSites},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeVoronoi(tt.points, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ComputeVoronoi(...) error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := ComputeVoronoi(utils.GenerateRandomPoints(10, 0), WithCircleEps(0)); err == nil {
		t.Errorf("ComputeVoronoi(..., WithCircleEps(0)) error = nil, want non-nil")
	}
}

func TestComputeVoronoi_SinglePoint(t *testing.T) {
	g, err := ComputeVoronoi([]r2.Point{{X: 3, Y: 4}})
	if err != nil {
		t.Fatalf("ComputeVoronoi(...) error = %v, want nil", err)
	}
	if len(g.Edges) != 0 || len(g.Vertices) != 0 {
		t.Errorf("ComputeVoronoi(...) = %d edges, %d vertices, want none", len(g.Edges), len(g.Vertices))
	}
	if g.NumCells() != 1 {
		t.Errorf("g.NumCells() = %v, want 1", g.NumCells())
	}
}

func TestComputeVoronoi_TwoPoints(t *testing.T) {
	g, err := ComputeVoronoi([]r2.Point{{X: 0, Y: 0}, {X: 2, Y: 0}})
	if err != nil {
		t.Fatalf("ComputeVoronoi(...) error = %v, want nil", err)
	}
	if len(g.Edges) != 1 {
		t.Fatalf("len(g.Edges) = %v, want 1", len(g.Edges))
	}
	if got := g.Edges[0].Kind(); got != vec.Line {
		t.Errorf("g.Edges[0].Kind() = %v, want %v", got, vec.Line)
	}
	if got, want := g.FixedPoint(0), (r2.Point{X: 1, Y: 0}); got != want {
		t.Errorf("g.FixedPoint(0) = %v, want %v", got, want)
	}
	if d := g.Direction(0); math.Abs(d.X) > 1e-9 || math.Abs(math.Abs(d.Y)-1) > 1e-9 {
		t.Errorf("g.Direction(0) = %v, want vertical", d)
	}
	if !math.IsInf(g.Length(0), 1) {
		t.Errorf("g.Length(0) = %v, want +Inf", g.Length(0))
	}
}

func TestComputeVoronoi_Triangle(t *testing.T) {
	g, err := ComputeVoronoi([]r2.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}})
	if err != nil {
		t.Fatalf("ComputeVoronoi(...) error = %v, want nil", err)
	}
	if diff := cmp.Diff([]r2.Point{{X: 2, Y: 2}}, g.Vertices); diff != "" {
		t.Fatalf("g.Vertices mismatch (-want +got):\n%s", diff)
	}

	s := 1 / math.Sqrt2
	want := map[[2]int]r2.Point{
		{0, 1}: {X: 0, Y: -1},
		{1, 2}: {X: s, Y: s},
		{0, 2}: {X: -1, Y: 0},
	}
	if len(g.Edges) != len(want) {
		t.Fatalf("len(g.Edges) = %v, want %v", len(g.Edges), len(want))
	}
	for i, e := range g.Edges {
		if e.Kind() != vec.Ray {
			t.Errorf("g.Edges[%d].Kind() = %v, want %v", i, e.Kind(), vec.Ray)
			continue
		}
		key := [2]int{min(e.Left, e.Right), max(e.Left, e.Right)}
		if !vec.Near(e.Dir, want[key], 1e-9) {
			t.Errorf("ray between sites %v Dir = %v, want %v", key, e.Dir, want[key])
		}
	}
}

func TestComputeVoronoi_Square(t *testing.T) {
	g, err := ComputeVoronoi([]r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	if err != nil {
		t.Fatalf("ComputeVoronoi(...) error = %v, want nil", err)
	}
	// The two circle events of the cocircular sites share one vertex.
	if diff := cmp.Diff([]r2.Point{{X: 5, Y: 5}}, g.Vertices); diff != "" {
		t.Errorf("g.Vertices mismatch (-want +got):\n%s", diff)
	}
	if len(g.Edges) != 4 {
		t.Fatalf("len(g.Edges) = %v, want 4", len(g.Edges))
	}
	for i, e := range g.Edges {
		if e.Kind() != vec.Ray {
			t.Errorf("g.Edges[%d].Kind() = %v, want %v", i, e.Kind(), vec.Ray)
		}
		l, r := g.Sites[e.Left], g.Sites[e.Right]
		if got := vec.Dist(l, r); math.Abs(got-10) > 1e-9 {
			t.Errorf("g.Edges[%d] separates diagonal sites %v and %v", i, l, r)
		}
	}
}

func TestComputeVoronoi_Grid(t *testing.T) {
	var points []r2.Point
	for x := range 6 {
		for y := range 6 {
			points = append(points, r2.Point{X: float64(x), Y: float64(y)})
		}
	}
	g, err := ComputeVoronoi(points)
	if err != nil {
		t.Fatalf("ComputeVoronoi(...) error = %v, want nil", err)
	}
	if got, want := len(g.Vertices), 25; got != want {
		t.Errorf("len(g.Vertices) = %v, want %v", got, want)
	}
	if got, want := len(g.Edges), 60; got != want {
		t.Errorf("len(g.Edges) = %v, want %v", got, want)
	}
	checkVoronoiProperty(t, g)
}

func TestComputeVoronoi_Collinear(t *testing.T) {
	tests := []struct {
		name   string
		points []r2.Point
	}{
		{"horizontal", []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
		{"vertical", []r2.Point{{X: 0, Y: 3}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 0}}},
		{"diagonal", []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ComputeVoronoi(tt.points)
			if err != nil {
				t.Fatalf("ComputeVoronoi(...) error = %v, want nil", err)
			}
			if len(g.Vertices) != 0 {
				t.Errorf("len(g.Vertices) = %v, want 0", len(g.Vertices))
			}
			if len(g.Edges) != len(tt.points)-1 {
				t.Errorf("len(g.Edges) = %v, want %v", len(g.Edges), len(tt.points)-1)
			}
			for i, e := range g.Edges {
				if e.Kind() != vec.Line {
					t.Errorf("g.Edges[%d].Kind() = %v, want %v", i, e.Kind(), vec.Line)
				}
			}
			checkVoronoiProperty(t, g)
		})
	}
}

func TestComputeVoronoi_Invariants(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"minimal", 3},
		{"small", 10},
		{"medium", 100},
		{"large", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustComputeVoronoi(t, tt.size)
			h, err := hull.ConvexHull(g.Sites)
			if err != nil {
				t.Fatalf("hull.ConvexHull(...) error = %v, want nil", err)
			}

			// Euler's formula for a planar Voronoi diagram in general position.
			if got, want := len(g.Vertices), 2*tt.size-2-len(h); got != want {
				t.Errorf("len(g.Vertices) = %v, want %v", got, want)
			}
			if got, want := len(g.Edges), 3*tt.size-3-len(h); got != want {
				t.Errorf("len(g.Edges) = %v, want %v", got, want)
			}
			if got := g.NumCells(); got != tt.size {
				t.Errorf("g.NumCells() = %v, want %v", got, tt.size)
			}

			unbounded := 0
			for _, e := range g.Edges {
				if e.Kind() != vec.Segment {
					unbounded++
				}
			}
			if unbounded != len(h) {
				t.Errorf("unbounded edges = %v, want hull size %v", unbounded, len(h))
			}
		})
	}
}

func TestComputeVoronoi_VoronoiProperty(t *testing.T) {
	checkVoronoiProperty(t, mustComputeVoronoi(t, 200))
}

func TestComputeVoronoi_DelaunayDual(t *testing.T) {
	for _, n := range []int{10, 100, 500} {
		t.Run(fmt.Sprintf("N%d", n), func(t *testing.T) {
			g := mustComputeVoronoi(t, n)
			pairs := make(map[[2]int]bool, len(g.Edges))
			for _, e := range g.Edges {
				pairs[[2]int{min(e.Left, e.Right), max(e.Left, e.Right)}] = true
			}
			tri, err := r2delaunay.ComputeDelaunay(g.Sites, nil)
			if err != nil {
				t.Fatalf("r2delaunay.ComputeDelaunay(...) error = %v, want nil", err)
			}
			for _, e := range tri.Edges() {
				if !pairs[e] {
					t.Errorf("Delaunay edge %v has no Voronoi edge", e)
				}
			}
		})
	}
}

func TestComputeVoronoi_InputOrder(t *testing.T) {
	points := utils.GenerateRandomPoints(50, 3)
	g, err := ComputeVoronoi(points)
	if err != nil {
		t.Fatalf("ComputeVoronoi(...) error = %v, want nil", err)
	}
	if diff := cmp.Diff(points, g.Sites); diff != "" {
		t.Errorf("g.Sites mismatch (-want +got):\n%s", diff)
	}
}

// Result

func TestGraph_Result(t *testing.T) {
	g := mustComputeVoronoi(t, 100)
	r := g.Result()
	if !r.Grouped() {
		t.Fatalf("r.Grouped() = false, want true")
	}
	if got, want := len(r.Edges), len(g.Edges); got != want {
		t.Fatalf("len(r.Edges) = %v, want %v", got, want)
	}
	for i, e := range g.Edges {
		if got := r.Edges[i].Kind; got != e.Kind() {
			t.Errorf("r.Edges[%d].Kind = %v, want %v", i, got, e.Kind())
		}
		if got, want := r.EdgeSites[i], [2]int{e.Left, e.Right}; got != want {
			t.Errorf("r.EdgeSites[%d] = %v, want %v", i, got, want)
		}
	}
	if r.Bounded() {
		t.Errorf("r.Bounded() = true, want false")
	}
	if got, want := r.CellOffsets[r.NumCells()], 2*len(r.Edges); got != want {
		t.Errorf("r.CellOffsets[n] = %v, want %v", got, want)
	}
}

func TestGraph_Result_Lines(t *testing.T) {
	g, err := ComputeVoronoi([]r2.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 4, Y: 0}})
	if err != nil {
		t.Fatalf("ComputeVoronoi(...) error = %v, want nil", err)
	}
	r := g.Result()
	want := []r2.Point{{X: 1, Y: 0}, {X: 3, Y: 0}}
	if diff := cmp.Diff(want, r.Points, cmpopts.SortSlices(func(a, b r2.Point) bool { return a.X < b.X })); diff != "" {
		t.Errorf("r.Points mismatch (-want +got):\n%s", diff)
	}
	for i, e := range r.Edges {
		if e.Kind != vec.Line {
			t.Errorf("r.Edges[%d].Kind = %v, want %v", i, e.Kind, vec.Line)
		}
	}
}

func TestResult_Clone(t *testing.T) {
	r := mustComputeVoronoi(t, 20).Result()
	c := r.Clone()
	if diff := cmp.Diff(r, c); diff != "" {
		t.Fatalf("r.Clone() mismatch (-want +got):\n%s", diff)
	}
	c.Points[0] = r2.Point{X: -100, Y: -100}
	c.CellEdges[0] = -1
	if r.Points[0] == c.Points[0] || r.CellEdges[0] == -1 {
		t.Errorf("r.Clone() shares memory with r")
	}
}

func TestResult_Cell_Errors(t *testing.T) {
	r := mustComputeVoronoi(t, 10).Result()
	for _, i := range []int{-1, 10} {
		if _, err := r.Cell(i); err == nil {
			t.Errorf("r.Cell(%d) error = nil, want non-nil", i)
		}
	}
	ungrouped := &Result{ControlPoints: r.ControlPoints}
	if _, err := ungrouped.Cell(0); !errors.Is(err, ErrNotGrouped) {
		t.Errorf("ungrouped.Cell(0) error = %v, want %v", err, ErrNotGrouped)
	}
}

// Benchmarks

func BenchmarkComputeVoronoi(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4, 1e+5}
	for _, n := range sizes {
		b.Run(fmt.Sprintf("N%d", n), func(b *testing.B) {
			points := utils.GenerateRandomPoints(n, 0)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := ComputeVoronoi(points); err != nil {
					b.Fatalf("ComputeVoronoi(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

func mustComputeVoronoi(t *testing.T, n int) *Graph {
	t.Helper()
	g, err := ComputeVoronoi(utils.GenerateRandomPoints(n, 0))
	if err != nil {
		t.Fatalf("ComputeVoronoi(...) error = %v, want nil", err)
	}
	return g
}

// checkVoronoiProperty verifies that every vertex and every point on an
// unbounded edge is equidistant from the edge's sites, with no site closer.
func checkVoronoiProperty(t *testing.T, g *Graph) {
	t.Helper()
	const tol = 1e-7
	for i, e := range g.Edges {
		probes := []r2.Point{g.FixedPoint(i)}
		switch e.Kind() {
		case vec.Segment:
			probes = append(probes, g.Vertices[e.B])
		case vec.Ray, vec.Line:
			probes = append(probes, g.FixedPoint(i).Add(e.Dir.Mul(3)))
		}
		l, r := g.Sites[e.Left], g.Sites[e.Right]
		for _, p := range probes {
			dl, dr := vec.Dist(p, l), vec.Dist(p, r)
			if math.Abs(dl-dr) > tol {
				t.Errorf("edge %d point %v: site distances %v and %v differ", i, p, dl, dr)
				continue
			}
			for s, q := range g.Sites {
				if d := vec.Dist(p, q); d < dl-tol {
					t.Errorf("edge %d point %v: site %d at %v is closer than %v", i, p, s, d, dl)
					break
				}
			}
		}
	}
}
