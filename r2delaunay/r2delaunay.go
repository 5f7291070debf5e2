// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay computes planar Delaunay triangulations by incremental
// insertion into a seed triangle.
package r2delaunay

import (
	"fmt"
	"math"
	"slices"

	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MaxPoints is the largest accepted input size.
const MaxPoints = 32767

var (
	ErrLengthMismatch  = errors.New("r2delaunay: points and coords differ in length")
	ErrTooFewPoints    = errors.New("r2delaunay: at least 3 points are required")
	ErrDuplicatePoints = errors.New("r2delaunay: duplicate points")
	ErrCollinear       = errors.New("r2delaunay: all points are collinear")
	ErrBadRatio        = errors.New("r2delaunay: thinness ratio must be in (0, 1)")
)

// CapacityError is returned for inputs larger than Limit.
type CapacityError struct {
	Limit, Count int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("r2delaunay: %d points exceed the limit of %d", e.Count, e.Limit)
}

// Triangle is a counter-clockwise triple of point indices with its derived
// geometry.
type Triangle struct {
	A, B, C int
	Center  r2.Point
	Radius  float64
	Area    float64
	// Normal is the unit normal of the triangle spanned by the attached 3D
	// coordinates.
	Normal r3.Vector
}

func (t Triangle) Indices() [3]int {
	return [3]int{t.A, t.B, t.C}
}

type Triangulation struct {
	Points []r2.Point
	// Coords are the 3D coordinates attached to Points.
	Coords    []r3.Vector
	Triangles []Triangle
	// ThinCount is the number of degenerate triangles met during
	// construction. They never reach Triangles.
	ThinCount int

	// NOTE: Sorted around each vertex, see IncidentTriangles
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

// IncidentTriangles returns the triangles around vertex vIdx. Each one is
// followed by its neighbor across the edge from vIdx to the triangle's next
// vertex. For a vertex on the outer boundary the fan starts at the boundary.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Points[t.A], dt.Points[t.B], dt.Points[t.C]
}

// ComputeDelaunay triangulates points, inserting them in input order.
// coords attaches a 3D position to every point and must match points in
// length. nil is the only exception: the points are then lifted to z = 0.
func ComputeDelaunay(points []r2.Point, coords []r3.Vector, setters ...Option) (*Triangulation, error) {
	opts := Options{
		Eps:        defaultEps,
		SuperScale: defaultSuperScale,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	n := len(points)
	switch {
	case coords != nil && len(coords) != n:
		return nil, errors.Wrapf(ErrLengthMismatch, "%d points, %d coords", n, len(coords))
	case n < 3:
		return nil, ErrTooFewPoints
	case n > MaxPoints:
		return nil, &CapacityError{Limit: MaxPoints, Count: n}
	}
	seen := make(map[vec.Key]int, n)
	for i, p := range points {
		k := vec.KeyOf(p)
		if j, ok := seen[k]; ok {
			return nil, errors.Wrapf(ErrDuplicatePoints, "points %d and %d at %v", j, i, p)
		}
		seen[k] = i
	}

	dt := &Triangulation{
		Points: slices.Clone(points),
		Coords: slices.Clone(coords),
	}
	if coords == nil {
		dt.Coords = make([]r3.Vector, n)
		for i, p := range points {
			dt.Coords[i] = r3.Vector{X: p.X, Y: p.Y}
		}
	}

	b := newBuilder(dt.Points, opts)
	for i := range n {
		b.insert(i)
	}
	for _, t := range b.tris {
		if t.thin || t.a >= n || t.b >= n || t.c >= n {
			continue
		}
		dt.Triangles = append(dt.Triangles, dt.newTriangle(t.a, t.b, t.c, t.center, t.radius))
	}
	dt.ThinCount = b.thin
	if len(dt.Triangles) == 0 {
		return nil, ErrCollinear
	}
	dt.index()

	logging.Named("delaunay").Debug("delaunay computed",
		zap.Int("points", n),
		zap.Int("triangles", len(dt.Triangles)),
		zap.Int("thin", b.thin),
	)
	return dt, nil
}

func (dt *Triangulation) newTriangle(a, b, c int, center r2.Point, radius float64) Triangle {
	pa, pb, pc := dt.Points[a], dt.Points[b], dt.Points[c]
	ca, cb, cc := dt.Coords[a], dt.Coords[b], dt.Coords[c]
	normal := cb.Sub(ca).Cross(cc.Sub(ca))
	if normal.Norm() > 0 {
		normal = normal.Normalize()
	}
	return Triangle{
		A:      a,
		B:      b,
		C:      c,
		Center: center,
		Radius: radius,
		Area:   vec.Cross(pa, pb, pc) / 2,
		Normal: normal,
	}
}

type tri struct {
	a, b, c int
	center  r2.Point
	radius  float64
	thin    bool
}

type builder struct {
	pts  []r2.Point
	tris []tri
	eps  float64
	// tol is the in-circle tolerance on the power of a point, eps times the
	// squared extent of the input. It does not grow with the seed triangle.
	tol  float64
	thin int
}

// newBuilder seeds the triangulation with a triangle around the inflated
// bounding box of pts. Its corners are appended after the input points.
func newBuilder(pts []r2.Point, opts Options) *builder {
	box := vec.Bounds(pts)
	c := box.Center()
	s := math.Max(box.Size().X, box.Size().Y)
	if s < vec.Eps {
		s = 1
	}
	m := opts.SuperScale * s
	n := len(pts)
	all := make([]r2.Point, n, n+3)
	copy(all, pts)
	all = append(all,
		r2.Point{X: c.X - m, Y: c.Y - m},
		r2.Point{X: c.X + m, Y: c.Y - m},
		r2.Point{X: c.X, Y: c.Y + m},
	)
	b := &builder{pts: all, eps: opts.Eps, tol: opts.Eps * s * s}
	b.add(n, n+1, n+2)
	return b
}

func (b *builder) add(i, j, k int) {
	p, q, r := b.pts[i], b.pts[j], b.pts[k]
	if vec.Cross(p, q, r) < 0 {
		j, k = k, j
		q, r = r, q
	}
	l := math.Max(vec.Dist(p, q), math.Max(vec.Dist(q, r), vec.Dist(r, p)))
	t := tri{a: i, b: j, c: k}
	center, radius, ok := vec.Circumcircle(p, q, r)
	if !ok || math.Abs(vec.Cross(p, q, r)) <= b.eps*l*l {
		t.thin = true
		t.center = r2.Point{X: (p.X + q.X + r.X) / 3, Y: (p.Y + q.Y + r.Y) / 3}
		b.thin++
	} else {
		t.center, t.radius = center, radius
	}
	b.tris = append(b.tris, t)
}

// insert adds point i: triangles whose circumcircle strictly contains it are
// removed, and the boundary of the hole is fanned to i.
func (b *builder) insert(i int) {
	p := b.pts[i]
	var boundary [][2]int
	count := make(map[[2]int]int)
	kept := b.tris[:0]
	for _, t := range b.tris {
		if t.thin || !b.inCircle(t, p) {
			kept = append(kept, t)
			continue
		}
		for _, e := range [3][2]int{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}} {
			boundary = append(boundary, e)
			count[undirected(e)]++
		}
	}
	b.tris = kept
	for _, e := range boundary {
		if count[undirected(e)] == 1 {
			b.add(e[0], e[1], i)
		}
	}
}

// inCircle reports whether p is inside the circumcircle of t by more than
// b.tol.
func (b *builder) inCircle(t tri, p r2.Point) bool {
	pa, pb, pc := b.pts[t.a], b.pts[t.b], b.pts[t.c]
	return vec.InCircle(pa, pb, pc, p) > b.tol*vec.Cross(pa, pb, pc)
}

func undirected(e [2]int) [2]int {
	if e[0] > e[1] {
		return [2]int{e[1], e[0]}
	}
	return e
}

// index rebuilds the incident triangle lists.
func (dt *Triangulation) index() {
	numVertices := len(dt.Points)
	dt.IncidentTriangleOffsets = make([]int, numVertices+1)
	dt.IncidentTriangleIndices = make([]int, 3*len(dt.Triangles))
	for _, t := range dt.Triangles {
		for _, v := range t.Indices() {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := range numVertices {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, t := range dt.Triangles {
		for _, v := range t.Indices() {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	tris := make([][3]int, len(dt.Triangles))
	for i, t := range dt.Triangles {
		tris[i] = t.Indices()
	}
	for i := range numVertices {
		sortIncidentTriangleIndicesCCW(i, dt.IncidentTriangles(i), tris)
	}
}

// sortIncidentTriangleIndicesCCW chains the triangles around vIdx so that
// NextVertex of each one is PrevVertex of the following one. An open fan
// starts at the triangle without a predecessor.
func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	if n == 0 {
		return
	}
	nexts := make(map[int]bool, n)
	for _, t := range incidentTris {
		nexts[NextVertex(tris[t], vIdx)] = true
	}
	for i, t := range incidentTris {
		if !nexts[PrevVertex(tris[t], vIdx)] {
			incidentTris[0], incidentTris[i] = incidentTris[i], incidentTris[0]
			break
		}
	}

	for i := 1; i < n; i++ {
		nxt := NextVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			prv := PrevVertex(tris[incidentTris[j]], vIdx)
			if nxt == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
