// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"math"

	"github.com/2dChan/r2voronoi/clip"
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

const (
	// ringSidesPerCell is the ring side count per unbound cell.
	ringSidesPerCell = 3.5
	// twoCellRadius is the cap radius of a two-site diagram, relative to the
	// distance between the sites.
	twoCellRadius = 1.5
)

// CapVoronoi returns a copy of res in which every edge is a finite segment.
// Unbounded cells, and cells reaching past the cap radius, are clipped
// against a regular polygon around the control points. Edges on the cap
// have -1 as their second site. Points shared by neighboring cells stay
// shared.
//
// The cap is centered on the bounding box of the control points, not the
// origin, and its radius is measured from that center.
//
// A result without unbounded edges is returned as an unchanged copy, so
// capping is idempotent.
func CapVoronoi(res *Result, setters ...Option) (*Result, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	n := res.NumCells()
	if n == 0 {
		return res.Clone(), nil
	}
	if !res.Grouped() {
		return nil, ErrNotGrouped
	}
	log := logging.Named("capper")

	switch n {
	case 1:
		site := res.ControlPoints[0]
		b := newCapBuilder(res.ControlPoints)
		b.addPolygon(0, opts.RingCache.scaledRing(site, opts.SingleCellRadius, opts.MinRingSides))
		log.Debug("single cell capped", zap.Float64("radius", opts.SingleCellRadius))
		return b.result(), nil
	case 2:
		a, c := res.ControlPoints[0], res.ControlPoints[1]
		center := r2.Point{X: (a.X + c.X) / 2, Y: (a.Y + c.Y) / 2}
		radius := twoCellRadius * vec.Dist(a, c)
		clipAll := []bool{true, true}
		return capCells(res, opts, center, radius, opts.MinRingSides, clipAll)
	}

	unbound := make([]bool, n)
	numUnbound := 0
	for i := range n {
		cell, err := res.Cell(i)
		if err != nil {
			return nil, err
		}
		if !cell.Bounded() {
			unbound[i] = true
			numUnbound++
		}
	}
	if numUnbound == 0 {
		return res.Clone(), nil
	}

	box := vec.Bounds(res.ControlPoints)
	center := box.Center()
	var radius float64
	for i := range n {
		if !unbound[i] {
			continue
		}
		cell, _ := res.Cell(i)
		site := cell.Site()
		nearest := math.Inf(1)
		for _, e := range cell.EdgeIndices() {
			edge := res.Edges[e]
			if edge.Bounded() {
				continue
			}
			nearest = math.Min(nearest, edge.Distance(site, res.Points))
		}
		radius = math.Max(radius, vec.Dist(site, center)+opts.BoundMultiplier*nearest)
	}

	sides := max(opts.MinRingSides, int(math.Ceil(ringSidesPerCell*float64(numUnbound))))
	clipCell := make([]bool, n)
	for i := range n {
		if unbound[i] {
			clipCell[i] = true
			continue
		}
		cell, _ := res.Cell(i)
		for _, v := range cell.VertexIndices() {
			if vec.Dist(res.Points[v], center) > radius {
				clipCell[i] = true
				break
			}
		}
	}
	return capCells(res, opts, center, radius, sides, clipCell)
}

// capCells builds the capped result. Cells marked in clipCell are rebuilt
// from the half-planes of their edges and clipped against a ring whose
// inscribed circle has the given radius; the others are copied.
func capCells(res *Result, opts Options, center r2.Point, radius float64, sides int, clipCell []bool) (*Result, error) {
	ringRadius := radius / math.Cos(math.Pi/float64(sides))
	ring := opts.RingCache.scaledRing(center, ringRadius, sides)

	far := ringRadius
	for _, p := range res.ControlPoints {
		far = math.Max(far, vec.Dist(p, center))
	}
	for _, p := range res.Points {
		far = math.Max(far, vec.Dist(p, center))
	}
	far = 4*far + 1

	b := newCapBuilder(res.ControlPoints)
	clipped, dropped := 0, 0
	for i := range res.NumCells() {
		cell, err := res.Cell(i)
		if err != nil {
			return nil, err
		}
		if !clipCell[i] {
			poly, err := cell.Polygon()
			if err != nil {
				return nil, err
			}
			b.addPolygon(i, poly)
			continue
		}

		poly := halfPlaneCell(res, cell, center, far)
		if len(poly) >= 3 {
			poly, err = clip.ClipPolygons(poly, ring)
			if err != nil {
				return nil, err
			}
		}
		if len(poly) < 3 {
			dropped++
			continue
		}
		b.addPolygon(i, clip.EnsureCounterClockwise(poly))
		clipped++
	}

	logging.Named("capper").Debug("voronoi capped",
		zap.Int("cells", res.NumCells()),
		zap.Int("clipped", clipped),
		zap.Int("dropped", dropped),
		zap.Float64("radius", radius),
		zap.Int("sides", sides),
	)
	return b.result(), nil
}

// halfPlaneCell returns the cell as a clockwise polygon: a square of half
// size far around center, cut by the supporting line of every cell edge.
func halfPlaneCell(res *Result, cell Cell, center r2.Point, far float64) []r2.Point {
	poly := []r2.Point{
		{X: center.X - far, Y: center.Y - far},
		{X: center.X - far, Y: center.Y + far},
		{X: center.X + far, Y: center.Y + far},
		{X: center.X + far, Y: center.Y - far},
	}
	site := cell.Site()
	for _, e := range cell.EdgeIndices() {
		edge := res.Edges[e]
		a := res.Points[edge.A]
		var b r2.Point
		if edge.Kind == vec.Segment {
			b = res.Points[edge.B]
		} else {
			b = a.Add(edge.Dir)
		}
		if vec.Cross(a, b, site) > 0 {
			a, b = b, a
		}
		poly = clip.HalfPlane(poly, a, b)
		if len(poly) == 0 {
			return nil
		}
	}
	return poly
}

// capBuilder assembles a capped result, merging points closer than
// vec.MatchEps and edges with the same end points.
type capBuilder struct {
	r     *Result
	grid  map[[2]int64][]int
	edges map[[2]int]int
}

func newCapBuilder(sites []r2.Point) *capBuilder {
	r := &Result{ControlPoints: append([]r2.Point(nil), sites...)}
	return &capBuilder{
		r:     r,
		grid:  make(map[[2]int64][]int),
		edges: make(map[[2]int]int),
	}
}

func cellOf(p r2.Point) [2]int64 {
	return [2]int64{
		int64(math.Floor(p.X / vec.MatchEps)),
		int64(math.Floor(p.Y / vec.MatchEps)),
	}
}

func (b *capBuilder) point(p r2.Point) int {
	p = vec.RoundPoint(p)
	k := cellOf(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, i := range b.grid[[2]int64{k[0] + dx, k[1] + dy}] {
				if vec.Near(b.r.Points[i], p, vec.MatchEps) {
					return i
				}
			}
		}
	}
	b.r.Points = append(b.r.Points, p)
	i := len(b.r.Points) - 1
	b.grid[k] = append(b.grid[k], i)
	return i
}

// addPolygon records the boundary of cell as segments.
func (b *capBuilder) addPolygon(cell int, poly []r2.Point) {
	idx := make([]int, 0, len(poly))
	for _, p := range poly {
		i := b.point(p)
		if len(idx) > 0 && idx[len(idx)-1] == i {
			continue
		}
		idx = append(idx, i)
	}
	for len(idx) > 1 && idx[0] == idx[len(idx)-1] {
		idx = idx[:len(idx)-1]
	}
	if len(idx) < 3 {
		return
	}
	for k, a := range idx {
		c := idx[(k+1)%len(idx)]
		key := [2]int{min(a, c), max(a, c)}
		if e, ok := b.edges[key]; ok {
			if s := &b.r.EdgeSites[e]; s[0] != cell && s[1] < 0 {
				s[1] = cell
			}
			continue
		}
		b.edges[key] = len(b.r.Edges)
		b.r.Edges = append(b.r.Edges, vec.NewSegment(key[0], key[1]))
		b.r.EdgeSites = append(b.r.EdgeSites, [2]int{cell, -1})
	}
}

func (b *capBuilder) result() *Result {
	b.r.Group()
	return b.r
}
