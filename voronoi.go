// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2voronoi implements planar Voronoi diagrams with Fortune's sweep,
// and capping of their unbounded cells into polygons.
package r2voronoi

import (
	"fmt"
	"math"
	"sort"

	"github.com/2dChan/r2voronoi/internal/beachline"
	"github.com/2dChan/r2voronoi/internal/fault"
	"github.com/2dChan/r2voronoi/internal/logging"
	"github.com/2dChan/r2voronoi/internal/pqueue"
	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

type eventKind uint8

const (
	siteEvent eventKind = iota
	circleEvent
)

// event is a queued site or circle event, ordered by (y, x).
type event struct {
	kind   eventKind
	x, y   float64
	site   int
	circle *circle
}

// circle is a predicted disappearance of arc node between the arcs of sites
// left and right.
type circle struct {
	node        int
	left, right int
	center      r2.Point
	radius      float64
}

func eventLess(a, b event) bool {
	if a.y != b.y {
		return a.y < b.y
	}
	if a.x != b.x {
		return a.x < b.x
	}
	return a.kind < b.kind
}

type sweep struct {
	g       *Graph
	tree    *beachline.Tree
	queue   *pqueue.Queue[event]
	circles map[int]*pqueue.Item[event]
	eps     float64
	ys      float64

	circleEvents int
	falseAlarms  int
}

func (s *sweep) Site(i int) r2.Point {
	return s.g.Sites[i]
}

func (s *sweep) EdgeSites(e int) (int, int) {
	return s.g.Edges[e].Left, s.g.Edges[e].Right
}

// ComputeVoronoi computes the Voronoi diagram of points with Fortune's sweep.
// Points must be pairwise distinct; coinciding points yield
// ErrIdenticalSites. A single point yields a graph without edges.
func ComputeVoronoi(points []r2.Point, setters ...Option) (g *Graph, err error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrTooFewPoints
	}

	sites := make([]r2.Point, len(points))
	for i, p := range points {
		sites[i] = vec.RoundPoint(p)
	}
	if i, j, ok := findIdentical(sites); ok {
		return nil, fmt.Errorf("%w: %d and %d at %v", ErrIdenticalSites, i, j, sites[i])
	}

	defer fault.Recover(&err, "r2voronoi")

	s := &sweep{
		g:       &Graph{Sites: sites},
		queue:   pqueue.New(eventLess),
		circles: make(map[int]*pqueue.Item[event]),
		eps:     opts.CircleEps,
	}
	s.tree = beachline.New(s)
	for i, p := range sites {
		s.queue.Push(event{kind: siteEvent, x: p.X, y: p.Y, site: i})
	}
	for {
		ev, ok := s.queue.Pop()
		if !ok {
			break
		}
		switch ev.kind {
		case siteEvent:
			s.processSite(ev.site)
		case circleEvent:
			s.processCircle(ev)
		}
	}
	dropped := s.g.finalize()

	logging.Named("sweep").Debug("voronoi computed",
		zap.Int("sites", len(sites)),
		zap.Int("circleEvents", s.circleEvents),
		zap.Int("falseAlarms", s.falseAlarms),
		zap.Int("droppedEdges", dropped),
		zap.Int("vertices", len(s.g.Vertices)),
		zap.Int("edges", len(s.g.Edges)),
	)
	return s.g, nil
}

// findIdentical reports the first pair of coinciding sites.
func findIdentical(sites []r2.Point) (int, int, bool) {
	order := make([]int, len(sites))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := sites[order[a]], sites[order[b]]
		if pa.Y != pb.Y {
			return pa.Y < pb.Y
		}
		return pa.X < pb.X
	})
	for k := 1; k < len(order); k++ {
		i, j := order[k-1], order[k]
		if vec.Near(sites[i], sites[j], vec.Eps) {
			return min(i, j), max(i, j), true
		}
	}
	return 0, 0, false
}

func (s *sweep) processSite(site int) {
	p := s.g.Sites[site]
	s.ys = p.Y
	if s.tree.Empty() {
		s.tree.SetRoot(s.tree.NewArc(site))
		return
	}

	c := s.tree.FindArc(p.X, p.Y)
	old := s.tree.Node(c).Site
	q := s.g.Sites[old]
	s.cancel(c)
	e := s.g.addEdge(old, site)

	var arcs []int
	if math.Abs(q.Y-p.Y) < vec.Eps {
		// Both sites lie on the sweep line: a single vertical breakpoint.
		l := s.tree.NewArc(old)
		r := s.tree.NewArc(site)
		var n int
		if q.X < p.X {
			n = s.tree.NewEdge(e, false, l, r)
		} else {
			n = s.tree.NewEdge(e, true, r, l)
		}
		s.tree.Replace(c, n)
		arcs = []int{l, r}
	} else {
		l := s.tree.NewArc(old)
		m := s.tree.NewArc(site)
		r := s.tree.NewArc(old)
		inner := s.tree.NewEdge(e, true, m, r)
		outer := s.tree.NewEdge(e, false, l, inner)
		s.tree.Replace(c, outer)
		arcs = []int{l, m, r}
	}

	for n, it := range s.circles {
		if ce := it.Value.circle; vec.Dist(ce.center, p) < ce.radius-s.eps {
			s.queue.Remove(it)
			delete(s.circles, n)
		}
	}
	for _, a := range arcs {
		s.checkCircle(a)
	}
}

func (s *sweep) processCircle(ev event) {
	ce := ev.circle
	b := ce.node
	delete(s.circles, b)
	if !s.tree.Attached(b) {
		s.falseAlarms++
		return
	}
	a := s.tree.LeftArc(b)
	c := s.tree.RightArc(b)
	if a == beachline.Nil || c == beachline.Nil {
		fault.Fatalf("r2voronoi: arc %d lost a neighbor before its circle event", b)
	}
	if s.tree.Node(a).Site != ce.left || s.tree.Node(c).Site != ce.right {
		s.falseAlarms++
		return
	}
	s.ys = ev.y
	s.circleEvents++

	v := s.g.addVertex(ce.center)
	eu := s.tree.Node(b).Parent
	var eo int
	if s.tree.Node(eu).Left == b {
		eo = s.tree.EdgeToLeft(b)
		s.tree.Replace(eu, s.tree.Node(eu).Right)
	} else {
		eo = s.tree.EdgeToRight(b)
		s.tree.Replace(eu, s.tree.Node(eu).Left)
	}
	s.tree.Detach(b)

	for _, n := range [2]int{eu, eo} {
		edge := s.tree.Node(n).Edge
		if !s.g.attach(edge, v) {
			fault.Fatalf("r2voronoi: edge %d already has two vertices", edge)
		}
	}
	ne := s.g.addEdge(s.tree.Node(a).Site, s.tree.Node(c).Site)
	s.g.attach(ne, v)
	s.tree.SetEdge(eo, ne, false)

	s.checkCircle(a)
	s.checkCircle(c)
}

// cancel withdraws the pending circle event of arc n.
func (s *sweep) cancel(n int) {
	if it, ok := s.circles[n]; ok {
		s.queue.Remove(it)
		delete(s.circles, n)
	}
}

// checkCircle schedules a circle event for arc n if it converges with its
// neighbors.
func (s *sweep) checkCircle(n int) {
	s.cancel(n)
	l := s.tree.LeftArc(n)
	r := s.tree.RightArc(n)
	if l == beachline.Nil || r == beachline.Nil {
		return
	}
	ls, ns, rs := s.tree.Node(l).Site, s.tree.Node(n).Site, s.tree.Node(r).Site
	if ls == ns || ns == rs || ls == rs {
		return
	}
	L, N, R := s.g.Sites[ls], s.g.Sites[ns], s.g.Sites[rs]
	// The breakpoints around n converge only for clockwise triples in the
	// sweep's y-down frame.
	if vec.Cross(L, N, R) <= 0 {
		return
	}
	center, radius, ok := vec.Circumcircle(L, N, R)
	if !ok {
		return
	}
	y := center.Y + radius
	if y < s.ys-s.eps {
		return
	}
	ce := &circle{node: n, left: ls, right: rs, center: center, radius: radius}
	s.circles[n] = s.queue.Push(event{kind: circleEvent, x: vec.Round(center.X), y: vec.Round(y), circle: ce})
}
