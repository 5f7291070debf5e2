// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hull

import (
	"errors"
	"math"

	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// ErrDegenerate is returned when 3 or more points span no plane.
var ErrDegenerate = errors.New("hull: points are collinear, no supporting plane")

// Planar is the hull of 3D points rotated onto the xy plane.
type Planar struct {
	// Points are the input points in plane coordinates.
	Points []r2.Point
	// Hull indexes Points in clockwise order.
	Hull []int
	// Origin is the 3D point mapped to the plane origin.
	Origin r3.Vector
	// Forward rotates 3D offsets from Origin into plane coordinates; Inverse
	// undoes it.
	Forward, Inverse *mat.Dense
	// Deviation is the largest distance of an input point from the plane.
	Deviation float64
}

// To2D maps a 3D point into plane coordinates, dropping its distance from
// the plane.
func (p *Planar) To2D(v r3.Vector) r2.Point {
	q := apply(p.Forward, v.Sub(p.Origin))
	return r2.Point{X: q.X, Y: q.Y}
}

// To3D maps a plane point back into 3D.
func (p *Planar) To3D(q r2.Point) r3.Vector {
	return apply(p.Inverse, r3.Vector{X: q.X, Y: q.Y}).Add(p.Origin)
}

// ConvexHull3D rotates coplanar or nearly coplanar points onto the xy plane
// and computes their hull there. One point maps to the origin; two points map
// onto the x axis and form a two-point hull.
func ConvexHull3D(points []r3.Vector) (*Planar, error) {
	var basis [3]r3.Vector
	switch len(points) {
	case 0:
		return &Planar{Forward: identity(), Inverse: identity()}, nil
	case 1:
		basis = [3]r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}
	case 2:
		d := points[1].Sub(points[0])
		if d.Norm() < vec.Eps {
			return nil, ErrDegenerate
		}
		u := d.Normalize()
		w := u.Cross(u.Ortho()).Normalize()
		basis = [3]r3.Vector{u, w.Cross(u), w}
	default:
		w := newellNormal(points)
		if w.Norm() < vec.Eps*scale3(points) {
			return nil, ErrDegenerate
		}
		w = w.Normalize()
		u := firstDirection(points, w)
		basis = [3]r3.Vector{u, w.Cross(u), w}
	}

	fwd := mat.NewDense(3, 3, []float64{
		basis[0].X, basis[0].Y, basis[0].Z,
		basis[1].X, basis[1].Y, basis[1].Z,
		basis[2].X, basis[2].Y, basis[2].Z,
	})
	var inv mat.Dense
	if err := inv.Inverse(fwd); err != nil {
		return nil, err
	}

	p := &Planar{
		Points:  make([]r2.Point, len(points)),
		Origin:  points[0],
		Forward: fwd,
		Inverse: &inv,
	}
	for i, v := range points {
		q := apply(fwd, v.Sub(p.Origin))
		p.Points[i] = r2.Point{X: q.X, Y: q.Y}
		p.Deviation = math.Max(p.Deviation, math.Abs(q.Z))
	}
	hull, err := ConvexHull(p.Points)
	if err != nil {
		return nil, err
	}
	p.Hull = hull
	return p, nil
}

// newellNormal returns the polygon normal of points by Newell's method,
// falling back to the largest cross product when the points do not form a
// meaningful ring.
func newellNormal(points []r3.Vector) r3.Vector {
	var n r3.Vector
	for i, a := range points {
		b := points[(i+1)%len(points)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	if n.Norm() > vec.Eps*scale3(points) {
		return n
	}
	o := points[0]
	var best r3.Vector
	for i := 1; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			c := points[i].Sub(o).Cross(points[j].Sub(o))
			if c.Norm() > best.Norm() {
				best = c
			}
		}
	}
	return best
}

// firstDirection returns a unit vector in the plane orthogonal to w, along
// the first point distinct from points[0].
func firstDirection(points []r3.Vector, w r3.Vector) r3.Vector {
	for _, v := range points[1:] {
		d := v.Sub(points[0])
		d = d.Sub(w.Mul(d.Dot(w)))
		if d.Norm() > vec.Eps {
			return d.Normalize()
		}
	}
	return w.Ortho()
}

func scale3(points []r3.Vector) float64 {
	var s float64
	for _, v := range points {
		s = math.Max(s, v.Sub(points[0]).Norm())
	}
	return math.Max(1, s*s)
}

func identity() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

func apply(m *mat.Dense, v r3.Vector) r3.Vector {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}
