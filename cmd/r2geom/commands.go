// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/clip"
	"github.com/2dChan/r2voronoi/earclip"
	"github.com/2dChan/r2voronoi/hull"
	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newVoronoiCmd() *cobra.Command {
	var (
		capped bool
		relax  int
	)
	cmd := &cobra.Command{
		Use:   "voronoi",
		Short: "Print the Voronoi edges, or the capped cells with --cap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := readVectors(cmd.InOrStdin())
			if err != nil {
				return err
			}
			points := toPoints(vs)
			if relax > 0 {
				if points, err = r2voronoi.Relax(points, relax); err != nil {
					return err
				}
			}
			g, err := r2voronoi.ComputeVoronoi(points)
			if err != nil {
				return err
			}
			res := g.Result()
			if !capped {
				return writeEdges(cmd.OutOrStdout(), res)
			}
			if res, err = r2voronoi.CapVoronoi(res); err != nil {
				return err
			}
			return writeCells(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&capped, "cap", false, "bound every cell and print cell polygons")
	cmd.Flags().IntVar(&relax, "relax", 0, "Lloyd relaxation steps applied to the input first")
	return cmd
}

func newDelaunayCmd() *cobra.Command {
	var thin float64
	cmd := &cobra.Command{
		Use:   "delaunay",
		Short: "Print the Delaunay triangles as point index triples",
		Long: `Print the Delaunay triangles as point index triples. Points with a third
coordinate keep it as the lifted position used for triangle normals.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := readVectors(cmd.InOrStdin())
			if err != nil {
				return err
			}
			dt, err := r2delaunay.ComputeDelaunay(toPoints(vs), toCoords(vs))
			if err != nil {
				return err
			}
			if thin > 0 {
				if _, err := dt.ThrowOutThinTriangles(thin); err != nil {
					return err
				}
			}
			w := cmd.OutOrStdout()
			for _, t := range dt.Triangles {
				if _, err := fmt.Fprintf(w, "triangle %d %d %d\n", t.A, t.B, t.C); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&thin, "thin", 0, "drop thin boundary triangles at this ratio, in (0, 1)")
	return cmd
}

func newHullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hull",
		Short: "Print the clockwise convex hull indices",
		Long: `Print the clockwise convex hull indices. If every point has three
coordinates the points are first projected onto their best fitting plane.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := readVectors(cmd.InOrStdin())
			if err != nil {
				return err
			}
			var idx []int
			if coords := toCoords(vs); coords != nil {
				p, err := hull.ConvexHull3D(coords)
				if err != nil {
					return err
				}
				idx = p.Hull
			} else if idx, err = hull.ConvexHull(toPoints(vs)); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "hull"+joinInts(idx))
			return err
		},
	}
}

func newEarclipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "earclip",
		Short: "Triangulate a simple polygon by ear clipping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := readVectors(cmd.InOrStdin())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, t := range earclip.TriangulateConcave(toPoints(vs)) {
				if _, err := fmt.Fprintf(w, "triangle %d %d %d\n", t[0], t[1], t[2]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newClipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clip",
		Short: "Intersect a polygon with a convex polygon",
		Long: `Intersect a polygon with a convex polygon. The input holds the subject,
a blank line and the clip polygon. The result is printed clockwise, one
point per line, and is empty when the polygons do not overlap.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := readGroups(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(groups) != 2 {
				return errors.Errorf("clip: got %d polygons, want 2", len(groups))
			}
			poly, err := clip.ClipPolygons(toPoints(groups[0]), toPoints(groups[1]))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range poly {
				if _, err := fmt.Fprintln(w, formatPoint(p)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// writeEdges prints one line per edge: its kind, both site indices, then
// the end points of a segment or the fixed point and direction otherwise.
func writeEdges(w io.Writer, res *r2voronoi.Result) error {
	for i, e := range res.Edges {
		s := res.EdgeSites[i]
		line := fmt.Sprintf("%s %d %d %s", e.Kind, s[0], s[1], formatPoint(res.Points[e.A]))
		if e.Kind == vec.Segment {
			line += " " + formatPoint(res.Points[e.B])
		} else {
			line += " " + formatPoint(e.Dir)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// writeCells prints one line per cell: its index then its polygon.
func writeCells(w io.Writer, res *r2voronoi.Result) error {
	for i := range res.NumCells() {
		cell, err := res.Cell(i)
		if err != nil {
			return err
		}
		poly, err := cell.Polygon()
		if err != nil {
			return errors.Wrapf(err, "cell %d", i)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "cell %d", i)
		for _, p := range poly {
			b.WriteString(" " + formatPoint(p))
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

func formatPoint(p r2.Point) string {
	return formatFloat(p.X) + " " + formatFloat(p.Y)
}

func formatFloat(x float64) string {
	if x == 0 {
		// Print -0 as 0.
		x = 0
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func joinInts(idx []int) string {
	var b strings.Builder
	for _, i := range idx {
		b.WriteString(" " + strconv.Itoa(i))
	}
	return b.String()
}
