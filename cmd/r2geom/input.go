// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// readGroups parses one vector per line. Blank lines end a group; empty
// groups are skipped. Every vector must have 2 or 3 coordinates.
func readGroups(r io.Reader) ([][]vec.Vector, error) {
	var groups [][]vec.Vector
	var cur []vec.Vector
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(text, "#"):
			continue
		case text == "":
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		v, err := vec.ParseVector(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if d := v.Dim(); d != 2 && d != 3 {
			return nil, errors.Errorf("line %d: %d coordinates, want 2 or 3", line, d)
		}
		cur = append(cur, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups, nil
}

// readVectors returns all vectors of r, ignoring group boundaries.
func readVectors(r io.Reader) ([]vec.Vector, error) {
	groups, err := readGroups(r)
	if err != nil {
		return nil, err
	}
	var out []vec.Vector
	for _, g := range groups {
		out = append(out, g...)
	}
	return out, nil
}

func toPoints(vs []vec.Vector) []r2.Point {
	out := make([]r2.Point, len(vs))
	for i, v := range vs {
		out[i] = v.Point()
	}
	return out
}

// toCoords returns the 3D coordinates of vs, or nil if any vector is 2D.
func toCoords(vs []vec.Vector) []r3.Vector {
	out := make([]r3.Vector, len(vs))
	for i, v := range vs {
		if v.Dim() != 3 {
			return nil
		}
		out[i] = r3.Vector{X: v[0], Y: v[1], Z: v[2]}
	}
	return out
}
