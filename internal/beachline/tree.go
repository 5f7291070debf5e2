// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package beachline implements the beach line of Fortune's sweep as a binary
// tree stored in an arena. Leaves are arcs owning a site, internal nodes are
// breakpoints owning a Voronoi edge. Nodes refer to each other by arena
// index, so tree surgery is index reassignment.
package beachline

import (
	"fmt"

	"github.com/2dChan/r2voronoi/internal/fault"
	"github.com/2dChan/r2voronoi/vec"
	"github.com/golang/geo/r2"
)

// Nil is the index of a missing node.
const Nil = -1

// Kind discriminates arc and edge nodes.
type Kind uint8

const (
	// ArcNode is a leaf owning one site.
	ArcNode Kind = iota
	// EdgeNode is an internal node owning one Voronoi edge.
	EdgeNode
)

func (k Kind) String() string {
	switch k {
	case ArcNode:
		return "arc"
	case EdgeNode:
		return "edge"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Node is an arena slot.
type Node struct {
	Kind Kind
	// Site is the site index of an arc node.
	Site int
	// Edge is the edge id of an edge node.
	Edge int
	// Flipped swaps the edge's left and right sites when locating the
	// breakpoint: a flipped node separates the edge's right site (on its left)
	// from the edge's left site (on its right).
	Flipped bool

	Parent, Left, Right int
	attached            bool
}

// Sites resolves site positions and the site pair of an edge for the
// breakpoint predicate.
type Sites interface {
	Site(i int) r2.Point
	EdgeSites(edge int) (left, right int)
}

// Tree is the beach line.
type Tree struct {
	nodes []Node
	root  int
	sites Sites
}

// New returns an empty beach line resolving geometry through s.
func New(s Sites) *Tree {
	return &Tree{root: Nil, sites: s}
}

func (t *Tree) Root() int {
	return t.root
}

func (t *Tree) Empty() bool {
	return t.root == Nil
}

// Node returns a copy of node n.
func (t *Tree) Node(n int) Node {
	return t.nodes[n]
}

// Attached reports whether n is still part of the beach line.
func (t *Tree) Attached(n int) bool {
	return n >= 0 && n < len(t.nodes) && t.nodes[n].attached
}

// NewArc allocates a detached arc node for site.
func (t *Tree) NewArc(site int) int {
	t.nodes = append(t.nodes, Node{
		Kind:   ArcNode,
		Site:   site,
		Edge:   Nil,
		Parent: Nil,
		Left:   Nil,
		Right:  Nil,
	})
	return len(t.nodes) - 1
}

// NewEdge allocates an edge node with the given children and links them to it.
func (t *Tree) NewEdge(edge int, flipped bool, left, right int) int {
	t.nodes = append(t.nodes, Node{
		Kind:    EdgeNode,
		Site:    Nil,
		Edge:    edge,
		Flipped: flipped,
		Parent:  Nil,
		Left:    left,
		Right:   right,
	})
	n := len(t.nodes) - 1
	t.nodes[left].Parent = n
	t.nodes[right].Parent = n
	return n
}

// SetEdge makes edge node n own a different edge.
func (t *Tree) SetEdge(n, edge int, flipped bool) {
	if t.nodes[n].Kind != EdgeNode {
		fault.Fatalf("beachline: SetEdge on %v node %d", t.nodes[n].Kind, n)
	}
	t.nodes[n].Edge = edge
	t.nodes[n].Flipped = flipped
}

// SetRoot makes n the whole beach line.
func (t *Tree) SetRoot(n int) {
	t.root = n
	t.nodes[n].Parent = Nil
	t.attachSubtree(n)
}

// Replace puts subtree n in the position of node old and detaches old.
// Children of old that are not part of n stay detached.
func (t *Tree) Replace(old, n int) {
	p := t.nodes[old].Parent
	t.nodes[n].Parent = p
	switch {
	case p == Nil:
		t.root = n
	case t.nodes[p].Left == old:
		t.nodes[p].Left = n
	case t.nodes[p].Right == old:
		t.nodes[p].Right = n
	default:
		fault.Fatalf("beachline: node %d is not a child of its parent %d", old, p)
	}
	t.nodes[old].attached = false
	t.nodes[old].Parent = Nil
	t.attachSubtree(n)
}

// Detach marks n as removed from the beach line.
func (t *Tree) Detach(n int) {
	t.nodes[n].attached = false
}

func (t *Tree) attachSubtree(n int) {
	stack := []int{n}
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.nodes[m].attached && m != n {
			continue
		}
		t.nodes[m].attached = true
		if t.nodes[m].Kind == EdgeNode {
			stack = append(stack, t.nodes[m].Left, t.nodes[m].Right)
		}
	}
}

// Cut compares x against the breakpoint of edge node n for a sweep line at ys.
// The result is rounded to vec.Precision; it is negative when x lies left of
// the breakpoint.
func (t *Tree) Cut(n int, ys, x float64) float64 {
	node := t.nodes[n]
	if node.Kind != EdgeNode {
		fault.Fatalf("beachline: Cut on %v node %d", node.Kind, n)
	}
	l, r := t.sites.EdgeSites(node.Edge)
	if node.Flipped {
		l, r = r, l
	}
	return vec.Round(x - Breakpoint(t.sites.Site(l), t.sites.Site(r), ys))
}

// FindArc returns the arc directly above x for a sweep line at ys.
func (t *Tree) FindArc(x, ys float64) int {
	n := t.root
	for n != Nil && t.nodes[n].Kind == EdgeNode {
		if t.Cut(n, ys, x) < 0 {
			n = t.nodes[n].Left
		} else {
			n = t.nodes[n].Right
		}
	}
	return n
}

// Leftmost returns the leftmost arc of the subtree rooted at n.
func (t *Tree) Leftmost(n int) int {
	for t.nodes[n].Kind == EdgeNode {
		n = t.nodes[n].Left
	}
	return n
}

// Rightmost returns the rightmost arc of the subtree rooted at n.
func (t *Tree) Rightmost(n int) int {
	for t.nodes[n].Kind == EdgeNode {
		n = t.nodes[n].Right
	}
	return n
}

// EdgeToLeft returns the edge node separating n from its left neighbor, or
// Nil if n is the leftmost node.
func (t *Tree) EdgeToLeft(n int) int {
	for {
		p := t.nodes[n].Parent
		if p == Nil {
			return Nil
		}
		if t.nodes[p].Right == n {
			return p
		}
		n = p
	}
}

// EdgeToRight returns the edge node separating n from its right neighbor, or
// Nil if n is the rightmost node.
func (t *Tree) EdgeToRight(n int) int {
	for {
		p := t.nodes[n].Parent
		if p == Nil {
			return Nil
		}
		if t.nodes[p].Left == n {
			return p
		}
		n = p
	}
}

// LeftArc returns the arc left of arc n, or Nil.
func (t *Tree) LeftArc(n int) int {
	e := t.EdgeToLeft(n)
	if e == Nil {
		return Nil
	}
	return t.Rightmost(t.nodes[e].Left)
}

// RightArc returns the arc right of arc n, or Nil.
func (t *Tree) RightArc(n int) int {
	e := t.EdgeToRight(n)
	if e == Nil {
		return Nil
	}
	return t.Leftmost(t.nodes[e].Right)
}

// Walk visits the attached nodes in order until fn returns false.
func (t *Tree) Walk(fn func(n int) bool) {
	var stack []int
	n := t.root
	for n != Nil || len(stack) > 0 {
		for n != Nil {
			stack = append(stack, n)
			n = t.nodes[n].Left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		n = t.nodes[n].Right
	}
}

// Arcs returns the attached arcs from left to right.
func (t *Tree) Arcs() []int {
	var arcs []int
	t.Walk(func(n int) bool {
		if t.nodes[n].Kind == ArcNode {
			arcs = append(arcs, n)
		}
		return true
	})
	return arcs
}

// Counts returns the number of attached arc and edge nodes.
func (t *Tree) Counts() (arcs, edges int) {
	t.Walk(func(n int) bool {
		if t.nodes[n].Kind == ArcNode {
			arcs++
		} else {
			edges++
		}
		return true
	})
	return arcs, edges
}
