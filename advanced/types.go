package advanced

import "strconv"

// A Codeword of length n identifies exactly one triangulation of the convex
// (n+2)-gon whose vertices are numbered 0..n+1. Entry i is the number of
// diagonals that leave vertex i towards higher-numbered vertices.
//
// Codewords are value data. Slices handed out by Enumerate or a CodewordCache
// are shared, so never modify them in place; Clone first.
type Codeword []int

// An Edge joins two polygon vertices. A diagonal starts at the codeword
// position that threw it, so one that wrapped past V-1 has End < Start, like
// (3, 0) in a hexagon. Boundary edges run from k to k+1, except the closing
// edge (V-1, 0), which is the root of every dual tree.
type Edge struct {
	Start, End int
}

// EdgeKey is the canonical "start,end" name of an edge. Dual tree links are
// expressed as keys rather than pointers.
type EdgeKey string

// NoEdge stands in for a missing parent or child.
const NoEdge EdgeKey = ""

func (e Edge) Key() EdgeKey {
	return EdgeKey(strconv.Itoa(e.Start) + "," + strconv.Itoa(e.End))
}

func (e Edge) String() string {
	return string(e.Key())
}

// Vertex indices of a triangle, in ascending order.
type Triangle [3]int

// Node of a dual tree. Every polygon edge and every diagonal gets one. Leaves
// are the boundary edges other than the root; the root and the diagonals are
// internal and always have both children.
type Node struct {
	Edge                Edge
	Key                 EdgeKey
	Left, Right, Parent EdgeKey
	// Depth stays 0 until the tree is linearized.
	Depth int
	Leaf  bool
}

type DualTree struct {
	Root  EdgeKey
	Nodes map[EdgeKey]*Node
}

// A Link is one parent-to-child step of a breadth-first walk over a dual tree.
type Link struct {
	From, To EdgeKey
	Depth    int
}

type EdgeStack []Edge

type EdgeSet map[EdgeKey]struct{}
