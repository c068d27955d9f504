// Triangulations of convex polygons and the associahedron that connects them.
//
// A triangulation of the convex (n+2)-gon is named by a codeword of n integers.
// This package enumerates every codeword along a Hamiltonian path of the
// associahedron (each step flips one diagonal), decodes a codeword into its
// diagonals, builds the triangles and the dual binary tree over the polygon's
// edges, and linearizes that tree breadth first. AlignEdges keeps diagonal
// order stable between neighbouring triangulations for renderers.
//
// Everything here is pure and synchronous. The advanced package holds the
// underlying algorithms, which signal broken preconditions by panicking; the
// functions in this package convert those panics to errors.
package associahedron

import (
	"github.com/osuushi/associahedron/advanced"
	"github.com/pkg/errors"
)

type Codeword = advanced.Codeword
type Edge = advanced.Edge
type EdgeKey = advanced.EdgeKey
type Triangle = advanced.Triangle
type Node = advanced.Node
type DualTree = advanced.DualTree
type Link = advanced.Link
type Triangulation = advanced.Triangulation

var (
	ErrDegenerateSize    = advanced.ErrDegenerateSize
	ErrInvalidCodeword   = advanced.ErrInvalidCodeword
	ErrMalformedCodeword = advanced.ErrMalformedCodeword
	ErrTooLarge          = advanced.ErrTooLarge
)

// IsValidCodeword reports whether cw is a codeword of length n.
func IsValidCodeword(cw []int, n int) bool {
	return advanced.Codeword(cw).IsValid(n)
}

// CodeWords lists all Catalan(n) codewords of length n in Hamiltonian order.
func CodeWords(n int) (result []Codeword, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Enumerate(n), nil
}

// CodewordEdges decodes a codeword of length n into its diagonals.
func CodewordEdges(cw Codeword, n int) (result []Edge, err error) {
	if !cw.IsValid(n) {
		return nil, errors.Wrapf(ErrInvalidCodeword, "%s for a %d-gon", cw, n+2)
	}
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.ExtractEdges(cw), nil
}

// BuildTriangulation assembles the triangles and dual tree for cw on a polygon
// with polygonEdgeCount sides, given the diagonals CodewordEdges returned
// (possibly reordered by AlignEdges).
func BuildTriangulation(cw Codeword, polygonEdgeCount int, diagonals []Edge) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Build(cw, advanced.PolygonEdges(polygonEdgeCount), diagonals), nil
}

// Linearize sets the depth of every node in tree and returns its links in
// breadth-first order. A nil tree has no links.
func Linearize(tree *DualTree) []Link {
	if tree == nil {
		return nil
	}
	return tree.Linearize()
}

// AlignEdges reorders current to keep the slots it shares with previous. See
// advanced.AlignEdges.
func AlignEdges(previous, current []Edge) []Edge {
	return advanced.AlignEdges(previous, current)
}

// ParseCodeword reads comma separated user input as a codeword of length n.
func ParseCodeword(s string, n int) (Codeword, error) {
	return advanced.ParseCodeword(s, n)
}

// Triangulate runs the whole pipeline for one codeword: decode, build and
// linearize.
func Triangulate(cw Codeword) (*Triangulation, []Link, error) {
	n := len(cw)
	diagonals, err := CodewordEdges(cw, n)
	if err != nil {
		return nil, nil, err
	}
	triangulation, err := BuildTriangulation(cw, n+2, diagonals)
	if err != nil {
		return nil, nil, err
	}
	return triangulation, Linearize(triangulation.Tree), nil
}
