package main

import (
	"github.com/osuushi/associahedron"
	"github.com/osuushi/associahedron/advanced"
	"github.com/pkg/errors"
)

// A walker steps through an enumeration and holds on to the diagonals of the
// last frame, so each new frame can keep its diagonals in the same slots.
type walker struct {
	words     []advanced.Codeword
	index     int
	previous  advanced.Codeword
	lastEdges []advanced.Edge
}

type frame struct {
	Index    int
	Codeword advanced.Codeword
	// Positions that differ from the previous frame's codeword
	Changed []int
	// Diagonals, aligned with the previous frame
	Edges          []advanced.Edge
	Removed, Added []advanced.Edge
	Triangulation  *advanced.Triangulation
	Links          []advanced.Link
}

func newWalker(words []advanced.Codeword, from int) (*walker, error) {
	if from < 0 || from >= len(words) {
		return nil, errors.Errorf("start index %d out of range 0..%d", from, len(words)-1)
	}
	return &walker{words: words, index: from}, nil
}

func (w *walker) done() bool {
	return w.index >= len(w.words)
}

func (w *walker) next() (*frame, error) {
	if w.done() {
		return nil, errors.New("walk is over")
	}
	cw := w.words[w.index]
	n := len(cw)

	edges, err := associahedron.CodewordEdges(cw, n)
	if err != nil {
		return nil, err
	}
	aligned := associahedron.AlignEdges(w.lastEdges, edges)
	tri, err := associahedron.BuildTriangulation(cw, n+2, aligned)
	if err != nil {
		return nil, err
	}

	f := &frame{
		Index:         w.index,
		Codeword:      cw,
		Edges:         aligned,
		Triangulation: tri,
		Links:         associahedron.Linearize(tri.Tree),
	}
	if w.previous != nil {
		f.Changed = cw.Changed(w.previous)
		f.Removed, f.Added = advanced.Flip(w.lastEdges, aligned)
	}

	w.previous = cw
	w.lastEdges = aligned
	w.index++
	return f, nil
}
