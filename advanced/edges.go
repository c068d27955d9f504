package advanced

// Decoding a codeword. Positions are scanned from n-1 down to 0, and position i
// throws w[i] diagonals to the nearest vertices at or beyond i+2 that are not
// already hidden under an earlier diagonal. The search wraps past V-1 back to
// vertex 0, so the last positions can throw diagonals like (3, 0). Placing
// (i, j) hides every vertex strictly between i and j going forwards. For a
// valid codeword the diagonals never cross, so this is never checked
// afterwards.
//
// There are two formulations of the same scan. They produce identical output,
// in the same order, which the tests check exhaustively for small polygons.

// ExtractEdges decodes w into its n-1 diagonals using a crossing array. The
// codeword must be valid; a diagonal that cannot be placed panics with a
// TriangulationError.
func ExtractEdges(w Codeword) []Edge {
	vertexCount := len(w) + 2
	crossed := make([]bool, vertexCount)
	edges := make([]Edge, 0, vertexCount)
	for i := len(w) - 1; i >= 0; i-- {
		code := w[i]
		for j := i + 2; code > 0; j++ {
			checkRoom(w, i, j, code)
			target := CircularIndex(j, vertexCount)
			if crossed[target] {
				continue
			}
			edges = append(edges, Edge{i, target})
			markBetween(crossed, i, j)
			code--
		}
	}
	return edges
}

// ExtractEdgesByVisibility is the visible-vertex formulation of ExtractEdges.
func ExtractEdgesByVisibility(w Codeword) []Edge {
	vertexCount := len(w) + 2
	visible := make([]bool, vertexCount)
	for k := range visible {
		visible[k] = true
	}
	edges := make([]Edge, 0, vertexCount)
	for i := len(w) - 1; i >= 0; i-- {
		j := i + 2
		for code := w[i]; code > 0; code-- {
			// Find closest visible vertex
			for ; !visible[CircularIndex(j, vertexCount)]; j++ {
				checkRoom(w, i, j, code)
			}
			checkRoom(w, i, j, code)
			edges = append(edges, Edge{i, CircularIndex(j, vertexCount)})
			for k := i + 1; k < j; k++ {
				visible[CircularIndex(k, vertexCount)] = false
			}
			j++
		}
	}
	return edges
}

// Once the search from i has come all the way around to i-1 there is nothing
// left to aim at.
func checkRoom(w Codeword, i, j, code int) {
	if j-i >= len(w)+1 {
		fatal(ErrInvalidCodeword, "%s: no room for %d more diagonals from vertex %d", w, code, i)
	}
}

// PolygonEdges returns the boundary of a polygon with the given number of
// vertices, in vertex order. The last one is the closing edge (V-1, 0).
func PolygonEdges(vertexCount int) []Edge {
	if vertexCount < 3 {
		fatal(ErrDegenerateSize, "%d vertices", vertexCount)
	}
	edges := make([]Edge, vertexCount)
	for i := range edges {
		edges[i] = Edge{i, CircularIndex(i+1, vertexCount)}
	}
	return edges
}

// Flip compares the diagonals of two triangulations of the same polygon.
// Neighbouring codewords of an enumeration always give exactly one of each:
// the diagonal that was flipped away and the one it was flipped to.
func Flip(previous, current []Edge) (removed, added []Edge) {
	previousSet := NewEdgeSet(previous)
	currentSet := NewEdgeSet(current)
	for _, e := range previous {
		if !currentSet.Contains(e) {
			removed = append(removed, e)
		}
	}
	for _, e := range current {
		if !previousSet.Contains(e) {
			added = append(added, e)
		}
	}
	return removed, added
}
