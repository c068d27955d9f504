package advanced

// Building the triangles and the dual tree. The codeword is decoded again to fix
// the order in which the diagonals were placed, and the given diagonals must be
// exactly that set. The tree then grows down from the root edge (V-1, 0). Every
// internal node spans the vertices a..b on the side away from the root, and the
// triangle below it has the one apex k in between where both (a, k) and (k, b)
// are edges. Those two sides are its children, the one touching a on the left.
//
// Spans are taken on the side away from the root rather than from the way the
// diagonal was thrown, so a wrapped diagonal like (3, 0) spans 0..3.

type Triangulation struct {
	Codeword  Codeword
	Boundary  []Edge
	Diagonals []Edge
	// Root triangle first, then the rest in reverse order of construction.
	Triangles []Triangle
	// Faces maps each internal node of the dual tree to the triangle below it.
	Faces map[EdgeKey]Triangle
	Tree  *DualTree
}

// An unordered vertex pair, lower vertex first.
type span struct {
	low, high int
}

func spanOf(e Edge) span {
	low, high := ordered(e)
	return span{low, high}
}

type triangulationBuilder struct {
	// Every boundary edge and diagonal, as given, by the vertices it joins
	edges map[span]Edge
	tree  *DualTree
	faces map[EdgeKey]Triangle
}

// Build assembles the triangles and the dual tree of the triangulation
// described by w. Boundary must be PolygonEdges(len(w)+2) and diagonals must be
// the output of ExtractEdges(w), in any order.
//
// With no diagonals at all (a lone triangle) the result has no triangles and a
// tree holding only the root.
//
// Inputs that do not belong together panic with a TriangulationError; the
// builder has no way to recover a sensible triangulation from them.
func Build(w Codeword, boundary []Edge, diagonals []Edge) *Triangulation {
	vertexCount := len(boundary)
	if vertexCount != len(w)+2 {
		fatalf("codeword %s needs %d boundary edges, got %d", w, len(w)+2, vertexCount)
	}
	root := Edge{vertexCount - 1, 0}
	result := &Triangulation{
		Codeword:  w,
		Boundary:  boundary,
		Diagonals: diagonals,
		Faces:     make(map[EdgeKey]Triangle),
		Tree: &DualTree{
			Root:  root.Key(),
			Nodes: make(map[EdgeKey]*Node),
		},
	}
	if len(diagonals) == 0 {
		result.Tree.add(root, false)
		return result
	}

	placed := ExtractEdges(w)
	given := NewEdgeSet(diagonals)
	for _, diagonal := range placed {
		if !given.Contains(diagonal) {
			fatalf("diagonal %s is not among the given diagonals", diagonal)
		}
	}
	if len(placed) != len(given) {
		fatalf("codeword %s placed %d diagonals, but %d were given", w, len(placed), len(given))
	}

	b := &triangulationBuilder{
		edges: make(map[span]Edge, vertexCount+len(diagonals)),
		tree:  result.Tree,
		faces: result.Faces,
	}
	for _, e := range boundary {
		b.edges[spanOf(e)] = e
		b.tree.add(e, true)
	}
	for _, e := range placed {
		b.edges[spanOf(e)] = e
		b.tree.add(e, false)
	}
	rootNode, ok := b.tree.Nodes[root.Key()]
	if !ok {
		fatalf("boundary of %d edges is missing the root %s", vertexCount, root)
	}
	rootNode.Leaf = false

	var pending EdgeStack
	pending.Push(root)
	for !pending.Empty() {
		parent := pending.Pop()
		left, right := b.close(parent)
		for _, child := range [2]Edge{left, right} {
			if !b.tree.Nodes[child.Key()].Leaf {
				pending.Push(child)
			}
		}
	}

	if len(b.faces) != len(placed)+1 {
		fatalf("codeword %s closed %d triangles over %d diagonals", w, len(b.faces), len(placed))
	}
	result.Triangles = make([]Triangle, 0, len(b.faces))
	result.Triangles = append(result.Triangles, b.faces[root.Key()])
	for i := len(placed) - 1; i >= 0; i-- {
		result.Triangles = append(result.Triangles, b.faces[placed[i].Key()])
	}
	return result
}

// Find the triangle below parent and hang its two other sides under it.
func (b *triangulationBuilder) close(parent Edge) (left, right Edge) {
	node := b.tree.Nodes[parent.Key()]
	if node.Left != NoEdge {
		fatalf("triangle on %s closed twice", parent)
	}
	outer := spanOf(parent)
	for apex := outer.low + 1; apex < outer.high; apex++ {
		var okLeft, okRight bool
		left, okLeft = b.edges[span{outer.low, apex}]
		right, okRight = b.edges[span{apex, outer.high}]
		if !okLeft || !okRight {
			continue
		}
		for _, side := range [2]Edge{left, right} {
			child := b.tree.Nodes[side.Key()]
			if child.Parent != NoEdge {
				fatalf("side %s of triangle on %s already has a parent", side, parent)
			}
			child.Parent = node.Key
		}
		node.Left, node.Right = left.Key(), right.Key()
		b.faces[node.Key] = NewTriangle(outer.low, apex, outer.high)
		return left, right
	}
	fatalf("no triangle closes on %s", parent)
	return Edge{}, Edge{}
}

func (t *DualTree) add(e Edge, leaf bool) *Node {
	node := &Node{Edge: e, Key: e.Key(), Leaf: leaf}
	t.Nodes[node.Key] = node
	return node
}

// Node returns the node for key, or nil.
func (t *DualTree) Node(key EdgeKey) *Node {
	return t.Nodes[key]
}

// Internal counts the root and the diagonals.
func (t *DualTree) Internal() int {
	count := 0
	for _, node := range t.Nodes {
		if !node.Leaf {
			count++
		}
	}
	return count
}

func (t *DualTree) Leaves() int {
	return len(t.Nodes) - t.Internal()
}
