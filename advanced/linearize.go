package advanced

// Linearize walks the tree breadth first from the root, visiting the left
// child before the right, and returns one link per non-root node. Each visited
// node's Depth is set to its distance from the root; this is the only place
// depths are assigned.
//
// The order is what a renderer uses to grow the tree outwards from the root,
// shallowest links first.
func (t *DualTree) Linearize() []Link {
	root, ok := t.Nodes[t.Root]
	if !ok {
		return nil
	}
	root.Depth = 0

	links := make([]Link, 0, len(t.Nodes)-1)
	queue := []EdgeKey{t.Root}
	for len(queue) > 0 {
		node := t.Nodes[queue[0]]
		queue = queue[1:]
		for _, childKey := range [2]EdgeKey{node.Left, node.Right} {
			if childKey == NoEdge {
				continue
			}
			child := t.Nodes[childKey]
			child.Depth = node.Depth + 1
			links = append(links, Link{From: node.Key, To: childKey, Depth: child.Depth})
			queue = append(queue, childKey)
		}
	}
	return links
}

// MaxDepth is the depth of the deepest node. It is only meaningful after
// Linearize.
func (t *DualTree) MaxDepth() int {
	deepest := 0
	for _, node := range t.Nodes {
		if node.Depth > deepest {
			deepest = node.Depth
		}
	}
	return deepest
}
