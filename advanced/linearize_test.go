package advanced

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearize_Hexagon(t *testing.T) {
	tree := buildFor(Codeword{1, 0, 2, 0}).Tree
	links := tree.Linearize()
	assert.Equal(t, []Link{
		{"5,0", "0,2", 1},
		{"5,0", "2,5", 1},
		{"0,2", "0,1", 2},
		{"0,2", "1,2", 2},
		{"2,5", "2,4", 2},
		{"2,5", "4,5", 2},
		{"2,4", "2,3", 3},
		{"2,4", "3,4", 3},
	}, links)
	assert.Equal(t, 3, tree.MaxDepth())
	assert.Equal(t, 0, tree.Node("5,0").Depth)
	assert.Equal(t, 3, tree.Node("3,4").Depth)
}

func TestLinearize_Properties(t *testing.T) {
	for n := 2; n <= 7; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			for _, w := range Enumerate(n) {
				tree := buildFor(w).Tree
				links := tree.Linearize()
				require.Len(t, links, len(tree.Nodes)-1)

				visited := make(map[EdgeKey]struct{}, len(links))
				for i, link := range links {
					assert.NotContains(t, visited, link.To)
					visited[link.To] = struct{}{}
					if i > 0 {
						assert.GreaterOrEqual(t, link.Depth, links[i-1].Depth, "links out of order in %s", w)
					}

					// Depth is the number of steps back up to the root
					steps := 0
					for key := link.To; key != tree.Root; key = tree.Nodes[key].Parent {
						steps++
					}
					assert.Equal(t, steps, link.Depth)
					assert.Equal(t, link.Depth, tree.Nodes[link.To].Depth)
					assert.Equal(t, link.From, tree.Nodes[link.To].Parent)
				}
				assert.NotContains(t, visited, tree.Root)
			}
		})
	}
}

func TestLinearize_Degenerate(t *testing.T) {
	tree := buildFor(Codeword{0}).Tree
	assert.Empty(t, tree.Linearize())
	assert.Equal(t, 0, tree.MaxDepth())

	assert.Nil(t, (&DualTree{Nodes: map[EdgeKey]*Node{}}).Linearize())
}
