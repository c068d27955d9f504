package dbg

import (
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/associahedron/advanced"
)

var colors = aurora.NewAurora(true)

// SetColors turns terminal escapes on or off for everything this package
// prints.
func SetColors(enabled bool) {
	colors = aurora.NewAurora(enabled)
}

// Codeword renders w for the terminal with the entries at the changed
// positions picked out.
func Codeword(w advanced.Codeword, changed []int) string {
	marked := make(map[int]bool, len(changed))
	for _, i := range changed {
		marked[i] = true
	}

	var sb strings.Builder
	for i, v := range w {
		if i > 0 {
			sb.WriteString(colors.Faint(",").String())
		}
		entry := strconv.Itoa(v)
		if marked[i] {
			sb.WriteString(colors.Bold(colors.Yellow(entry)).String())
		} else {
			sb.WriteString(colors.Cyan(entry).String())
		}
	}
	return sb.String()
}

// Edges renders a list of edges, with the ones in highlight in green.
func Edges(edges []advanced.Edge, highlight []advanced.Edge) string {
	set := advanced.NewEdgeSet(highlight)
	parts := make([]string, len(edges))
	for i, e := range edges {
		name := "(" + e.String() + ")"
		if set.Contains(e) {
			name = colors.Green(name).String()
		}
		parts[i] = name
	}
	return strings.Join(parts, " ")
}

// Removed renders edges that are going away.
func Removed(edges []advanced.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = colors.Red("(" + e.String() + ")").String()
	}
	return strings.Join(parts, " ")
}
