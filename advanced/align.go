package advanced

// AlignEdges reorders current so that every diagonal it shares with previous
// sits in the same slot it had there. This keeps a renderer from shuffling
// diagonals around between two neighbouring triangulations.
//
// It is a best-effort heuristic, not a minimal matching. If more than one
// diagonal of current is new, or the lists differ in length, or there is no
// previous list, current is returned as is. Otherwise the one new diagonal
// takes the one slot left over. The result is always a permutation of current.
func AlignEdges(previous, current []Edge) []Edge {
	if len(previous) == 0 || len(previous) != len(current) {
		return current
	}

	slots := make(map[EdgeKey]int, len(previous))
	for i, e := range previous {
		slots[e.Key()] = i
	}

	result := make([]Edge, len(current))
	filled := make([]bool, len(current))
	var unmatched []Edge
	for j, e := range current {
		i, ok := slots[e.Key()]
		switch {
		case ok && !filled[i]:
			result[i] = e
			filled[i] = true
		case ok && !filled[j]:
			result[j] = e
			filled[j] = true
		default:
			unmatched = append(unmatched, e)
		}
	}

	if len(unmatched) > 1 {
		Logger().Debug("edge alignment unstable, keeping current order", "unmatched", len(unmatched))
		return current
	}
	for i := range result {
		if !filled[i] && len(unmatched) > 0 {
			result[i] = unmatched[0]
			filled[i] = true
			unmatched = unmatched[1:]
		}
	}
	return result
}
