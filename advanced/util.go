package advanced

import "sort"

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *EdgeStack) Push(e Edge) {
	*s = append(*s, e)
}

// Pop panics on an empty stack; callers check Empty first.
func (s *EdgeStack) Pop() Edge {
	e := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return e
}

func (s *EdgeStack) Empty() bool {
	return len(*s) == 0
}

func NewEdgeSet(edges []Edge) EdgeSet {
	set := make(EdgeSet, len(edges))
	for _, e := range edges {
		set.Add(e)
	}
	return set
}

func (set EdgeSet) Add(e Edge) {
	set[e.Key()] = struct{}{}
}

func (set EdgeSet) Contains(e Edge) bool {
	_, ok := set[e.Key()]
	return ok
}

func NewTriangle(a, b, c int) Triangle {
	t := Triangle{a, b, c}
	sort.Ints(t[:])
	return t
}

// Two chords of a convex polygon cross iff exactly one endpoint of one lies
// strictly inside the other's span. Shared endpoints never count.
func Crosses(a, b Edge) bool {
	a0, a1 := ordered(a)
	b0, b1 := ordered(b)
	return (a0 < b0 && b0 < a1 && a1 < b1) || (b0 < a0 && a0 < b1 && b1 < a1)
}

func ordered(e Edge) (int, int) {
	if e.Start > e.End {
		return e.End, e.Start
	}
	return e.Start, e.End
}

// Mark every vertex strictly between from and to, walking forwards around the
// polygon. To may run past the end of marks.
func markBetween(marks []bool, from, to int) {
	for k := from + 1; k < to; k++ {
		marks[CircularIndex(k, len(marks))] = true
	}
}
