package advanced

// Enumeration walks the associahedron as a Hamiltonian path. The codeword is
// treated as a set of nested stacks: position p sweeps through every value it
// can take given the positions above it, and between any two steps of p the
// whole sweep of positions below p is replayed, alternately forwards and
// backwards. A step moves one unit between p and its push point, so the sum of
// the codeword never changes and position 0 is only ever touched as a push
// point.

type sweepDirection int

const (
	up sweepDirection = iota
	down
)

type enumerator struct {
	codeword  Codeword
	direction []sweepDirection
	pushPoint []int
	maxValue  []int
	result    []Codeword
}

// Enumerate returns every codeword of length n, ordered so that neighbouring
// codewords differ by a single unit moved between two positions, which is a
// single diagonal flip between their triangulations. The list always has
// Catalan(n) entries and starts with [n-1, 0, ..., 0].
//
// Recursion depth is n and the output grows like 4^n, so callers should bound n
// (see CodewordCache). n < 1 panics with a TriangulationError.
func Enumerate(n int) []Codeword {
	if n < 1 {
		fatal(ErrDegenerateSize, "codeword length %d", n)
	}
	e := &enumerator{
		codeword:  make(Codeword, n),
		direction: make([]sweepDirection, n),
		pushPoint: make([]int, n),
		maxValue:  make([]int, n),
	}
	if n <= 20 {
		e.result = make([]Codeword, 0, Catalan(n))
	}
	e.codeword[0] = n - 1
	e.snapshot()
	e.generate(n - 1)
	return e.result
}

func (e *enumerator) generate(position int) {
	if position == 0 {
		return
	}
	n := len(e.codeword)
	if position == n-1 {
		e.maxValue[position] = 1
	} else {
		e.maxValue[position] = e.maxValue[position+1] + 1 - e.codeword[position+1]
	}

	if e.codeword[position] == 0 {
		e.direction[position] = up
	} else {
		e.direction[position] = down
	}

	e.generate(position - 1)
	for i := 0; i < e.maxValue[position]; i++ {
		if e.direction[position] == up {
			e.pull(position, e.pushPoint[position])
		} else {
			e.push(position, e.pushPoint[position])
		}
		e.generate(position - 1)
	}

	// Hand the next position up the point it should trade units with.
	if position != n-1 {
		if e.direction[position] == up {
			e.pushPoint[position+1] = position
		} else {
			e.pushPoint[position+1] = e.pushPoint[position]
		}
	}
}

func (e *enumerator) push(i, j int) {
	e.codeword[i]--
	e.codeword[j]++
	e.snapshot()
}

func (e *enumerator) pull(i, j int) {
	e.codeword[i]++
	e.codeword[j]--
	e.snapshot()
}

func (e *enumerator) snapshot() {
	e.result = append(e.result, e.codeword.Clone())
}

// Catalan returns the n-th Catalan number, the number of triangulations of a
// convex (n+2)-gon. It overflows int for n > 33.
func Catalan(n int) int {
	c := 1
	for i := 0; i < n; i++ {
		c = c * 2 * (2*i + 1) / (i + 2)
	}
	return c
}
