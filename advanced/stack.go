package advanced

// The enumeration is a set of nested stacks. Fixing every entry above position
// d leaves a stack of dimension d: position d takes each of its possible
// values in turn, and the enumeration visits the whole stack in one run.

type Stack struct {
	Dimension int
	// Suffix holds the fixed entries above the dimension.
	Suffix Codeword
	Height int
	Words  []Codeword
}

// StackHeight is the number of values position d can take once the entries
// above it are fixed, n - d - S + 1 where S is their sum. d must lie in
// 1..n-1.
func StackHeight(w Codeword, d int) int {
	if d < 1 || d >= len(w) {
		fatalf("stack dimension %d out of range for codeword length %d", d, len(w))
	}
	return len(w) - d - w[d+1:].Sum() + 1
}

// Stacks splits an enumeration into its stacks of dimension d, in order.
// d must lie in 1..n-1.
func Stacks(words []Codeword, d int) []Stack {
	var stacks []Stack
	for _, w := range words {
		if d < 1 || d >= len(w) {
			fatalf("stack dimension %d out of range for codeword length %d", d, len(w))
		}
		suffix := w[d+1:]
		if len(stacks) == 0 || !stacks[len(stacks)-1].Suffix.Equal(suffix) {
			stacks = append(stacks, Stack{
				Dimension: d,
				Suffix:    suffix.Clone(),
				Height:    StackHeight(w, d),
			})
		}
		last := &stacks[len(stacks)-1]
		last.Words = append(last.Words, w)
	}
	return stacks
}

// InStack reports whether w belongs to some stack of dimension d and height h:
// its first d+1 entries sum to d+h-2 and, from position 1 up to d-1, no tail
// of that prefix holds more diagonals than a codeword of height h allows.
func InStack(w Codeword, d, h int) bool {
	if d < 1 || d >= len(w) {
		return false
	}
	if w[:d+1].Sum() != d+h-2 {
		return false
	}
	for i := 1; i < d; i++ {
		if w[i:d+1].Sum() > d+h-1-i {
			return false
		}
	}
	return true
}
