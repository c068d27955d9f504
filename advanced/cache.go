package advanced

import (
	"sync"

	"github.com/pkg/errors"
)

// A CodewordCache memoizes Enumerate per codeword length. It is safe for
// concurrent use. The returned slices are shared between callers.
type CodewordCache struct {
	maxN int

	mu    sync.Mutex
	words map[int][]Codeword
}

// NewCodewordCache makes a cache that refuses lengths above maxN. A maxN of 0
// disables the ceiling.
func NewCodewordCache(maxN int) *CodewordCache {
	return &CodewordCache{
		maxN:  maxN,
		words: make(map[int][]Codeword),
	}
}

func (c *CodewordCache) MaxN() int {
	return c.maxN
}

func (c *CodewordCache) Get(n int) ([]Codeword, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrDegenerateSize, "codeword length %d", n)
	}
	if c.maxN > 0 && n > c.maxN {
		return nil, errors.Wrapf(ErrTooLarge, "codeword length %d exceeds %d", n, c.maxN)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if words, ok := c.words[n]; ok {
		return words, nil
	}
	words := Enumerate(n)
	c.words[n] = words
	Logger().Debug("enumerated codewords", "n", n, "count", len(words))
	return words, nil
}
