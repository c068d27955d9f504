package advanced

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodewordIsValid(t *testing.T) {
	cases := []struct {
		w     Codeword
		n     int
		valid bool
	}{
		{Codeword{0}, 1, true},
		{Codeword{1, 0}, 2, true},
		{Codeword{0, 1}, 2, true},
		{Codeword{3, 0, 0, 0}, 4, true},
		{Codeword{1, 0, 2, 0}, 4, true},
		{Codeword{0, 2, 0, 1}, 4, true},
		{Codeword{1, 0, 2, 0, 1}, 5, true},
		// Sum is wrong
		{Codeword{2, 0, 2, 0}, 4, false},
		{Codeword{1}, 1, false},
		// The last entry is only bounded by the sum, and can wrap
		{Codeword{0, 0, 2}, 3, true},
		{Codeword{1, 0, 0, 2}, 4, true},
		// Too many diagonals from a position near the top
		{Codeword{0, 3, 1, 0}, 4, false},
		{Codeword{0, 0, 0, 0, 4}, 5, false},
		{Codeword{0, 0, 3}, 3, false},
		// Negative entries balance the sum but mean nothing
		{Codeword{3, -1, 0}, 3, false},
		// Wrong length
		{Codeword{1, 0, 2}, 4, false},
		{Codeword{1, 0, 2, 0}, 3, false},
		{Codeword{}, 0, false},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v for n=%d", c.w, c.n), func(t *testing.T) {
			assert.Equal(t, c.valid, c.w.IsValid(c.n))
		})
	}
}

// Every word in the box [0, n)^n that the validator accepts. The box contains
// every codeword of length n.
func acceptedWords(n int) []Codeword {
	var words []Codeword
	w := make(Codeword, n)
	var fill func(i int)
	fill = func(i int) {
		if i == n {
			if w.IsValid(n) {
				words = append(words, w.Clone())
			}
			return
		}
		for v := 0; v < n; v++ {
			w[i] = v
			fill(i + 1)
		}
	}
	fill(0)
	return words
}

// The validator accepts every enumerated codeword, and for n >= 3 also some
// words whose last entry wraps around the polygon.
func TestCodewordIsValid_Exhaustive(t *testing.T) {
	counts := []int{1, 2, 6, 16, 47, 146}
	for n := 1; n <= len(counts); n++ {
		accepted := acceptedWords(n)
		assert.Len(t, accepted, counts[n-1], "n=%d", n)
		for _, w := range Enumerate(n) {
			assert.True(t, w.IsValid(n), "codeword %s", w)
		}
	}
}

func TestCodewordChanged(t *testing.T) {
	assert.Equal(t, []int{0, 2}, Codeword{2, 0, 1, 0}.Changed(Codeword{1, 0, 2, 0}))
	assert.Empty(t, Codeword{1, 0}.Changed(Codeword{1, 0}))
	assert.Equal(t, []int{1}, Codeword{1, 0}.Changed(Codeword{1}))
}

func TestCodewordString(t *testing.T) {
	assert.Equal(t, "1,0,2,0", Codeword{1, 0, 2, 0}.String())
	assert.Equal(t, "0", Codeword{0}.String())
}

func TestCodewordClone(t *testing.T) {
	w := Codeword{1, 0, 2, 0}
	clone := w.Clone()
	clone[0] = 5
	assert.Equal(t, 1, w[0])
	assert.True(t, w.Equal(Codeword{1, 0, 2, 0}))
	assert.False(t, w.Equal(clone))
}

func TestParseCodeword(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		w, err := ParseCodeword("1,0,2,0", 4)
		require.NoError(t, err)
		assert.Equal(t, Codeword{1, 0, 2, 0}, w)
	})

	t.Run("spaces are ignored", func(t *testing.T) {
		w, err := ParseCodeword(" 1, 0 ,2, 0 ", 4)
		require.NoError(t, err)
		assert.Equal(t, Codeword{1, 0, 2, 0}, w)
	})

	t.Run("wrapping last entry", func(t *testing.T) {
		w, err := ParseCodeword("1,0,0,2", 4)
		require.NoError(t, err)
		assert.Equal(t, Codeword{1, 0, 0, 2}, w)
	})

	t.Run("multi digit entries", func(t *testing.T) {
		w, err := ParseCodeword("10,0,0,0,0,0,0,0,0,0,0", 11)
		require.NoError(t, err)
		assert.Equal(t, 10, w[0])
	})

	malformed := []string{"", ",", "1,", ",1", "1,,0", "1;0", "a,b", "-1,2", "1.0,0"}
	for _, input := range malformed {
		t.Run(fmt.Sprintf("malformed %q", input), func(t *testing.T) {
			_, err := ParseCodeword(input, 2)
			require.Error(t, err)
			assert.Equal(t, ErrMalformedCodeword, errors.Cause(err))
		})
	}

	invalid := []struct {
		input string
		n     int
	}{
		{"1,0,2", 4},
		{"2,0,2,0", 4},
		{"0,0,3", 3},
	}
	for _, c := range invalid {
		t.Run(fmt.Sprintf("invalid %q", c.input), func(t *testing.T) {
			_, err := ParseCodeword(c.input, c.n)
			require.Error(t, err)
			assert.Equal(t, ErrInvalidCodeword, errors.Cause(err))
		})
	}
}
