package advanced

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// IsValid reports whether w is a codeword of length n. This is Lemma 1 of
// Zerling's rotation encoding: with S(i) the sum of the entries after i,
//
//	w[i] <= (n-i) - S(i)   for 1 <= i <= n-2
//	w[0]  = (n-1) - S(0)
//
// The last entry is only bounded through w[0]. Entries must also be
// non-negative. A word of the wrong length is simply invalid.
func (w Codeword) IsValid(n int) bool {
	if n < 1 || len(w) != n {
		return false
	}
	suffix := 0
	for i := n - 1; i >= 1; i-- {
		if w[i] < 0 || (i < n-1 && w[i] > (n-i)-suffix) {
			return false
		}
		suffix += w[i]
	}
	return w[0] >= 0 && w[0] == (n-1)-suffix
}

func (w Codeword) Sum() int {
	sum := 0
	for _, v := range w {
		sum += v
	}
	return sum
}

func (w Codeword) Clone() Codeword {
	return append(Codeword(nil), w...)
}

func (w Codeword) Equal(other Codeword) bool {
	if len(w) != len(other) {
		return false
	}
	for i := range w {
		if w[i] != other[i] {
			return false
		}
	}
	return true
}

// Changed lists the positions where w and other differ. Consecutive codewords
// of an enumeration always differ in exactly two.
func (w Codeword) Changed(other Codeword) []int {
	var changed []int
	for i := range w {
		if i >= len(other) || w[i] != other[i] {
			changed = append(changed, i)
		}
	}
	return changed
}

func (w Codeword) String() string {
	parts := make([]string, len(w))
	for i, v := range w {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

var codewordPattern = regexp.MustCompile(`^(\d+,)*\d+$`)

// ParseCodeword reads user input such as "1, 0, 2, 0" as a codeword of length
// n. Spaces are ignored. Input that is not a comma separated list of digits
// fails with ErrMalformedCodeword; a well formed list that is not a codeword
// of length n fails with ErrInvalidCodeword.
func ParseCodeword(s string, n int) (Codeword, error) {
	s = strings.ReplaceAll(s, " ", "")
	if !codewordPattern.MatchString(s) {
		return nil, errors.Wrapf(ErrMalformedCodeword, "%q", s)
	}
	parts := strings.Split(s, ",")
	w := make(Codeword, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedCodeword, "%q: %v", s, err)
		}
		w[i] = v
	}
	if !w.IsValid(n) {
		return nil, errors.Wrapf(ErrInvalidCodeword, "%s for a %d-gon", w, n+2)
	}
	return w, nil
}
