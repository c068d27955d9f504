package advanced

import "github.com/pkg/errors"

// Threading errors up and down the recursive enumeration and the triangle
// assembly would add a ton of noise for conditions that only arise when a
// caller breaks a precondition. Instead, we panic with a TriangulationError,
// and the public API recovers to convert to an error.

var (
	ErrDegenerateSize    = errors.New("polygon needs at least three vertices")
	ErrInvalidCodeword   = errors.New("invalid codeword")
	ErrMalformedCodeword = errors.New("malformed codeword")
	ErrTooLarge          = errors.New("polygon too large to enumerate")
)

type TriangulationError struct {
	cause error
}

func (e *TriangulationError) Error() string {
	return e.cause.Error()
}

// Cause lets errors.Cause see through to the sentinel, if any.
func (e *TriangulationError) Cause() error {
	return e.cause
}

func (e *TriangulationError) Unwrap() error {
	return e.cause
}

// Panic with a TriangulationError.
func fatalf(format string, args ...interface{}) {
	panic(&TriangulationError{errors.Errorf(format, args...)})
}

// Panic with a TriangulationError wrapping one of the sentinel errors.
func fatal(sentinel error, format string, args ...interface{}) {
	panic(&TriangulationError{errors.Wrapf(sentinel, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if triangulationError, ok := r.(*TriangulationError); ok {
			return triangulationError
		}
		panic(r)
	}
	return nil
}
