package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
		assert.IsType(t, &TriangulationError{}, err)
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("runtime errors are not swallowed", func(t *testing.T) {
		assert.Panics(t, func() {
			defer func() {
				HandlePanicRecover(recover())
			}()
			var stack EdgeStack
			stack.Pop()
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})

	t.Run("sentinel survives", func(t *testing.T) {
		err := func() (err error) {
			defer func() {
				err = HandlePanicRecover(recover())
			}()
			fatal(ErrInvalidCodeword, "codeword %s", Codeword{0, 0, 2})
			return nil
		}()
		require.Error(t, err)
		assert.Equal(t, ErrInvalidCodeword, errors.Cause(err))
		assert.ErrorIs(t, err, ErrInvalidCodeword)
		assert.Contains(t, err.Error(), "codeword 0,0,2")
	})
}

// Run fn and return the TriangulationError it panics with, failing the test if
// it does not panic that way.
func requireTriangulationPanic(t *testing.T, fn func()) error {
	t.Helper()
	var err error
	func() {
		defer func() {
			err = HandlePanicRecover(recover())
		}()
		fn()
	}()
	require.Error(t, err, "expected a TriangulationError panic")
	return err
}
