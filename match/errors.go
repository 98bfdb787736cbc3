package match

import (
	"errors"
	"fmt"
)

// ErrNoOtherwise is the panic value used when Match, MatchExact, Run or
// RunExact is called with a nil otherwise branch. The otherwise branch is
// mandatory; a nil one is a programming error, not a runtime condition.
var ErrNoOtherwise = errors.New("match: otherwise branch is required")

// ErrNilHandler is wrapped by the panic value of a branch constructor given
// a nil handler. Usage: recover the value and test it with errors.Is.
var ErrNilHandler = errors.New("match: nil branch handler")

// mustFn panics if fn is nil. Branch constructors validate eagerly so that a
// nil handler is reported at the call site that built it.
func mustFn(ok bool, ctor string) {
	if !ok {
		panic(fmt.Errorf("%s: %w", ctor, ErrNilHandler))
	}
}
