package match

import (
	"iter"

	"github.com/katalvlaran/seqaug/cursor"
)

// Unit is the result type of effect-only branches.
type Unit = struct{}

// MaxArity is the largest arity a branch can require.
const MaxArity = 5

// AtLeast is an N-or-more branch producing R. Build it with OneOrMore ...
// FiveOrMore (or DoOneOrMore ... DoFiveOrMore for R = Unit). The zero value
// is an absent branch and is ignored by Match.
type AtLeast[T, R any] struct {
	n  int
	fn func(items []T, rest iter.Seq[T]) R
}

// Arity returns N, or 0 for the zero value.
func (c AtLeast[T, R]) Arity() int { return c.n }

// Exact is an exactly-N branch producing R. Build it with ExactlyOne ...
// ExactlyFive (or DoExactlyOne ... DoExactlyFive). The zero value is ignored.
type Exact[T, R any] struct {
	n  int
	fn func(items []T) R
}

// Arity returns N, or 0 for the zero value.
func (c Exact[T, R]) Arity() int { return c.n }

// shape selects how a branch arity is tested against the cached prefix.
type shape int

const (
	shapeAtLeast shape = iota
	shapeExact
)

// lookahead returns how many elements must be cached to decide every
// branch up to maxArity.
func (s shape) lookahead(maxArity int) int {
	if s == shapeExact {
		return maxArity + 1
	}

	return maxArity
}

// accepts reports whether a branch of the given arity fits a prefix holding
// cached elements.
func (s shape) accepts(arity, cached int) bool {
	if s == shapeExact {
		return cached == arity
	}

	return cached >= arity
}

// branch is the shape-independent form both AtLeast and Exact reduce to.
type branch[T, R any] struct {
	arity  int
	invoke func(p cursor.Prefix[T]) R
}
