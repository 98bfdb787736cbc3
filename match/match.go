package match

import (
	"iter"
	"slices"

	"github.com/katalvlaran/seqaug/cursor"
)

// Match calls the highest-arity N-or-more branch that fits seq, or otherwise
// with the whole sequence when none does, and returns its result.
//
// Algorithm:
//  1. Drop absent (zero-value) branches; order the rest by arity, highest
//     first, keeping declaration order between equal arities.
//  2. Peek max(N) elements of seq into one prefix buffer.
//  3. The first branch with N ≤ len(prefix) gets the first N elements and
//     the lazy tail starting at index N.
//  4. Otherwise receives prefix + lazy remainder, i.e. all of seq.
//
// Panics with ErrNoOtherwise if otherwise is nil.
//
// Complexity: O(k log k) for k branches plus O(max N) pulled elements.
func Match[T, R any](seq iter.Seq[T], otherwise func(all iter.Seq[T]) R, cases ...AtLeast[T, R]) R {
	branches := make([]branch[T, R], 0, len(cases))
	for _, c := range cases {
		if c.fn == nil {
			continue
		}
		branches = append(branches, c.toBranch())
	}

	return dispatch(seq, otherwise, shapeAtLeast, branches)
}

// MatchExact calls the exactly-N branch whose N equals the length of seq, or
// otherwise with the whole sequence when none does, and returns its result.
//
// For the largest supplied N the matcher peeks N+1 elements: a prefix of
// length N+1 proves seq is longer than N, so that branch must not fire.
// An exactly-N check against an infinite sequence therefore stays bounded.
//
// Panics with ErrNoOtherwise if otherwise is nil.
func MatchExact[T, R any](seq iter.Seq[T], otherwise func(all iter.Seq[T]) R, cases ...Exact[T, R]) R {
	branches := make([]branch[T, R], 0, len(cases))
	for _, c := range cases {
		if c.fn == nil {
			continue
		}
		branches = append(branches, c.toBranch())
	}

	return dispatch(seq, otherwise, shapeExact, branches)
}

// Run is the effect-only form of Match.
func Run[T any](seq iter.Seq[T], otherwise func(all iter.Seq[T]), cases ...AtLeast[T, Unit]) {
	Match(seq, effect(otherwise), cases...)
}

// RunExact is the effect-only form of MatchExact.
func RunExact[T any](seq iter.Seq[T], otherwise func(all iter.Seq[T]), cases ...Exact[T, Unit]) {
	MatchExact(seq, effect(otherwise), cases...)
}

// effect lifts an effect-only otherwise into a Unit-returning one, keeping
// nil as nil so dispatch can report it.
func effect[T any](fn func(iter.Seq[T])) func(iter.Seq[T]) Unit {
	if fn == nil {
		return nil
	}

	return func(all iter.Seq[T]) Unit {
		fn(all)
		return Unit{}
	}
}

// toBranch adapts an N-or-more case: N cached items plus the tail from N.
func (c AtLeast[T, R]) toBranch() branch[T, R] {
	n, fn := c.n, c.fn
	return branch[T, R]{
		arity: n,
		invoke: func(p cursor.Prefix[T]) R {
			return fn(p.Items()[:n], p.After(n))
		},
	}
}

// toBranch adapts an exactly-N case: exactly the N cached items.
func (c Exact[T, R]) toBranch() branch[T, R] {
	n, fn := c.n, c.fn
	return branch[T, R]{
		arity: n,
		invoke: func(p cursor.Prefix[T]) R {
			return fn(p.Items()[:n])
		},
	}
}

// dispatch is the single algorithm behind all four entry points.
func dispatch[T, R any](seq iter.Seq[T], otherwise func(iter.Seq[T]) R, s shape, branches []branch[T, R]) R {
	if otherwise == nil {
		panic(ErrNoOtherwise)
	}
	if seq == nil {
		seq = cursor.Empty[T]()
	}
	if len(branches) == 0 {
		return otherwise(seq)
	}

	// Highest arity first; stable so the first declared branch wins a tie.
	slices.SortStableFunc(branches, func(a, b branch[T, R]) int {
		return b.arity - a.arity
	})

	prefix := cursor.Peek(seq, s.lookahead(branches[0].arity))
	for _, b := range branches {
		if s.accepts(b.arity, prefix.Len()) {
			return b.invoke(prefix)
		}
	}

	return otherwise(prefix.Whole())
}
