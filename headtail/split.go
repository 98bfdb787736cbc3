package headtail

import (
	"iter"

	"github.com/katalvlaran/seqaug/cursor"
)

// SplitSafe splits seq into its first element and the lazy remainder.
// An empty (or nil) seq produces an error Result wrapping ErrEmptySequence;
// SplitSafe itself never panics.
//
// Complexity: O(1): one element is pulled; the tail is not materialized.
func SplitSafe[T any](seq iter.Seq[T]) Result[T] {
	p := cursor.Peek(seq, 1)
	if p.Len() == 0 {
		return errResult[T](wrapf(methodSplitSafe, ErrEmptySequence))
	}

	return okResult(p.Items()[0], p.After(1))
}

// Split is the unsafe form of SplitSafe: it returns head and tail directly
// and panics with an error wrapping ErrEmptySequence when seq is empty.
//
// Example:
//
//	head, tail := headtail.Split(prelude.Seq(1, 2, 3, 4)) // 1, [2 3 4]
func Split[T any](seq iter.Seq[T]) (head T, tail iter.Seq[T]) {
	res := SplitSafe(seq)
	if res.IsError() {
		panic(wrapf(methodSplit, ErrEmptySequence))
	}

	return res.head, res.Tail()
}

// Cons is the inverse of Split: it yields head followed by tail.
func Cons[T any](head T, tail iter.Seq[T]) iter.Seq[T] {
	return cursor.Concat(cursor.Values([]T{head}), tail)
}
