package headtail

import (
	"iter"

	"github.com/katalvlaran/seqaug/cursor"
)

// Result is the outcome of SplitSafe: either a head with its tail, or an
// error. The zero Result is neither; it reports IsOk() == false and a nil Err.
type Result[T any] struct {
	head T
	tail iter.Seq[T]
	err  error
	ok   bool
}

// okResult builds a successful Result.
func okResult[T any](head T, tail iter.Seq[T]) Result[T] {
	return Result[T]{head: head, tail: tail, ok: true}
}

// errResult builds a failed Result.
func errResult[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether the split succeeded.
func (r Result[T]) IsOk() bool { return r.ok }

// IsError reports whether the split failed.
func (r Result[T]) IsError() bool { return r.err != nil }

// Err returns the failure reason, or nil on success.
func (r Result[T]) Err() error { return r.err }

// Head returns the first element, or the zero value on failure.
func (r Result[T]) Head() T { return r.head }

// Tail returns the remainder, or the empty sequence on failure.
func (r Result[T]) Tail() iter.Seq[T] {
	if r.tail == nil {
		return cursor.Empty[T]()
	}

	return r.tail
}

// Unpack returns head, tail and error in Go's usual multi-value form.
func (r Result[T]) Unpack() (T, iter.Seq[T], error) {
	return r.head, r.Tail(), r.err
}

// Expect returns head and tail, panicking with the wrapped failure if the
// split did not succeed.
func (r Result[T]) Expect() (T, iter.Seq[T]) {
	if !r.ok {
		err := r.err
		if err == nil {
			err = ErrEmptySequence
		}
		panic(wrapf(methodExpect, err))
	}

	return r.head, r.Tail()
}
