package cursor

import (
	"iter"
	"runtime"
)

// Prefix is a bounded buffer over the head of a sequence paired with a
// resumable remainder.
//
// Invariants:
//   - len(items) ≤ the requested look-ahead.
//   - exhausted == true iff the source yielded fewer elements than requested.
//   - cont != nil iff the window filled up and the source may hold more.
type Prefix[T any] struct {
	src       iter.Seq[T]
	items     []T
	exhausted bool
	cont      *continuation[T]
}

// continuation is the suspended enumeration Peek stopped in. The first
// enumeration of Rest drains it; later ones restart the source.
type continuation[T any] struct {
	next func() (T, bool)
	stop func()
	used bool
}

// release stops the suspended enumeration. Safe to call more than once.
func (c *continuation[T]) release() {
	if c.stop != nil {
		c.stop()
		c.stop, c.next = nil, nil
	}
}

// Peek enumerates src once, stopping after n elements, and returns the
// buffered prefix. If n ≤ 0, src is not enumerated at all and the returned
// prefix is empty but not exhausted.
//
// When the window fills up, the enumeration is suspended (iter.Pull) rather
// than abandoned, so Rest continues exactly where Peek stopped. The
// suspended enumeration is stopped once Rest finishes or its consumer
// breaks, or when the Prefix becomes unreachable.
//
// Complexity: O(n) time, O(n) space.
func Peek[T any](src iter.Seq[T], n int) Prefix[T] {
	p := Prefix[T]{src: src}
	if n <= 0 {
		return p
	}
	if src == nil {
		p.exhausted = true
		return p
	}

	next, stop := iter.Pull(src)
	p.items = make([]T, 0, n)
	for len(p.items) < n {
		v, ok := next()
		if !ok {
			stop()
			p.exhausted = true
			return p
		}
		p.items = append(p.items, v)
	}

	c := &continuation[T]{next: next, stop: stop}
	runtime.SetFinalizer(c, (*continuation[T]).release)
	p.cont = c

	return p
}

// Items returns the buffered elements. The slice is shared with the prefix;
// callers must not modify it.
func (p Prefix[T]) Items() []T { return p.items }

// Len returns the number of buffered elements.
func (p Prefix[T]) Len() int { return len(p.items) }

// Exhausted reports whether the source ended inside the look-ahead window.
func (p Prefix[T]) Exhausted() bool { return p.exhausted }

// Rest returns the elements of the source that follow the buffer.
//
// For an exhausted prefix this is the empty sequence and the source is not
// re-enumerated. Otherwise the first enumeration of Rest resumes the
// enumeration Peek suspended, so single-use sources (channels, readers) lose
// nothing. Any later enumeration restarts the source and skips the buffered
// elements, which is only meaningful for re-enumerable sources.
func (p Prefix[T]) Rest() iter.Seq[T] {
	if p.exhausted {
		return Empty[T]()
	}
	if p.cont == nil {
		return Skip(p.src, len(p.items))
	}

	src, skip, c := p.src, len(p.items), p.cont

	return func(yield func(T) bool) {
		if c.used {
			for v := range Skip(src, skip) {
				if !yield(v) {
					return
				}
			}
			return
		}
		c.used = true
		defer c.release()
		for {
			v, ok := c.next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// After returns the original sequence starting at index k: the buffered
// items from k followed by Rest. k is clamped to [0, Len()].
func (p Prefix[T]) After(k int) iter.Seq[T] {
	k = max(0, min(k, len(p.items)))
	head := p.items[k:]
	if p.exhausted {
		return Values(head)
	}
	if len(head) == 0 {
		return p.Rest()
	}

	return Concat(Values(head), p.Rest())
}

// Whole reconstructs the full original sequence from the buffer and the
// remainder.
func (p Prefix[T]) Whole() iter.Seq[T] {
	if !p.exhausted && len(p.items) == 0 {
		// Nothing was inspected; hand back the source untouched.
		return p.source()
	}

	return p.After(0)
}

func (p Prefix[T]) source() iter.Seq[T] {
	if p.src == nil {
		return Empty[T]()
	}

	return p.src
}
