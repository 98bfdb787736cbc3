package cursor

import "iter"

// Empty returns a sequence that yields nothing.
func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// Values returns a lazy view over xs. The slice is not copied; mutations made
// before enumeration are observed.
func Values[T any](xs []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range xs {
			if !yield(v) {
				return
			}
		}
	}
}

// Skip returns src without its first n elements. Every enumeration of the
// result enumerates src from the beginning.
func Skip[T any](src iter.Seq[T], n int) iter.Seq[T] {
	if src == nil {
		return Empty[T]()
	}
	if n <= 0 {
		return src
	}

	return func(yield func(T) bool) {
		skipped := 0
		for v := range src {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Concat yields every element of a, then every element of b.
// Enumeration stops as soon as the consumer stops.
func Concat[T any](a, b iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if a != nil {
			for v := range a {
				if !yield(v) {
					return
				}
			}
		}
		if b != nil {
			for v := range b {
				if !yield(v) {
					return
				}
			}
		}
	}
}
