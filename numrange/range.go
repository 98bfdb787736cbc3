package numrange

import "iter"

// Range returns the inclusive range [start, end] with unit step.
// If end < start the sequence is empty.
//
// Example:
//
//	Range(1, 4) // 1 2 3 4
//	Range(0, -1) // (empty)
func Range[T Number](start, end T) iter.Seq[T] {
	return RangeStep(start, end, T(1))
}

// RangeStep returns start, start+step, start+2·step, ... bounded by end.
//
// Rules:
//   - step > 0 yields while value ≤ end.
//   - step < 0 yields while value ≥ end.
//   - step == 0 (or NaN) yields nothing.
//   - If start already violates the bound the sequence is empty.
//   - If the next value would overflow T, enumeration stops.
//
// The returned sequence holds no state between enumerations.
//
// Complexity: O(k) time for k produced values, O(1) memory.
func RangeStep[T Number](start, end, step T) iter.Seq[T] {
	var zero T

	return func(yield func(T) bool) {
		switch {
		case step > zero:
			for v := start; v <= end; {
				if !yield(v) {
					return
				}
				next := v + step
				if next <= v {
					// wrapped around (or the step vanished in float precision)
					return
				}
				v = next
			}
		case step < zero:
			for v := start; v >= end; {
				if !yield(v) {
					return
				}
				next := v + step
				if next >= v {
					return
				}
				v = next
			}
		}
	}
}

// From starts a fluent range at start with unit step.
func From[T Number](start T) Builder[T] {
	return Builder[T]{start: start, step: T(1)}
}

// Step returns a copy of b with the given step.
func (b Builder[T]) Step(step T) Builder[T] {
	b.step = step
	return b
}

// To closes the range at end (inclusive) and returns the sequence.
func (b Builder[T]) To(end T) iter.Seq[T] {
	return RangeStep(b.start, end, b.step)
}
