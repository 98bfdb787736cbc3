package match

import "iter"

// ---------------------------------------------------------------------------
// N-or-more branches (value-returning).
// ---------------------------------------------------------------------------

// OneOrMore fires when the sequence has at least one element.
func OneOrMore[T, R any](fn func(a T, rest iter.Seq[T]) R) AtLeast[T, R] {
	mustFn(fn != nil, "OneOrMore")
	return AtLeast[T, R]{n: 1, fn: func(x []T, rest iter.Seq[T]) R {
		return fn(x[0], rest)
	}}
}

// TwoOrMore fires when the sequence has at least two elements.
func TwoOrMore[T, R any](fn func(a, b T, rest iter.Seq[T]) R) AtLeast[T, R] {
	mustFn(fn != nil, "TwoOrMore")
	return AtLeast[T, R]{n: 2, fn: func(x []T, rest iter.Seq[T]) R {
		return fn(x[0], x[1], rest)
	}}
}

// ThreeOrMore fires when the sequence has at least three elements.
func ThreeOrMore[T, R any](fn func(a, b, c T, rest iter.Seq[T]) R) AtLeast[T, R] {
	mustFn(fn != nil, "ThreeOrMore")
	return AtLeast[T, R]{n: 3, fn: func(x []T, rest iter.Seq[T]) R {
		return fn(x[0], x[1], x[2], rest)
	}}
}

// FourOrMore fires when the sequence has at least four elements.
func FourOrMore[T, R any](fn func(a, b, c, d T, rest iter.Seq[T]) R) AtLeast[T, R] {
	mustFn(fn != nil, "FourOrMore")
	return AtLeast[T, R]{n: 4, fn: func(x []T, rest iter.Seq[T]) R {
		return fn(x[0], x[1], x[2], x[3], rest)
	}}
}

// FiveOrMore fires when the sequence has at least five elements.
func FiveOrMore[T, R any](fn func(a, b, c, d, e T, rest iter.Seq[T]) R) AtLeast[T, R] {
	mustFn(fn != nil, "FiveOrMore")
	return AtLeast[T, R]{n: 5, fn: func(x []T, rest iter.Seq[T]) R {
		return fn(x[0], x[1], x[2], x[3], x[4], rest)
	}}
}

// ---------------------------------------------------------------------------
// Exactly-N branches (value-returning).
// ---------------------------------------------------------------------------

// ExactlyOne fires when the sequence has exactly one element.
func ExactlyOne[T, R any](fn func(a T) R) Exact[T, R] {
	mustFn(fn != nil, "ExactlyOne")
	return Exact[T, R]{n: 1, fn: func(x []T) R { return fn(x[0]) }}
}

// ExactlyTwo fires when the sequence has exactly two elements.
func ExactlyTwo[T, R any](fn func(a, b T) R) Exact[T, R] {
	mustFn(fn != nil, "ExactlyTwo")
	return Exact[T, R]{n: 2, fn: func(x []T) R { return fn(x[0], x[1]) }}
}

// ExactlyThree fires when the sequence has exactly three elements.
func ExactlyThree[T, R any](fn func(a, b, c T) R) Exact[T, R] {
	mustFn(fn != nil, "ExactlyThree")
	return Exact[T, R]{n: 3, fn: func(x []T) R { return fn(x[0], x[1], x[2]) }}
}

// ExactlyFour fires when the sequence has exactly four elements.
func ExactlyFour[T, R any](fn func(a, b, c, d T) R) Exact[T, R] {
	mustFn(fn != nil, "ExactlyFour")
	return Exact[T, R]{n: 4, fn: func(x []T) R { return fn(x[0], x[1], x[2], x[3]) }}
}

// ExactlyFive fires when the sequence has exactly five elements.
func ExactlyFive[T, R any](fn func(a, b, c, d, e T) R) Exact[T, R] {
	mustFn(fn != nil, "ExactlyFive")
	return Exact[T, R]{n: 5, fn: func(x []T) R { return fn(x[0], x[1], x[2], x[3], x[4]) }}
}

// ---------------------------------------------------------------------------
// Effect-only branches, used with Run and RunExact.
// ---------------------------------------------------------------------------

// DoOneOrMore is the effect-only form of OneOrMore.
func DoOneOrMore[T any](fn func(a T, rest iter.Seq[T])) AtLeast[T, Unit] {
	mustFn(fn != nil, "DoOneOrMore")
	return OneOrMore(func(a T, rest iter.Seq[T]) Unit { fn(a, rest); return Unit{} })
}

// DoTwoOrMore is the effect-only form of TwoOrMore.
func DoTwoOrMore[T any](fn func(a, b T, rest iter.Seq[T])) AtLeast[T, Unit] {
	mustFn(fn != nil, "DoTwoOrMore")
	return TwoOrMore(func(a, b T, rest iter.Seq[T]) Unit { fn(a, b, rest); return Unit{} })
}

// DoThreeOrMore is the effect-only form of ThreeOrMore.
func DoThreeOrMore[T any](fn func(a, b, c T, rest iter.Seq[T])) AtLeast[T, Unit] {
	mustFn(fn != nil, "DoThreeOrMore")
	return ThreeOrMore(func(a, b, c T, rest iter.Seq[T]) Unit { fn(a, b, c, rest); return Unit{} })
}

// DoFourOrMore is the effect-only form of FourOrMore.
func DoFourOrMore[T any](fn func(a, b, c, d T, rest iter.Seq[T])) AtLeast[T, Unit] {
	mustFn(fn != nil, "DoFourOrMore")
	return FourOrMore(func(a, b, c, d T, rest iter.Seq[T]) Unit { fn(a, b, c, d, rest); return Unit{} })
}

// DoFiveOrMore is the effect-only form of FiveOrMore.
func DoFiveOrMore[T any](fn func(a, b, c, d, e T, rest iter.Seq[T])) AtLeast[T, Unit] {
	mustFn(fn != nil, "DoFiveOrMore")
	return FiveOrMore(func(a, b, c, d, e T, rest iter.Seq[T]) Unit { fn(a, b, c, d, e, rest); return Unit{} })
}

// DoExactlyOne is the effect-only form of ExactlyOne.
func DoExactlyOne[T any](fn func(a T)) Exact[T, Unit] {
	mustFn(fn != nil, "DoExactlyOne")
	return ExactlyOne(func(a T) Unit { fn(a); return Unit{} })
}

// DoExactlyTwo is the effect-only form of ExactlyTwo.
func DoExactlyTwo[T any](fn func(a, b T)) Exact[T, Unit] {
	mustFn(fn != nil, "DoExactlyTwo")
	return ExactlyTwo(func(a, b T) Unit { fn(a, b); return Unit{} })
}

// DoExactlyThree is the effect-only form of ExactlyThree.
func DoExactlyThree[T any](fn func(a, b, c T)) Exact[T, Unit] {
	mustFn(fn != nil, "DoExactlyThree")
	return ExactlyThree(func(a, b, c T) Unit { fn(a, b, c); return Unit{} })
}

// DoExactlyFour is the effect-only form of ExactlyFour.
func DoExactlyFour[T any](fn func(a, b, c, d T)) Exact[T, Unit] {
	mustFn(fn != nil, "DoExactlyFour")
	return ExactlyFour(func(a, b, c, d T) Unit { fn(a, b, c, d); return Unit{} })
}

// DoExactlyFive is the effect-only form of ExactlyFive.
func DoExactlyFive[T any](fn func(a, b, c, d, e T)) Exact[T, Unit] {
	mustFn(fn != nil, "DoExactlyFive")
	return ExactlyFive(func(a, b, c, d, e T) Unit { fn(a, b, c, d, e); return Unit{} })
}
