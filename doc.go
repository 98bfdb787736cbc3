// Package seqaug augments Go 1.23 iterators (iter.Seq) with a small set of
// sequence tools: lazy numeric ranges, head/tail decomposition and
// arity-based structural matching.
//
// 🚀 What is seqaug?
//
//	A pure, generic, in-process library. Every operation is lazy and
//	pull-based: nothing is enumerated until a consumer ranges over the
//	result, and no operation reads further into a sequence than it must.
//		• numrange: inclusive ranges with arbitrary step, integer or float
//		• headtail: Split (panics on empty) and SplitSafe (Result value)
//		• match:    N-or-more and exactly-N dispatch, highest arity first
//		• prelude:  Seq/List/Array/Dict builders, LazyValue, SequenceHashCode
//		• cursor:   the "peek N, then resume" prefix cache underneath it all
//
// ✨ Guarantees
//
//   - A source is enumerated at most once per call to Split or Match.
//   - Tails are lazy; an infinite source is safe to split and match.
//   - Malformed ranges (wrong-direction or zero step) are empty, never errors.
//
// Quick example:
//
//	seq := numrange.From(1).Step(2).To(9) // 1 3 5 7 9
//	sum := match.Match(seq,
//		func(iter.Seq[int]) int { return 0 },
//		match.TwoOrMore(func(a, b int, _ iter.Seq[int]) int { return a + b }),
//	) // 4
//
// The cmd/seqaug binary exposes range, split and match on the command line.
//
//	go install github.com/katalvlaran/seqaug/cmd/seqaug@latest
package seqaug
