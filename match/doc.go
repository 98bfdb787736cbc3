// Package match dispatches on how many leading elements a sequence has.
//
// 🚀 What does it do?
//
//	Given a sequence, a set of arity-specific branches and a mandatory
//	otherwise branch, it inspects a bounded prefix of the sequence once and
//	calls the most specific branch that fits:
//
//	  sum := match.Match(xs,
//	    func(all iter.Seq[int]) int { return 0 },                       // otherwise
//	    match.ThreeOrMore(func(a, b, c int, _ iter.Seq[int]) int { return a + b + c }),
//	    match.TwoOrMore(func(a, b int, _ iter.Seq[int]) int { return a + b }),
//	  )
//
// ✨ Two shapes:
//   - N-or-more (AtLeast): fires when the sequence has ≥ N elements; the
//     branch receives the first N elements and the lazy tail.
//   - exactly-N (Exact): fires when the sequence has exactly N elements; the
//     matcher looks at N+1 elements to rule out longer sequences.
//
// Each shape has a value-returning call (Match, MatchExact) and an
// effect-only call (Run, RunExact) built from the Do* constructors.
//
// Precedence:
//   - The highest arity that fits wins, regardless of argument order.
//   - Two branches with the same arity: the first one passed wins.
//   - Nothing fits: otherwise receives the whole original sequence,
//     rebuilt from the inspected prefix followed by the lazy remainder.
//
// Cost: the source is enumerated once for at most max(N) (or max(N)+1)
// elements before a branch runs. The tail or otherwise sequence resumes that
// same enumeration instead of starting a new one, so single-use sources such
// as channels are safe to match.
//
// The matcher returns no errors of its own. A panic raised by a branch
// propagates to the caller unchanged.
package match
