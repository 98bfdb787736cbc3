// Package cursor provides the bounded look-ahead used by the rest of seqaug.
//
// A Prefix buffers the first K elements of an iter.Seq and remembers whether
// the source ended before K was reached. From that single bounded pass it can
// hand out:
//
//   - the buffered elements (Items),
//   - the lazy remainder of the source (Rest),
//   - the sequence starting at any index k ≤ K (After),
//   - an exact reconstruction of the original sequence (Whole).
//
// When the prefix already observed the end of the source, Rest, After and
// Whole never touch the source again. Otherwise Peek leaves the source
// suspended mid-enumeration, and the first enumeration of the remainder
// resumes it, so a single-use source (channel, reader) is continued, never
// restarted. A second enumeration of the remainder restarts the source and
// skips the buffered elements; only re-enumerable sources (ranges, slice
// views) support that.
//
// Helpers:
//
//	Peek(src, n)     // O(n): one bounded pass over src
//	Skip(src, n)     // lazy
//	Concat(a, b)     // lazy
//	Values(xs)       // lazy view over a slice
//	Empty[T]()       // sequence with no elements
//
// Nothing in this package is safe for concurrent use of the same Prefix from
// several goroutines while its sequences are being enumerated.
package cursor
