// Package headtail decomposes a sequence into its first element and the lazy
// remainder.
//
// Two forms are provided:
//
//	head, tail := headtail.Split(seq)   // panics on an empty sequence
//	res := headtail.SplitSafe(seq)      // never panics; inspect res.Err()
//
// Both forms pull exactly one element from the source. The tail continues
// the same enumeration the head came from, so a single-use source loses
// nothing. Enumerating the tail a second time restarts the source and skips
// the head, which needs a re-enumerable source.
//
// Errors:
//
//	ErrEmptySequence - decomposition attempted on a zero-length source.
package headtail
