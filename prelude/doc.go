// Package prelude collects small constructors that make sequence-heavy code
// read well next to numrange, headtail and match:
//
//	xs := prelude.Seq(1, 2, 3)                       // iter.Seq[int]
//	ls := prelude.List(1, 2, 3)                      // []int
//	m  := prelude.Dict(prelude.Pair(1, "hi"))        // map[int]string
//	m2 := prelude.ToDictionary(pairsSeq)             // map from a pair sequence
//	lv := prelude.LazyValue(func() int { return 42 }) // computed once
//	h  := prelude.SequenceHashCode(xs)               // order-sensitive content hash
//
// None of these helpers retain state beyond what they return.
package prelude
