// Package numrange generates lazy, inclusive numeric ranges.
//
// 🚀 What is a range here?
//
//	A restartable iter.Seq that walks from start toward end in fixed steps
//	and includes end when it is hit exactly:
//	  RangeStep(1, 7, 2)       → 1 3 5 7
//	  RangeStep(1.0, 3.0, 0.5) → 1 1.5 2 2.5 3
//	  RangeStep(6, 1, -1)      → 6 5 4 3 2 1
//
// ✨ Key properties:
//   - generic over every integer and floating-point type (Number)
//   - direction comes from the sign of step; a step pointing away from end
//     yields an empty sequence, never an error
//   - floats accumulate by plain addition; pick a step that is exact in
//     binary (0.5, 0.25, ...) if the end point must be reached
//   - integer ranges stop instead of wrapping around on overflow
//   - stateless: enumerating the same range twice yields the same values
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqaug/numrange"
//
//	for v := range numrange.Range(1, 4) {
//	  fmt.Println(v) // 1 2 3 4
//	}
//
//	evens := numrange.From(0).Step(2).To(10)
//
// Complexity: O(1) to build, O(k) to enumerate k values, O(1) memory.
package numrange
