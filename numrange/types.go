package numrange

import "golang.org/x/exp/constraints"

// Number is the minimal capability set a range needs: ordering, addition
// and a sign test against the zero value.
type Number interface {
	constraints.Integer | constraints.Float
}

// Builder is the fluent form of a range under construction:
//
//	numrange.From(1).Step(2).To(7) // 1 3 5 7
//
// The zero Builder starts at 0 with step 0 and therefore yields nothing;
// always start from From.
type Builder[T Number] struct {
	start T
	step  T
}
