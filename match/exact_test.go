package match_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/katalvlaran/seqaug/match"
	"github.com/katalvlaran/seqaug/numrange"
	"github.com/stretchr/testify/assert"
)

// TestMatchExact_Counts mirrors the exact-count behavior for [1 2 3] and
// [1 2 3 4].
func TestMatchExact_Counts(t *testing.T) {
	got := match.MatchExact(numrange.Range(1, 3),
		func(iter.Seq[int]) bool { return false },
		match.ExactlyTwo(func(a, b int) bool { return false }),
		match.ExactlyThree(func(a, b, c int) bool { return a+b+c == 6 }),
		match.ExactlyFour(func(a, b, c, d int) bool { return false }),
	)
	assert.True(t, got)

	got = match.MatchExact(numrange.Range(1, 4),
		func(iter.Seq[int]) bool { return true },
		match.ExactlyTwo(func(a, b int) bool { return false }),
		match.ExactlyThree(func(a, b, c int) bool { return false }),
	)
	assert.True(t, got, "four elements must not match exactly-three")
}

// TestRunExact_Actions mirrors the effect-only exact-count behavior.
func TestRunExact_Actions(t *testing.T) {
	ran := false
	match.RunExact(numrange.Range(1, 3),
		func(iter.Seq[int]) { t.Fatal("otherwise must not run") },
		match.DoExactlyTwo(func(a, b int) { t.Fatal("two must not run") }),
		match.DoExactlyThree(func(a, b, c int) {
			ran = true
			assert.Equal(t, []int{1, 2, 3}, []int{a, b, c})
		}),
		match.DoExactlyFour(func(a, b, c, d int) { t.Fatal("four must not run") }),
	)
	assert.True(t, ran)

	ran = false
	match.RunExact(numrange.Range(1, 4),
		func(all iter.Seq[int]) {
			ran = true
			assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(all))
		},
		match.DoExactlyTwo(func(a, b int) { t.Fatal("two must not run") }),
		match.DoExactlyThree(func(a, b, c int) { t.Fatal("three must not run") }),
	)
	assert.True(t, ran)
}

// TestMatchExact_AllArities checks every exactly-N constructor on a sequence
// of matching length, and that a longer sequence falls through.
func TestMatchExact_AllArities(t *testing.T) {
	other := func(iter.Seq[int]) []int { return nil }
	tests := []struct {
		n int
		c match.Exact[int, []int]
	}{
		{1, match.ExactlyOne(func(a int) []int { return []int{a} })},
		{2, match.ExactlyTwo(func(a, b int) []int { return []int{a, b} })},
		{3, match.ExactlyThree(func(a, b, c int) []int { return []int{a, b, c} })},
		{4, match.ExactlyFour(func(a, b, c, d int) []int { return []int{a, b, c, d} })},
		{5, match.ExactlyFive(func(a, b, c, d, e int) []int { return []int{a, b, c, d, e} })},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.n, tc.c.Arity())
		want := slices.Collect(numrange.Range(1, tc.n))
		assert.Equal(t, want, match.MatchExact(numrange.Range(1, tc.n), other, tc.c), "exactly %d", tc.n)
		assert.Nil(t, match.MatchExact(numrange.Range(1, tc.n+1), other, tc.c), "%d+1 elements", tc.n)
		assert.Nil(t, match.MatchExact(numrange.Range(1, tc.n-1), other, tc.c), "%d-1 elements", tc.n)
	}
}

// TestMatchExact_LooksOnePastLargest verifies the N+1 look-ahead is bounded
// even for infinite sources.
func TestMatchExact_LooksOnePastLargest(t *testing.T) {
	pulled := 0
	src := counted(iter.Seq[int](naturals), &pulled)

	got := match.MatchExact(src,
		func(all iter.Seq[int]) []int { return take(all, 8) },
		match.ExactlyFive(func(_, _, _, _, _ int) []int { return nil }),
		match.ExactlyOne(func(int) []int { return nil }),
	)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, got, "otherwise sees the full sequence")

	pulled = 0
	match.MatchExact(src,
		func(iter.Seq[int]) int { return 0 },
		match.ExactlyFive(func(_, _, _, _, _ int) int { return 5 }),
	)
	assert.Equal(t, 6, pulled, "exactly-five inspects six elements")
}

// TestMatchExact_OtherwiseFromCachedPrefix verifies reconstruction when the
// prefix already reached the end of the source.
func TestMatchExact_OtherwiseFromCachedPrefix(t *testing.T) {
	starts := 0
	src := func(yield func(int) bool) {
		starts++
		for _, v := range []int{7, 8, 9} {
			if !yield(v) {
				return
			}
		}
	}

	got := match.MatchExact(src,
		func(all iter.Seq[int]) []int { return slices.Collect(all) },
		match.ExactlyFour(func(_, _, _, _ int) []int { return nil }),
		match.ExactlyTwo(func(_, _ int) []int { return nil }),
	)
	assert.Equal(t, []int{7, 8, 9}, got)
	assert.Equal(t, 1, starts, "the source was fully cached; no replay")
}

// TestMatchExact_Empty verifies empty sequences fall through to otherwise.
func TestMatchExact_Empty(t *testing.T) {
	got := match.MatchExact(numrange.Range(0, -1),
		func(all iter.Seq[int]) string {
			if len(slices.Collect(all)) == 0 {
				return "empty"
			}
			return "?"
		},
		match.ExactlyOne(func(int) string { return "one" }),
	)
	assert.Equal(t, "empty", got)
}

// TestRunExact_AllDoArities checks every effect-only exactly-N constructor.
func TestRunExact_AllDoArities(t *testing.T) {
	var hits []int
	other := func(iter.Seq[int]) { hits = append(hits, 0) }

	match.RunExact(numrange.Range(1, 1), other, match.DoExactlyOne(func(int) { hits = append(hits, 1) }))
	match.RunExact(numrange.Range(1, 2), other, match.DoExactlyTwo(func(_, _ int) { hits = append(hits, 2) }))
	match.RunExact(numrange.Range(1, 3), other, match.DoExactlyThree(func(_, _, _ int) { hits = append(hits, 3) }))
	match.RunExact(numrange.Range(1, 4), other, match.DoExactlyFour(func(_, _, _, _ int) { hits = append(hits, 4) }))
	match.RunExact(numrange.Range(1, 5), other, match.DoExactlyFive(func(_, _, _, _, _ int) { hits = append(hits, 5) }))
	match.RunExact(numrange.Range(1, 6), other, match.DoExactlyFive(func(_, _, _, _, _ int) { hits = append(hits, 5) }))

	assert.Equal(t, []int{1, 2, 3, 4, 5, 0}, hits)
}
