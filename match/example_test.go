package match_test

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/seqaug/match"
	"github.com/katalvlaran/seqaug/numrange"
)

// ExampleMatch sums the first two or three elements, preferring three.
func ExampleMatch() {
	sum := func(xs iter.Seq[int]) int {
		return match.Match(xs,
			func(iter.Seq[int]) int { return 0 },
			match.ThreeOrMore(func(a, b, c int, _ iter.Seq[int]) int { return a + b + c }),
			match.TwoOrMore(func(a, b int, _ iter.Seq[int]) int { return a + b }),
		)
	}

	fmt.Println(sum(numrange.Range(1, 10)))
	fmt.Println(sum(numrange.Range(1, 2)))
	fmt.Println(sum(numrange.Range(1, 1)))
	// Output:
	// 6
	// 3
	// 0
}

// ExampleMatchExact describes a sequence by its exact length.
func ExampleMatchExact() {
	describe := func(xs []string) string {
		return match.MatchExact(slices.Values(xs),
			func(all iter.Seq[string]) string { return fmt.Sprintf("%d items", len(slices.Collect(all))) },
			match.ExactlyOne(func(a string) string { return a }),
			match.ExactlyTwo(func(a, b string) string { return a + " and " + b }),
		)
	}

	fmt.Println(describe([]string{"tea"}))
	fmt.Println(describe([]string{"tea", "milk"}))
	fmt.Println(describe([]string{"tea", "milk", "sugar"}))
	// Output:
	// tea
	// tea and milk
	// 3 items
}

// ExampleRun prints a head/tail decomposition as a side effect.
func ExampleRun() {
	match.Run(numrange.Range(1, 5),
		func(iter.Seq[int]) { fmt.Println("empty") },
		match.DoOneOrMore(func(head int, tail iter.Seq[int]) {
			fmt.Println(head, slices.Collect(tail))
		}),
	)
	// Output: 1 [2 3 4 5]
}
