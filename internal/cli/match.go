package cli

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/seqaug/match"
)

// verdict is what a match branch reports back for printing.
type verdict struct {
	branch  string
	items   []string
	rest    []string
	hasRest bool
}

// runMatch reports which arity branch the positional values select.
func runMatch(e *env, args []string) error {
	fs := e.newFlagSet("match")
	exact := fs.Bool("exact", false, "use exactly-N branches instead of N-or-more")
	arities := fs.IntSlice("arities", []int{1, 2, 3, 4, 5}, "branch arities to register (1-5)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	for _, n := range *arities {
		if n < 1 || n > match.MaxArity {
			return usagef("arity %d out of range 1..%d", n, match.MaxArity)
		}
	}

	src := slices.Values(fs.Args())
	otherwise := func(all iter.Seq[string]) verdict {
		return verdict{branch: "otherwise", items: slices.Collect(all)}
	}

	var v verdict
	if *exact {
		cases := make([]match.Exact[string, verdict], 0, len(*arities))
		for _, n := range *arities {
			cases = append(cases, exactCase(n))
		}
		v = match.MatchExact(src, otherwise, cases...)
	} else {
		cases := make([]match.AtLeast[string, verdict], 0, len(*arities))
		for _, n := range *arities {
			cases = append(cases, atLeastCase(n))
		}
		v = match.Match(src, otherwise, cases...)
	}

	e.log.Debug().Bool("exact", *exact).Ints("arities", *arities).Str("branch", v.branch).Msg("matched")
	e.out.line(v.branch, list(v.items))
	if v.hasRest {
		e.out.line("rest", list(v.rest))
	}

	return nil
}

// atLeastCase builds the N-or-more branch for arity n (1..5).
func atLeastCase(n int) match.AtLeast[string, verdict] {
	name := fmt.Sprintf("%d-or-more", n)
	hit := func(items []string, rest iter.Seq[string]) verdict {
		return verdict{branch: name, items: items, rest: slices.Collect(rest), hasRest: true}
	}

	switch n {
	case 1:
		return match.OneOrMore(func(a string, rest iter.Seq[string]) verdict {
			return hit([]string{a}, rest)
		})
	case 2:
		return match.TwoOrMore(func(a, b string, rest iter.Seq[string]) verdict {
			return hit([]string{a, b}, rest)
		})
	case 3:
		return match.ThreeOrMore(func(a, b, c string, rest iter.Seq[string]) verdict {
			return hit([]string{a, b, c}, rest)
		})
	case 4:
		return match.FourOrMore(func(a, b, c, d string, rest iter.Seq[string]) verdict {
			return hit([]string{a, b, c, d}, rest)
		})
	case 5:
		return match.FiveOrMore(func(a, b, c, d, e string, rest iter.Seq[string]) verdict {
			return hit([]string{a, b, c, d, e}, rest)
		})
	}

	return match.AtLeast[string, verdict]{}
}

// exactCase builds the exactly-N branch for arity n (1..5).
func exactCase(n int) match.Exact[string, verdict] {
	name := fmt.Sprintf("exactly-%d", n)
	hit := func(items ...string) verdict {
		return verdict{branch: name, items: items}
	}

	switch n {
	case 1:
		return match.ExactlyOne(func(a string) verdict { return hit(a) })
	case 2:
		return match.ExactlyTwo(func(a, b string) verdict { return hit(a, b) })
	case 3:
		return match.ExactlyThree(func(a, b, c string) verdict { return hit(a, b, c) })
	case 4:
		return match.ExactlyFour(func(a, b, c, d string) verdict { return hit(a, b, c, d) })
	case 5:
		return match.ExactlyFive(func(a, b, c, d, e string) verdict { return hit(a, b, c, d, e) })
	}

	return match.Exact[string, verdict]{}
}
