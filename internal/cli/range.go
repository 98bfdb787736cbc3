package cli

import (
	"errors"
	"iter"
	"math"
	"strconv"

	"github.com/katalvlaran/seqaug/numrange"
	"github.com/spf13/pflag"
)

// defaultRangeLimit bounds how many values `range` prints unless overridden.
const defaultRangeLimit = 1000

// runRange prints an inclusive numeric range.
func runRange(e *env, args []string) error {
	fs := e.newFlagSet("range")
	start := fs.Float64("start", 1, "first value")
	end := fs.Float64("end", 10, "last value (inclusive)")
	step := fs.Float64("step", 1, "increment; negative counts down")
	asFloat := fs.Bool("float", false, "generate a floating-point range")
	limit := fs.Int("limit", defaultRangeLimit, "maximum values to print (0 = unlimited)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usagef("range takes no positional arguments, got %v", fs.Args())
	}
	if *limit < 0 {
		return usagef("--limit must be >= 0")
	}

	var (
		out       []string
		truncated bool
	)
	if *asFloat {
		out, truncated = render(numrange.RangeStep(*start, *end, *step), *limit, func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		})
	} else {
		s, err := integral("start", *start)
		if err != nil {
			return err
		}
		en, err := integral("end", *end)
		if err != nil {
			return err
		}
		st, err := integral("step", *step)
		if err != nil {
			return err
		}
		out, truncated = render(numrange.RangeStep(s, en, st), *limit, func(v int64) string {
			return strconv.FormatInt(v, 10)
		})
	}

	e.log.Debug().
		Float64("start", *start).Float64("end", *end).Float64("step", *step).
		Int("count", len(out)).Msg("range generated")
	if truncated {
		e.log.Warn().Int("limit", *limit).Msg("range truncated")
	}
	if len(out) == 0 {
		e.log.Info().Msg("range is empty")
	}
	e.out.values(out)

	return nil
}

// render formats at most limit values of seq (limit 0 = all) and reports
// whether more values were available.
func render[T any](seq iter.Seq[T], limit int, format func(T) string) ([]string, bool) {
	var out []string
	for v := range seq {
		if limit > 0 && len(out) == limit {
			return out, true
		}
		out = append(out, format(v))
	}

	return out, false
}

// integral converts a flag value to int64, rejecting fractions.
func integral(name string, v float64) (int64, error) {
	if math.Trunc(v) != v || v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, usagef("--%s=%v is not an integer (use --float)", name, v)
	}

	return int64(v), nil
}

// parseFlags parses a sub-command flag set, classifying failures as usage
// errors and passing --help through.
func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return usagef("%v", err)
	}

	return nil
}
