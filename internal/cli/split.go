package cli

import (
	"slices"

	"github.com/katalvlaran/seqaug/headtail"
)

// runSplit prints the head and tail of the positional values.
func runSplit(e *env, args []string) error {
	fs := e.newFlagSet("split")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	head, tail, err := headtail.SplitSafe(slices.Values(fs.Args())).Unpack()
	if err != nil {
		e.log.Debug().Err(err).Msg("nothing to split")
		return err
	}

	e.out.line("head", head)
	e.out.line("tail", list(slices.Collect(tail)))

	return nil
}
