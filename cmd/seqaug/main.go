// Package main is the seqaug demo CLI: numeric ranges, head/tail splits and
// arity matching from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/seqaug/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
