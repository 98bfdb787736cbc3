// Package cli implements the seqaug demo command line.
//
// Sub-commands:
//
//	seqaug range [--start S] [--end E] [--step D] [--float] [--limit N]
//	seqaug split [values...]
//	seqaug match [--exact] [--arities 1,3,5] [values...]
//
// Global flags (before the sub-command):
//
//	--log-level  zerolog level (default from SEQAUG_LOG_LEVEL, else "warn")
//	--no-color   plain output
//
// Run is the testable entry point; cmd/seqaug only wires os.Args and the
// standard streams.
package cli
