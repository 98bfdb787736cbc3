// SPDX-License-Identifier: MIT
// Package: seqaug/headtail
//
// errors.go: sentinel errors for the headtail package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w, never baked into the sentinel text.
//   • Split is the single place that panics, and it panics with an error
//     value wrapping ErrEmptySequence so recover() callers can still use
//     errors.Is.

package headtail

import (
	"errors"
	"fmt"
)

// ErrEmptySequence indicates that a head/tail split was attempted on a
// sequence with no elements.
// Usage: if errors.Is(res.Err(), ErrEmptySequence) { /* handle empty input */ }.
var ErrEmptySequence = errors.New("headtail: empty sequence")

// Method names used as error context.
const (
	methodSplit     = "Split"
	methodSplitSafe = "SplitSafe"
	methodExpect    = "Expect"
)

// wrapf attaches the method context to err, preserving it for errors.Is.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
