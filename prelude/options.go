// SPDX-License-Identifier: MIT
// Package: seqaug/prelude
//
// options.go: functional options for content hashing.
//
// Contract:
//   • Options are functional (type HashOption func(*hashConfig)).
//   • Option constructors validate eagerly; every uint64 is a valid seed, so
//     WithSeed never panics.
//   • No hidden globals beyond the per-type default hashers used by
//     SequenceHashCode.

package prelude

// HashOption customizes a Hasher built by NewHasher.
// Complexity: applying N options costs O(N) time, O(1) space.
type HashOption func(*hashConfig)

// hashConfig is the resolved configuration of a Hasher.
type hashConfig struct {
	seed uint64 // seed of the xxhash digest that folds element hashes
}

// WithSeed sets the seed of the digest that folds per-element hashes.
// Two hashers with different seeds produce unrelated values for the same
// sequence.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed uint64) HashOption {
	return func(c *hashConfig) {
		c.seed = seed
	}
}

// newHashConfig applies opts over the defaults.
func newHashConfig(opts ...HashOption) hashConfig {
	var cfg hashConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
