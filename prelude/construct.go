package prelude

import (
	"iter"
	"slices"

	"github.com/samber/lo"
)

// Seq returns a lazy, re-enumerable sequence over the given values.
// The argument slice is copied, so later mutation by the caller is not seen.
func Seq[T any](vs ...T) iter.Seq[T] {
	return slices.Values(slices.Clone(vs))
}

// List returns the values as a new, never-nil slice.
func List[T any](vs ...T) []T {
	return append(make([]T, 0, len(vs)), vs...)
}

// Array returns a copy of the values with len == cap; nil when called with
// no arguments.
func Array[T any](vs ...T) []T {
	return slices.Clip(slices.Clone(vs))
}

// Pair builds a key/value entry for Dict and ToDictionary.
func Pair[K comparable, V any](key K, value V) lo.Entry[K, V] {
	return lo.Entry[K, V]{Key: key, Value: value}
}

// Dict builds a map from key/value entries. Later entries overwrite earlier
// entries with the same key.
func Dict[K comparable, V any](pairs ...lo.Entry[K, V]) map[K]V {
	return lo.FromEntries(pairs)
}

// ToDictionary drains a sequence of key/value entries into a map. Later
// entries overwrite earlier entries with the same key. The sequence must be
// finite.
func ToDictionary[K comparable, V any](seq iter.Seq[lo.Entry[K, V]]) map[K]V {
	if seq == nil {
		return map[K]V{}
	}

	return lo.FromEntries(slices.Collect(seq))
}
