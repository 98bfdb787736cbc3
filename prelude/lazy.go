package prelude

import "sync"

// Lazy holds a value computed on first access and cached afterwards.
// Value is safe to call from several goroutines; fn runs at most once.
// Build it with LazyValue; the zero Lazy has nothing to compute.
type Lazy[T any] struct {
	get func() T
}

const (
	errNilLazy  = "prelude: LazyValue(nil)"
	errZeroLazy = "prelude: Lazy not built by LazyValue"
)

// LazyValue wraps fn in a Lazy. It panics if fn is nil.
func LazyValue[T any](fn func() T) *Lazy[T] {
	if fn == nil {
		panic(errNilLazy)
	}

	return &Lazy[T]{get: sync.OnceValue(fn)}
}

// Value returns the cached value, computing it on the first call.
// If fn panicked, every call re-panics with the same value.
// It panics on a zero (or nil) Lazy, which has no function to run.
func (l *Lazy[T]) Value() T {
	if l == nil || l.get == nil {
		panic(errZeroLazy)
	}

	return l.get()
}
