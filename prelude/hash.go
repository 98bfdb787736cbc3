package prelude

import (
	"encoding/binary"
	"iter"
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// Hasher computes order-sensitive content hashes of sequences of T.
//
// Each element is hashed with a seeded runtime hasher (dolthub/maphash); the
// element hashes and the element count are folded through an xxhash digest.
// Equal sequences hash equal under the same Hasher. Element hash seeds are
// random per Hasher, so values are only comparable within one Hasher and one
// process.
type Hasher[T comparable] struct {
	elem maphash.Hasher[T]
	cfg  hashConfig
}

// NewHasher builds a Hasher with a fresh element seed.
func NewHasher[T comparable](opts ...HashOption) Hasher[T] {
	return Hasher[T]{
		elem: maphash.NewHasher[T](),
		cfg:  newHashConfig(opts...),
	}
}

// Sum drains seq and returns its content hash. seq must be finite.
//
// Complexity: O(n) time, O(1) memory.
func (h Hasher[T]) Sum(seq iter.Seq[T]) uint64 {
	d := xxhash.NewWithSeed(h.cfg.seed)
	var buf [8]byte
	var n uint64
	if seq != nil {
		for v := range seq {
			binary.LittleEndian.PutUint64(buf[:], h.elem.Hash(v))
			_, _ = d.Write(buf[:])
			n++
		}
	}
	// length suffix: keeps a sequence distinct from its own prefixes
	binary.LittleEndian.PutUint64(buf[:], n)
	_, _ = d.Write(buf[:])

	return d.Sum64()
}

// defaultHashers holds one Hasher per element type: reflect.Type → Hasher[T].
var defaultHashers sync.Map

// SequenceHashCode returns the content hash of seq using a process-wide
// Hasher for T, so the same contents always produce the same value within a
// process. seq must be finite.
func SequenceHashCode[T comparable](seq iter.Seq[T]) uint64 {
	return defaultHasher[T]().Sum(seq)
}

func defaultHasher[T comparable]() Hasher[T] {
	key := reflect.TypeFor[T]()
	if h, ok := defaultHashers.Load(key); ok {
		return h.(Hasher[T])
	}
	h, _ := defaultHashers.LoadOrStore(key, NewHasher[T]())

	return h.(Hasher[T])
}
