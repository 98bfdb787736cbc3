package prelude_test

import (
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/seqaug/numrange"
	"github.com/katalvlaran/seqaug/prelude"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeq verifies Seq yields its arguments and detaches from the caller's slice.
func TestSeq(t *testing.T) {
	vs := []int{1, 2, 3, 4}
	s := prelude.Seq(vs...)
	vs[0] = 99

	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(s))
	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(s), "re-enumerable")
	assert.Empty(t, slices.Collect(prelude.Seq[int]()))
}

// TestListArray verifies both slice constructors copy their input.
func TestListArray(t *testing.T) {
	l := prelude.List(1, 2, 3, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, l)
	assert.NotNil(t, prelude.List[int]())

	a := prelude.Array("a", "b")
	assert.Equal(t, []string{"a", "b"}, a)
	assert.Equal(t, len(a), cap(a))
	assert.Nil(t, prelude.Array[string]())
}

// TestDict verifies map construction from pairs.
func TestDict(t *testing.T) {
	got := prelude.Dict(prelude.Pair(1, "Hi"), prelude.Pair(2, "Hello"))
	assert.Equal(t, map[int]string{1: "Hi", 2: "Hello"}, got)

	got = prelude.Dict(prelude.Pair(1, "a"), prelude.Pair(1, "b"))
	assert.Equal(t, map[int]string{1: "b"}, got, "later pairs win")
}

// TestToDictionary verifies draining a pair sequence into a map.
func TestToDictionary(t *testing.T) {
	pairs := prelude.Seq(prelude.Pair(1, "hi"), prelude.Pair(2, "hello"))
	assert.Equal(t, map[int]string{1: "hi", 2: "hello"}, prelude.ToDictionary(pairs))

	squares := func(yield func(lo.Entry[int, int]) bool) {
		for v := range numrange.Range(1, 3) {
			if !yield(prelude.Pair(v, v*v)) {
				return
			}
		}
	}
	assert.Equal(t, map[int]int{1: 1, 2: 4, 3: 9}, prelude.ToDictionary(squares))
	assert.Empty(t, prelude.ToDictionary[int, int](nil))
}

// TestLazyValue verifies the value is computed once, even under contention.
func TestLazyValue(t *testing.T) {
	var calls atomic.Int32
	lv := prelude.LazyValue(func() string {
		calls.Add(1)
		return "hello"
	})
	assert.Equal(t, int32(0), calls.Load(), "nothing runs before Value")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "hello", lv.Value())
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())

	assert.PanicsWithValue(t, "prelude: LazyValue(nil)", func() { prelude.LazyValue[int](nil) })
}

// TestLazy_ZeroValue verifies an unbuilt Lazy fails with a clear message
// instead of a nil dereference.
func TestLazy_ZeroValue(t *testing.T) {
	var zero prelude.Lazy[int]
	assert.PanicsWithValue(t, "prelude: Lazy not built by LazyValue", func() { zero.Value() })

	var nilLazy *prelude.Lazy[int]
	assert.PanicsWithValue(t, "prelude: Lazy not built by LazyValue", func() { nilLazy.Value() })
}

// TestDict_LazyValues builds a map of lazily-computed sequences keyed by day.
func TestDict_LazyValues(t *testing.T) {
	today := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	dict := prelude.Dict(
		prelude.Pair(today, prelude.LazyValue(func() []float64 { return slices.Collect(prelude.Seq(1.0, 2.0, 3.0)) })),
		prelude.Pair(tomorrow, prelude.LazyValue(func() []float64 { return slices.Collect(prelude.Seq(4.0, 5.0, 6.0)) })),
	)
	want := map[time.Time][]float64{
		today:    {1.0, 2.0, 3.0},
		tomorrow: {4.0, 5.0, 6.0},
	}

	require.Len(t, dict, len(want))
	for k, v := range want {
		assert.Equal(t, v, dict[k].Value())
	}
}
