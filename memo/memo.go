// Package memo wraps views in size-bounded memo tables. The wrapped
// view must be pure; memoizing an impure view is the caller's contract
// violation, not something this package can detect.
package memo

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/funcview_go/view"
)

// table is a bounded cache of two generations. Lookups check the live
// generation and fall back to the previous one; when the live
// generation fills up it is demoted and a fresh map takes over, so at
// most two generations of entries are retained. The bound is
// approximate under concurrent writers.
type table[O any] struct {
	live    atomic.Pointer[sync.Map]
	prev    atomic.Pointer[sync.Map]
	size    atomic.Uint32
	maxSize uint32
}

func newTable[O any](maxSize uint32) *table[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &table[O]{maxSize: maxSize}
	t.live.Store(&sync.Map{})
	t.prev.Store(&sync.Map{})
	return t
}

func (t *table[O]) load(key any) (O, bool) {
	if v, ok := t.live.Load().Load(key); ok {
		return v.(O), true
	}
	if v, ok := t.prev.Load().Load(key); ok {
		return v.(O), true
	}
	var zero O
	return zero, false
}

func (t *table[O]) store(key any, value O) {
	if t.size.CompareAndSwap(t.maxSize, 0) {
		t.prev.Store(t.live.Load())
		t.live.Store(&sync.Map{})
	}
	t.live.Load().Store(key, value)
	t.size.Add(1)
}

// Tabled1 returns a view of the same signature as v backed by a memo
// table keyed on the input. Cache misses call through to v.
func Tabled1[I1 comparable, O any](v view.View1[I1, O], maxSize uint32) view.View1[I1, O] {
	t := newTable[O](maxSize)
	return view.Of1(func(i1 I1) O {
		if out, ok := t.load(i1); ok {
			return out
		}
		out := v.Call(i1)
		t.store(i1, out)
		return out
	})
}

type pair[A, B comparable] struct {
	a A
	b B
}

// Tabled2 is Tabled1 for two-argument views, keyed on the input pair.
func Tabled2[I1, I2 comparable, O any](v view.View2[I1, I2, O], maxSize uint32) view.View2[I1, I2, O] {
	t := newTable[O](maxSize)
	return view.Of2(func(i1 I1, i2 I2) O {
		key := pair[I1, I2]{a: i1, b: i2}
		if out, ok := t.load(key); ok {
			return out
		}
		out := v.Call(i1, i2)
		t.store(key, out)
		return out
	})
}

// Once0 memoizes a nullary view: the first call computes, every later
// call returns the same result without reaching the candidate.
func Once0[O any](v view.View0[O]) view.View0[O] {
	var (
		once sync.Once
		out  O
	)
	return view.Of0(func() O {
		once.Do(func() { out = v.Call() })
		return out
	})
}
