package view_test

import (
	"testing"

	"github.com/on-the-ground/funcview_go/view"

	"github.com/stretchr/testify/assert"
)

func TestConvertingResultType(t *testing.T) {
	// Candidate returns int, the declared signature returns int64; the
	// trampoline converts, so the caller only ever sees int64.
	v := view.Converting1[int64](func(n int) int { return n * 2 })

	got := v.Call(21)
	assert.Equal(t, int64(42), got)
}

func TestConvertingNarrowerToWider(t *testing.T) {
	v := view.Converting0[float64](func() int32 { return 7 })
	assert.Equal(t, float64(7), v.Call())
}

func TestConvertingNamedNumericType(t *testing.T) {
	type fahrenheit float64
	v := view.Converting2[fahrenheit](func(c, offset float64) float64 {
		return c*9/5 + offset
	})

	assert.Equal(t, fahrenheit(212), v.Call(100, 32))
}

func TestDiscardingResult(t *testing.T) {
	calls := 0
	a := view.Discarding1(func(s string) int {
		calls++
		return len(s) // returned but nobody sees it
	})

	a.Call("hello")
	a.Call("world")
	assert.Equal(t, 2, calls)
	assert.True(t, a.Bound())
}

func TestDiscardingMethodValue(t *testing.T) {
	acc := &accumulator{}
	a := view.Discarding1(acc.Call)

	a.Call(4)
	a.Call(6)
	assert.Equal(t, 10, acc.total)
}
