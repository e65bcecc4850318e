package dispatch_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/funcview_go/dispatch"
	"github.com/on-the-ground/funcview_go/view"

	"github.com/stretchr/testify/assert"
)

type event struct {
	key string
	seq int
}

func (e event) PartitionKey() string { return e.key }

func countingSinks(n int) ([]view.Action1[event], []int) {
	counts := make([]int, n)
	sinks := make([]view.Action1[event], n)
	for i := range sinks {
		i := i
		sinks[i] = view.Do1(func(event) { counts[i]++ })
	}
	return sinks, counts
}

func TestSameKeySameSink(t *testing.T) {
	sinks, counts := countingSinks(3)
	d := dispatch.New(sinks...)

	for seq := 0; seq < 10; seq++ {
		d.Dispatch(event{key: "user-42", seq: seq})
	}

	assert.Equal(t, 10, counts[0]+counts[1]+counts[2])
	assert.Contains(t, counts, 10) // one sink owns the key outright
}

func TestKeysSpreadAcrossSinks(t *testing.T) {
	sinks, counts := countingSinks(4)
	d := dispatch.New(sinks...)

	for i := 0; i < 200; i++ {
		d.Dispatch(event{key: fmt.Sprintf("key-%d", i)})
	}

	hit := 0
	for _, c := range counts {
		if c > 0 {
			hit++
		}
	}
	assert.Greater(t, hit, 1)
}

func TestSingleSinkTakesEverything(t *testing.T) {
	sinks, counts := countingSinks(1)
	d := dispatch.New(sinks...)

	d.Dispatch(event{key: "a"})
	d.Dispatch(event{key: "b"})

	assert.Equal(t, 1, d.Size())
	assert.Equal(t, 2, counts[0])
}

func TestSinksKeepPerKeyOrder(t *testing.T) {
	var got []int
	d := dispatch.New(view.Do1(func(e event) { got = append(got, e.seq) }))

	for seq := 0; seq < 5; seq++ {
		d.Dispatch(event{key: "k", seq: seq})
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestNewRejectsEmptyAndUnbound(t *testing.T) {
	assert.Panics(t, func() { dispatch.New[event]() })

	var unbound view.Action1[event]
	assert.Panics(t, func() { dispatch.New(unbound) })
}
