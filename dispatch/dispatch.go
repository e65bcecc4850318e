// Package dispatch routes keyed payloads to a fixed set of callback
// views. Payloads with the same partition key always reach the same
// sink, which is what gives per-key ordering when sinks keep state.
package dispatch

import (
	"github.com/on-the-ground/funcview_go/view"

	"github.com/cespare/xxhash/v2"
)

// Partitionable is any payload that can name its partition.
type Partitionable interface {
	PartitionKey() string
}

// Dispatcher fans payloads out over its sinks by key hash. Dispatching
// is synchronous: the chosen sink runs on the caller's goroutine, and
// the dispatcher adds no locking of its own.
type Dispatcher[T Partitionable] struct {
	sinks []view.Action1[T]
}

// New builds a dispatcher over the given sinks. At least one bound sink
// is required; anything less is a construction-time contract violation.
func New[T Partitionable](sinks ...view.Action1[T]) Dispatcher[T] {
	if len(sinks) == 0 {
		panic("dispatch: at least one sink required")
	}
	for _, s := range sinks {
		if !s.Bound() {
			panic("dispatch: unbound sink")
		}
	}
	return Dispatcher[T]{sinks: sinks}
}

// Dispatch routes msg to the sink owning its partition and calls it.
func (d Dispatcher[T]) Dispatch(msg T) {
	d.sinks[d.indexOf(msg)].Call(msg)
}

// Size returns the number of sinks.
func (d Dispatcher[T]) Size() int { return len(d.sinks) }

func (d Dispatcher[T]) indexOf(msg T) int {
	if len(d.sinks) == 1 {
		return 0
	}
	return int(xxhash.Sum64String(msg.PartitionKey()) % uint64(len(d.sinks)))
}
