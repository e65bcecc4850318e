// Package tap provides observation wrappers around views: zap-logged
// taps and counting probes. Wrappers are as non-owning as the views
// they wrap; the wrapped candidate's lifetime contract is unchanged.
package tap

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/on-the-ground/funcview_go/view"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
)

// Probe records the call traffic of the views attached to it: a unique
// id, an atomic call counter, and the observed invocation window. One
// probe may be attached to several views; they all feed the same
// counters. Safe for concurrent calls.
type Probe struct {
	id    string
	calls atomic.Int64
	mu    sync.Mutex
	first time.Time
	last  time.Time
}

func NewProbe() *Probe {
	return &Probe{id: uuid.New().String()}
}

func (p *Probe) ID() string { return p.id }

func (p *Probe) Calls() int64 { return p.calls.Load() }

// Window returns the span from the first to the most recent observed
// call. It is meaningful only after at least one call.
func (p *Probe) Window() timespan.TimeSpan {
	p.mu.Lock()
	defer p.mu.Unlock()
	return timespan.BetweenTimes(p.first, p.last)
}

func (p *Probe) observe() {
	now := time.Now()
	p.mu.Lock()
	if p.first.IsZero() {
		p.first = now
	}
	p.last = now
	p.mu.Unlock()
	p.calls.Add(1)
}

// Observed1 attaches p to v: the returned view records every call on
// the probe, then delegates.
func Observed1[I1, O any](p *Probe, v view.View1[I1, O]) view.View1[I1, O] {
	return view.Of1(func(i1 I1) O {
		p.observe()
		return v.Call(i1)
	})
}

func Observed0[O any](p *Probe, v view.View0[O]) view.View0[O] {
	return view.Of0(func() O {
		p.observe()
		return v.Call()
	})
}

func Observed2[I1, I2, O any](p *Probe, v view.View2[I1, I2, O]) view.View2[I1, I2, O] {
	return view.Of2(func(i1 I1, i2 I2) O {
		p.observe()
		return v.Call(i1, i2)
	})
}

// ObservedDo1 is Observed1 for actions.
func ObservedDo1[I1 any](p *Probe, a view.Action1[I1]) view.Action1[I1] {
	return view.Do1(func(i1 I1) {
		p.observe()
		a.Call(i1)
	})
}
