package tap

import (
	"sync/atomic"
	"time"

	"github.com/on-the-ground/funcview_go/view"

	"go.uber.org/zap"
)

// Logged1 wraps v so every call emits a debug entry carrying the tap
// name, the call ordinal, and the call duration, then delegates. A
// panic in the candidate propagates unchanged and is not logged.
func Logged1[I1, O any](logger *zap.Logger, name string, v view.View1[I1, O]) view.View1[I1, O] {
	var calls atomic.Int64
	return view.Of1(func(i1 I1) O {
		n := calls.Add(1)
		start := time.Now()
		out := v.Call(i1)
		logger.Debug("view call",
			zap.String("tap", name),
			zap.Int64("call", n),
			zap.Duration("took", time.Since(start)),
		)
		return out
	})
}

func Logged0[O any](logger *zap.Logger, name string, v view.View0[O]) view.View0[O] {
	var calls atomic.Int64
	return view.Of0(func() O {
		n := calls.Add(1)
		start := time.Now()
		out := v.Call()
		logger.Debug("view call",
			zap.String("tap", name),
			zap.Int64("call", n),
			zap.Duration("took", time.Since(start)),
		)
		return out
	})
}

func Logged2[I1, I2, O any](logger *zap.Logger, name string, v view.View2[I1, I2, O]) view.View2[I1, I2, O] {
	var calls atomic.Int64
	return view.Of2(func(i1 I1, i2 I2) O {
		n := calls.Add(1)
		start := time.Now()
		out := v.Call(i1, i2)
		logger.Debug("view call",
			zap.String("tap", name),
			zap.Int64("call", n),
			zap.Duration("took", time.Since(start)),
		)
		return out
	})
}

// LoggedDo1 is Logged1 for actions.
func LoggedDo1[I1 any](logger *zap.Logger, name string, a view.Action1[I1]) view.Action1[I1] {
	var calls atomic.Int64
	return view.Do1(func(i1 I1) {
		n := calls.Add(1)
		start := time.Now()
		a.Call(i1)
		logger.Debug("view call",
			zap.String("tap", name),
			zap.Int64("call", n),
			zap.Duration("took", time.Since(start)),
		)
	})
}
