package view

// Number is the candidate result family for the Converting binders: the
// types whose cross-conversions Go can check statically.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Converting1 binds a candidate whose numeric result type O1 differs
// from the declared result type O2. The trampoline performs the
// conversion, so the caller sees O2, never O1. The declared type is the
// one explicit type argument:
//
//	v := view.Converting1[int64](func(n int) int { return n * 2 })
func Converting1[O2 Number, I1 any, O1 Number, F ~func(I1) O1](fn F) View1[I1, O2] {
	return View1[I1, O2]{invoke: func(i1 I1) O2 {
		return O2(fn(i1))
	}}
}

func Converting0[O2 Number, O1 Number, F ~func() O1](fn F) View0[O2] {
	return View0[O2]{invoke: func() O2 {
		return O2(fn())
	}}
}

func Converting2[O2 Number, I1, I2 any, O1 Number, F ~func(I1, I2) O1](fn F) View2[I1, I2, O2] {
	return View2[I1, I2, O2]{invoke: func(i1 I1, i2 I2) O2 {
		return O2(fn(i1, i2))
	}}
}

func Converting3[O2 Number, I1, I2, I3 any, O1 Number, F ~func(I1, I2, I3) O1](fn F) View3[I1, I2, I3, O2] {
	return View3[I1, I2, I3, O2]{invoke: func(i1 I1, i2 I2, i3 I3) O2 {
		return O2(fn(i1, i2, i3))
	}}
}

func Converting4[O2 Number, I1, I2, I3, I4 any, O1 Number, F ~func(I1, I2, I3, I4) O1](fn F) View4[I1, I2, I3, I4, O2] {
	return View4[I1, I2, I3, I4, O2]{invoke: func(i1 I1, i2 I2, i3 I3, i4 I4) O2 {
		return O2(fn(i1, i2, i3, i4))
	}}
}

// Discarding1 binds a result-returning candidate to an Action1. The
// trampoline ignores the result explicitly; this is how "declared no
// result accepts and discards any result" is spelled in a language that
// otherwise rejects an unused value conversion. Method values work as
// candidates too, so Discarding1(obj.Call) covers function objects.
func Discarding1[I1, O any, F ~func(I1) O](fn F) Action1[I1] {
	return Action1[I1]{invoke: func(i1 I1) {
		_ = fn(i1)
	}}
}

func Discarding0[O any, F ~func() O](fn F) Action0 {
	return Action0{invoke: func() {
		_ = fn()
	}}
}

func Discarding2[I1, I2, O any, F ~func(I1, I2) O](fn F) Action2[I1, I2] {
	return Action2[I1, I2]{invoke: func(i1 I1, i2 I2) {
		_ = fn(i1, i2)
	}}
}

func Discarding3[I1, I2, I3, O any, F ~func(I1, I2, I3) O](fn F) Action3[I1, I2, I3] {
	return Action3[I1, I2, I3]{invoke: func(i1 I1, i2 I2, i3 I3) {
		_ = fn(i1, i2, i3)
	}}
}

func Discarding4[I1, I2, I3, I4, O any, F ~func(I1, I2, I3, I4) O](fn F) Action4[I1, I2, I3, I4] {
	return Action4[I1, I2, I3, I4]{invoke: func(i1 I1, i2 I2, i3 I3, i4 I4) {
		_ = fn(i1, i2, i3, i4)
	}}
}
