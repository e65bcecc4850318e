package view

// View1 is a non-owning handle to a callable taking I1 and returning O.
// The zero value is unbound. Views are small and should be passed by
// value; copying duplicates the handle, not the referenced callable.
type View1[I1, O any] struct {
	invoke func(I1) O
}

// Call invokes the bound callable. Calling an unbound view traps at the
// nil func; by design there is no check on this path.
func (v View1[I1, O]) Call(i1 I1) O { return v.invoke(i1) }

// Bound reports whether the view has a target. It is the only
// side-effect-free way to tell the two states apart.
func (v View1[I1, O]) Bound() bool { return v.invoke != nil }

// Fn returns the stored trampoline itself, nil when unbound. Use it to
// hand the view to a func-typed parameter without another wrapper.
func (v View1[I1, O]) Fn() func(I1) O { return v.invoke }

// Clear forces the view back to the unbound state.
func (v *View1[I1, O]) Clear() { v.invoke = nil }

// View0 is a non-owning handle to a callable taking no arguments and
// returning O. The zero value is unbound.
type View0[O any] struct {
	invoke func() O
}

func (v View0[O]) Call() O      { return v.invoke() }
func (v View0[O]) Bound() bool  { return v.invoke != nil }
func (v View0[O]) Fn() func() O { return v.invoke }
func (v *View0[O]) Clear()      { v.invoke = nil }

// View2 is the two-argument View.
type View2[I1, I2, O any] struct {
	invoke func(I1, I2) O
}

func (v View2[I1, I2, O]) Call(i1 I1, i2 I2) O { return v.invoke(i1, i2) }
func (v View2[I1, I2, O]) Bound() bool         { return v.invoke != nil }
func (v View2[I1, I2, O]) Fn() func(I1, I2) O  { return v.invoke }
func (v *View2[I1, I2, O]) Clear()             { v.invoke = nil }

// View3 is the three-argument View.
type View3[I1, I2, I3, O any] struct {
	invoke func(I1, I2, I3) O
}

func (v View3[I1, I2, I3, O]) Call(i1 I1, i2 I2, i3 I3) O { return v.invoke(i1, i2, i3) }
func (v View3[I1, I2, I3, O]) Bound() bool                { return v.invoke != nil }
func (v View3[I1, I2, I3, O]) Fn() func(I1, I2, I3) O     { return v.invoke }
func (v *View3[I1, I2, I3, O]) Clear()                    { v.invoke = nil }

// View4 is the four-argument View.
type View4[I1, I2, I3, I4, O any] struct {
	invoke func(I1, I2, I3, I4) O
}

func (v View4[I1, I2, I3, I4, O]) Call(i1 I1, i2 I2, i3 I3, i4 I4) O {
	return v.invoke(i1, i2, i3, i4)
}
func (v View4[I1, I2, I3, I4, O]) Bound() bool                { return v.invoke != nil }
func (v View4[I1, I2, I3, I4, O]) Fn() func(I1, I2, I3, I4) O { return v.invoke }
func (v *View4[I1, I2, I3, I4, O]) Clear()                    { v.invoke = nil }
