package view

// Action1 is a non-owning handle to a callable taking I1 and returning
// nothing. The zero value is unbound. The same contract as View1
// applies: calling an unbound action traps, Bound is the check.
type Action1[I1 any] struct {
	invoke func(I1)
}

func (a Action1[I1]) Call(i1 I1)   { a.invoke(i1) }
func (a Action1[I1]) Bound() bool  { return a.invoke != nil }
func (a Action1[I1]) Fn() func(I1) { return a.invoke }
func (a *Action1[I1]) Clear()      { a.invoke = nil }

// Action0 is the zero-argument Action.
type Action0 struct {
	invoke func()
}

func (a Action0) Call()       { a.invoke() }
func (a Action0) Bound() bool { return a.invoke != nil }
func (a Action0) Fn() func()  { return a.invoke }
func (a *Action0) Clear()     { a.invoke = nil }

// Action2 is the two-argument Action.
type Action2[I1, I2 any] struct {
	invoke func(I1, I2)
}

func (a Action2[I1, I2]) Call(i1 I1, i2 I2) { a.invoke(i1, i2) }
func (a Action2[I1, I2]) Bound() bool       { return a.invoke != nil }
func (a Action2[I1, I2]) Fn() func(I1, I2)  { return a.invoke }
func (a *Action2[I1, I2]) Clear()           { a.invoke = nil }

// Action3 is the three-argument Action.
type Action3[I1, I2, I3 any] struct {
	invoke func(I1, I2, I3)
}

func (a Action3[I1, I2, I3]) Call(i1 I1, i2 I2, i3 I3) { a.invoke(i1, i2, i3) }
func (a Action3[I1, I2, I3]) Bound() bool              { return a.invoke != nil }
func (a Action3[I1, I2, I3]) Fn() func(I1, I2, I3)     { return a.invoke }
func (a *Action3[I1, I2, I3]) Clear()                  { a.invoke = nil }

// Action4 is the four-argument Action.
type Action4[I1, I2, I3, I4 any] struct {
	invoke func(I1, I2, I3, I4)
}

func (a Action4[I1, I2, I3, I4]) Call(i1 I1, i2 I2, i3 I3, i4 I4) { a.invoke(i1, i2, i3, i4) }
func (a Action4[I1, I2, I3, I4]) Bound() bool                     { return a.invoke != nil }
func (a Action4[I1, I2, I3, I4]) Fn() func(I1, I2, I3, I4)        { return a.invoke }
func (a *Action4[I1, I2, I3, I4]) Clear()                         { a.invoke = nil }
