package view

// Caller interfaces describe what makes a value a generic callable
// candidate for a view of the matching signature: a Call method with the
// declared argument list and result. Views themselves satisfy these
// interfaces, which OfCaller relies on to copy a same-signature view
// instead of re-binding it.

type Caller0[O any] interface {
	Call() O
}

type Caller1[I1, O any] interface {
	Call(I1) O
}

type Caller2[I1, I2, O any] interface {
	Call(I1, I2) O
}

type Caller3[I1, I2, I3, O any] interface {
	Call(I1, I2, I3) O
}

type Caller4[I1, I2, I3, I4, O any] interface {
	Call(I1, I2, I3, I4) O
}

// Doer interfaces are the no-result counterparts of the Caller
// interfaces, the candidate shape for Actions.

type Doer0 interface {
	Call()
}

type Doer1[I1 any] interface {
	Call(I1)
}

type Doer2[I1, I2 any] interface {
	Call(I1, I2)
}

type Doer3[I1, I2, I3 any] interface {
	Call(I1, I2, I3)
}

type Doer4[I1, I2, I3, I4 any] interface {
	Call(I1, I2, I3, I4)
}
