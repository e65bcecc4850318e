package view

// Of1 binds a plain or named func value to a View1. The candidate is
// stored by func-type conversion, which keeps its entry point and
// context word as-is: no wrapper closure is generated and nothing is
// allocated. A nil candidate yields an unbound view.
func Of1[I1, O any, F ~func(I1) O](fn F) View1[I1, O] {
	return View1[I1, O]{invoke: (func(I1) O)(fn)}
}

func Of0[O any, F ~func() O](fn F) View0[O] {
	return View0[O]{invoke: (func() O)(fn)}
}

func Of2[I1, I2, O any, F ~func(I1, I2) O](fn F) View2[I1, I2, O] {
	return View2[I1, I2, O]{invoke: (func(I1, I2) O)(fn)}
}

func Of3[I1, I2, I3, O any, F ~func(I1, I2, I3) O](fn F) View3[I1, I2, I3, O] {
	return View3[I1, I2, I3, O]{invoke: (func(I1, I2, I3) O)(fn)}
}

func Of4[I1, I2, I3, I4, O any, F ~func(I1, I2, I3, I4) O](fn F) View4[I1, I2, I3, I4, O] {
	return View4[I1, I2, I3, I4, O]{invoke: (func(I1, I2, I3, I4) O)(fn)}
}

// OfCaller1 binds a stateful function object to a View1. The stored
// method value captures only the candidate's address; its state is
// shared, not snapshotted. A candidate that is itself a View1 of the
// identical signature is copied instead of re-bound, so passing views
// through this path never stacks one trampoline on another.
func OfCaller1[I1, O any](c Caller1[I1, O]) View1[I1, O] {
	if v, ok := c.(View1[I1, O]); ok {
		return v
	}
	return View1[I1, O]{invoke: c.Call}
}

func OfCaller0[O any](c Caller0[O]) View0[O] {
	if v, ok := c.(View0[O]); ok {
		return v
	}
	return View0[O]{invoke: c.Call}
}

func OfCaller2[I1, I2, O any](c Caller2[I1, I2, O]) View2[I1, I2, O] {
	if v, ok := c.(View2[I1, I2, O]); ok {
		return v
	}
	return View2[I1, I2, O]{invoke: c.Call}
}

func OfCaller3[I1, I2, I3, O any](c Caller3[I1, I2, I3, O]) View3[I1, I2, I3, O] {
	if v, ok := c.(View3[I1, I2, I3, O]); ok {
		return v
	}
	return View3[I1, I2, I3, O]{invoke: c.Call}
}

func OfCaller4[I1, I2, I3, I4, O any](c Caller4[I1, I2, I3, I4, O]) View4[I1, I2, I3, I4, O] {
	if v, ok := c.(View4[I1, I2, I3, I4, O]); ok {
		return v
	}
	return View4[I1, I2, I3, I4, O]{invoke: c.Call}
}

// Do1 binds a plain or named func value to an Action1. Same storage
// rules as Of1.
func Do1[I1 any, F ~func(I1)](fn F) Action1[I1] {
	return Action1[I1]{invoke: (func(I1))(fn)}
}

func Do0[F ~func()](fn F) Action0 {
	return Action0{invoke: (func())(fn)}
}

func Do2[I1, I2 any, F ~func(I1, I2)](fn F) Action2[I1, I2] {
	return Action2[I1, I2]{invoke: (func(I1, I2))(fn)}
}

func Do3[I1, I2, I3 any, F ~func(I1, I2, I3)](fn F) Action3[I1, I2, I3] {
	return Action3[I1, I2, I3]{invoke: (func(I1, I2, I3))(fn)}
}

func Do4[I1, I2, I3, I4 any, F ~func(I1, I2, I3, I4)](fn F) Action4[I1, I2, I3, I4] {
	return Action4[I1, I2, I3, I4]{invoke: (func(I1, I2, I3, I4))(fn)}
}

// DoCaller1 binds a stateful function object to an Action1, copying a
// same-signature Action candidate the way OfCaller1 copies views.
func DoCaller1[I1 any](d Doer1[I1]) Action1[I1] {
	if a, ok := d.(Action1[I1]); ok {
		return a
	}
	return Action1[I1]{invoke: d.Call}
}

func DoCaller0(d Doer0) Action0 {
	if a, ok := d.(Action0); ok {
		return a
	}
	return Action0{invoke: d.Call}
}

func DoCaller2[I1, I2 any](d Doer2[I1, I2]) Action2[I1, I2] {
	if a, ok := d.(Action2[I1, I2]); ok {
		return a
	}
	return Action2[I1, I2]{invoke: d.Call}
}

func DoCaller3[I1, I2, I3 any](d Doer3[I1, I2, I3]) Action3[I1, I2, I3] {
	if a, ok := d.(Action3[I1, I2, I3]); ok {
		return a
	}
	return Action3[I1, I2, I3]{invoke: d.Call}
}

func DoCaller4[I1, I2, I3, I4 any](d Doer4[I1, I2, I3, I4]) Action4[I1, I2, I3, I4] {
	if a, ok := d.(Action4[I1, I2, I3, I4]); ok {
		return a
	}
	return Action4[I1, I2, I3, I4]{invoke: d.Call}
}
