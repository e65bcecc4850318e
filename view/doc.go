// Package view provides a lightweight, non-owning handle to an arbitrary
// callable value, usable as a callback parameter type without making the
// receiving function generic over the callable's exact type.
//
// A view is to a callable what a slice header is to an array: a small,
// plainly copyable reference that neither owns nor copies what it points
// at. A Go func value is already a two-word pair of entry address and
// context word, so each view holds exactly one unexported func field of
// its canonical signature. That field is the erased storage and the
// trampoline in one; its nilness is the bound/unbound flag.
//
// # Signatures
//
// Go generics have no variadic type parameters, so declared signatures
// are expressed as arity-indexed families, up to four arguments:
//
//   - View0[O] .. View4[I1, I2, I3, I4, O] for signatures with a result.
//   - Action0 .. Action4[I1, I2, I3, I4] for signatures without one.
//
// # Binding
//
// Two binding strategies exist, selected by the shape of the candidate:
//
//   - Of0..Of4 and Do0..Do4 bind a plain or named func value. The
//     candidate is stored by conversion to the canonical func type,
//     which is representation-preserving: no wrapper closure, no
//     allocation.
//   - OfCaller0..OfCaller4 and DoCaller0..DoCaller4 bind any value with
//     a matching Call method (a stateful function object). The stored
//     method value captures only the candidate's address, never a
//     snapshot of its state; mutations of the candidate are visible
//     through later calls.
//
// Converting0..Converting4 bind a candidate whose numeric result type
// differs from the declared one, and Discarding0..Discarding4 bind a
// result-returning candidate to an Action, ignoring the result. An
// incompatible candidate does not compile; there are no runtime
// compatibility checks and no error values anywhere in this package.
//
// # Contract
//
// A view does not own its target. The referenced callable must stay
// valid for as long as any copy of the view may still be called; the
// intended use is a callback that crosses exactly one call boundary and
// is not retained past it.
//
// Calling an unbound view is a precondition violation. Call performs no
// nil check, so the runtime's nil-func trap is what the caller gets.
// Callers that cannot guarantee a target use Bound first:
//
//	func iterateOverFoos(cb view.Action1[*Foo]) {
//		for _, f := range foos {
//			cb.Call(f)
//		}
//	}
//
//	iterateOverFoos(view.Do1(func(f *Foo) { process(f) }))
//
// Views are plain values with no mutable shared state of their own;
// distinct copies are safe to use concurrently. Concurrent calls that
// reach the same candidate inherit whatever guarantees that candidate
// provides, nothing more.
package view
