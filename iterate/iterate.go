// Package iterate provides slice iteration helpers that take their
// callbacks as views, the callback shape this library exists for.
package iterate

import "github.com/on-the-ground/funcview_go/view"

// ForEach calls fn on every item in order.
func ForEach[T any](items []T, fn view.Action1[T]) {
	for _, item := range items {
		fn.Call(item)
	}
}

// ForEachUntil calls fn on every item in order, stopping as soon as fn
// returns true. It reports whether iteration stopped early.
func ForEachUntil[T any](items []T, fn view.View1[T, bool]) bool {
	for _, item := range items {
		if fn.Call(item) {
			return true
		}
	}
	return false
}

// FindIf returns the first item for which pred returns true.
func FindIf[T any](items []T, pred view.View1[T, bool]) (T, bool) {
	for _, item := range items {
		if pred.Call(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Any reports whether pred holds for at least one item.
func Any[T any](items []T, pred view.View1[T, bool]) bool {
	_, ok := FindIf(items, pred)
	return ok
}

// All reports whether pred holds for every item.
func All[T any](items []T, pred view.View1[T, bool]) bool {
	for _, item := range items {
		if !pred.Call(item) {
			return false
		}
	}
	return true
}

// Fold threads an accumulator through fn over the items in order.
func Fold[T, A any](items []T, init A, fn view.View2[A, T, A]) A {
	acc := init
	for _, item := range items {
		acc = fn.Call(acc, item)
	}
	return acc
}
