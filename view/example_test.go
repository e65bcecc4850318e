package view_test

import (
	"fmt"

	"github.com/on-the-ground/funcview_go/view"
)

type foo struct {
	kind string
	name string
}

// iterateOverFoos takes a callback without being generic over the
// callback's type, so it could just as well be an interface method.
func iterateOverFoos(foos []foo, cb view.View1[*foo, bool]) {
	for i := range foos {
		if cb.Call(&foos[i]) {
			return
		}
	}
}

func ExampleView1() {
	foos := []foo{
		{kind: "a", name: "first"},
		{kind: "b", name: "second"},
		{kind: "a", name: "third"},
	}

	var found *foo
	iterateOverFoos(foos, view.Of1(func(f *foo) bool {
		if f.kind == "b" {
			found = f
			return true // stop iterating
		}
		return false
	}))

	fmt.Println(found.name)
	// Output: second
}
