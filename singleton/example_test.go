package singleton_test

import (
	"fmt"

	"github.com/sghaida/solo/singleton"
)

func ExampleGetInstance() {
	first := singleton.GetInstance()
	second := singleton.GetInstance()
	fmt.Println(first == second)
	// Output: true
}

func ExampleNewHolder() {
	h := singleton.NewHolder(func() *widget {
		fmt.Println("constructing")
		return &widget{id: 42}
	})
	fmt.Println(h.State())

	a := h.Get()
	b := h.Get()
	fmt.Println(a == b, a.id, h.State())
	// Output:
	// uninitialized
	// constructing
	// true 42 initialized
}
