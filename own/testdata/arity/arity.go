package arity

import (
	"github.com/rogpeppe/ownage/own"
	"github.com/rogpeppe/ownage/tuple"
)

// A one-element tuple can't be passed to the two-element form.
func F(n int) int {
	return own.Own2(tuple.MkT1(own.Copy(&n)), func(a, b int) int {
		return a + b
	})
}
