package notfunc

import (
	"github.com/rogpeppe/ownage/own"
	"github.com/rogpeppe/ownage/tuple"
)

func F(n int) int {
	return own.Own1(tuple.MkT1(own.Copy(&n)), n)
}
