package wrongtype

import (
	"github.com/rogpeppe/ownage/own"
	"github.com/rogpeppe/ownage/tuple"
)

// The parameter type does not match the owned form of an int.
func F(n int) string {
	return own.Own1(tuple.MkT1(own.Copy(&n)), func(s string) string {
		return s
	})
}
