package nocap

import (
	"github.com/rogpeppe/ownage/own"
	"github.com/rogpeppe/ownage/tuple"
)

// *int has no ToOwned method.
func F(n int) int {
	return own.Own1(tuple.MkT1(&n), func(n int) int {
		return n
	})
}
