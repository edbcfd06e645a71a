package good

import (
	"github.com/rogpeppe/ownage/own"
	"github.com/rogpeppe/ownage/tuple"
)

func F(n int, s []string) int {
	return own.Own2(tuple.MkT2(own.Copy(&n), own.Slice(s)), func(n int, s []string) int {
		return n + len(s)
	})
}
