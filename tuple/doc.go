// Package tuple holds generic struct types that carry a specific
// number of values, from T1 up to T12.
//
// Element i of a tuple is held in field Ai. The MkTn functions
// construct a tuple from its elements, and the T method returns
// the elements as multiple values:
//
//	t := tuple.MkT2("x", 42)
//	s, n := t.T()
//
// The github.com/rogpeppe/ownage/own package uses these types to pass
// a group of borrowed values to a single call.
package tuple

//go:generate go run generate.go
