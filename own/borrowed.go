package own

import (
	"maps"
	"slices"
)

// Borrowed is implemented by values that can produce an owned
// equivalent of themselves.
//
// ToOwned returns a value with the same logical content as the
// receiver that remains valid and unchanged however the receiver's
// underlying storage is used afterwards. It may allocate.
type Borrowed[O any] interface {
	ToOwned() O
}

// Ref is a borrowed reference to a value whose owned form
// is a plain copy of the value.
type Ref[T any] struct {
	p *T
}

// Copy returns a borrowed reference to *p. Its owned form is a shallow
// copy of *p, which suits numbers, strings, and structs
// that hold no slices, maps or pointers.
//
// The pointer is dereferenced by ToOwned, so it must not be nil.
func Copy[T any](p *T) Ref[T] {
	return Ref[T]{p}
}

// ToOwned implements [Borrowed] by returning a copy of the referenced value.
func (r Ref[T]) ToOwned() T {
	return *r.p
}

// SliceRef is a borrowed slice whose owned form is a clone of the slice.
type SliceRef[S ~[]E, E any] struct {
	s S
}

// Slice returns a borrowed form of s. Its owned form is a new slice
// holding the same elements. The elements themselves are copied
// by assignment. A nil slice stays nil.
func Slice[S ~[]E, E any](s S) SliceRef[S, E] {
	return SliceRef[S, E]{s}
}

// ToOwned implements [Borrowed].
func (r SliceRef[S, E]) ToOwned() S {
	return slices.Clone(r.s)
}

// MapRef is a borrowed map whose owned form is a clone of the map.
type MapRef[M ~map[K]V, K comparable, V any] struct {
	m M
}

// Map returns a borrowed form of m. Its owned form is a new map
// with the same entries, copied by assignment. A nil map stays nil.
func Map[M ~map[K]V, K comparable, V any](m M) MapRef[M, K, V] {
	return MapRef[M, K, V]{m}
}

// ToOwned implements [Borrowed].
func (r MapRef[M, K, V]) ToOwned() M {
	return maps.Clone(r.m)
}

// Cloner is implemented by types with a Clone method
// returning an independent copy, such as [net/http.Header].
type Cloner[T any] interface {
	Clone() T
}

// CloneRef is a borrowed value whose owned form is produced
// by its Clone method.
type CloneRef[T Cloner[T]] struct {
	v T
}

// Clone returns a borrowed form of v whose owned form is v.Clone().
func Clone[T Cloner[T]](v T) CloneRef[T] {
	return CloneRef[T]{v}
}

// ToOwned implements [Borrowed].
func (r CloneRef[T]) ToOwned() T {
	return r.v.Clone()
}

// FuncRef is a borrowed value whose owned form is the result of
// calling the function.
type FuncRef[O any] func() O

// Func returns f as a borrowed value. The function is called once
// each time the value is converted and must return an independent value.
func Func[O any](f func() O) FuncRef[O] {
	return f
}

// ToOwned implements [Borrowed] by calling f.
func (f FuncRef[O]) ToOwned() O {
	return f()
}
