// Package own converts a group of borrowed values into values owned
// by the caller and passes them to a function in one step.
//
// It's common to need private copies of several values before handing
// them to a goroutine or some other code that may outlive the current
// scope, or that must not observe later mutation of the originals.
// Writing one copy statement per value gets tedious:
//
//	hdr := req.Header.Clone()
//	ids := slices.Clone(s.ids)
//	opts := *s.opts
//	done := make(chan error, 1)
//	go func() {
//		done <- process(hdr, ids, opts)
//	}()
//
// With this package the same thing reads:
//
//	done := own.Own3(tuple.MkT3(own.Clone(req.Header), own.Slice(s.ids), own.Copy(s.opts)),
//		func(hdr http.Header, ids []int, opts Options) <-chan error {
//			c := make(chan error, 1)
//			go func() {
//				c <- process(hdr, ids, opts)
//			}()
//			return c
//		},
//	)
//
// The function is called exactly once and its single result is
// returned unchanged.
//
// A borrowed value is anything that implements [Borrowed]. Its owned
// form is the result of its ToOwned method, which must return a value
// that has the same logical content as the receiver but shares no
// mutable storage with it. The adapters [Copy], [Slice], [Map], [Clone]
// and [Func] provide ToOwned for values that can't have methods of
// their own.
//
// There is one function for each tuple arity from 1 to 12, Own1 to
// Own12. A call whose function parameters don't match the owned forms
// of the tuple elements, or whose tuple holds a value that does not
// implement Borrowed, fails to compile. To pass more than 12 values,
// define a struct that holds them, implement ToOwned on it, and use
// Own1.
package own

//go:generate go run generate.go
