package tuple

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestMkT2(t *testing.T) {
	tup := MkT2("x", 42)
	qt.Assert(t, qt.Equals(tup, T2[string, int]{A0: "x", A1: 42}))
	s, n := tup.T()
	qt.Assert(t, qt.Equals(s, "x"))
	qt.Assert(t, qt.Equals(n, 42))
}

func TestMkT1(t *testing.T) {
	tup := MkT1(1.5)
	qt.Assert(t, qt.Equals(tup.A0, 1.5))
	qt.Assert(t, qt.Equals(tup.T(), 1.5))
}

func TestMkT12(t *testing.T) {
	tup := MkT12(0, "1", 2.0, '3', byte(4), int8(5), int16(6), int32(7), int64(8), uint(9), uint8(10), true)
	a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11 := tup.T()
	qt.Assert(t, qt.DeepEquals(
		[]any{a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11},
		[]any{0, "1", 2.0, '3', byte(4), int8(5), int16(6), int32(7), int64(8), uint(9), uint8(10), true},
	))
}
