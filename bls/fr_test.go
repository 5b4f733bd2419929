package bls

import (
	"math/big"
	"testing"
)

func TestFrArithmeticDistributive(t *testing.T) {
	a := NewFrFromUint64(7)
	b := NewFrFromUint64(11)
	c := NewFrFromUint64(13)

	lhs := a.Mul(b.Add(c))
	rhs := a.Mul(b).Add(a.Mul(c))
	if !lhs.Equal(rhs) {
		t.Error("Fr is not distributive")
	}
}

func TestFrInvSelf(t *testing.T) {
	a := NewFrFromUint64(99)
	if got := a.Inv().Inv(); !got.Equal(a) {
		t.Error("inv(inv(a)) should equal a")
	}
}

func TestFrDivSelfIsOne(t *testing.T) {
	a := NewFrFromUint64(1234)
	if got := a.Div(a); !got.Equal(FrOne()) {
		t.Error("a / a should equal 1")
	}
}

func TestFrBytesRoundTrip(t *testing.T) {
	a := NewFrFromUint64(424242)
	b := a.Bytes()
	got, ok := FrFromBytes(b[:])
	if !ok {
		t.Fatal("FrFromBytes rejected a canonical encoding")
	}
	if !got.Equal(a) {
		t.Error("round trip mismatch")
	}
}

func TestFrFromBytesRejectsNonCanonical(t *testing.T) {
	b := modulusR.Bytes() // exactly r, not canonical (must be < r)
	var buf [BytesPerFr]byte
	copy(buf[BytesPerFr-len(b):], b)
	if _, ok := FrFromBytes(buf[:]); ok {
		t.Error("FrFromBytes should reject a value >= r")
	}
}

func TestRootOfUnityHasCorrectOrder(t *testing.T) {
	for _, n := range []uint64{2, 4, 8, 4096} {
		w := RootOfUnity(n)
		if !w.Exp(big.NewInt(int64(n))).Equal(FrOne()) {
			t.Errorf("RootOfUnity(%d)^%d != 1", n, n)
		}
		half := w.Exp(big.NewInt(int64(n / 2)))
		if half.Equal(FrOne()) {
			t.Errorf("RootOfUnity(%d) is not primitive: ^(n/2) == 1", n)
		}
	}
}
