package bls

import (
	"math/big"
	"testing"
)

func TestFp2ArithmeticDistributive(t *testing.T) {
	a := NewFp2(big.NewInt(3), big.NewInt(5))
	b := NewFp2(big.NewInt(7), big.NewInt(11))
	c := NewFp2(big.NewInt(13), big.NewInt(17))

	lhs := a.Mul(b.Add(c))
	rhs := a.Mul(b).Add(a.Mul(c))
	if !lhs.Equal(rhs) {
		t.Error("Fp2 is not distributive")
	}
}

func TestFp2InvSelf(t *testing.T) {
	a := NewFp2(big.NewInt(9), big.NewInt(4))
	if got := a.Inv().Inv(); !got.Equal(a) {
		t.Errorf("inv(inv(a)) = %v, want a", got)
	}
}

func TestFp2MulIsSqr(t *testing.T) {
	a := NewFp2(big.NewInt(21), big.NewInt(8))
	if !a.Mul(a).Equal(a.Sqr()) {
		t.Error("a*a != a.Sqr()")
	}
}

func TestFp2MulByNonResidueMatchesExplicitMul(t *testing.T) {
	a := NewFp2(big.NewInt(6), big.NewInt(15))
	nonResidue := NewFp2(big.NewInt(1), big.NewInt(1))
	if !a.MulByNonResidue().Equal(a.Mul(nonResidue)) {
		t.Error("MulByNonResidue disagrees with multiplying by (1+u)")
	}
}

func TestFp2SqrtRoundTrip(t *testing.T) {
	a := NewFp2(big.NewInt(123), big.NewInt(456))
	sq := a.Sqr()
	root, ok := sq.Sqrt()
	if !ok {
		t.Fatal("expected a square root to exist")
	}
	if !root.Sqr().Equal(sq) {
		t.Error("returned root does not square back to the input")
	}
}

func TestFp2ConjInvolution(t *testing.T) {
	a := NewFp2(big.NewInt(31), big.NewInt(42))
	if !a.Conj().Conj().Equal(a) {
		t.Error("Conj should be an involution")
	}
}
