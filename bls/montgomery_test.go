package bls

import (
	"math/big"
	"testing"
)

func TestFrMontgomeryRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 2, 12345, 9999999999} {
		a := NewFrFromUint64(uint64(v))
		got := a.BigInt()
		if got.Cmp(big.NewInt(v)) != 0 {
			t.Errorf("NewFrFromUint64(%d).BigInt() = %s, want %d", v, got, v)
		}
	}
}

func TestFpMontgomeryRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 2, 12345, 9999999999} {
		a := NewFp(big.NewInt(v))
		got := a.BigInt()
		if got.Cmp(big.NewInt(v)) != 0 {
			t.Errorf("NewFp(%d).BigInt() = %s, want %d", v, got, v)
		}
	}
}

func TestFrAddMatchesBigInt(t *testing.T) {
	a := NewFr(big.NewInt(0).Sub(modulusR, big.NewInt(1))) // r-1
	b := NewFrFromUint64(2)
	got := a.Add(b).BigInt()
	want := new(big.Int).Mod(big.NewInt(1), modulusR) // (r-1+2) mod r = 1
	if got.Cmp(want) != 0 {
		t.Errorf("(r-1)+2 mod r = %s, want %s", got, want)
	}
}

func TestFpSubUnderflowWrapsCorrectly(t *testing.T) {
	a := NewFp(big.NewInt(5))
	b := NewFp(big.NewInt(7))
	got := a.Sub(b).BigInt()
	want := new(big.Int).Mod(big.NewInt(-2), modulusP)
	if got.Cmp(want) != 0 {
		t.Errorf("5-7 mod p = %s, want %s", got, want)
	}
}

func TestFrBatchInverseMatchesIndividualInverse(t *testing.T) {
	vals := []Fr{NewFrFromUint64(3), NewFrFromUint64(17), NewFrFromUint64(1000003)}
	got, err := FrBatchInverse(vals)
	if err != nil {
		t.Fatalf("FrBatchInverse: %v", err)
	}
	for i, v := range vals {
		if !got[i].Equal(v.Inv()) {
			t.Errorf("batch inverse[%d] = %v, want %v", i, got[i], v.Inv())
		}
	}
}

func TestFrBatchInverseRejectsZero(t *testing.T) {
	vals := []Fr{NewFrFromUint64(3), FrZero(), NewFrFromUint64(5)}
	if _, err := FrBatchInverse(vals); err == nil {
		t.Error("FrBatchInverse should reject a zero element")
	}
}

func TestFpBatchInverseMatchesIndividualInverse(t *testing.T) {
	vals := []Fp{NewFp(big.NewInt(3)), NewFp(big.NewInt(17)), NewFp(big.NewInt(1000003))}
	got, err := FpBatchInverse(vals)
	if err != nil {
		t.Fatalf("FpBatchInverse: %v", err)
	}
	for i, v := range vals {
		if !got[i].Equal(v.Inv()) {
			t.Errorf("batch inverse[%d] = %v, want %v", i, got[i], v.Inv())
		}
	}
}

func TestFpBatchInverseRejectsZero(t *testing.T) {
	vals := []Fp{NewFp(big.NewInt(3)), FpZero(), NewFp(big.NewInt(5))}
	if _, err := FpBatchInverse(vals); err == nil {
		t.Error("FpBatchInverse should reject a zero element")
	}
}

func TestFrNegIsAdditiveInverse(t *testing.T) {
	a := NewFrFromUint64(424242)
	if !a.Add(a.Neg()).IsZero() {
		t.Error("a + (-a) should be zero")
	}
}

func TestFpNegIsAdditiveInverse(t *testing.T) {
	a := NewFp(big.NewInt(424242))
	if !a.Add(a.Neg()).IsZero() {
		t.Error("a + (-a) should be zero")
	}
}
