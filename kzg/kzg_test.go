package kzg

import (
	"math/big"
	"testing"

	"github.com/jtraglia/peerdas-kzg/bls"
	"github.com/jtraglia/peerdas-kzg/kzgsetup"
	"github.com/jtraglia/peerdas-kzg/poly"
)

// toySetup builds a trusted setup directly from a random-looking secret
// tau, bypassing JSON loading, for use in package-internal tests that
// only need a consistent SRS rather than the real ceremony output.
func toySetup(t *testing.T, n, l int) *kzgsetup.Setup {
	t.Helper()
	tau := bls.NewFrFromUint64(123456789)

	g1 := bls.G1Generator()
	g2 := bls.G2Generator()

	monomial := make([]bls.G1Jac, n)
	power := bls.FrOne()
	for i := 0; i < n; i++ {
		monomial[i] = g1.ScalarMulFr(power)
		power = power.Mul(tau)
	}

	tauL := tau.Exp(big.NewInt(int64(l)))

	return &kzgsetup.Setup{
		G1Monomial: monomial,
		G2Gen:      g2,
		G2Tau:      g2.ScalarMulFr(tauL),
	}
}

func TestOpenCosetVerifies(t *testing.T) {
	const n = 16
	const l = 4

	coeffs := make([]bls.Fr, n)
	for i := range coeffs {
		coeffs[i] = bls.NewFrFromUint64(uint64(i*i + 1))
	}

	setup := toySetup(t, n, l)
	p := poly.NewPolynomial(coeffs)
	commitment := CommitMonomial(setup.G1Monomial, coeffs)

	h := bls.NewFrFromUint64(5)
	proof, cosetValues := OpenCoset(setup, coeffs, h, l)

	wl := bls.RootOfUnity(uint64(l))
	point := h
	for i := 0; i < l; i++ {
		want := p.Evaluate(point)
		if !cosetValues[i].Equal(want) {
			t.Fatalf("cosetValues[%d] = %v, want %v", i, cosetValues[i], want)
		}
		point = point.Mul(wl)
	}

	if !VerifyCoset(setup, commitment, h, cosetValues, proof) {
		t.Fatal("VerifyCoset rejected a valid opening")
	}
}

func TestVerifyCosetRejectsWrongValue(t *testing.T) {
	const n = 16
	const l = 4

	coeffs := make([]bls.Fr, n)
	for i := range coeffs {
		coeffs[i] = bls.NewFrFromUint64(uint64(i + 1))
	}

	setup := toySetup(t, n, l)
	commitment := CommitMonomial(setup.G1Monomial, coeffs)

	h := bls.NewFrFromUint64(5)
	proof, cosetValues := OpenCoset(setup, coeffs, h, l)
	cosetValues[0] = cosetValues[0].Add(bls.FrOne())

	if VerifyCoset(setup, commitment, h, cosetValues, proof) {
		t.Fatal("VerifyCoset accepted a tampered value")
	}
}

func TestVerifyCosetRejectsWrongProof(t *testing.T) {
	const n = 16
	const l = 4

	coeffs := make([]bls.Fr, n)
	for i := range coeffs {
		coeffs[i] = bls.NewFrFromUint64(uint64(i + 1))
	}

	setup := toySetup(t, n, l)
	commitment := CommitMonomial(setup.G1Monomial, coeffs)

	h := bls.NewFrFromUint64(5)
	proof, cosetValues := OpenCoset(setup, coeffs, h, l)
	tamperedProof := proof.Add(bls.G1Generator())

	if VerifyCoset(setup, commitment, h, cosetValues, tamperedProof) {
		t.Fatal("VerifyCoset accepted a tampered proof")
	}
}
