// Package kzg implements the KZG polynomial commitment primitive over
// BLS12-381 used throughout this module: committing a polynomial given
// its evaluations on a fixed domain, and opening/verifying it at a
// coset of size l simultaneously (a "multi-open"), which is the form
// every cell proof in this system actually takes. A single-point open
// is just the l=1 special case of the same machinery.
package kzg

import (
	"math/big"

	"github.com/jtraglia/peerdas-kzg/bls"
	"github.com/jtraglia/peerdas-kzg/kzgsetup"
	"github.com/jtraglia/peerdas-kzg/poly"
)

// Commit computes C = sum_i values[i] * L_i, the commitment to the
// polynomial whose evaluations on the Lagrange basis's domain are
// values. len(values) must not exceed len(lagrangeBasis).
func Commit(lagrangeBasis []bls.G1Jac, values []bls.Fr) bls.G1Jac {
	return bls.G1MSM(lagrangeBasis[:len(values)], values)
}

// CommitMonomial computes C = sum_i coeffs[i] * tau^i, the commitment
// to the polynomial given by its monomial coefficients. len(coeffs)
// must not exceed len(monomialBasis).
func CommitMonomial(monomialBasis []bls.G1Jac, coeffs []bls.Fr) bls.G1Jac {
	return bls.G1MSM(monomialBasis[:len(coeffs)], coeffs)
}

// OpenCoset produces the opening proof for the degree-<n polynomial
// given by coeffs, at the coset h * H_l (h times the l distinct l-th
// roots of unity): the commitment to the quotient
//
//	q(x) = (p(x) - r(x)) / (x^l - h^l)
//
// where r is the degree-<l polynomial interpolating p over the coset,
// along with the coset evaluations of p themselves (the cell values).
// setup.G1Monomial must hold at least len(coeffs) points.
func OpenCoset(setup *kzgsetup.Setup, coeffs []bls.Fr, h bls.Fr, l int) (proof bls.G1Jac, cosetValues []bls.Fr) {
	p := poly.NewPolynomial(coeffs)
	wl := bls.RootOfUnity(uint64(l))

	cosetValues = make([]bls.Fr, l)
	point := h
	for i := 0; i < l; i++ {
		cosetValues[i] = p.Evaluate(point)
		point = point.Mul(wl)
	}

	q := quotientByCosetModulus(coeffs, h, l)
	proof = CommitMonomial(setup.G1Monomial, q)
	return proof, cosetValues
}

// quotientByCosetModulus divides p(x) by (x^l - h^l) using the
// synthetic block-division recurrence: split p's coefficients into
// k = ceil(len(coeffs)/l) blocks of size l (the top block zero-padded),
// then C_{k-1} = B_{k-1}, C_i = B_i + h^l * C_{i+1} for i = k-2..0. The
// quotient is the concatenation of C_1..C_{k-1}; C_0 is the remainder
// r(x), discarded here since the caller derives r directly from the
// coset evaluations instead.
func quotientByCosetModulus(coeffs []bls.Fr, h bls.Fr, l int) []bls.Fr {
	n := len(coeffs)
	k := (n + l - 1) / l

	blocks := make([][]bls.Fr, k)
	for i := 0; i < k; i++ {
		start := i * l
		end := start + l
		if end > n {
			end = n
		}
		block := make([]bls.Fr, l)
		copy(block, coeffs[start:end])
		for j := end - start; j < l; j++ {
			block[j] = bls.FrZero()
		}
		blocks[i] = block
	}

	hl := h.Exp(big.NewInt(int64(l)))

	c := make([][]bls.Fr, k)
	c[k-1] = blocks[k-1]
	for i := k - 2; i >= 0; i-- {
		row := make([]bls.Fr, l)
		for j := 0; j < l; j++ {
			row[j] = blocks[i][j].Add(c[i+1][j].Mul(hl))
		}
		c[i] = row
	}

	q := make([]bls.Fr, 0, (k-1)*l)
	for i := 1; i < k; i++ {
		q = append(q, c[i]...)
	}
	return q
}

// VerifyCoset checks that proof is a valid coset opening of commitment
// at coset h*H_l to the given cosetValues, using the pairing equation
//
//	e(C - [r]_1, [1]_2) = e(proof, [tau^l - h^l]_2)
//
// where r is the degree-<l interpolation of cosetValues over the coset
// and [r]_1 is committed against the low-degree prefix of the monomial
// SRS. setup.G2Tau must hold [tau^l]_2 for this same l.
func VerifyCoset(setup *kzgsetup.Setup, commitment bls.G1Jac, h bls.Fr, cosetValues []bls.Fr, proof bls.G1Jac) bool {
	l := len(cosetValues)
	rCoeffs := poly.InverseCosetNTT(cosetValues, h)
	rCommit := CommitMonomial(setup.G1Monomial, rCoeffs)

	hl := h.Exp(big.NewInt(int64(l)))
	modulusG2 := setup.G2Tau.Sub(setup.G2Gen.ScalarMulFr(hl))

	lhs := commitment.Sub(rCommit)
	return bls.PairingCheck([]bls.PairingPair{
		{G1: lhs, G2: setup.G2Gen},
		{G1: proof.Neg(), G2: modulusG2},
	})
}
