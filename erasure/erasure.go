// Package erasure implements the Reed-Solomon erasure coding used to turn
// a blob's FieldElementsPerBlob evaluations into a 2x-extended codeword,
// and to recover the original evaluations from any half of the extended
// codeword. Unlike a GF(2^16) byte-oriented Reed-Solomon coder, this
// operates directly on BLS12-381 scalar field elements, since PeerDAS
// cells must be polynomial evaluations that KZG proofs can open.
//
// Extend treats the blob as evaluations of a degree-(n-1) polynomial on
// the n-th roots of unity, then evaluates that same polynomial on the
// 2n-th roots of unity. Recover runs the classic "erasures via a known
// vanishing polynomial" trick: given any n of the 2n evaluations, it
// builds the vanishing polynomial Z of the missing points, multiplies
// its evaluations pointwise into the received ones (zero where missing)
// to get the evaluations of E = p*Z, interpolates E, evaluates E and Z
// on a coset shifted off the roots of unity (where Z has no zeros),
// divides pointwise, and transforms back to recover p and re-evaluate it
// on the full 2n domain.
package erasure

import (
	"errors"
	"fmt"

	"github.com/jtraglia/peerdas-kzg/bls"
	"github.com/jtraglia/peerdas-kzg/poly"
)

var (
	// ErrTooFewEvaluations is returned by Recover when fewer than n of the
	// 2n extended evaluations are present.
	ErrTooFewEvaluations = errors.New("erasure: not enough evaluations to recover")
	// ErrIndexOutOfRange is returned when a supplied index is outside
	// [0, 2n).
	ErrIndexOutOfRange = errors.New("erasure: index out of range")
	// ErrDuplicateIndex is returned when the same index appears twice in
	// one Recover call.
	ErrDuplicateIndex = errors.New("erasure: duplicate index")
)

// Extend evaluates the degree-(n-1) polynomial that interpolates vals on
// the n-th roots of unity at the 2n-th roots of unity, returning a
// length-2n slice whose even-indexed entries equal vals (up to the
// index-doubling implied by moving to the bigger domain) and whose
// odd-indexed entries are the new, erasure-coded evaluations.
func Extend(vals []bls.Fr) []bls.Fr {
	n := len(vals)
	coeffs := poly.InverseNTT(vals)

	padded := make([]bls.Fr, 2*n)
	copy(padded, coeffs)
	for i := n; i < 2*n; i++ {
		padded[i] = bls.FrZero()
	}

	return poly.NTT(padded)
}

// Recover reconstructs the full length-2n extended codeword from a
// partial set of evaluations, given as parallel indices (each in
// [0, 2n)) and values. At least n evaluations must be present; n is
// inferred as half of extDomainSize.
func Recover(extDomainSize int, indices []int, values []bls.Fr) ([]bls.Fr, error) {
	if len(indices) != len(values) {
		return nil, fmt.Errorf("erasure: %d indices but %d values", len(indices), len(values))
	}
	n := extDomainSize / 2
	if len(indices) < n {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewEvaluations, len(indices), n)
	}

	present := make([]bool, extDomainSize)
	have := make([]bls.Fr, extDomainSize)
	seen := make(map[int]bool, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= extDomainSize {
			return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateIndex, idx)
		}
		seen[idx] = true
		present[idx] = true
		have[idx] = values[i]
	}

	// The codeword polynomial c(x) has degree < n. Let z(x) be the
	// low-degree vanishing polynomial of the missing points (degree
	// equal to the number of missing points, at most n). Since
	// deg(c*z) < n + n = extDomainSize, the product's extDomainSize
	// evaluations determine it exactly. At every missing point z is
	// zero, so the product is zero there regardless of the unknown
	// c-value; at every present point the product is have[i]*z(i), which
	// we do know. So e(x) := (values padded with 0 at missing points) is
	// exactly equal to (c*z)(x) on the whole domain.
	domainRoots := domainOfSize(extDomainSize)
	missingRoots := make([]bls.Fr, 0, extDomainSize-len(indices))
	for i := 0; i < extDomainSize; i++ {
		if !present[i] {
			missingRoots = append(missingRoots, domainRoots[i])
		}
	}

	zPoly := poly.VanishingPolynomial(missingRoots)
	zCoeffs := make([]bls.Fr, extDomainSize)
	copy(zCoeffs, zPoly.Coefficients)
	for i := len(zPoly.Coefficients); i < extDomainSize; i++ {
		zCoeffs[i] = bls.FrZero()
	}

	zEval := poly.NTT(zCoeffs)
	paddedVals := make([]bls.Fr, extDomainSize)
	for i := 0; i < extDomainSize; i++ {
		if present[i] {
			paddedVals[i] = have[i].Mul(zEval[i])
		} else {
			paddedVals[i] = bls.FrZero()
		}
	}
	eCoeffs := poly.InverseNTT(paddedVals)

	// Evaluate both z(x) and e(x) on a coset shifted off the roots of
	// unity, where z has no roots, so the pointwise division recovers
	// c(x) = e(x)/z(x) exactly at every coset point.
	shift := bls.NewFrFromUint64(7)
	zShifted := poly.CosetNTT(zCoeffs, shift)
	eShifted := poly.CosetNTT(eCoeffs, shift)

	cShifted := make([]bls.Fr, extDomainSize)
	for i := range cShifted {
		cShifted[i] = eShifted[i].Div(zShifted[i])
	}

	cCoeffs := poly.InverseCosetNTT(cShifted, shift)
	out := poly.NTT(cCoeffs)

	return out, nil
}

func domainOfSize(n int) []bls.Fr {
	w := bls.RootOfUnity(uint64(n))
	out := make([]bls.Fr, n)
	out[0] = bls.FrOne()
	for i := 1; i < n; i++ {
		out[i] = out[i-1].Mul(w)
	}
	return out
}
