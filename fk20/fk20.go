// Package fk20 produces the full set of per-cell KZG opening proofs for
// a blob polynomial via the FK20 batched multi-open: a handful of NTTs
// instead of one polynomial division and commitment per cell.
//
// For a degree-<FieldElementsPerBlob polynomial p, the quotient
// q_H(x) = (p(x) - r_H(x))/(x^l - H) for the coset at modulus H is, by
// the usual block-synthetic-division recurrence, a linear function of
// p's coefficients whose dependence on H is a degree-<blocksPerPoly
// polynomial in H with G1-point coefficients. Evaluating that
// G1-point polynomial at the CellsPerExtBlob-many H values (the
// FieldElementsPerCell-th powers of the coset offsets, which are
// exactly the CellsPerExtBlob-th roots of unity)
// is one G1-NTT; the G1-point coefficients themselves are a sum, over
// each of the FieldElementsPerCell coefficient residues mod l, of a
// scalar/G1-point convolution computed via one Fr-NTT, one precomputed
// G1-NTT table lookup, and one inverse G1-NTT.
package fk20

import (
	"sync"

	"github.com/jtraglia/peerdas-kzg/bls"
	"github.com/jtraglia/peerdas-kzg/internal/parallel"
	"github.com/jtraglia/peerdas-kzg/kzgsetup"
	"github.com/jtraglia/peerdas-kzg/poly"
)

// FieldElementsPerBlob, FieldElementsPerCell, and CellsPerExtBlob
// mirror the constants in package peerdas; duplicated here to avoid a
// dependency cycle between peerdas and fk20 (peerdas imports fk20, not
// the other way around).
const (
	FieldElementsPerBlob = 4096
	FieldElementsPerCell = 64
	CellsPerExtBlob      = 128

	extendedDomainSize = 2 * FieldElementsPerBlob
	blocksPerPoly      = FieldElementsPerBlob / FieldElementsPerCell
)

// cellOrder caches the bit-reversal permutation of [0, CellsPerExtBlob),
// computed once regardless of how many times ComputeCells or
// CosetOffset is called.
var cellOrder = sync.OnceValue(func() []int {
	return poly.BitReversalPermute(sequentialInts(CellsPerExtBlob))
})

// ComputeCells computes, for the blob polynomial given by its
// FieldElementsPerBlob monomial coefficients, the coset evaluations
// and FK20 opening proof for every one of the CellsPerExtBlob cells,
// in cell-index order (cell k's coset offset is
// omega_ext^{bit_reverse_128(k)}, per the cell ordering in the external
// interface).
func ComputeCells(setup *kzgsetup.Setup, coeffs []bls.Fr) (cells [][]bls.Fr, proofs []bls.G1Jac) {
	brIndices := cellOrder()

	quotientsNatural := quotientCommitments(setup, coeffs)
	proofs = make([]bls.G1Jac, CellsPerExtBlob)
	for k := 0; k < CellsPerExtBlob; k++ {
		proofs[k] = quotientsNatural[brIndices[k]]
	}

	extendedEvals := extendedEvaluations(coeffs)
	cells = make([][]bls.Fr, CellsPerExtBlob)
	parallel.ExecuteOne(0, CellsPerExtBlob, func(k int) {
		br := brIndices[k]
		vals := make([]bls.Fr, FieldElementsPerCell)
		for j := 0; j < FieldElementsPerCell; j++ {
			vals[j] = extendedEvals[br+j*CellsPerExtBlob]
		}
		cells[k] = vals
	})

	return cells, proofs
}

// extendedEvaluations evaluates the degree-<FieldElementsPerBlob
// polynomial given by coeffs on all extendedDomainSize-th roots of
// unity in one NTT: cell k's coset evaluations are exactly the entries
// at natural-domain indices br(k), br(k)+CellsPerExtBlob,
// br(k)+2*CellsPerExtBlob, ..., the same indexing RecoverCellsAndKZGProofs
// uses to scatter partial cells back into the extended domain.
func extendedEvaluations(coeffs []bls.Fr) []bls.Fr {
	padded := make([]bls.Fr, extendedDomainSize)
	copy(padded, coeffs)
	for i := len(coeffs); i < extendedDomainSize; i++ {
		padded[i] = bls.FrZero()
	}
	return poly.NTT(padded)
}

// quotientCommitments computes Commit(q_H) for every H among the
// CellsPerExtBlob-th roots of unity, in natural (non-bit-reversed)
// order, via the per-residue convolution described in the package doc.
func quotientCommitments(setup *kzgsetup.Setup, coeffs []bls.Fr) []bls.G1Jac {
	contributions := make([][]bls.G1Jac, FieldElementsPerCell)

	parallel.ExecuteOne(0, FieldElementsPerCell, func(u int) {
		residue := make([]bls.Fr, extendedDomainSize/FieldElementsPerCell)
		for t := 0; t < blocksPerPoly; t++ {
			residue[t] = coeffs[t*FieldElementsPerCell+u]
		}
		for t := blocksPerPoly; t < len(residue); t++ {
			residue[t] = bls.FrZero()
		}

		residueHat := poly.NTT(residue)

		table := setup.FK20Table[u]
		product := make([]bls.G1Jac, len(residueHat))
		for i := range product {
			product[i] = table[i].ScalarMulFr(residueHat[i])
		}
		conv := poly.G1InverseNTT(product)

		contribution := make([]bls.G1Jac, blocksPerPoly-1)
		for d := range contribution {
			contribution[d] = conv[blocksPerPoly-1+d]
		}
		contributions[u] = contribution
	})

	v := make([]bls.G1Jac, blocksPerPoly-1)
	for d := range v {
		v[d] = bls.G1Infinity()
	}
	for u := 0; u < FieldElementsPerCell; u++ {
		for d := range v {
			v[d] = v[d].Add(contributions[u][d])
		}
	}

	vPadded := make([]bls.G1Jac, CellsPerExtBlob)
	copy(vPadded, v)
	for i := len(v); i < CellsPerExtBlob; i++ {
		vPadded[i] = bls.G1Infinity()
	}
	return poly.G1NTT(vPadded)
}

// CosetOffset returns h_k = omega_ext^{bit_reverse_128(k)}, the coset
// offset for cell index k, given the extended domain size (2n).
func CosetOffset(extDomainSize, cellIndex int) bls.Fr {
	omegaExt := bls.RootOfUnity(uint64(extDomainSize))
	return powFr(omegaExt, cellOrder()[cellIndex])
}

func sequentialInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func powFr(base bls.Fr, exp int) bls.Fr {
	result := bls.FrOne()
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(b)
		}
		b = b.Mul(b)
		exp >>= 1
	}
	return result
}
