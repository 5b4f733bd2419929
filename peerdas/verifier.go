package peerdas

import (
	"math/big"

	"github.com/jtraglia/peerdas-kzg/bls"
	"github.com/jtraglia/peerdas-kzg/erasure"
	"github.com/jtraglia/peerdas-kzg/fk20"
	"github.com/jtraglia/peerdas-kzg/kzg"
	"github.com/jtraglia/peerdas-kzg/metrics"
	"github.com/jtraglia/peerdas-kzg/poly"
	"github.com/jtraglia/peerdas-kzg/transcript"
)

// reconstructionThreshold is the minimum number of distinct cells
// needed to recover a blob: half of CellsPerExtBlob.
const reconstructionThreshold = CellsPerExtBlob / 2

// RecoverCellsAndKZGProofs reconstructs the full set of cells and
// proofs from a partial set, given by parallel cellIDs and cells
// slices. At least reconstructionThreshold distinct, in-range cell IDs
// must be supplied.
func (vc *VerifierContext) RecoverCellsAndKZGProofs(cellIDs []uint64, cells []*Cell) ([CellsPerExtBlob]Cell, [CellsPerExtBlob]Proof, error) {
	timer := metrics.NewTimer(vc.recoverTiming)
	defer timer.Stop()

	var outCells [CellsPerExtBlob]Cell
	var outProofs [CellsPerExtBlob]Proof

	if len(cellIDs) != len(cells) {
		return outCells, outProofs, newError(MismatchedLengths, "%d cell ids but %d cells", len(cellIDs), len(cells))
	}
	if len(cellIDs) < reconstructionThreshold {
		return outCells, outProofs, newError(NotEnoughCells, "have %d, need %d", len(cellIDs), reconstructionThreshold)
	}

	seen := make(map[uint64]bool, len(cellIDs))
	indices := make([]int, 0, len(cellIDs)*FieldElementsPerCell)
	values := make([]bls.Fr, 0, len(cellIDs)*FieldElementsPerCell)

	for i, id := range cellIDs {
		if id >= CellsPerExtBlob {
			return outCells, outProofs, newError(CellIndexOutOfRange, "cell id %d >= %d", id, CellsPerExtBlob)
		}
		if seen[id] {
			return outCells, outProofs, newError(DuplicateCellIndex, "cell id %d", id)
		}
		seen[id] = true

		vals, err := cellToFrSlice(cells[i])
		if err != nil {
			return outCells, outProofs, err
		}

		brK := bitReverse128(int(id))
		for j, v := range vals {
			indices = append(indices, brK+j*CellsPerExtBlob)
			values = append(values, v)
		}
	}

	recovered, err := erasure.Recover(extendedDomainSize, indices, values)
	if err != nil {
		return outCells, outProofs, newError(NotEnoughCells, "%v", err)
	}

	coeffs := poly.InverseNTT(recovered)[:FieldElementsPerBlob]

	cellValues, cellProofs := fk20.ComputeCells(vc.setup, coeffs)
	for k := 0; k < CellsPerExtBlob; k++ {
		outCells[k] = frSliceToCell(cellValues[k])
		outProofs[k] = Proof(bls.CompressG1(cellProofs[k]))
	}
	vc.recoverCount.Inc()
	return outCells, outProofs, nil
}

// VerifyCellKZGProofBatch batch-verifies that each cells[i] is the
// correct opening of commitments[i] on the coset of cell index
// cellIndices[i], proved by proofs[i]. All four slices must have equal
// length. A false return means the batch
// failed cryptographic verification; errors are reserved for malformed
// input.
func (vc *VerifierContext) VerifyCellKZGProofBatch(commitments []*Commitment, cellIndices []uint64, cells []*Cell, proofs []*Proof) (bool, error) {
	timer := metrics.NewTimer(vc.verifyTiming)
	defer timer.Stop()

	n := len(commitments)
	if len(cellIndices) != n || len(cells) != n || len(proofs) != n {
		return false, newError(MismatchedLengths, "commitments=%d cellIndices=%d cells=%d proofs=%d",
			len(commitments), len(cellIndices), len(cells), len(proofs))
	}

	rowOf := make(map[Commitment]int)
	rowPoints := make([]bls.G1Jac, 0, n)
	rows := make([]int, n)

	tr := transcript.New()

	commitPoints := make([]bls.G1Jac, n)
	cellValues := make([][]bls.Fr, n)
	proofPoints := make([]bls.G1Jac, n)
	hs := make([]bls.Fr, n)

	type cellKey struct {
		commitment Commitment
		cellIndex  uint64
	}
	seenPairs := make(map[cellKey]bool, n)

	for i := 0; i < n; i++ {
		if cellIndices[i] >= CellsPerExtBlob {
			return false, newError(CellIndexOutOfRange, "cell index %d >= %d", cellIndices[i], CellsPerExtBlob)
		}

		key := cellKey{commitment: *commitments[i], cellIndex: cellIndices[i]}
		if seenPairs[key] {
			return false, newError(DuplicateCellIndex, "commitment %d repeats cell index %d", i, cellIndices[i])
		}
		seenPairs[key] = true

		cp, err := bls.DecompressG1(commitments[i][:])
		if err != nil {
			return false, newError(InvalidPoint, "commitment %d: %v", i, err)
		}
		commitPoints[i] = cp

		vals, err := cellToFrSlice(cells[i])
		if err != nil {
			return false, err
		}
		cellValues[i] = vals

		pp, err := bls.DecompressG1(proofs[i][:])
		if err != nil {
			return false, newError(InvalidPoint, "proof %d: %v", i, err)
		}
		proofPoints[i] = pp

		hs[i] = fk20.CosetOffset(extendedDomainSize, int(cellIndices[i]))

		row, ok := rowOf[*commitments[i]]
		if !ok {
			row = len(rowPoints)
			rowOf[*commitments[i]] = row
			rowPoints = append(rowPoints, cp)
		}
		rows[i] = row

		tr.Absorb(commitments[i][:])
		tr.AbsorbUint64(cellIndices[i])
		tr.Absorb(cells[i][:])
		tr.Absorb(proofs[i][:])
	}

	r := tr.ChallengeScalar()
	_ = tr.ChallengeScalar() // s: reserved for future transcript-compatible extension, unused by this aggregation

	weights := make([]bls.Fr, n)
	power := bls.FrOne()
	for i := 0; i < n; i++ {
		weights[i] = power
		power = power.Mul(r)
	}

	rowWeights := make([]bls.Fr, len(rowPoints))
	for i := range rowWeights {
		rowWeights[i] = bls.FrZero()
	}
	for i := 0; i < n; i++ {
		rowWeights[rows[i]] = rowWeights[rows[i]].Add(weights[i])
	}

	cAgg := bls.G1Infinity()
	for row, pt := range rowPoints {
		cAgg = cAgg.Add(pt.ScalarMulFr(rowWeights[row]))
	}

	piAgg := bls.G1Infinity()
	proofPoint := bls.G1Infinity()
	yCoeffs := make([]bls.Fr, FieldElementsPerCell)
	for i := range yCoeffs {
		yCoeffs[i] = bls.FrZero()
	}

	for i := 0; i < n; i++ {
		proofPoint = proofPoint.Add(proofPoints[i].ScalarMulFr(weights[i]))

		hl := hs[i].Exp(big.NewInt(int64(FieldElementsPerCell)))
		piAgg = piAgg.Add(proofPoints[i].ScalarMulFr(weights[i].Mul(hl)))

		rCoeffs := poly.InverseCosetNTT(cellValues[i], hs[i])
		for j := range yCoeffs {
			yCoeffs[j] = yCoeffs[j].Add(weights[i].Mul(rCoeffs[j]))
		}
	}
	yAgg := kzg.CommitMonomial(vc.setup.G1Monomial[:FieldElementsPerCell], yCoeffs)

	lhs := cAgg.Sub(yAgg).Add(piAgg)
	ok := bls.PairingCheck([]bls.PairingPair{
		{G1: lhs, G2: vc.setup.G2Gen},
		{G1: proofPoint.Neg(), G2: vc.setup.G2Tau},
	})
	vc.verifyCount.Inc()
	return ok, nil
}

func bitReverse128(k int) int {
	r := 0
	for i := 0; i < 7; i++ {
		r = (r << 1) | (k & 1)
		k >>= 1
	}
	return r
}
