package peerdas

import (
	"github.com/jtraglia/peerdas-kzg/bls"
	"github.com/jtraglia/peerdas-kzg/fk20"
	"github.com/jtraglia/peerdas-kzg/kzg"
	"github.com/jtraglia/peerdas-kzg/metrics"
	"github.com/jtraglia/peerdas-kzg/poly"
)

// BlobToKZGCommitment deserializes a blob's 4096 field elements and
// commits them against the Lagrange basis commit key.
func (pc *ProverContext) BlobToKZGCommitment(blob *Blob) (Commitment, error) {
	timer := metrics.NewTimer(pc.commitTiming)
	defer timer.Stop()

	vals, err := blobToFrSlice(blob)
	if err != nil {
		return Commitment{}, err
	}
	c := kzg.Commit(pc.setup.G1Lagrange, vals)
	pc.commitCount.Inc()
	return Commitment(bls.CompressG1(c)), nil
}

// ComputeCellsAndKZGProofs deserializes a blob, recovers its monomial
// coefficients, and produces all CellsPerExtBlob coset evaluations
// (cells) and their opening proofs.
func (pc *ProverContext) ComputeCellsAndKZGProofs(blob *Blob) ([CellsPerExtBlob]Cell, [CellsPerExtBlob]Proof, error) {
	timer := metrics.NewTimer(pc.cellsTiming)
	defer timer.Stop()

	var cells [CellsPerExtBlob]Cell
	var proofs [CellsPerExtBlob]Proof

	vals, err := blobToFrSlice(blob)
	if err != nil {
		return cells, proofs, err
	}

	coeffs := poly.InverseNTT(vals)

	cellValues, cellProofs := fk20.ComputeCells(pc.setup, coeffs)
	for k := 0; k < CellsPerExtBlob; k++ {
		cells[k] = frSliceToCell(cellValues[k])
		proofs[k] = Proof(bls.CompressG1(cellProofs[k]))
	}

	pc.cellsCount.Inc()
	return cells, proofs, nil
}

func blobToFrSlice(blob *Blob) ([]bls.Fr, error) {
	vals := make([]bls.Fr, FieldElementsPerBlob)
	for i := 0; i < FieldElementsPerBlob; i++ {
		off := i * BytesPerFieldElement
		v, ok := bls.FrFromBytes(blob[off : off+BytesPerFieldElement])
		if !ok {
			return nil, newError(InvalidScalar, "blob field element %d is not canonical", i)
		}
		vals[i] = v
	}
	return vals, nil
}

func frSliceToCell(vals []bls.Fr) Cell {
	var c Cell
	for i, v := range vals {
		b := v.Bytes()
		copy(c[i*BytesPerFieldElement:(i+1)*BytesPerFieldElement], b[:])
	}
	return c
}

func cellToFrSlice(c *Cell) ([]bls.Fr, error) {
	vals := make([]bls.Fr, FieldElementsPerCell)
	for i := 0; i < FieldElementsPerCell; i++ {
		off := i * BytesPerFieldElement
		v, ok := bls.FrFromBytes(c[off : off+BytesPerFieldElement])
		if !ok {
			return nil, newError(InvalidScalar, "cell field element %d is not canonical", i)
		}
		vals[i] = v
	}
	return vals, nil
}
