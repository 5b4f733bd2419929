package peerdas

import (
	"errors"
	"math/big"
	"testing"

	"github.com/jtraglia/peerdas-kzg/bls"
	"github.com/jtraglia/peerdas-kzg/kzgsetup"
	"github.com/jtraglia/peerdas-kzg/poly"
)

// toySetup builds a trusted setup directly from a fixed secret tau,
// bypassing JSON loading and the real ceremony, for use by tests that
// only need an internally consistent SRS.
func toySetup(t *testing.T) *kzgsetup.Setup {
	t.Helper()
	tau := bls.NewFrFromUint64(424242)

	g1 := bls.G1Generator()
	g2 := bls.G2Generator()

	monomial := make([]bls.G1Jac, extendedDomainSize)
	power := bls.FrOne()
	for i := 0; i < extendedDomainSize; i++ {
		monomial[i] = g1.ScalarMulFr(power)
		power = power.Mul(tau)
	}

	lagrange := poly.G1InverseNTT(monomial[:FieldElementsPerBlob])

	tauL := tau.Exp(big.NewInt(int64(FieldElementsPerCell)))

	return &kzgsetup.Setup{
		G1Lagrange: lagrange,
		G1Monomial: monomial,
		G2Gen:      g2,
		G2Tau:      g2.ScalarMulFr(tauL),
		FK20Table:  kzgsetup.BuildFK20Table(monomial[:FieldElementsPerBlob]),
	}
}

func sampleBlob() *Blob {
	var b Blob
	for i := 0; i < FieldElementsPerBlob; i++ {
		v := bls.NewFrFromUint64(uint64(i*7 + 11))
		bytes := v.Bytes()
		copy(b[i*BytesPerFieldElement:(i+1)*BytesPerFieldElement], bytes[:])
	}
	return &b
}

func TestBlobToKZGCommitmentMatchesCellCommitment(t *testing.T) {
	setup := toySetup(t)
	pc := NewProverContext(setup)

	blob := sampleBlob()
	commitment, err := pc.BlobToKZGCommitment(blob)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}

	cells, proofs, err := pc.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	vc := NewVerifierContext(setup)
	commitments := make([]*Commitment, CellsPerExtBlob)
	cellIndices := make([]uint64, CellsPerExtBlob)
	cellPtrs := make([]*Cell, CellsPerExtBlob)
	proofPtrs := make([]*Proof, CellsPerExtBlob)
	for k := 0; k < CellsPerExtBlob; k++ {
		commitments[k] = &commitment
		cellIndices[k] = uint64(k)
		cellPtrs[k] = &cells[k]
		proofPtrs[k] = &proofs[k]
	}

	ok, err := vc.VerifyCellKZGProofBatch(commitments, cellIndices, cellPtrs, proofPtrs)
	if err != nil {
		t.Fatalf("VerifyCellKZGProofBatch: %v", err)
	}
	if !ok {
		t.Fatal("batch verification of a freshly computed blob's cells should succeed")
	}
}

func TestVerifyCellKZGProofBatchRejectsTamperedCell(t *testing.T) {
	setup := toySetup(t)
	pc := NewProverContext(setup)

	blob := sampleBlob()
	commitment, err := pc.BlobToKZGCommitment(blob)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}
	cells, proofs, err := pc.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	tampered := cells[0]
	tampered[BytesPerFieldElement-1] ^= 0x01

	vc := NewVerifierContext(setup)
	ok, err := vc.VerifyCellKZGProofBatch(
		[]*Commitment{&commitment},
		[]uint64{0},
		[]*Cell{&tampered},
		[]*Proof{&proofs[0]},
	)
	if err != nil {
		t.Fatalf("VerifyCellKZGProofBatch: %v", err)
	}
	if ok {
		t.Fatal("batch verification should reject a tampered cell")
	}
}

func TestRecoverCellsAndKZGProofsFromHalf(t *testing.T) {
	setup := toySetup(t)
	pc := NewProverContext(setup)

	blob := sampleBlob()
	cells, proofs, err := pc.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	vc := NewVerifierContext(setup)

	cellIDs := make([]uint64, reconstructionThreshold)
	partial := make([]*Cell, reconstructionThreshold)
	for k := 0; k < reconstructionThreshold; k++ {
		cellIDs[k] = uint64(2 * k)
		partial[k] = &cells[2*k]
	}

	recoveredCells, recoveredProofs, err := vc.RecoverCellsAndKZGProofs(cellIDs, partial)
	if err != nil {
		t.Fatalf("RecoverCellsAndKZGProofs: %v", err)
	}

	for k := 0; k < CellsPerExtBlob; k++ {
		if recoveredCells[k] != cells[k] {
			t.Fatalf("recovered cell %d differs from original", k)
		}
		if recoveredProofs[k] != proofs[k] {
			t.Fatalf("recovered proof %d differs from original", k)
		}
	}
}

func TestVerifyCellKZGProofBatchRejectsDuplicateCellIndex(t *testing.T) {
	setup := toySetup(t)
	pc := NewProverContext(setup)

	blob := sampleBlob()
	commitment, err := pc.BlobToKZGCommitment(blob)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}
	cells, proofs, err := pc.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	vc := NewVerifierContext(setup)
	_, err = vc.VerifyCellKZGProofBatch(
		[]*Commitment{&commitment, &commitment, &commitment},
		[]uint64{0, 0, 1},
		[]*Cell{&cells[0], &cells[0], &cells[1]},
		[]*Proof{&proofs[0], &proofs[0], &proofs[1]},
	)
	if err == nil {
		t.Fatal("expected an error for a repeated (commitment, cell index) pair")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if perr.Kind != DuplicateCellIndex {
		t.Fatalf("Kind = %v, want DuplicateCellIndex", perr.Kind)
	}
}

func TestRecoverCellsAndKZGProofsRejectsTooFew(t *testing.T) {
	setup := toySetup(t)
	vc := NewVerifierContext(setup)

	cellIDs := []uint64{0, 1, 2}
	var zero Cell
	partial := []*Cell{&zero, &zero, &zero}

	if _, _, err := vc.RecoverCellsAndKZGProofs(cellIDs, partial); err == nil {
		t.Fatal("expected an error for too few cells")
	}
}

func TestLoadSetupRejectsMalformedDocument(t *testing.T) {
	_, err := LoadSetup([]byte("not json"))
	if err == nil {
		t.Fatal("expected an error for malformed setup JSON")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if perr.Kind != InvalidSetup {
		t.Fatalf("Kind = %v, want InvalidSetup", perr.Kind)
	}
}

func TestLoadSetupRejectsUndersizedPointLists(t *testing.T) {
	_, err := LoadSetup([]byte(`{"g1_monomial":[],"g1_lagrange":[],"g2_monomial":[]}`))
	if err == nil {
		t.Fatal("expected an error for an undersized setup document")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if perr.Kind != InvalidSetup {
		t.Fatalf("Kind = %v, want InvalidSetup", perr.Kind)
	}
}

func TestBlobToKZGCommitmentRejectsInvalidScalar(t *testing.T) {
	setup := toySetup(t)
	pc := NewProverContext(setup)

	blob := sampleBlob()
	// r's big-endian encoding starts 0x73ed, so 32 bytes of 0xFF exceed
	// it; write that out-of-range value into the first field element.
	for i := range blob[:BytesPerFieldElement] {
		blob[i] = 0xFF
	}

	if _, err := pc.BlobToKZGCommitment(blob); err == nil {
		t.Fatal("expected InvalidScalar error")
	}
}
