package fk20

import (
	"math/big"
	"testing"

	"github.com/jtraglia/peerdas-kzg/bls"
	"github.com/jtraglia/peerdas-kzg/kzg"
	"github.com/jtraglia/peerdas-kzg/kzgsetup"
)

func toySetup(t *testing.T) *kzgsetup.Setup {
	t.Helper()
	tau := bls.NewFrFromUint64(987654321)

	g1 := bls.G1Generator()
	g2 := bls.G2Generator()

	monomial := make([]bls.G1Jac, FieldElementsPerBlob)
	power := bls.FrOne()
	for i := 0; i < FieldElementsPerBlob; i++ {
		monomial[i] = g1.ScalarMulFr(power)
		power = power.Mul(tau)
	}

	tauL := tau.Exp(big.NewInt(int64(FieldElementsPerCell)))

	return &kzgsetup.Setup{
		G1Monomial: monomial,
		G2Gen:      g2,
		G2Tau:      g2.ScalarMulFr(tauL),
		FK20Table:  kzgsetup.BuildFK20Table(monomial),
	}
}

func TestComputeCellsProducesVerifiableProofs(t *testing.T) {
	setup := toySetup(t)

	coeffs := make([]bls.Fr, FieldElementsPerBlob)
	for i := range coeffs {
		coeffs[i] = bls.NewFrFromUint64(uint64(2*i + 3))
	}
	commitment := kzg.CommitMonomial(setup.G1Monomial, coeffs)

	cells, proofs := ComputeCells(setup, coeffs)
	if len(cells) != CellsPerExtBlob {
		t.Fatalf("expected %d cells, got %d", CellsPerExtBlob, len(cells))
	}

	for k := 0; k < CellsPerExtBlob; k++ {
		h := CosetOffset(extendedDomainSize, k)
		if !kzg.VerifyCoset(setup, commitment, h, cells[k], proofs[k]) {
			t.Fatalf("cell %d: proof failed to verify", k)
		}
	}
}

func TestCosetOffsetIsBitReversed(t *testing.T) {
	h0 := CosetOffset(extendedDomainSize, 0)
	if !h0.Equal(bls.FrOne()) {
		t.Fatalf("coset offset for index 0 should be 1, got %v", h0)
	}
	// bit_reverse(1) over log2(CellsPerExtBlob) bits is CellsPerExtBlob/2.
	h1 := CosetOffset(extendedDomainSize, 1)
	want := bls.RootOfUnity(extendedDomainSize).Exp(big.NewInt(CellsPerExtBlob / 2))
	if !h1.Equal(want) {
		t.Fatalf("coset offset for index 1 should be omega_ext^%d, got %v", CellsPerExtBlob/2, h1)
	}
}
