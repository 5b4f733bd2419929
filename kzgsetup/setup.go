// Package kzgsetup loads and holds the KZG trusted setup (structured
// reference string): the Lagrange-basis G1 commit key, the monomial G1
// SRS used to commit per-cell quotient polynomials, and the G2 opening
// key. A Setup is built once and shared read-only by every
// prover/verifier context that references it.
package kzgsetup

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jtraglia/peerdas-kzg/bls"
	"github.com/jtraglia/peerdas-kzg/log"
	"github.com/jtraglia/peerdas-kzg/poly"
)

var setupLogger = log.Default().For(log.ComponentSetup)

// FieldElementsPerBlob and FieldElementsPerCell mirror the constants in
// package peerdas; they are duplicated here (rather than imported) to
// keep kzgsetup free of a dependency on the top-level API package.
const (
	FieldElementsPerBlob = 4096
	FieldElementsPerCell = 64
)

// Setup is the immutable trusted setup shared by every context built
// against it.
type Setup struct {
	// G1Lagrange holds FieldElementsPerBlob G1 points: the Lagrange
	// basis commit key L_0..L_{n-1}, used to commit a blob given as
	// evaluations.
	G1Lagrange []bls.G1Jac

	// G1Monomial holds FieldElementsPerBlob G1 points tau^0..tau^{n-1}.
	// BuildFK20Table derives the FK20 tables from it, kzg.OpenCoset
	// commits its quotient polynomials (degree < FieldElementsPerBlob -
	// FieldElementsPerCell) against it, and batch verification commits
	// the degree < FieldElementsPerCell interpolant against its first
	// FieldElementsPerCell points.
	G1Monomial []bls.G1Jac

	// G2Gen is [1]_2 and G2Tau is [tau^l]_2, the two G2 points needed by
	// the single-open and batch pairing checks.
	G2Gen bls.G2Jac
	G2Tau bls.G2Jac

	// FK20Table holds, for each residue u in [0, FieldElementsPerCell),
	// the size-2*(FieldElementsPerBlob/FieldElementsPerCell) G1-NTT of
	// the reversed, zero-padded SRS points sampled at every
	// FieldElementsPerCell-th offset starting at u. Package fk20 uses
	// these FieldElementsPerCell tables to turn a polynomial's
	// coefficients into all of its cells' quotient commitments with one
	// NTT pair per residue plus a final fan-out NTT, instead of one
	// polynomial division and MSM per cell.
	FK20Table [][]bls.G1Jac
}

// jsonSetup mirrors the on-disk trusted setup document: hex-encoded
// compressed points under g1_monomial/g1_lagrange/g2_monomial. Missing
// required fields or malformed hex/points fail with InvalidSetup.
type jsonSetup struct {
	G1Monomial []string `json:"g1_monomial"`
	G1Lagrange []string `json:"g1_lagrange"`
	G2Monomial []string `json:"g2_monomial"`
}

// SetupError reports a problem with the trusted setup document.
type SetupError struct{ Msg string }

func (e *SetupError) Error() string { return "kzgsetup: " + e.Msg }

func setupErrorf(format string, args ...any) error {
	return &SetupError{Msg: fmt.Sprintf(format, args...)}
}

// LoadFromJSON parses a trusted setup document and builds a ready-to-use
// Setup, decoding and subgroup-checking every point and converting the
// G1 SRS to Lagrange form when only the monomial form was supplied.
func LoadFromJSON(data []byte) (*Setup, error) {
	start := time.Now()
	var doc jsonSetup
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, setupErrorf("malformed JSON: %v", err)
	}

	if len(doc.G2Monomial) < FieldElementsPerCell+1 {
		return nil, setupErrorf("g2_monomial must contain at least %d points, got %d",
			FieldElementsPerCell+1, len(doc.G2Monomial))
	}
	g2Gen, err := decodeG2(doc.G2Monomial[0])
	if err != nil {
		return nil, setupErrorf("g2_monomial[0]: %v", err)
	}
	g2Tau, err := decodeG2(doc.G2Monomial[FieldElementsPerCell])
	if err != nil {
		return nil, setupErrorf("g2_monomial[%d]: %v", FieldElementsPerCell, err)
	}

	if len(doc.G1Monomial) < FieldElementsPerBlob {
		return nil, setupErrorf("need >= %d points in g1_monomial, got %d", FieldElementsPerBlob, len(doc.G1Monomial))
	}
	g1Monomial, err := decodeG1Slice(doc.G1Monomial[:FieldElementsPerBlob])
	if err != nil {
		return nil, setupErrorf("g1_monomial: %v", err)
	}

	var g1Lagrange []bls.G1Jac
	if len(doc.G1Lagrange) >= FieldElementsPerBlob {
		g1Lagrange, err = decodeG1Slice(doc.G1Lagrange[:FieldElementsPerBlob])
		if err != nil {
			return nil, setupErrorf("g1_lagrange: %v", err)
		}
	} else {
		g1Lagrange = monomialToLagrangeG1(g1Monomial)
	}

	setup := &Setup{
		G1Lagrange: g1Lagrange,
		G1Monomial: g1Monomial,
		G2Gen:      g2Gen,
		G2Tau:      g2Tau,
		FK20Table:  BuildFK20Table(g1Monomial),
	}
	setupLogger.Info("loaded trusted setup",
		"g1_monomial", len(setup.G1Monomial),
		"g1_lagrange", len(setup.G1Lagrange),
		"lagrange_derived", len(doc.G1Lagrange) < FieldElementsPerBlob,
		"elapsed", time.Since(start))
	return setup, nil
}

// blocksPerPoly is the number of FieldElementsPerCell-sized windows a
// degree-<FieldElementsPerBlob polynomial's coefficients split into;
// fk20CosetCount is the number of distinct cosets (and so the NTT size)
// the FK20 construction below fans its quotient commitments out over.
const (
	blocksPerPoly  = FieldElementsPerBlob / FieldElementsPerCell
	fk20CosetCount = 2 * blocksPerPoly
)

// BuildFK20Table precomputes the per-residue G1-NTT tables package fk20
// needs to batch all of a polynomial's cell quotient commitments into a
// handful of NTTs. For residue u, the block-synthetic-division quotient
// for coset H needs the SRS points S_{w*l+u} for w in [0, blocksPerPoly-1)
// at shift w, reversed (so a forward NTT performs the correlation fk20
// needs at proof time) and zero-padded to length fk20CosetCount to keep
// the underlying convolution linear rather than circular.
func BuildFK20Table(g1Monomial []bls.G1Jac) [][]bls.G1Jac {
	table := make([][]bls.G1Jac, FieldElementsPerCell)
	for u := 0; u < FieldElementsPerCell; u++ {
		reversed := make([]bls.G1Jac, fk20CosetCount)
		for w := range reversed {
			reversed[w] = bls.G1Infinity()
		}
		for w := 0; w < blocksPerPoly-1; w++ {
			reversed[w] = g1Monomial[(blocksPerPoly-2-w)*FieldElementsPerCell+u]
		}
		table[u] = poly.G1NTT(reversed)
	}
	return table
}

// monomialToLagrangeG1 converts an n-point monomial-basis G1 SRS into
// Lagrange form. The i-th Lagrange basis polynomial L_i is, by
// definition, the unique degree-<n polynomial with L_i(w^k) = delta_ik,
// so its coefficient vector is the inverse DFT of the i-th standard
// basis vector; summing those coefficients against the monomial SRS is
// exactly the inverse NTT of the SRS itself, taken over G1 points
// rather than field elements.
func monomialToLagrangeG1(monomial []bls.G1Jac) []bls.G1Jac {
	return poly.G1InverseNTT(monomial)
}

func decodeG1(hexStr string) (bls.G1Jac, error) {
	b, err := decodeHexPoint(hexStr, bls.CompressedG1Size)
	if err != nil {
		return bls.G1Jac{}, err
	}
	return bls.DecompressG1(b)
}

func decodeG2(hexStr string) (bls.G2Jac, error) {
	b, err := decodeHexPoint(hexStr, bls.CompressedG2Size)
	if err != nil {
		return bls.G2Jac{}, err
	}
	return bls.DecompressG2(b)
}

func decodeHexPoint(hexStr string, size int) ([]byte, error) {
	s := hexStr
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("bad hex: %w", err)
	}
	if len(b) != size {
		return nil, fmt.Errorf("expected %d bytes, got %d", size, len(b))
	}
	return b, nil
}

func decodeG1Slice(hexes []string) ([]bls.G1Jac, error) {
	out := make([]bls.G1Jac, len(hexes))
	for i, h := range hexes {
		p, err := decodeG1(h)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}
