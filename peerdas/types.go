// Package peerdas implements the EIP-7594 PeerDAS cryptographic API:
// turning a blob into a KZG commitment and a set of erasure-coded,
// individually provable cells, recovering a full blob from a partial
// set of cells, and batch-verifying cells against their commitments.
//
// The package ties together bls (field/curve/pairing arithmetic), poly
// (NTT and polynomial manipulation), erasure (Reed-Solomon extension and
// recovery), kzgsetup (trusted setup loading), fk20 (multi-open proof
// generation), and transcript (Fiat-Shamir challenge derivation) into
// the four operations a consensus client calls directly.
package peerdas

// Compile-time layout constants, fixed by the EIP-7594 wire format.
const (
	BytesPerFieldElement = 32
	FieldElementsPerBlob = 4096
	FieldElementsPerCell = 64
	CellsPerExtBlob      = 128
	BytesPerCell         = FieldElementsPerCell * BytesPerFieldElement
	BytesPerCommitment   = 48
	BytesPerProof        = 48

	extendedDomainSize = 2 * FieldElementsPerBlob
)

// Blob is the raw scalar encoding of a blob: FieldElementsPerBlob
// field elements, each BytesPerFieldElement big-endian bytes.
type Blob [FieldElementsPerBlob * BytesPerFieldElement]byte

// Cell is the raw scalar encoding of one coset of the extended blob
// polynomial: FieldElementsPerCell field elements.
type Cell [BytesPerCell]byte

// Commitment is a compressed G1 point binding a polynomial.
type Commitment [BytesPerCommitment]byte

// Proof is a compressed G1 point binding one cell to its commitment.
type Proof [BytesPerProof]byte
