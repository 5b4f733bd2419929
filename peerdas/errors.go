package peerdas

import "fmt"

// ErrorKind enumerates the error categories the public API can return,
// matching the EIP-7594 error taxonomy.
type ErrorKind int

const (
	// InvalidScalar: scalar bytes not canonical, or >= the scalar field
	// modulus.
	InvalidScalar ErrorKind = iota
	// InvalidPoint: point bytes malformed, not on curve, or not in the
	// prime-order subgroup.
	InvalidPoint
	// InvalidSetup: the trusted setup JSON is malformed or inconsistent.
	InvalidSetup
	// CellIndexOutOfRange: a cell index is >= CellsPerExtBlob.
	CellIndexOutOfRange
	// DuplicateCellIndex: a cell index repeats within one call.
	DuplicateCellIndex
	// NotEnoughCells: recovery was given fewer than the reconstruction
	// threshold.
	NotEnoughCells
	// MismatchedLengths: parallel input arrays to a batch operation
	// differ in length.
	MismatchedLengths
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidScalar:
		return "InvalidScalar"
	case InvalidPoint:
		return "InvalidPoint"
	case InvalidSetup:
		return "InvalidSetup"
	case CellIndexOutOfRange:
		return "CellIndexOutOfRange"
	case DuplicateCellIndex:
		return "DuplicateCellIndex"
	case NotEnoughCells:
		return "NotEnoughCells"
	case MismatchedLengths:
		return "MismatchedLengths"
	default:
		return "Unknown"
	}
}

// Error wraps an ErrorKind with a human-readable detail message. Input
// validation errors always surface as *Error before any cryptographic
// work runs; a failed pairing check is not an Error, it is a false
// return from VerifyCellKZGProofBatch.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
