package bls

import (
	"errors"
	"math/big"
)

// Compressed point encoding, following the ZCash/IETF serialization used
// throughout the BLS signature and KZG ecosystems:
//
//	bit 7 of byte 0: compression flag, always 1 for this format
//	bit 6 of byte 0: infinity flag
//	bit 5 of byte 0: sort flag, set when y is the lexicographically
//	                 larger root
//	remaining bits:  big-endian x coordinate (Fp for G1, (x.c1, x.c0)
//	                 concatenated for G2)

// ErrInvalidEncoding is returned by the Decompress functions when the
// input is the wrong length, carries unsupported flag bits, or does not
// decode to a valid point.
var ErrInvalidEncoding = errors.New("bls: invalid point encoding")

// CompressedG1Size is the size in bytes of a compressed G1 point.
const CompressedG1Size = 48

// CompressedG2Size is the size in bytes of a compressed G2 point.
const CompressedG2Size = 96

var pMinus1Over2 = func() *big.Int {
	v := new(big.Int).Sub(modulusP, big.NewInt(1))
	return v.Rsh(v, 1)
}()

// CompressG1 serializes p to 48-byte compressed form.
func CompressG1(p G1Jac) [CompressedG1Size]byte {
	var out [CompressedG1Size]byte
	if p.IsInfinity() {
		out[0] = 0xc0
		return out
	}
	x, y := p.Affine()
	xb := x.Bytes()
	copy(out[:], xb[:])
	out[0] |= 0x80
	if y.BigInt().Cmp(pMinus1Over2) > 0 {
		out[0] |= 0x20
	}
	return out
}

// DecompressG1 parses a 48-byte compressed G1 point, validating that it
// lies on the curve and in the r-torsion subgroup.
func DecompressG1(data []byte) (G1Jac, error) {
	if len(data) != CompressedG1Size {
		return G1Jac{}, ErrInvalidEncoding
	}
	buf := make([]byte, CompressedG1Size)
	copy(buf, data)

	flags := buf[0] >> 5
	compressed := (flags >> 2) & 1
	infinity := (flags >> 1) & 1
	sort := flags & 1
	if compressed != 1 {
		return G1Jac{}, ErrInvalidEncoding
	}
	buf[0] &= 0x1f

	if infinity == 1 {
		if sort != 0 {
			return G1Jac{}, ErrInvalidEncoding
		}
		for _, b := range buf {
			if b != 0 {
				return G1Jac{}, ErrInvalidEncoding
			}
		}
		return G1Infinity(), nil
	}

	xVal := new(big.Int).SetBytes(buf)
	if xVal.Cmp(modulusP) >= 0 {
		return G1Jac{}, ErrInvalidEncoding
	}
	x := NewFp(xVal)
	rhs := x.Sqr().Mul(x).Add(NewFp(curveB))
	y, ok := rhs.Sqrt()
	if !ok {
		return G1Jac{}, ErrInvalidEncoding
	}

	yIsLarger := y.BigInt().Cmp(pMinus1Over2) > 0
	if yIsLarger != (sort == 1) {
		y = y.Neg()
	}

	if !G1IsOnCurve(x, y) {
		return G1Jac{}, ErrInvalidEncoding
	}
	p := G1FromAffine(x, y)
	if !p.InSubgroup() {
		return G1Jac{}, ErrInvalidEncoding
	}
	return p, nil
}

// CompressG2 serializes p to 96-byte compressed form. The x coordinate
// is encoded as c1 (most significant 48 bytes) followed by c0.
func CompressG2(p G2Jac) [CompressedG2Size]byte {
	var out [CompressedG2Size]byte
	if p.IsInfinity() {
		out[0] = 0xc0
		return out
	}
	x, y := p.Affine()
	c1b := x.C1().Bytes()
	c0b := x.C0().Bytes()
	copy(out[:CompressedG1Size], c1b[:])
	copy(out[CompressedG1Size:], c0b[:])
	out[0] |= 0x80

	yc1 := y.C1().BigInt()
	yc0 := y.C0().BigInt()
	larger := yc1.Cmp(pMinus1Over2) > 0 || (yc1.Sign() == 0 && yc0.Cmp(pMinus1Over2) > 0)
	if larger {
		out[0] |= 0x20
	}
	return out
}

// DecompressG2 parses a 96-byte compressed G2 point, validating that it
// lies on the twist curve and in the r-torsion subgroup.
func DecompressG2(data []byte) (G2Jac, error) {
	if len(data) != CompressedG2Size {
		return G2Jac{}, ErrInvalidEncoding
	}
	buf := make([]byte, CompressedG2Size)
	copy(buf, data)

	flags := buf[0] >> 5
	compressed := (flags >> 2) & 1
	infinity := (flags >> 1) & 1
	sort := flags & 1
	if compressed != 1 {
		return G2Jac{}, ErrInvalidEncoding
	}
	buf[0] &= 0x1f

	if infinity == 1 {
		if sort != 0 {
			return G2Jac{}, ErrInvalidEncoding
		}
		for _, b := range buf {
			if b != 0 {
				return G2Jac{}, ErrInvalidEncoding
			}
		}
		return G2Infinity(), nil
	}

	xc1 := new(big.Int).SetBytes(buf[:CompressedG1Size])
	xc0 := new(big.Int).SetBytes(buf[CompressedG1Size:])
	if xc1.Cmp(modulusP) >= 0 || xc0.Cmp(modulusP) >= 0 {
		return G2Jac{}, ErrInvalidEncoding
	}
	x := NewFp2(xc0, xc1)

	rhs := x.Sqr().Mul(x).Add(*twistB)
	y, ok := rhs.Sqrt()
	if !ok {
		return G2Jac{}, ErrInvalidEncoding
	}

	yc1v := y.C1().BigInt()
	yc0v := y.C0().BigInt()
	larger := yc1v.Cmp(pMinus1Over2) > 0 || (yc1v.Sign() == 0 && yc0v.Cmp(pMinus1Over2) > 0)
	if larger != (sort == 1) {
		y = y.Neg()
	}

	if !G2IsOnCurve(x, y) {
		return G2Jac{}, ErrInvalidEncoding
	}
	p := G2FromAffine(x, y)
	if !p.InSubgroup() {
		return G2Jac{}, ErrInvalidEncoding
	}
	return p, nil
}
