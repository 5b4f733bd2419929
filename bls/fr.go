package bls

import (
	"fmt"
	"math/big"
)

// frLimbs is the number of 64-bit limbs needed to hold an Fr element:
// r is a 255-bit prime, so 4 limbs (256 bits) with 1 bit of headroom.
const frLimbs = 4

// frModulus holds r's limbs, little-endian.
var frModulus = []uint64{
	0xffffffff00000001, 0x53bda402fffe5bfe, 0x3339d80809a1d805, 0x73eda753299d7d48,
}

// frInv is -r[0]^-1 mod 2^64, the constant CIOS reduction multiplies by.
const frInv uint64 = 0xfffffffeffffffff

// frR2 is R^2 mod r, where R = 2^256; multiplying a raw residue by frR2
// through montMul converts it into Montgomery form.
var frR2 = []uint64{
	0xc999e990f3f29c6d, 0x2b6cedcb87925c23, 0x05d314967254398f, 0x0748d9d99f59ff11,
}

// frOneRaw is the raw (non-Montgomery) representation of 1. Multiplying a
// Montgomery-form value by it through montMul computes a*R*1*R^-1 = a,
// which is how frFromMontgomery strips Montgomery form off.
var frOneRaw = []uint64{1, 0, 0, 0}

// frOneMont is R mod r, the Montgomery-form representation of 1.
var frOneMont = []uint64{
	0x00000001fffffffe, 0x5884b7fa00034802, 0x998c4fefecbc4ff5, 0x1824b159acc5056f,
}

// Fr is an element of the BLS12-381 scalar field, residues mod r, the
// order of G1 and G2. Evaluations of the blob polynomial, NTT domain
// elements, and Fiat-Shamir challenges all live in Fr.
//
// Internally an Fr holds its value in Montgomery form as 4 little-endian
// 64-bit limbs. Every arithmetic operation reduces to montMul/montAdd/
// montSub, which run the same sequence of limb operations regardless of
// the operand values and select between branches with masks rather than
// ifs, so Add, Sub, Mul, Sqr, Neg and Inv are constant-time with respect
// to the Fr values they're given. Fr values that flow through these
// operations include Fiat-Shamir challenges and NTT domain elements
// derived from untrusted blob data, so this matters even though none of
// them are long-term secrets in the usual key-material sense.
type Fr struct {
	l [frLimbs]uint64
}

func frToMontgomery(raw []uint64) [frLimbs]uint64 {
	var out [frLimbs]uint64
	copy(out[:], montMul(raw, frR2, frModulus, frInv))
	return out
}

func frFromMontgomery(l [frLimbs]uint64) []uint64 {
	return montMul(l[:], frOneRaw, frModulus, frInv)
}

// NewFr reduces v mod r and returns the corresponding Montgomery-form
// element.
func NewFr(v *big.Int) Fr {
	raw := new(big.Int).Mod(v, modulusR)
	return Fr{l: frToMontgomery(limbsFromBigInt(raw, frLimbs))}
}

// NewFrFromUint64 builds an Fr element from a uint64 (always canonical).
func NewFrFromUint64(v uint64) Fr {
	return Fr{l: frToMontgomery([]uint64{v, 0, 0, 0})}
}

// FrZero returns the additive identity.
func FrZero() Fr { return Fr{} }

// FrOne returns the multiplicative identity.
func FrOne() Fr { var f Fr; copy(f.l[:], frOneMont); return f }

// IsZero reports whether a is zero.
func (a Fr) IsZero() bool {
	return a.l[0]|a.l[1]|a.l[2]|a.l[3] == 0
}

// Equal reports whether a and b are the same residue.
func (a Fr) Equal(b Fr) bool { return a.l == b.l }

// BigInt returns a copy of the canonical representative of a.
func (a Fr) BigInt() *big.Int { return bigIntFromLimbs(frFromMontgomery(a.l)) }

// Add returns a + b mod r.
func (a Fr) Add(b Fr) Fr {
	var out Fr
	copy(out.l[:], montAdd(a.l[:], b.l[:], frModulus))
	return out
}

// Sub returns a - b mod r.
func (a Fr) Sub(b Fr) Fr {
	var out Fr
	copy(out.l[:], montSub(a.l[:], b.l[:], frModulus))
	return out
}

// Mul returns a * b mod r.
func (a Fr) Mul(b Fr) Fr {
	var out Fr
	copy(out.l[:], montMul(a.l[:], b.l[:], frModulus, frInv))
	return out
}

// Sqr returns a^2 mod r.
func (a Fr) Sqr() Fr {
	var out Fr
	copy(out.l[:], montMul(a.l[:], a.l[:], frModulus, frInv))
	return out
}

// Neg returns -a mod r.
func (a Fr) Neg() Fr {
	var zero [frLimbs]uint64
	var out Fr
	copy(out.l[:], montSub(zero[:], a.l[:], frModulus))
	return out
}

// frExpPow computes a^e by left-to-right square-and-multiply over the bits
// of e, from the top bit down. When e is a fixed, public exponent (as it
// is for Inv's a^(r-2)), the sequence of squarings and multiplies is identical on
// every call regardless of a, so the branch on each bit of e does not leak
// anything about the secret operand a.
func frExpPow(a Fr, e *big.Int) Fr {
	if e.Sign() == 0 {
		return FrOne()
	}
	result := FrOne()
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Sqr()
		if e.Bit(i) == 1 {
			result = result.Mul(a)
		}
	}
	return result
}

// Inv returns a^-1 mod r, computed as a^(r-2) via Fermat's little theorem.
// a must be nonzero. r-2 is a fixed public constant, so this runs the same
// sequence of squarings and multiplies regardless of a; see frExpPow.
func (a Fr) Inv() Fr { return frExpPow(a, frExpMinus2) }

// frExpMinus2 is r-2, the fixed exponent Inv raises a to.
var frExpMinus2 = new(big.Int).Sub(modulusR, big.NewInt(2))

// Exp returns a^e mod r.
func (a Fr) Exp(e *big.Int) Fr { return frExpPow(a, e) }

// Div returns a / b, i.e. a * b^-1.
func (a Fr) Div(b Fr) Fr { return a.Mul(b.Inv()) }

// BytesPerFr is the big-endian byte width of a canonical Fr element, per
// the EIP-7594 field-element encoding.
const BytesPerFr = 32

// Bytes returns the 32-byte big-endian encoding of a.
func (a Fr) Bytes() [BytesPerFr]byte {
	var out [BytesPerFr]byte
	a.BigInt().FillBytes(out[:])
	return out
}

// FrFromBytes decodes 32 big-endian bytes into an Fr element, rejecting
// values that are not strictly less than r (InvalidScalar in the public
// API's terms).
func FrFromBytes(b []byte) (Fr, bool) {
	if len(b) != BytesPerFr {
		return Fr{}, false
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(modulusR) >= 0 {
		return Fr{}, false
	}
	return NewFr(v), true
}

// FrBatchInverse inverts every element of vals in roughly the cost of a
// single inversion plus O(len(vals)) multiplications, via Montgomery's
// trick: build the running products vals[0], vals[0]*vals[1], ...,
// invert only the final product, then unwind. Every element of vals must
// be nonzero.
func FrBatchInverse(vals []Fr) ([]Fr, error) {
	n := len(vals)
	if n == 0 {
		return nil, nil
	}
	prefix := make([]Fr, n)
	prefix[0] = vals[0]
	for i := 1; i < n; i++ {
		if vals[i].IsZero() {
			return nil, fmt.Errorf("bls: FrBatchInverse: element %d is zero", i)
		}
		prefix[i] = prefix[i-1].Mul(vals[i])
	}
	if vals[0].IsZero() {
		return nil, fmt.Errorf("bls: FrBatchInverse: element 0 is zero")
	}

	inv := prefix[n-1].Inv()
	out := make([]Fr, n)
	for i := n - 1; i > 0; i-- {
		out[i] = inv.Mul(prefix[i-1])
		inv = inv.Mul(vals[i])
	}
	out[0] = inv
	return out, nil
}

// twoTo32 * cofactor = r - 1. The BLS12-381 scalar field supports roots of
// unity up to order 2^32.
var frTwoAdicity = uint(32)

// RootOfUnity returns a primitive n-th root of unity in Fr. n must be a
// power of two dividing 2^32.
func RootOfUnity(n uint64) Fr {
	if n == 0 || n&(n-1) != 0 {
		panic("bls: RootOfUnity: n must be a power of 2")
	}
	rMinus1 := new(big.Int).Sub(modulusR, big.NewInt(1))
	twoToK := new(big.Int).Lsh(big.NewInt(1), frTwoAdicity)
	cofactor := new(big.Int).Div(rMinus1, twoToK)
	// g generates the full 2^32 subgroup.
	g := NewFrFromUint64(5).Exp(cofactor)

	exp := new(big.Int).SetUint64(uint64(1) << frTwoAdicity / n)
	return g.Exp(exp)
}
