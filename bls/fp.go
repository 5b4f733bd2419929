package bls

import (
	"fmt"
	"math/big"
)

// fpLimbs is the number of 64-bit limbs needed to hold an Fp element:
// p is a 381-bit prime, so 6 limbs (384 bits) with 3 bits of headroom.
const fpLimbs = 6

// fpModulus holds p's limbs, little-endian.
var fpModulus = []uint64{
	0xb9feffffffffaaab, 0x1eabfffeb153ffff, 0x6730d2a0f6b0f624,
	0x64774b84f38512bf, 0x4b1ba7b6434bacd7, 0x1a0111ea397fe69a,
}

// fpInv is -p[0]^-1 mod 2^64, the constant CIOS reduction multiplies by.
const fpInv uint64 = 0x89f3fffcfffcfffd

// fpR2 is R^2 mod p, where R = 2^384; multiplying a raw residue by fpR2
// through montMul converts it into Montgomery form.
var fpR2 = []uint64{
	0xf4df1f341c341746, 0x0a76e6a609d104f1, 0x8de5476c4c95b6d5,
	0x67eb88a9939d83c0, 0x9a793e85b519952d, 0x11988fe592cae3aa,
}

// fpOneRaw is the raw (non-Montgomery) representation of 1.
var fpOneRaw = []uint64{1, 0, 0, 0, 0, 0}

// fpOneMont is R mod p, the Montgomery-form representation of 1.
var fpOneMont = []uint64{
	0x760900000002fffd, 0xebf4000bc40c0002, 0x5f48985753c758ba,
	0x77ce585370525745, 0x5c071a97a256ec6d, 0x15f65ec3fa80e493,
}

// Fp is an element of the BLS12-381 base field, residues mod p. The zero
// value is the additive identity.
//
// Like Fr, an Fp holds its value in Montgomery form as little-endian
// 64-bit limbs, and every operation reduces to the same constant-time
// montMul/montAdd/montSub primitives, so Fp arithmetic carries the same
// constant-time-with-respect-to-its-operands guarantee Fr does. Earlier
// revisions of this package argued Fp never carries a secret and could
// therefore use variable-time big.Int arithmetic; that argument is no
// longer needed now that Fp and Fr share the same Montgomery core, and is
// recorded as a resolved Open Question in DESIGN.md rather than repeated
// here.
type Fp struct {
	l [fpLimbs]uint64
}

func fpToMontgomery(raw []uint64) [fpLimbs]uint64 {
	var out [fpLimbs]uint64
	copy(out[:], montMul(raw, fpR2, fpModulus, fpInv))
	return out
}

func fpFromMontgomery(l [fpLimbs]uint64) []uint64 {
	return montMul(l[:], fpOneRaw, fpModulus, fpInv)
}

// NewFp reduces v mod p and returns the corresponding field element.
func NewFp(v *big.Int) Fp {
	raw := new(big.Int).Mod(v, modulusP)
	return Fp{l: fpToMontgomery(limbsFromBigInt(raw, fpLimbs))}
}

// FpZero returns the additive identity.
func FpZero() Fp { return Fp{} }

// FpOne returns the multiplicative identity.
func FpOne() Fp { var f Fp; copy(f.l[:], fpOneMont); return f }

// IsZero reports whether a is zero.
func (a Fp) IsZero() bool {
	var acc uint64
	for _, w := range a.l {
		acc |= w
	}
	return acc == 0
}

// Equal reports whether a and b represent the same residue.
func (a Fp) Equal(b Fp) bool { return a.l == b.l }

// BigInt returns a copy of the canonical representative of a, in [0, p).
func (a Fp) BigInt() *big.Int { return bigIntFromLimbs(fpFromMontgomery(a.l)) }

// Add returns a + b mod p.
func (a Fp) Add(b Fp) Fp {
	var out Fp
	copy(out.l[:], montAdd(a.l[:], b.l[:], fpModulus))
	return out
}

// Sub returns a - b mod p.
func (a Fp) Sub(b Fp) Fp {
	var out Fp
	copy(out.l[:], montSub(a.l[:], b.l[:], fpModulus))
	return out
}

// Mul returns a * b mod p.
func (a Fp) Mul(b Fp) Fp {
	var out Fp
	copy(out.l[:], montMul(a.l[:], b.l[:], fpModulus, fpInv))
	return out
}

// Sqr returns a^2 mod p.
func (a Fp) Sqr() Fp {
	var out Fp
	copy(out.l[:], montMul(a.l[:], a.l[:], fpModulus, fpInv))
	return out
}

// Neg returns -a mod p.
func (a Fp) Neg() Fp {
	var zero [fpLimbs]uint64
	var out Fp
	copy(out.l[:], montSub(zero[:], a.l[:], fpModulus))
	return out
}

// fpExpPow computes a^e by left-to-right square-and-multiply, for a fixed
// public exponent e (Inv's p-2, Sqrt's (p+1)/4, IsSquare's (p-1)/2): the
// same sequence of squarings and multiplies runs on every call regardless
// of a, so branching on e's bits does not leak anything about a.
func fpExpPow(a Fp, e *big.Int) Fp {
	if e.Sign() == 0 {
		return FpOne()
	}
	result := FpOne()
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = result.Sqr()
		if e.Bit(i) == 1 {
			result = result.Mul(a)
		}
	}
	return result
}

// fpExpMinus2 is p-2, the fixed exponent Inv raises a to.
var fpExpMinus2 = new(big.Int).Sub(modulusP, big.NewInt(2))

// Inv returns a^-1 mod p, computed as a^(p-2) via Fermat's little theorem.
// a must be nonzero.
func (a Fp) Inv() Fp { return fpExpPow(a, fpExpMinus2) }

// Exp returns a^e mod p.
func (a Fp) Exp(e *big.Int) Fp { return fpExpPow(a, e) }

// MulScalar returns a * s where s is reduced mod p first.
func (a Fp) MulScalar(s *big.Int) Fp { return a.Mul(NewFp(s)) }

// fpSqrtExp is (p+1)/4, used by Sqrt since p = 3 mod 4.
var fpSqrtExp = func() *big.Int {
	e := new(big.Int).Add(modulusP, big.NewInt(1))
	return e.Rsh(e, 2)
}()

// Sqrt returns a square root of a mod p, or (zero, false) if a is not a
// quadratic residue. Since p = 3 mod 4, sqrt(a) = a^((p+1)/4).
func (a Fp) Sqrt() (Fp, bool) {
	if a.IsZero() {
		return FpZero(), true
	}
	r := fpExpPow(a, fpSqrtExp)
	if !r.Sqr().Equal(a) {
		return Fp{}, false
	}
	return r, true
}

// fpEulerExp is (p-1)/2, used by IsSquare's Euler's-criterion test.
var fpEulerExp = func() *big.Int {
	e := new(big.Int).Sub(modulusP, big.NewInt(1))
	return e.Rsh(e, 1)
}()

// IsSquare reports whether a is a quadratic residue mod p, via Euler's
// criterion a^((p-1)/2) == 1.
func (a Fp) IsSquare() bool {
	if a.IsZero() {
		return true
	}
	return fpExpPow(a, fpEulerExp).Equal(FpOne())
}

// Sgn0 returns the "sign" of a per the hash-to-curve convention: the
// least-significant bit of its canonical representative.
func (a Fp) Sgn0() int { return int(fpFromMontgomery(a.l)[0] & 1) }

// bytesPerFp is the big-endian byte width of a canonical Fp residue.
const bytesPerFp = 48

// Bytes returns the 48-byte big-endian encoding of a.
func (a Fp) Bytes() [bytesPerFp]byte {
	var out [bytesPerFp]byte
	a.BigInt().FillBytes(out[:])
	return out
}

// FpFromBytes decodes a big-endian byte slice into an Fp element, rejecting
// inputs of the wrong length or values that are not strictly less than p.
func FpFromBytes(b []byte) (Fp, bool) {
	if len(b) != bytesPerFp {
		return Fp{}, false
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(modulusP) >= 0 {
		return Fp{}, false
	}
	return NewFp(v), true
}

// FpBatchInverse inverts every element of vals via Montgomery's trick: one
// modular inversion of the running product of all elements, then an
// unwind pass of O(len(vals)) multiplications, rather than len(vals)
// independent (and far more expensive) inversions. Every element of vals
// must be nonzero. Grounded on the same prefix-product/unwind structure
// as FrBatchInverse.
func FpBatchInverse(vals []Fp) ([]Fp, error) {
	n := len(vals)
	if n == 0 {
		return nil, nil
	}
	prefix := make([]Fp, n)
	prefix[0] = vals[0]
	for i := 1; i < n; i++ {
		if vals[i].IsZero() {
			return nil, fmt.Errorf("bls: FpBatchInverse: element %d is zero", i)
		}
		prefix[i] = prefix[i-1].Mul(vals[i])
	}
	if vals[0].IsZero() {
		return nil, fmt.Errorf("bls: FpBatchInverse: element 0 is zero")
	}

	inv := prefix[n-1].Inv()
	out := make([]Fp, n)
	for i := n - 1; i > 0; i-- {
		out[i] = inv.Mul(prefix[i-1])
		inv = inv.Mul(vals[i])
	}
	out[0] = inv
	return out, nil
}
