package bls

import "math/big"

// Fp2 is an element of F_p^2 = F_p[u]/(u^2+1), represented as c0 + c1*u.
// It is the coordinate field for G2 and the base of the Fp6/Fp12 tower
// used by the pairing.
type Fp2 struct {
	c0, c1 *big.Int
}

// NewFp2 builds c0 + c1*u from base-field big.Ints, reducing each mod p.
func NewFp2(c0, c1 *big.Int) Fp2 {
	return Fp2{
		c0: new(big.Int).Mod(c0, modulusP),
		c1: new(big.Int).Mod(c1, modulusP),
	}
}

func fp2FromFp(c0, c1 Fp) Fp2 {
	return Fp2{c0: c0.BigInt(), c1: c1.BigInt()}
}

// Fp2Zero returns the additive identity.
func Fp2Zero() Fp2 { return Fp2{c0: new(big.Int), c1: new(big.Int)} }

// Fp2One returns the multiplicative identity.
func Fp2One() Fp2 { return Fp2{c0: big.NewInt(1), c1: new(big.Int)} }

// C0 returns the real component as an Fp element.
func (e Fp2) C0() Fp { return NewFp(e.c0) }

// C1 returns the u-component as an Fp element.
func (e Fp2) C1() Fp { return NewFp(e.c1) }

// IsZero reports whether e is zero.
func (e Fp2) IsZero() bool { return e.c0.Sign() == 0 && e.c1.Sign() == 0 }

// Equal reports whether e and f represent the same element.
func (e Fp2) Equal(f Fp2) bool {
	a0 := new(big.Int).Mod(e.c0, modulusP)
	a1 := new(big.Int).Mod(e.c1, modulusP)
	b0 := new(big.Int).Mod(f.c0, modulusP)
	b1 := new(big.Int).Mod(f.c1, modulusP)
	return a0.Cmp(b0) == 0 && a1.Cmp(b1) == 0
}

func fpAdd(a, b *big.Int) *big.Int { r := new(big.Int).Add(a, b); return r.Mod(r, modulusP) }
func fpSub(a, b *big.Int) *big.Int { r := new(big.Int).Sub(a, b); return r.Mod(r, modulusP) }
func fpMul(a, b *big.Int) *big.Int { r := new(big.Int).Mul(a, b); return r.Mod(r, modulusP) }
func fpNeg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(modulusP, new(big.Int).Mod(a, modulusP))
}

// Add returns e + f.
func (e Fp2) Add(f Fp2) Fp2 { return Fp2{c0: fpAdd(e.c0, f.c0), c1: fpAdd(e.c1, f.c1)} }

// Sub returns e - f.
func (e Fp2) Sub(f Fp2) Fp2 { return Fp2{c0: fpSub(e.c0, f.c0), c1: fpSub(e.c1, f.c1)} }

// Mul returns e * f using Karatsuba: (a0+a1 u)(b0+b1 u) = (a0 b0 - a1 b1) + (a0 b1 + a1 b0) u.
func (e Fp2) Mul(f Fp2) Fp2 {
	v0 := fpMul(e.c0, f.c0)
	v1 := fpMul(e.c1, f.c1)
	return Fp2{
		c0: fpSub(v0, v1),
		c1: fpSub(fpMul(fpAdd(e.c0, e.c1), fpAdd(f.c0, f.c1)), fpAdd(v0, v1)),
	}
}

// Sqr returns e^2.
func (e Fp2) Sqr() Fp2 {
	ab := fpMul(e.c0, e.c1)
	return Fp2{
		c0: fpMul(fpAdd(e.c0, e.c1), fpSub(e.c0, e.c1)),
		c1: fpAdd(ab, ab),
	}
}

// Neg returns -e.
func (e Fp2) Neg() Fp2 { return Fp2{c0: fpNeg(e.c0), c1: fpNeg(e.c1)} }

// Conj returns the Frobenius conjugate c0 - c1*u.
func (e Fp2) Conj() Fp2 { return Fp2{c0: new(big.Int).Set(e.c0), c1: fpNeg(e.c1)} }

// Inv returns e^-1. e must be nonzero.
func (e Fp2) Inv() Fp2 {
	t := fpAdd(fpMul(e.c0, e.c0), fpMul(e.c1, e.c1))
	inv := new(big.Int).ModInverse(t, modulusP)
	return Fp2{
		c0: fpMul(e.c0, inv),
		c1: fpMul(fpNeg(e.c1), inv),
	}
}

// MulScalar returns e * s where s is a base-field element.
func (e Fp2) MulScalar(s Fp) Fp2 {
	sv := s.BigInt()
	return Fp2{c0: fpMul(e.c0, sv), c1: fpMul(e.c1, sv)}
}

// MulByNonResidue multiplies e by the Fp6 non-residue (1+u):
// (1+u)(a+bu) = (a-b) + (a+b)u.
func (e Fp2) MulByNonResidue() Fp2 {
	return Fp2{c0: fpSub(e.c0, e.c1), c1: fpAdd(e.c0, e.c1)}
}

// MulByU multiplies e by u: u(c0+c1 u) = -c1 + c0 u (u^2 = -1).
func (e Fp2) MulByU() Fp2 {
	return Fp2{c0: fpNeg(e.c1), c1: new(big.Int).Set(e.c0)}
}

// Sgn0 returns sign_0(e) = sgn0(c0) | (c0 == 0 & sgn0(c1)), per the
// hash-to-curve convention.
func (e Fp2) Sgn0() int {
	c0 := NewFp(e.c0)
	c1 := NewFp(e.c1)
	zero0 := 0
	if new(big.Int).Mod(e.c0, modulusP).Sign() == 0 {
		zero0 = 1
	}
	return c0.Sgn0() | (zero0 & c1.Sgn0())
}

// IsSquare reports whether e is a quadratic residue in Fp2. Since p = 3
// mod 4, e is a QR iff its norm c0^2+c1^2 is a QR in Fp.
func (e Fp2) IsSquare() bool {
	if e.IsZero() {
		return true
	}
	norm := NewFp(fpAdd(fpMul(e.c0, e.c0), fpMul(e.c1, e.c1)))
	return norm.IsSquare()
}

// Sqrt returns a square root of e in Fp2, or (zero, false) if none exists.
func (e Fp2) Sqrt() (Fp2, bool) {
	if e.IsZero() {
		return Fp2Zero(), true
	}
	norm := NewFp(fpAdd(fpMul(e.c0, e.c0), fpMul(e.c1, e.c1)))
	if !norm.IsSquare() {
		return Fp2{}, false
	}
	sqrtNorm, ok := norm.Sqrt()
	if !ok {
		return Fp2{}, false
	}
	twoInv := NewFp(big.NewInt(2)).Inv()
	ec0 := NewFp(e.c0)
	ec1 := NewFp(e.c1)

	try := func(x0 Fp) (Fp2, bool) {
		if !x0.IsSquare() {
			return Fp2{}, false
		}
		sqrtX0, ok := x0.Sqrt()
		if !ok || sqrtX0.IsZero() {
			return Fp2{}, false
		}
		x1 := ec1.Mul(sqrtX0.Add(sqrtX0).Inv())
		cand := fp2FromFp(sqrtX0, x1)
		if cand.Sqr().Equal(e) {
			return cand, true
		}
		return Fp2{}, false
	}

	x0plus := ec0.Add(sqrtNorm).Mul(twoInv)
	if r, ok := try(x0plus); ok {
		return r, true
	}
	x0minus := ec0.Sub(sqrtNorm).Mul(twoInv)
	if r, ok := try(x0minus); ok {
		return r, true
	}
	return Fp2{}, false
}
