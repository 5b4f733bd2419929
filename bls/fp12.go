package bls

import "math/big"

// Fp6 = Fp2[v]/(v^3 - (1+u)) and Fp12 = Fp6[w]/(w^2 - v) form the tower
// extension used to represent the pairing target group GT. Values here are
// public pairing intermediates, never secret scalars.

// Fp6 is an element c0 + c1*v + c2*v^2 of F_p^6.
type Fp6 struct {
	c0, c1, c2 Fp2
}

// NewFp6 builds an Fp6 element from its three Fp2 coefficients.
func NewFp6(c0, c1, c2 Fp2) Fp6 { return Fp6{c0: c0, c1: c1, c2: c2} }

// Fp6Zero returns the additive identity.
func Fp6Zero() Fp6 { return Fp6{c0: Fp2Zero(), c1: Fp2Zero(), c2: Fp2Zero()} }

// Fp6One returns the multiplicative identity.
func Fp6One() Fp6 { return Fp6{c0: Fp2One(), c1: Fp2Zero(), c2: Fp2Zero()} }

func (a Fp6) add(b Fp6) Fp6 {
	return Fp6{c0: a.c0.Add(b.c0), c1: a.c1.Add(b.c1), c2: a.c2.Add(b.c2)}
}

func (a Fp6) sub(b Fp6) Fp6 {
	return Fp6{c0: a.c0.Sub(b.c0), c1: a.c1.Sub(b.c1), c2: a.c2.Sub(b.c2)}
}

func (a Fp6) neg() Fp6 {
	return Fp6{c0: a.c0.Neg(), c1: a.c1.Neg(), c2: a.c2.Neg()}
}

// mul multiplies two Fp6 elements via Karatsuba over the Fp2 coefficients.
func (a Fp6) mul(b Fp6) Fp6 {
	t0 := a.c0.Mul(b.c0)
	t1 := a.c1.Mul(b.c1)
	t2 := a.c2.Mul(b.c2)

	c0 := t0.Add(a.c1.Add(a.c2).Mul(b.c1.Add(b.c2)).Sub(t1.Add(t2)).MulByNonResidue())
	c1 := a.c0.Add(a.c1).Mul(b.c0.Add(b.c1)).Sub(t0.Add(t1)).Add(t2.MulByNonResidue())
	c2 := a.c0.Add(a.c2).Mul(b.c0.Add(b.c2)).Sub(t0.Add(t2)).Add(t1)

	return Fp6{c0: c0, c1: c1, c2: c2}
}

func (a Fp6) sqr() Fp6 {
	s0 := a.c0.Sqr()
	ab := a.c0.Mul(a.c1)
	s1 := ab.Add(ab)
	s2 := a.c0.Add(a.c2).Sub(a.c1).Sqr()
	bc := a.c1.Mul(a.c2)
	s3 := bc.Add(bc)
	s4 := a.c2.Sqr()

	c0 := s0.Add(s3.MulByNonResidue())
	c1 := s1.Add(s4.MulByNonResidue())
	c2 := s1.Add(s2).Add(s3).Add(s0.Neg().Sub(s4))

	return Fp6{c0: c0, c1: c1, c2: c2}
}

func (a Fp6) inv() Fp6 {
	t0 := a.c0.Sqr()
	t1 := a.c1.Sqr()
	t2 := a.c2.Sqr()
	t3 := a.c0.Mul(a.c1)
	t4 := a.c0.Mul(a.c2)
	t5 := a.c1.Mul(a.c2)

	c0 := t0.Sub(t5.MulByNonResidue())
	c1 := t2.MulByNonResidue().Sub(t3)
	c2 := t1.Sub(t4)

	t6 := a.c0.Mul(c0)
	t6 = t6.Add(a.c2.Mul(c1).Add(a.c1.Mul(c2)).MulByNonResidue())
	t6 = t6.Inv()

	return Fp6{c0: c0.Mul(t6), c1: c1.Mul(t6), c2: c2.Mul(t6)}
}

// mulByV multiplies by the Fp6 variable v: v(c0+c1 v+c2 v^2) = c2(1+u) + c0 v + c1 v^2.
func (a Fp6) mulByV() Fp6 {
	return Fp6{c0: a.c2.MulByNonResidue(), c1: a.c0, c2: a.c1}
}

// Fp12 is an element c0 + c1*w of F_p^12.
type Fp12 struct {
	c0, c1 Fp6
}

// Fp12Zero returns the additive identity.
func Fp12Zero() Fp12 { return Fp12{c0: Fp6Zero(), c1: Fp6Zero()} }

// Fp12One returns the multiplicative identity.
func Fp12One() Fp12 { return Fp12{c0: Fp6One(), c1: Fp6Zero()} }

// Mul returns a * b in Fp12.
func (a Fp12) Mul(b Fp12) Fp12 {
	t0 := a.c0.mul(b.c0)
	t1 := a.c1.mul(b.c1)

	c0 := t0.add(t1.mulByV())
	c1 := a.c0.add(a.c1).mul(b.c0.add(b.c1)).sub(t0).sub(t1)

	return Fp12{c0: c0, c1: c1}
}

// Sqr returns a^2 in Fp12.
func (a Fp12) Sqr() Fp12 {
	ab := a.c0.mul(a.c1)
	c0 := a.c0.add(a.c1).mul(a.c0.add(a.c1.mulByV())).sub(ab.add(ab.mulByV()))
	c1 := ab.add(ab)
	return Fp12{c0: c0, c1: c1}
}

// Inv returns a^-1 in Fp12.
func (a Fp12) Inv() Fp12 {
	t := a.c0.sqr().sub(a.c1.sqr().mulByV())
	t = t.inv()
	return Fp12{c0: a.c0.mul(t), c1: a.c1.mul(t).neg()}
}

// Conj returns the Fp6-conjugate (c0, -c1), which for an element in the
// unitary subgroup equals its inverse and is used by the easy part of the
// final exponentiation.
func (a Fp12) Conj() Fp12 { return Fp12{c0: a.c0, c1: a.c1.neg()} }

// Exp returns a^k via square-and-multiply. k must be non-negative.
func (a Fp12) Exp(k *big.Int) Fp12 {
	if k.Sign() == 0 {
		return Fp12One()
	}
	result := Fp12One()
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Sqr()
		if k.Bit(i) == 1 {
			result = result.Mul(a)
		}
	}
	return result
}

// IsOne reports whether a is the multiplicative identity.
func (a Fp12) IsOne() bool {
	return a.c0.c0.Equal(Fp2One()) && a.c0.c1.IsZero() && a.c0.c2.IsZero() &&
		a.c1.c0.IsZero() && a.c1.c1.IsZero() && a.c1.c2.IsZero()
}

// Equal reports whether a and b are the same Fp12 element.
func (a Fp12) Equal(b Fp12) bool {
	return a.c0.c0.Equal(b.c0.c0) && a.c0.c1.Equal(b.c0.c1) && a.c0.c2.Equal(b.c0.c2) &&
		a.c1.c0.Equal(b.c1.c0) && a.c1.c1.Equal(b.c1.c1) && a.c1.c2.Equal(b.c1.c2)
}
