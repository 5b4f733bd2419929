package bls

import "math/big"

// G1Jac is a point on the BLS12-381 G1 curve y^2 = x^3 + 4 over Fp, held
// in Jacobian coordinates (X, Y, Z) where the affine point is
// (X/Z^2, Y/Z^3). The point at infinity has Z = 0.
type G1Jac struct {
	x, y, z Fp
}

var (
	g1GenX = mustFpFromHex("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb")
	g1GenY = mustFpFromHex("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1")
)

func mustFpFromHex(s string) Fp {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bls: bad hex constant")
	}
	return NewFp(v)
}

// G1Generator returns the generator of G1.
func G1Generator() G1Jac { return G1Jac{x: g1GenX, y: g1GenY, z: FpOne()} }

// G1Infinity returns the identity element of G1.
func G1Infinity() G1Jac { return G1Jac{x: FpOne(), y: FpOne(), z: FpZero()} }

// IsInfinity reports whether p is the identity.
func (p G1Jac) IsInfinity() bool { return p.z.IsZero() }

// G1FromAffine builds a Jacobian point from affine coordinates. (0,0)
// denotes the point at infinity.
func G1FromAffine(x, y Fp) G1Jac {
	if x.IsZero() && y.IsZero() {
		return G1Infinity()
	}
	return G1Jac{x: x, y: y, z: FpOne()}
}

// Affine converts p to affine coordinates, returning (0,0) for infinity.
func (p G1Jac) Affine() (Fp, Fp) {
	if p.IsInfinity() {
		return FpZero(), FpZero()
	}
	zInv := p.z.Inv()
	zInv2 := zInv.Sqr()
	zInv3 := zInv2.Mul(zInv)
	return p.x.Mul(zInv2), p.y.Mul(zInv3)
}

// G1IsOnCurve reports whether the affine point (x, y) satisfies y^2 = x^3 + 4.
func G1IsOnCurve(x, y Fp) bool {
	if x.IsZero() && y.IsZero() {
		return true
	}
	lhs := y.Sqr()
	rhs := x.Sqr().Mul(x).Add(NewFp(curveB))
	return lhs.Equal(rhs)
}

// Add returns p + q.
func (p G1Jac) Add(q G1Jac) G1Jac {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	z1sq := p.z.Sqr()
	z2sq := q.z.Sqr()
	u1 := p.x.Mul(z2sq)
	u2 := q.x.Mul(z1sq)
	s1 := p.y.Mul(q.z.Mul(z2sq))
	s2 := q.y.Mul(p.z.Mul(z1sq))

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return p.Double()
		}
		return G1Infinity()
	}

	h := u2.Sub(u1)
	i := h.Add(h).Sqr()
	j := h.Mul(i)
	r := s2.Sub(s1)
	r = r.Add(r)
	v := u1.Mul(i)

	x3 := r.Sqr().Sub(j).Sub(v.Add(v))
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Add(s1.Mul(j)))
	z3 := p.z.Add(q.z).Sqr().Sub(z1sq).Sub(z2sq).Mul(h)

	return G1Jac{x: x3, y: y3, z: z3}
}

// Double returns 2p.
func (p G1Jac) Double() G1Jac {
	if p.IsInfinity() {
		return G1Infinity()
	}
	a := p.x.Sqr()
	b := p.y.Sqr()
	c := b.Sqr()

	d := p.x.Add(b).Sqr().Sub(a).Sub(c)
	d = d.Add(d)

	e := a.Add(a).Add(a)

	x3 := e.Sqr().Sub(d.Add(d))

	eightC := c.Add(c).Add(c.Add(c)).Add(c.Add(c).Add(c.Add(c)))
	y3 := e.Mul(d.Sub(x3)).Sub(eightC)

	z3 := p.y.Add(p.y).Mul(p.z)

	return G1Jac{x: x3, y: y3, z: z3}
}

// Neg returns -p.
func (p G1Jac) Neg() G1Jac {
	if p.IsInfinity() {
		return G1Infinity()
	}
	return G1Jac{x: p.x, y: p.y.Neg(), z: p.z}
}

// Sub returns p - q.
func (p G1Jac) Sub(q G1Jac) G1Jac { return p.Add(q.Neg()) }

// Equal reports whether p and q denote the same point, comparing in
// affine form so that different Jacobian representatives of the same
// point compare equal.
func (p G1Jac) Equal(q G1Jac) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	px, py := p.Affine()
	qx, qy := q.Affine()
	return px.Equal(qx) && py.Equal(qy)
}

// InSubgroup reports whether p has order dividing r. For G1, cofactor
// clearing already guarantees curve points from decoding are in the
// subgroup once [r]p == O; BLS12-381's G1 cofactor is small enough that
// checking [r]p == O directly (rather than via the GLV endomorphism
// short-cut) is acceptable for a scalar reference implementation.
func (p G1Jac) InSubgroup() bool {
	if p.IsInfinity() {
		return true
	}
	return p.ScalarMul(modulusR).IsInfinity()
}
