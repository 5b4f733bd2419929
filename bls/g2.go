package bls

import "math/big"

// G2Jac is a point on the BLS12-381 twist curve y^2 = x^3 + 4(1+u) over
// Fp2, held in Jacobian coordinates.
type G2Jac struct {
	x, y, z Fp2
}

var (
	g2GenXc0 = mustBigFromHex("024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8")
	g2GenXc1 = mustBigFromHex("13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e")
	g2GenYc0 = mustBigFromHex("0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801")
	g2GenYc1 = mustBigFromHex("0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be")
)

func mustBigFromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bls: bad hex constant")
	}
	return v
}

// G2Generator returns the generator of G2.
func G2Generator() G2Jac {
	return G2Jac{
		x: NewFp2(g2GenXc0, g2GenXc1),
		y: NewFp2(g2GenYc0, g2GenYc1),
		z: Fp2One(),
	}
}

// G2Infinity returns the identity element of G2.
func G2Infinity() G2Jac { return G2Jac{x: Fp2One(), y: Fp2One(), z: Fp2Zero()} }

// IsInfinity reports whether p is the identity.
func (p G2Jac) IsInfinity() bool { return p.z.IsZero() }

// G2FromAffine builds a Jacobian point from affine coordinates.
func G2FromAffine(x, y Fp2) G2Jac {
	if x.IsZero() && y.IsZero() {
		return G2Infinity()
	}
	return G2Jac{x: x, y: y, z: Fp2One()}
}

// Affine converts p to affine coordinates, returning (0,0) for infinity.
func (p G2Jac) Affine() (Fp2, Fp2) {
	if p.IsInfinity() {
		return Fp2Zero(), Fp2Zero()
	}
	zInv := p.z.Inv()
	zInv2 := zInv.Sqr()
	zInv3 := zInv2.Mul(zInv)
	return p.x.Mul(zInv2), p.y.Mul(zInv3)
}

// G2IsOnCurve reports whether (x, y) satisfies y^2 = x^3 + 4(1+u).
func G2IsOnCurve(x, y Fp2) bool {
	if x.IsZero() && y.IsZero() {
		return true
	}
	lhs := y.Sqr()
	rhs := x.Sqr().Mul(x).Add(*twistB)
	return lhs.Equal(rhs)
}

// Add returns p + q.
func (p G2Jac) Add(q G2Jac) G2Jac {
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
		return G2Infinity()
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

	return G2Jac{x: x3, y: y3, z: z3}
}

// Double returns 2p.
func (p G2Jac) Double() G2Jac {
	if p.IsInfinity() {
		return G2Infinity()
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

	return G2Jac{x: x3, y: y3, z: z3}
}

// Neg returns -p.
func (p G2Jac) Neg() G2Jac {
	if p.IsInfinity() {
		return G2Infinity()
	}
	return G2Jac{x: p.x, y: p.y.Neg(), z: p.z}
}

// Sub returns p - q.
func (p G2Jac) Sub(q G2Jac) G2Jac { return p.Add(q.Neg()) }

// Equal reports whether p and q denote the same point.
func (p G2Jac) Equal(q G2Jac) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	px, py := p.Affine()
	qx, qy := q.Affine()
	return px.Equal(qx) && py.Equal(qy)
}

// InSubgroup reports whether p has order dividing r, by directly checking
// [r]p == O. BLS12-381's G2 cofactor is large, so a production verifier
// would use the efficient endomorphism-based test; this scalar reference
// favors the simple, obviously-correct check.
func (p G2Jac) InSubgroup() bool {
	if p.IsInfinity() {
		return true
	}
	return p.ScalarMul(modulusR).IsInfinity()
}
