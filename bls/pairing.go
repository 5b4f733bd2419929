package bls

import "math/big"

// Optimal ate pairing e: G1 x G2 -> GT for BLS12-381. The implementation
// follows the standard two-stage construction: a Miller loop over the
// bits of the curve parameter x, producing a value in Fp12, followed by
// a final exponentiation that projects it into the order-r subgroup GT.
//
// BLS12-381's x is negative (x = -0xd201000000010000); paramX in
// params.go holds |x|, and the Miller loop compensates with a
// conjugation at the end.

// lineDouble computes the tangent line at r, evaluated at the affine G1
// point (px, py), and returns the sparse Fp12 line value together with
// the doubled point 2r.
func lineDouble(r G2Jac, px, py Fp) (Fp12, G2Jac) {
	if r.IsInfinity() {
		return Fp12One(), G2Infinity()
	}
	rx, ry := r.Affine()
	if ry.IsZero() {
		return Fp12One(), G2Infinity()
	}

	three := NewFp2(big.NewInt(3), big.NewInt(0))
	two := NewFp2(big.NewInt(2), big.NewInt(0))
	lambda := three.Mul(rx.Sqr()).Mul(two.Mul(ry).Inv())

	ell0 := lambda.Mul(rx).Sub(ry)
	ell1 := lambda.MulScalar(px).Neg()

	f := Fp12{
		c0: NewFp6(ell0, ell1, Fp2Zero()),
		c1: NewFp6(Fp2Zero(), fp2FromFp(py, FpZero()), Fp2Zero()),
	}
	return f, r.Double()
}

// lineAdd computes the chord through r and the affine twist point
// (qx, qy), evaluated at the affine G1 point (px, py), and returns the
// sparse Fp12 line value together with r + Q.
func lineAdd(r G2Jac, qx, qy Fp2, px, py Fp) (Fp12, G2Jac) {
	if r.IsInfinity() {
		return Fp12One(), G2FromAffine(qx, qy)
	}
	rx, ry := r.Affine()
	if rx.Equal(qx) && ry.Equal(qy) {
		return lineDouble(r, px, py)
	}

	num := qy.Sub(ry)
	den := qx.Sub(rx)
	if den.IsZero() {
		return Fp12One(), G2Infinity()
	}
	lambda := num.Mul(den.Inv())

	ell0 := lambda.Mul(rx).Sub(ry)
	ell1 := lambda.MulScalar(px).Neg()

	f := Fp12{
		c0: NewFp6(ell0, ell1, Fp2Zero()),
		c1: NewFp6(Fp2Zero(), fp2FromFp(py, FpZero()), Fp2Zero()),
	}
	return f, r.Add(G2FromAffine(qx, qy))
}

// MillerLoop computes the Miller loop value for the pair (p, q), a
// (generally non-final) element of Fp12.
func MillerLoop(p G1Jac, q G2Jac) Fp12 {
	if p.IsInfinity() || q.IsInfinity() {
		return Fp12One()
	}

	px, py := p.Affine()
	qx, qy := q.Affine()

	f := Fp12One()
	r := G2FromAffine(qx, qy)

	for i := paramX.BitLen() - 2; i >= 0; i-- {
		var lineF Fp12
		lineF, r = lineDouble(r, px, py)
		f = f.Sqr().Mul(lineF)

		if paramX.Bit(i) == 1 {
			lineF, r = lineAdd(r, qx, qy, px, py)
			f = f.Mul(lineF)
		}
	}

	// x is negative: the loop above ran over |x|, so conjugate to get f^x.
	return f.Conj()
}

// p^2 and p^4-p^2+1 are cached since the hard part of the final
// exponentiation is evaluated for every pairing call.
var (
	modulusPSq = new(big.Int).Mul(modulusP, modulusP)
	hardExpVal = computeHardExp()
)

func computeHardExp() *big.Int {
	p2 := new(big.Int).Mul(modulusP, modulusP)
	p4 := new(big.Int).Mul(p2, p2)
	e := new(big.Int).Sub(p4, p2)
	e.Add(e, big.NewInt(1))
	e.Div(e, modulusR)
	return e
}

// FinalExponentiation raises f to (p^12-1)/r, projecting a Miller loop
// value into GT. It factors the exponent as
// (p^6-1)(p^2+1)((p^4-p^2+1)/r): an easy part computed with conjugation
// and inversion, followed by a hard part computed by direct
// exponentiation.
func FinalExponentiation(f Fp12) Fp12 {
	fInv := f.Inv()
	f1 := f.Conj().Mul(fInv)

	f1p2 := f1.Exp(modulusPSq)
	f2 := f1p2.Mul(f1)

	return f2.Exp(hardExpVal)
}

// Pairing computes e(p, q) in GT.
func Pairing(p G1Jac, q G2Jac) Fp12 {
	return FinalExponentiation(MillerLoop(p, q))
}

// PairingPair is one (G1, G2) factor of a multi-pairing product.
type PairingPair struct {
	G1 G1Jac
	G2 G2Jac
}

// MultiPairing computes the product of e(pairs[i].G1, pairs[i].G2) over
// all i, returning the accumulated Fp12 value in GT. Pairs with either
// component at infinity contribute the identity and are skipped.
func MultiPairing(pairs []PairingPair) Fp12 {
	f := Fp12One()
	for _, pr := range pairs {
		if pr.G1.IsInfinity() || pr.G2.IsInfinity() {
			continue
		}
		f = f.Mul(MillerLoop(pr.G1, pr.G2))
	}
	return FinalExponentiation(f)
}

// PairingCheck reports whether the product of pairings over pairs
// equals the identity in GT, i.e. whether
// prod_i e(pairs[i].G1, pairs[i].G2) == 1. This is the standard form
// used to verify a pairing equation without computing a full GT
// comparison.
func PairingCheck(pairs []PairingPair) bool {
	return MultiPairing(pairs).IsOne()
}
