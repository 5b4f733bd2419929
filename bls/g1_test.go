package bls

import (
	"math/big"
	"testing"
)

func TestG1GeneratorOnCurve(t *testing.T) {
	g := G1Generator()
	x, y := g.Affine()
	if !G1IsOnCurve(x, y) {
		t.Error("G1 generator is not on the curve")
	}
}

func TestG1GeneratorInSubgroup(t *testing.T) {
	if !G1Generator().InSubgroup() {
		t.Error("G1 generator should be in the r-torsion subgroup")
	}
}

func TestG1DoubleMatchesAdd(t *testing.T) {
	g := G1Generator()
	if !g.Double().Equal(g.Add(g)) {
		t.Error("Double(g) should equal g+g")
	}
}

func TestG1ScalarMulDistributesOverAdd(t *testing.T) {
	g := G1Generator()
	a := big.NewInt(17)
	b := big.NewInt(29)
	lhs := g.ScalarMul(new(big.Int).Add(a, b))
	rhs := g.ScalarMul(a).Add(g.ScalarMul(b))
	if !lhs.Equal(rhs) {
		t.Error("[a+b]g should equal [a]g + [b]g")
	}
}

func TestG1ScalarMulByROrderIsInfinity(t *testing.T) {
	g := G1Generator()
	if !g.ScalarMul(modulusR).IsInfinity() {
		t.Error("[r]g should be the point at infinity")
	}
}

func TestG1SubAddCancel(t *testing.T) {
	g := G1Generator()
	two := g.Double()
	if !two.Sub(g).Equal(g) {
		t.Error("2g - g should equal g")
	}
}

func TestG1InfinityIdentity(t *testing.T) {
	g := G1Generator()
	inf := G1Infinity()
	if !g.Add(inf).Equal(g) {
		t.Error("g + infinity should equal g")
	}
	if !inf.IsInfinity() {
		t.Error("G1Infinity().IsInfinity() should be true")
	}
}

func TestG1NegCancels(t *testing.T) {
	g := G1Generator()
	if !g.Add(g.Neg()).IsInfinity() {
		t.Error("g + (-g) should be the point at infinity")
	}
}

func TestG1AffineRoundTrip(t *testing.T) {
	g := G1Generator().Double().Double()
	x, y := g.Affine()
	reconstructed := G1FromAffine(x, y)
	if !reconstructed.Equal(g) {
		t.Error("affine round trip changed the point")
	}
}
