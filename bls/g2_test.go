package bls

import (
	"math/big"
	"testing"
)

func TestG2GeneratorOnCurve(t *testing.T) {
	g := G2Generator()
	x, y := g.Affine()
	if !G2IsOnCurve(x, y) {
		t.Error("G2 generator is not on the curve")
	}
}

func TestG2GeneratorInSubgroup(t *testing.T) {
	if !G2Generator().InSubgroup() {
		t.Error("G2 generator should be in the r-torsion subgroup")
	}
}

func TestG2DoubleMatchesAdd(t *testing.T) {
	g := G2Generator()
	if !g.Double().Equal(g.Add(g)) {
		t.Error("Double(g) should equal g+g")
	}
}

func TestG2ScalarMulDistributesOverAdd(t *testing.T) {
	g := G2Generator()
	a := big.NewInt(19)
	b := big.NewInt(23)
	lhs := g.ScalarMul(new(big.Int).Add(a, b))
	rhs := g.ScalarMul(a).Add(g.ScalarMul(b))
	if !lhs.Equal(rhs) {
		t.Error("[a+b]g should equal [a]g + [b]g")
	}
}

func TestG2ScalarMulByROrderIsInfinity(t *testing.T) {
	g := G2Generator()
	if !g.ScalarMul(modulusR).IsInfinity() {
		t.Error("[r]g should be the point at infinity")
	}
}

func TestG2NegCancels(t *testing.T) {
	g := G2Generator()
	if !g.Add(g.Neg()).IsInfinity() {
		t.Error("g + (-g) should be the point at infinity")
	}
}
