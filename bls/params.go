// Package bls implements BLS12-381 field, curve, and pairing arithmetic:
// the base field Fp and its extensions Fp2/Fp6/Fp12, the groups G1 and G2
// in Jacobian coordinates, multi-scalar multiplication, and the optimal
// ate pairing. It is the bottom layer of the PeerDAS cryptographic core;
// every other package builds on the types defined here.
package bls

import "math/big"

// BLS12-381 curve parameters.
var (
	// modulusP is the base field modulus.
	modulusP, _ = new(big.Int).SetString(
		"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)

	// modulusR is the order of G1/G2, and the modulus of the scalar field Fr.
	modulusR, _ = new(big.Int).SetString(
		"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

	// curveB is the G1 curve coefficient b in y^2 = x^3 + b.
	curveB = big.NewInt(4)

	// twistB is the G2 twist curve coefficient b' = 4(1+u) in y^2 = x^3 + b'.
	twistB = &Fp2{c0: big.NewInt(4), c1: big.NewInt(4)}

	// x is the BLS parameter (positive magnitude); the signed parameter is -x.
	paramX, _ = new(big.Int).SetString("d201000000010000", 16)
)

// ModulusP returns a copy of the base field modulus p.
func ModulusP() *big.Int { return new(big.Int).Set(modulusP) }

// ModulusR returns a copy of the scalar field modulus r (the G1/G2 order).
func ModulusR() *big.Int { return new(big.Int).Set(modulusR) }
