//go:build !blst

package bls

import "math/big"

// ScalarMul computes k*p via double-and-add, reducing k mod r.
func (p G1Jac) ScalarMul(k *big.Int) G1Jac {
	if k.Sign() == 0 || p.IsInfinity() {
		return G1Infinity()
	}
	kMod := new(big.Int).Mod(k, modulusR)
	if kMod.Sign() == 0 {
		return G1Infinity()
	}

	r := G1Infinity()
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if kMod.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r
}

// ScalarMulFr computes k*p for a scalar field element.
func (p G1Jac) ScalarMulFr(k Fr) G1Jac { return p.ScalarMul(k.BigInt()) }

// ScalarMul computes k*p via double-and-add, reducing k mod r.
func (p G2Jac) ScalarMul(k *big.Int) G2Jac {
	if k.Sign() == 0 || p.IsInfinity() {
		return G2Infinity()
	}
	kMod := new(big.Int).Mod(k, modulusR)
	if kMod.Sign() == 0 {
		return G2Infinity()
	}

	r := G2Infinity()
	for i := kMod.BitLen() - 1; i >= 0; i-- {
		r = r.Double()
		if kMod.Bit(i) == 1 {
			r = r.Add(p)
		}
	}
	return r
}

// ScalarMulFr computes k*p for a scalar field element.
func (p G2Jac) ScalarMulFr(k Fr) G2Jac { return p.ScalarMul(k.BigInt()) }
