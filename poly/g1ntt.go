package poly

import "github.com/jtraglia/peerdas-kzg/bls"

// G1NTT and G1InverseNTT are the number-theoretic transform and its
// inverse specialized to G1 points rather than scalar field elements:
// the same Cooley-Tukey butterfly, using point addition/subtraction in
// place of field addition/subtraction and scalar multiplication by a
// root of unity in place of field multiplication. This is what the
// trusted setup loader uses to convert a monomial-basis G1 SRS into its
// Lagrange-basis form in O(n log n) rather than one MSM per output
// point.
func G1NTT(vals []bls.G1Jac) []bls.G1Jac {
	n := len(vals)
	if n <= 1 {
		out := make([]bls.G1Jac, n)
		copy(out, vals)
		return out
	}
	if n&(n-1) != 0 {
		panic("poly: G1NTT: length must be a power of 2")
	}
	return g1NTTInner(vals, computeRootsOfUnity(uint64(n)))
}

// G1InverseNTT inverts G1NTT.
func G1InverseNTT(vals []bls.G1Jac) []bls.G1Jac {
	n := len(vals)
	if n <= 1 {
		out := make([]bls.G1Jac, n)
		copy(out, vals)
		return out
	}
	if n&(n-1) != 0 {
		panic("poly: G1InverseNTT: length must be a power of 2")
	}
	roots := computeRootsOfUnity(uint64(n))

	invRoots := make([]bls.Fr, n)
	invRoots[0] = roots[0]
	for i := 1; i < n; i++ {
		invRoots[i] = roots[n-i]
	}

	result := g1NTTInner(vals, invRoots)

	nInv := bls.NewFrFromUint64(uint64(n)).Inv()
	for i := range result {
		result[i] = result[i].ScalarMulFr(nInv)
	}
	return result
}

func g1NTTInner(vals []bls.G1Jac, roots []bls.Fr) []bls.G1Jac {
	n := len(vals)
	if n == 1 {
		return []bls.G1Jac{vals[0]}
	}

	half := n / 2
	even := make([]bls.G1Jac, half)
	odd := make([]bls.G1Jac, half)
	evenRoots := make([]bls.Fr, half)
	for i := 0; i < half; i++ {
		even[i] = vals[2*i]
		odd[i] = vals[2*i+1]
		evenRoots[i] = roots[2*i]
	}

	yEven := g1NTTInner(even, evenRoots)
	yOdd := g1NTTInner(odd, evenRoots)

	result := make([]bls.G1Jac, n)
	for i := 0; i < half; i++ {
		t := yOdd[i].ScalarMulFr(roots[i])
		result[i] = yEven[i].Add(t)
		result[i+half] = yEven[i].Sub(t)
	}
	return result
}
