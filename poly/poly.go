// Package poly implements polynomial operations over the BLS12-381
// scalar field: the number-theoretic transform (forward and inverse),
// coset NTTs, Lagrange interpolation via the barycentric formula, and a
// thin Polynomial wrapper for coefficient-form values. It generalizes
// the recursive Cooley-Tukey FFT used for blob field elements into a
// reusable transform layer shared by the erasure-coding and KZG/FK20
// packages.
package poly

import "github.com/jtraglia/peerdas-kzg/bls"

// Polynomial holds coefficients in ascending degree order: coefficients[i]
// is the coefficient of X^i.
type Polynomial struct {
	Coefficients []bls.Fr
}

// NewPolynomial wraps a coefficient slice without copying.
func NewPolynomial(coeffs []bls.Fr) Polynomial { return Polynomial{Coefficients: coeffs} }

// Degree returns the index of the highest nonzero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		if !p.Coefficients[i].IsZero() {
			return i
		}
	}
	return -1
}

// Evaluate computes p(x) by Horner's method.
func (p Polynomial) Evaluate(x bls.Fr) bls.Fr {
	result := bls.FrZero()
	for i := len(p.Coefficients) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.Coefficients[i])
	}
	return result
}

// computeRootsOfUnity returns [w^0, w^1, ..., w^(n-1)] where w is a
// primitive n-th root of unity.
func computeRootsOfUnity(n uint64) []bls.Fr {
	w := bls.RootOfUnity(n)
	roots := make([]bls.Fr, n)
	roots[0] = bls.FrOne()
	for i := uint64(1); i < n; i++ {
		roots[i] = roots[i-1].Mul(w)
	}
	return roots
}

// NTT computes the forward number-theoretic transform of vals: the
// evaluations of the polynomial with coefficients vals at the n-th roots
// of unity, n = len(vals). n must be a power of two.
func NTT(vals []bls.Fr) []bls.Fr {
	n := len(vals)
	if n <= 1 {
		out := make([]bls.Fr, n)
		copy(out, vals)
		return out
	}
	if n&(n-1) != 0 {
		panic("poly: NTT: length must be a power of 2")
	}
	return nttInner(vals, computeRootsOfUnity(uint64(n)))
}

// InverseNTT computes the inverse number-theoretic transform: given
// evaluations at the n-th roots of unity, recovers the coefficients.
func InverseNTT(vals []bls.Fr) []bls.Fr {
	n := len(vals)
	if n <= 1 {
		out := make([]bls.Fr, n)
		copy(out, vals)
		return out
	}
	if n&(n-1) != 0 {
		panic("poly: InverseNTT: length must be a power of 2")
	}
	roots := computeRootsOfUnity(uint64(n))

	invRoots := make([]bls.Fr, n)
	invRoots[0] = roots[0]
	for i := 1; i < n; i++ {
		invRoots[i] = roots[n-i]
	}

	result := nttInner(vals, invRoots)

	nInv := bls.NewFrFromUint64(uint64(n)).Inv()
	for i := range result {
		result[i] = result[i].Mul(nInv)
	}
	return result
}

// nttInner runs the Cooley-Tukey radix-2 butterfly using a precomputed
// root table indexed the same way as the standard recursive FFT.
func nttInner(vals []bls.Fr, roots []bls.Fr) []bls.Fr {
	n := len(vals)
	if n == 1 {
		return []bls.Fr{vals[0]}
	}

	half := n / 2
	even := make([]bls.Fr, half)
	odd := make([]bls.Fr, half)
	evenRoots := make([]bls.Fr, half)
	for i := 0; i < half; i++ {
		even[i] = vals[2*i]
		odd[i] = vals[2*i+1]
		evenRoots[i] = roots[2*i]
	}

	yEven := nttInner(even, evenRoots)
	yOdd := nttInner(odd, evenRoots)

	result := make([]bls.Fr, n)
	for i := 0; i < half; i++ {
		t := roots[i].Mul(yOdd[i])
		result[i] = yEven[i].Add(t)
		result[i+half] = yEven[i].Sub(t)
	}
	return result
}

// CosetNTT evaluates the polynomial with coefficients vals at the
// points shift*w^i for i in [0, n), n = len(vals). erasure.Recover uses
// it to evaluate on a coset shifted off the roots of unity, where the
// vanishing polynomial of the missing points has no zeros.
func CosetNTT(vals []bls.Fr, shift bls.Fr) []bls.Fr {
	shifted := make([]bls.Fr, len(vals))
	power := bls.FrOne()
	for i, v := range vals {
		shifted[i] = v.Mul(power)
		power = power.Mul(shift)
	}
	return NTT(shifted)
}

// InverseCosetNTT inverts CosetNTT: given evaluations at shift*w^i,
// recovers the coefficients.
func InverseCosetNTT(vals []bls.Fr, shift bls.Fr) []bls.Fr {
	coeffs := InverseNTT(vals)
	shiftInv := shift.Inv()
	power := bls.FrOne()
	for i := range coeffs {
		coeffs[i] = coeffs[i].Mul(power)
		power = power.Mul(shiftInv)
	}
	return coeffs
}

// BitReversalPermute returns a copy of vals with indices permuted to
// bit-reversed order with respect to len(vals), which must be a power
// of two. fk20's cell layout relies on it to order the cosets of the
// extended domain.
func BitReversalPermute[T any](vals []T) []T {
	n := len(vals)
	out := make([]T, n)
	bits := 0
	for 1<<bits < n {
		bits++
	}
	for i, v := range vals {
		out[reverseBits(i, bits)] = v
	}
	return out
}

func reverseBits(x, bits int) int {
	r := 0
	for i := 0; i < bits; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

// EvaluateLagrange evaluates the unique degree-(n-1) polynomial that
// interpolates (domain[i], values[i]) at the point z, using the
// barycentric formula. If z coincides with a domain point, that point's
// value is returned directly (the formula's removable singularity).
func EvaluateLagrange(domain []bls.Fr, values []bls.Fr, z bls.Fr) bls.Fr {
	if len(domain) != len(values) {
		panic("poly: EvaluateLagrange: domain/values length mismatch")
	}
	for i, d := range domain {
		if d.Equal(z) {
			return values[i]
		}
	}

	// Barycentric weights for an NTT domain: since domain[i] = w^i for a
	// primitive n-th root of unity w, the standard barycentric weight
	// 1/prod_{j!=i}(x_i-x_j) simplifies, but we compute it generically so
	// this works for arbitrary domains too (e.g. coset-shifted cells).
	n := len(domain)
	weights := make([]bls.Fr, n)
	for i := 0; i < n; i++ {
		w := bls.FrOne()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			w = w.Mul(domain[i].Sub(domain[j]))
		}
		weights[i] = w.Inv()
	}

	numerator := bls.FrZero()
	denominator := bls.FrZero()
	for i := 0; i < n; i++ {
		coeff := weights[i].Div(z.Sub(domain[i]))
		numerator = numerator.Add(coeff.Mul(values[i]))
		denominator = denominator.Add(coeff)
	}
	return numerator.Div(denominator)
}

// VanishingPolynomial returns the coefficients of prod_{i}(X - domain[i]).
func VanishingPolynomial(domain []bls.Fr) Polynomial {
	coeffs := []bls.Fr{bls.FrOne()}
	for _, d := range domain {
		next := make([]bls.Fr, len(coeffs)+1)
		for i := range next {
			next[i] = bls.FrZero()
		}
		for i, c := range coeffs {
			next[i] = next[i].Add(c.Mul(d.Neg()))
			next[i+1] = next[i+1].Add(c)
		}
		coeffs = next
	}
	return Polynomial{Coefficients: coeffs}
}
