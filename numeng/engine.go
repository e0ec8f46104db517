// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeng is the numeric engine: the only component allowed to
// manipulate *big.Int/*big.Float directly. It implements the six
// primitive operations (exact/float factorial, multifactorial, termial,
// subfactorial) plus their approximate and digit-approximation variants.
// Every routine takes an explicit *consts.Consts, the same "pass the
// shared config in, mutate nothing" idiom robpike.io/ivy's value package
// uses for its Context parameter.
package numeng

import (
	"math"
	"math/big"

	"github.com/tolik518/factorion-bot/consts"
	"github.com/tolik518/factorion-bot/number"
)

// IsFactorion reports whether n is one of the four known base-10
// factorions: a positive integer equal to the sum of the factorials of
// its decimal digits. Only 1, 2, 145 and 40585 exist; no fifth one can,
// since digit-factorial sums are bounded by 7·9! for any 7-digit number,
// which is smaller than the smallest 8-digit number.
func IsFactorion(n int64) bool {
	switch n {
	case 1, 2, 145, 40585:
		return true
	default:
		return false
	}
}

var smallFactorials = [10]int64{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880}

// digitFactorialSum is used only by tests to double-check IsFactorion
// against its definition rather than its literal table.
func digitFactorialSum(n int64) int64 {
	var sum int64
	for n > 0 {
		sum += smallFactorials[n%10]
		n /= 10
	}
	return sum
}

// ExactFactorial returns n! for n >= 0, using the swing-factorial
// algorithm for roughly 2x the speed of the naive iterative product,
// grounded directly on robpike.io/ivy's value/fac.go intFactorial.
func ExactFactorial(n int64) *big.Int {
	return ExactMultifactorial(n, 1)
}

// ExactMultifactorial returns the k-multifactorial of n: the product of
// n, n-k, n-2k, … down to the first positive term (or 1 for an empty
// product). k == 1 is plain factorial; k == 2 is the familiar double
// factorial.
func ExactMultifactorial(n int64, k int) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	if k == 1 {
		return swingFactorial(n)
	}
	result := big.NewInt(1)
	term := big.NewInt(0)
	for v := n; v > 0; v -= int64(k) {
		term.SetInt64(v)
		result.Mul(result, term)
	}
	return result
}

// ExactTermial returns n(n+1)/2.
func ExactTermial(n int64) *big.Int {
	bn := big.NewInt(n)
	bn1 := big.NewInt(n + 1)
	prod := new(big.Int).Mul(bn, bn1)
	return prod.Rsh(prod, 1)
}

// ExactKTermial returns the k-termial of n: the sum of n, n-k, n-2k, …
// down to the first positive term, the termial analogue of
// ExactMultifactorial.
func ExactKTermial(n int64, k int) *big.Int {
	if k == 1 {
		return ExactTermial(n)
	}
	sum := new(big.Int)
	term := new(big.Int)
	for v := n; v > 0; v -= int64(k) {
		sum.Add(sum, term.SetInt64(v))
	}
	return sum
}

// ExactSubfactorial returns the number of derangements of n elements,
// via the recurrence !0 = 1, !n = n·!(n-1) + (-1)^n.
func ExactSubfactorial(n int64) *big.Int {
	prev := big.NewInt(1) // !0
	if n == 0 {
		return prev
	}
	cur := new(big.Int)
	sign := big.NewInt(-1)
	for i := int64(1); i <= n; i++ {
		cur.Mul(big.NewInt(i), prev)
		if i%2 == 0 {
			cur.Add(cur, big.NewInt(1))
		} else {
			cur.Add(cur, sign)
		}
		prev, cur = cur, prev
	}
	return prev
}

// FloatFactorial returns the Gamma-function extension of factorial,
// Γ(n+1), at the configured bit precision. Accuracy is bounded by the
// float64 Lanczos/Gamma evaluation underneath (about 15 significant
// digits) regardless of requested precision — matching the teacher's own
// observation in value/fac.go that "it is infeasible to expect
// significantly higher precision without substantially more work".
func FloatFactorial(c *consts.Consts, n *big.Float) number.Float {
	return FloatMultifactorial(c, n, 1)
}

// FloatMultifactorial returns the continuous extension of the
// k-multifactorial at z, using a small cosine-weighted blend of the k
// interleaved Gamma-based chains (the E_{k,j} kernel from spec.md §4.2),
// truncated to the k nearest integer anchors for performance.
func FloatMultifactorial(c *consts.Consts, z *big.Float, k int) number.Float {
	zf, _ := z.Float64()
	val := multifactorialContinuation(zf, k)
	f := new(big.Float).SetPrec(c.FloatPrecision).SetFloat64(val)
	return number.NewFloat(f, c.FloatPrecision)
}

// gammaMultifactorialAnchor evaluates the single-phase Gamma-based
// generalization k^(x/k)·Γ(x/k + 1), which coincides with the exact
// k-multifactorial whenever x ≡ 0 (mod k).
func gammaMultifactorialAnchor(x float64, k int) float64 {
	kf := float64(k)
	return math.Pow(kf, x/kf) * math.Gamma(x/kf+1)
}

// multifactorialContinuation blends the k interleaved chains anchored at
// base, base-1, …, base-(k-1) (base = floor(z)) using the E_{k,j}
// trigonometric kernel, so the result agrees with the exact chain at
// every integer and varies smoothly between them.
func multifactorialContinuation(z float64, k int) float64 {
	if k == 1 {
		return gammaMultifactorialAnchor(z, 1)
	}
	kf := float64(k)
	base := math.Floor(z)
	anchors := make([]float64, k)
	for l := 0; l < k; l++ {
		anchors[l] = base - float64(l)
	}
	var num float64
	for j := 0; j < k; j++ {
		// Residue class r of anchors[j], taken in (0, k]: on that class the
		// k-multifactorial is k^((x-r)/k+1)·Γ(x/k+1)/Γ(r/k).
		r := math.Mod(anchors[j], kf)
		if r <= 0 {
			r += kf
		}
		chain := math.Pow(kf, (z-r)/kf+1) * math.Gamma(z/kf+1) / math.Gamma(r/kf)
		num += kernelWeight(z, anchors, j, k) * chain
	}
	return num
}

// kernelWeight computes E_{k,j}(x): 1 at x == anchors[j], 0 at every
// other anchor, smoothly interpolating between.
func kernelWeight(x float64, anchors []float64, j, k int) float64 {
	kf := float64(k)
	num := 1.0
	den := 1.0
	for l := 0; l < k; l++ {
		if l != j {
			num *= 1 - math.Cos(2*math.Pi*(x-anchors[l])/kf)
		}
		if l != 0 {
			den *= 1 - math.Cos(-2*math.Pi*float64(l)/kf)
		}
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// swingFactorial computes n! using Peter Luschny's swinging-factorial
// recurrence n! = (n/2)!² · n𝜎, where n𝜎 (the "swing" of n) is
// n!/((n/2)!)²: each prime p appears in it once for every i with
// ⌊n/p^i⌋ odd. Ground truth: robpike.io/ivy's value/fac.go.
func swingFactorial(n int64) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	s := swing(int(n))
	half := swingFactorial(n / 2)
	half.Mul(half, half)
	half.Mul(half, s)
	return half
}

func swing(n int) *big.Int {
	marked := make([]bool, n+1)
	factors := make([]int64, 0, 64)
	for p := 2; p <= n; p++ {
		if marked[p] {
			continue
		}
		for j := p; j <= n; j += p {
			marked[j] = true
		}
		// Exponent of p in n𝜎: the number of i for which ⌊n/p^i⌋ is odd.
		q := n
		for q != 0 {
			q /= p
			if q%2 == 1 {
				factors = append(factors, int64(p))
			}
		}
	}
	return product(factors)
}

// product multiplies a list of int64 factors via balanced recursive
// multiplication, which is faster than a linear accumulation for long
// lists of large products (same rationale as ivy's value/fac.go product).
func product(f []int64) *big.Int {
	switch len(f) {
	case 0:
		return big.NewInt(1)
	case 1:
		return big.NewInt(f[0])
	}
	mid := len(f) / 2
	left := product(f[:mid])
	right := product(f[mid:])
	return left.Mul(left, right)
}
