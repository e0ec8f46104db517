// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeng

import (
	"math"
	"math/big"

	"github.com/tolik518/factorion-bot/number"
)

// DigitsFactorial returns the approximate decimal digit count of n!
// using ⌊(½+n)·log₁₀n + ½·log₁₀(2π) − n/ln10⌋ + 1, rounded toward +∞
// (spec.md §4.2), so the result always means "at least this many digits".
func DigitsFactorial(n int64) number.ApproximateDigits {
	return DigitsFactorialFromFloat(float64(n))
}

// DigitsFactorialFromFloat is DigitsFactorial's formula taking n directly
// as a float64, for callers (the planner) whose Exact operand is larger
// than int64 can hold but still small enough for float64's exponent
// range — everything past that belongs to the tower regime instead.
func DigitsFactorialFromFloat(nf float64) number.ApproximateDigits {
	exact := (0.5+nf)*math.Log10(nf) + 0.5*math.Log10(2*math.Pi) - nf/math.Ln10
	return number.NewApproximateDigits(uint64(math.Floor(exact)) + 1)
}

// DigitsTermial returns the approximate decimal digit count of the
// termial of n, via 2·log₁₀n − log₁₀2 (spec.md §4.2).
func DigitsTermial(n int64) number.ApproximateDigits {
	return DigitsTermialFromFloat(float64(n))
}

// DigitsTermialFromFloat is DigitsTermial's formula taking n as a float64
// directly; see DigitsFactorialFromFloat.
func DigitsTermialFromFloat(nf float64) number.ApproximateDigits {
	exact := 2*math.Log10(nf) - math.Log10(2)
	return number.NewApproximateDigits(uint64(math.Ceil(exact)) + 1)
}

// DigitsMultifactorial returns the approximate decimal digit count of the
// k-multifactorial of n, taken as the k-th root of the plain-factorial
// digit count (spec.md §4.2): each of the k interleaved chains
// contributes roughly 1/k of the total growth rate.
func DigitsMultifactorial(n int64, k int) number.ApproximateDigits {
	return DigitsMultifactorialFromFloat(float64(n), k)
}

// DigitsMultifactorialFromFloat is DigitsMultifactorial's formula taking n
// as a float64 directly; see DigitsFactorialFromFloat.
func DigitsMultifactorialFromFloat(nf float64, k int) number.ApproximateDigits {
	facDigits := DigitsFactorialFromFloat(nf)
	root := math.Pow(float64(facDigits.Digits), 1/float64(k))
	return number.NewApproximateDigits(uint64(math.Ceil(root)))
}

// DigitsOfBigInt returns the exact decimal digit count of a non-negative
// big.Int, used by the planner to decide whether an Exact result is
// itself large enough that its own digit count needs describing (the
// base case for building an ApproximateDigitsTower).
func DigitsOfBigInt(n *big.Int) uint64 {
	if n.Sign() == 0 {
		return 1
	}
	// big.Int has no direct digit-count method. BitLen-1 = ⌊log₂n⌋, so
	// ⌊(BitLen-1)·log₁₀2⌋+1 is either the digit count or one short of it;
	// one comparison against a power of ten settles which, without
	// materializing every digit.
	d := uint64(float64(n.BitLen()-1)*math.Log10(2)) + 1
	pow := new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(d), nil)
	if n.Cmp(pow) >= 0 {
		d++
	}
	return d
}

func splitExponent(text string) uint64 {
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == 'e' {
			var exp int64
			sign := int64(1)
			j := i + 1
			if j < len(text) && (text[j] == '+' || text[j] == '-') {
				if text[j] == '-' {
					sign = -1
				}
				j++
			}
			for ; j < len(text); j++ {
				exp = exp*10 + int64(text[j]-'0')
			}
			exp *= sign
			if exp < 0 {
				return 0
			}
			return uint64(exp)
		}
	}
	return 0
}

// DigitsOfDigits builds the next tower level from a digit count that is
// itself too large to print plainly: the digit count of d, computed via
// the same log10 closed form, promoted straight to ApproximateDigits.
func DigitsOfDigits(d uint64) uint64 {
	if d == 0 {
		return 1
	}
	return uint64(math.Floor(math.Log10(float64(d)))) + 1
}
