// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package number provides the tagged sum type used to carry a computed
// value between the numeric engine, the planner and the renderer. Every
// regime the system can land in (exact, float, approximate digit count,
// digit-count tower, tetration) is its own concrete type; Number is a
// sealed interface that only this package can implement, the same trick
// the teacher uses for value.Value in robpike.io/ivy.
package number

import (
	"fmt"
	"math/big"
)

// Number is a computed result in one of six regimes. Once a value has
// been promoted to Tower or Tetration it never collapses back to a more
// precise regime; callers that only stringify a Number never need to
// know which regime produced it.
type Number interface {
	fmt.Stringer
	sealed()
}

// Exact is an arbitrary-precision integer result. It is non-negative for
// factorial, multifactorial and termial; the subfactorial recurrence
// (!n = n·!(n-1) + (-1)^n) can carry a transient negative sign during
// computation but every subfactorial of a natural number converges to a
// non-negative Exact. The "negative" presentation tag that spec.md's
// negative_depth produces is orthogonal to this and lives on
// planner.Calculation, not here.
type Exact struct {
	Int *big.Int
}

// NewExact wraps i. It does not copy i; callers must not mutate it afterward.
func NewExact(i *big.Int) Exact { return Exact{Int: i} }

func (e Exact) String() string { return e.Int.String() }
func (Exact) sealed()          {}

// Float is a high-precision binary float result, produced by the
// continuous extension of an operation (Gamma for factorial, the
// cosine-weighted continuation for multifactorial, etc.) at a configured
// bit precision.
type Float struct {
	Val  *big.Float
	Prec uint
}

// NewFloat wraps f at the given bit precision. It does not copy f.
func NewFloat(f *big.Float, prec uint) Float { return Float{Val: f, Prec: prec} }

func (f Float) String() string { return f.Val.Text('g', 10) }
func (Float) sealed()          {}

// Approximate is mantissa × 10^Exponent, mantissa in [1, 10). The
// planner collapses it to ApproximateDigits only once Exponent reaches
// Consts.ApproximateDigitsCollapseExponent; below that it leaves the
// planner as is, and the renderer formats it in scientific notation.
type Approximate struct {
	Mantissa float64
	Exponent int64
}

func (a Approximate) String() string {
	return fmt.Sprintf("%.4gE%d", a.Mantissa, a.Exponent)
}
func (Approximate) sealed() {}

// ApproximateDigits means "a number with approximately Digits decimal
// digits" (10^Digits, roughly). Digits is rounded toward +infinity when
// it represents "at least this many digits". Invariant: Digits >= 1.
type ApproximateDigits struct {
	Digits uint64
}

// NewApproximateDigits panics if d < 1: that is a programming-error
// invariant violation (spec.md §3 invariant b), never a condition user
// text can trigger, matching the teacher's convention of panicking via
// its Errorf only for internal contract violations.
func NewApproximateDigits(d uint64) ApproximateDigits {
	if d < 1 {
		panic(fmt.Sprintf("number: ApproximateDigits digit count must be >= 1, got %d", d))
	}
	return ApproximateDigits{Digits: d}
}

func (d ApproximateDigits) String() string { return fmt.Sprintf("~10^%d", d.Digits) }
func (ApproximateDigits) sealed()          {}

// ApproximateDigitsTower describes 10^10^…^d, a power-of-ten tower. The
// list is the tower read bottom-up; the top value (the innermost,
// smallest exponent) is last, matching spec.md's "top value last". It is
// used when the digit count of the digit count of the value is itself
// too large to print plainly.
type ApproximateDigitsTower struct {
	Tower []uint64
}

// NewApproximateDigitsTower panics on an empty tower: spec.md §3
// invariant (c) requires a tower be non-empty.
func NewApproximateDigitsTower(tower []uint64) ApproximateDigitsTower {
	if len(tower) == 0 {
		panic("number: ApproximateDigitsTower must be non-empty")
	}
	return ApproximateDigitsTower{Tower: tower}
}

func (t ApproximateDigitsTower) String() string {
	s := fmt.Sprintf("%d", t.Tower[len(t.Tower)-1])
	for i := len(t.Tower) - 2; i >= 0; i-- {
		s = fmt.Sprintf("10^%s", s)
		_ = t.Tower[i] // each remaining entry only confirms another tower level exists
	}
	return "10^" + s
}
func (ApproximateDigitsTower) sealed() {}

// Tetration is 10↑↑Height: iterated exponentiation, the final fallback
// for values too big even for a finite tower description.
type Tetration struct {
	Height uint64
}

func (t Tetration) String() string { return fmt.Sprintf("10↑↑%d", t.Height) }
func (Tetration) sealed()          {}
