// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeng

import (
	"math/big"
	"testing"
)

func referenceFactorial(n int64) *big.Int {
	r := big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		r.Mul(r, big.NewInt(i))
	}
	return r
}

func TestExactFactorialMatchesReference(t *testing.T) {
	for n := int64(0); n <= 200; n++ {
		got := ExactFactorial(n)
		want := referenceFactorial(n)
		if got.Cmp(want) != 0 {
			t.Fatalf("ExactFactorial(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestExactFactorialSmallValues(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 6}, {4, 24}, {5, 120}, {10, 3628800},
	}
	for _, c := range cases {
		got := ExactFactorial(c.n)
		if got.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("ExactFactorial(%d) = %s, want %d", c.n, got, c.want)
		}
	}
}

func TestExactTermial(t *testing.T) {
	cases := []struct{ n, want int64 }{
		{10, 55}, {5, 15}, {1, 1}, {0, 0},
	}
	for _, c := range cases {
		got := ExactTermial(c.n)
		if got.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("ExactTermial(%d) = %s, want %d", c.n, got, c.want)
		}
	}
}

func TestExactSubfactorial(t *testing.T) {
	cases := []struct{ n, want int64 }{
		{0, 1}, {1, 0}, {2, 1}, {3, 2}, {4, 9}, {5, 44},
	}
	for _, c := range cases {
		got := ExactSubfactorial(c.n)
		if got.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("ExactSubfactorial(%d) = %s, want %d", c.n, got, c.want)
		}
	}
}

func TestExactMultifactorialDouble(t *testing.T) {
	// 8!! = 8*6*4*2 = 384; 9!! = 9*7*5*3*1 = 945
	cases := []struct{ n int64; want int64 }{
		{8, 384}, {9, 945},
	}
	for _, c := range cases {
		got := ExactMultifactorial(c.n, 2)
		if got.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("ExactMultifactorial(%d, 2) = %s, want %d", c.n, got, c.want)
		}
	}
}

func TestExactKTermial(t *testing.T) {
	// 3-termial of 10: 10 + 7 + 4 + 1 = 22
	got := ExactKTermial(10, 3)
	if got.Cmp(big.NewInt(22)) != 0 {
		t.Errorf("ExactKTermial(10, 3) = %s, want 22", got)
	}
}

func TestIsFactorion(t *testing.T) {
	known := map[int64]bool{1: true, 2: true, 145: true, 40585: true}
	for n := int64(0); n <= 1_000_000; n++ {
		want := known[n]
		if got := IsFactorion(n); got != want {
			t.Fatalf("IsFactorion(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestIsFactorionMatchesDefinition(t *testing.T) {
	for n := int64(1); n <= 100_000; n++ {
		if IsFactorion(n) != (digitFactorialSum(n) == n) {
			t.Fatalf("IsFactorion(%d) disagrees with digit-factorial-sum definition", n)
		}
	}
}

func TestApproximateFactorialDigitCountWithinOne(t *testing.T) {
	for _, n := range []int64{50, 100, 500, 1000, 5000} {
		exact := referenceFactorial(n)
		exactDigits := uint64(len(exact.String()))
		approx := ApproximateFactorial(n)
		approxDigits := uint64(approx.Exponent) + 1
		diff := int64(exactDigits) - int64(approxDigits)
		if diff < -1 || diff > 1 {
			t.Errorf("n=%d: exact digits %d, approx digits %d, diff %d", n, exactDigits, approxDigits, diff)
		}
	}
}

func TestDigitsFactorialWithinOneOfExact(t *testing.T) {
	for _, n := range []int64{50, 100, 500, 1000} {
		exact := referenceFactorial(n)
		exactDigits := uint64(len(exact.String()))
		got := DigitsFactorial(n)
		diff := int64(exactDigits) - int64(got.Digits)
		if diff < -1 || diff > 1 {
			t.Errorf("DigitsFactorial(%d) = %d, exact has %d digits", n, got.Digits, exactDigits)
		}
	}
}

func TestFloatFactorialAgreesAtIntegers(t *testing.T) {
	// Gamma(n+1) should match n! closely for small n.
	for _, n := range []int64{5, 10} {
		want := referenceFactorial(n)
		got := gammaMultifactorialAnchor(float64(n), 1)
		wf, _ := new(big.Float).SetInt(want).Float64()
		rel := (got - wf) / wf
		if rel < -1e-6 || rel > 1e-6 {
			t.Errorf("gammaMultifactorialAnchor(%d,1) = %g, want close to %g", n, got, wf)
		}
	}
}

func TestDigitsOfBigInt(t *testing.T) {
	cases := []struct {
		n    *big.Int
		want uint64
	}{
		{big.NewInt(0), 1},
		{big.NewInt(9), 1},
		{big.NewInt(10), 2},
		{big.NewInt(999), 3},
		{referenceFactorial(100), uint64(len(referenceFactorial(100).String()))},
	}
	for _, c := range cases {
		if got := DigitsOfBigInt(c.n); got != c.want {
			t.Errorf("DigitsOfBigInt(%s) = %d, want %d", c.n, got, c.want)
		}
	}
}
