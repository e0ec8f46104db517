// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package consts holds the read-only configuration threaded explicitly
// through every stage of the library: numeric-regime limits, float
// precision, the loaded locale store and a logger. It plays the role
// robpike.io/ivy's config.Config plays for ivy — a single object handed
// to every component — except that, per spec.md §5, Consts is immutable
// after construction: there is no process-wide mutable state and no
// Set* mutator, only a functional-options constructor.
package consts

import (
	"math/big"

	"github.com/rs/zerolog"

	"github.com/tolik518/factorion-bot/locale"
)

// Consts is shared read-only across every pipeline invocation. It is
// safe to call from multiple goroutines concurrently once constructed.
type Consts struct {
	// FloatPrecision is the bit precision used for every Float result
	// and every continuous-extension computation.
	FloatPrecision uint

	// UpperCalculationLimit bounds n for which factorial/multifactorial
	// is still computed exactly.
	UpperCalculationLimit int64
	// UpperSubfactorialLimit is the exact-computation ceiling for
	// subfactorial; it may differ from UpperCalculationLimit because
	// the subfactorial recurrence is cheaper per step.
	UpperSubfactorialLimit int64
	// UpperTermialLimit is the exact-computation ceiling for termial.
	UpperTermialLimit int64

	// UpperApproximationLimit bounds n for which the Stirling-split
	// approximate regime still applies (beyond it, only a Float
	// continuation or a digit count is attempted).
	UpperApproximationLimit int64
	// UpperTermialApproximationLimit is the approximation-regime
	// ceiling for termial.
	UpperTermialApproximationLimit int64

	// IntegerConstructionLimit is a decimal-exponent ceiling: a parsed
	// literal with more digits than this is rejected by the parser as
	// "too big to parse" rather than constructed.
	IntegerConstructionLimit int64

	// ApproximateDigitsCollapseExponent is the exponent magnitude at
	// which an internal Approximate(mantissa, exponent) is collapsed
	// into ApproximateDigits before leaving the planner.
	ApproximateDigitsCollapseExponent int64

	// TowerHeightLimit bounds how tall an ApproximateDigitsTower may
	// grow before the planner collapses it to Tetration instead.
	TowerHeightLimit int

	// NumberDecimalsScientific is the number of mantissa decimals used
	// when the renderer downgrades to scientific notation.
	NumberDecimalsScientific int

	// Locales is the loaded, version-checked locale store.
	Locales *locale.Store

	// Log receives structured debug events for phase transitions and
	// regime fallbacks. Defaults to a no-op logger so the library is
	// silent unless a host wires one in, following the pack's
	// rs/zerolog idiom (see DESIGN.md).
	Log zerolog.Logger

	bigUpperCalculationLimit *big.Int
}

// Option configures a Consts under construction.
type Option func(*Consts)

// WithFloatPrecision sets the bit precision used for Float results.
func WithFloatPrecision(bits uint) Option {
	return func(c *Consts) { c.FloatPrecision = bits }
}

// WithCalculationLimits sets the exact-computation ceilings for
// factorial/multifactorial, subfactorial and termial.
func WithCalculationLimits(factorial, subfactorial, termial int64) Option {
	return func(c *Consts) {
		c.UpperCalculationLimit = factorial
		c.UpperSubfactorialLimit = subfactorial
		c.UpperTermialLimit = termial
	}
}

// WithApproximationLimits sets the Stirling-approximation ceilings.
func WithApproximationLimits(factorial, termial int64) Option {
	return func(c *Consts) {
		c.UpperApproximationLimit = factorial
		c.UpperTermialApproximationLimit = termial
	}
}

// WithIntegerConstructionLimit sets the parser's decimal-exponent ceiling.
func WithIntegerConstructionLimit(limit int64) Option {
	return func(c *Consts) { c.IntegerConstructionLimit = limit }
}

// WithTowerHeightLimit sets the maximum tower height before collapsing
// to Tetration.
func WithTowerHeightLimit(height int) Option {
	return func(c *Consts) { c.TowerHeightLimit = height }
}

// WithApproximateDigitsCollapseExponent sets the exponent magnitude at
// which Approximate collapses to ApproximateDigits.
func WithApproximateDigitsCollapseExponent(exp int64) Option {
	return func(c *Consts) { c.ApproximateDigitsCollapseExponent = exp }
}

// WithScientificDecimals sets the renderer's scientific-notation mantissa
// decimal count.
func WithScientificDecimals(n int) Option {
	return func(c *Consts) { c.NumberDecimalsScientific = n }
}

// WithLocales sets the loaded locale store.
func WithLocales(store *locale.Store) Option {
	return func(c *Consts) { c.Locales = store }
}

// WithLogger sets the structured logger used for debug events.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Consts) { c.Log = log }
}

// defaults mirror the factorion-bot project's long-standing production
// defaults: exact factorial up to 1000!, Stirling approximation up to
// 10 million!, a 1,000,000-digit parser ceiling, float work at 128 bits.
func defaults() *Consts {
	return &Consts{
		FloatPrecision:                     128,
		UpperCalculationLimit:              1_000,
		UpperSubfactorialLimit:             1_000,
		UpperTermialLimit:                  100_000,
		UpperApproximationLimit:            10_000_000,
		UpperTermialApproximationLimit:     1_000_000_000_000,
		IntegerConstructionLimit:           1_000_000,
		ApproximateDigitsCollapseExponent:  1_000_000,
		TowerHeightLimit:                   4,
		NumberDecimalsScientific:           6,
		Log:                                zerolog.Nop(),
	}
}

// New builds an immutable Consts from defaults overridden by opts.
func New(opts ...Option) (*Consts, error) {
	c := defaults()
	for _, opt := range opts {
		opt(c)
	}
	if c.Locales == nil {
		store, err := locale.Default()
		if err != nil {
			return nil, err
		}
		c.Locales = store
	}
	c.bigUpperCalculationLimit = big.NewInt(c.UpperCalculationLimit)
	return c, nil
}

// BigUpperCalculationLimit returns UpperCalculationLimit as a *big.Int,
// cached at construction time so regime-selection comparisons in the hot
// path never allocate.
func (c *Consts) BigUpperCalculationLimit() *big.Int {
	return c.bigUpperCalculationLimit
}
