// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calcparse locates factorial-like notations in free-form text
// and turns them into an ordered list of unresolved CalculationJob trees,
// the way robpike.io/ivy's scan package turns raw text into a token
// stream for its own parser.
package calcparse

import "github.com/tolik518/factorion-bot/number"

// Base is either a NumberLiteral or a *CalculationJob, matching spec.md
// §3's "base which is either a Number literal or another CalculationJob
// (nesting)". It is a sealed interface for the same reason number.Number
// is: every shape factorion-bot can produce is an explicit variant.
type Base interface {
	isBase()
}

// NumberLiteral wraps a successfully parsed numeric literal.
type NumberLiteral struct {
	Value number.Number
}

func (NumberLiteral) isBase() {}

// UnparsableLiteral marks a numeric literal whose magnitude exceeded the
// configured integer-construction limit. It is not an error: it
// propagates as an unevaluated calculation (spec.md §7, "input too large
// to construct"), which the planner turns into a "too big to compute"
// marker rather than dropping the job silently.
type UnparsableLiteral struct{}

func (UnparsableLiteral) isBase() {}

// CalculationJob is one unresolved operation application: apply the
// operation identified by (Level, IsSubfactorial, IsKTermial) to Base.
// NegativeDepth counts the leading minus signs; the planner computes on
// the absolute value and tags the result negative when the count is odd.
//
// Level: 0 = termial, 1 = single factorial, k>=2 = k-multifactorial. It
// is independent of IsSubfactorial and IsKTermial, which retag the same
// Level field's operand into the subfactorial or k-termial family per
// spec.md §3 ("The level+tag triple uniquely identifies which math
// function will be applied").
type CalculationJob struct {
	Base           Base
	Level          uint
	IsSubfactorial bool
	IsKTermial     bool
	NegativeDepth  uint
}

func (*CalculationJob) isBase() {}
