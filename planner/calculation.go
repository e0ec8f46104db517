// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planner turns a parsed calcparse.CalculationJob tree into one
// or more resolved planner.Calculations, dispatching each operator
// application to the numeric engine and falling back between regimes
// (exact → approximate → float → digits-only → tower → tetration) as
// the operand's magnitude demands. It plays the role
// robpike.io/ivy's exec.Context plays for ivy's evaluator.
package planner

import "github.com/tolik518/factorion-bot/number"

// Step records one applied operation, innermost to outermost, mirroring
// spec.md §3's "(level, is_subfactorial) pairs". IsKTermial is an
// extension beyond the literal pair the renderer needs to pick the right
// locale template (a k-termial and a plain termial share Level == 0 is
// not the case here — a k-termial keeps its bang-run Level — so the flag
// disambiguates which name template applies).
type Step struct {
	Level          uint
	IsSubfactorial bool
	IsKTermial     bool
}

// Calculation is one resolved, user-facing result: spec.md §3's
// "Calculation (resolved)". Unevaluated marks the spec.md §7 cases
// ("input too large to construct", "unsupported domain") that never
// produce a Result; Reason is a short machine-readable tag the renderer
// turns into locale text, not user-facing prose itself.
type Calculation struct {
	Value       number.Number
	Steps       []Step
	Result      number.Number
	Negative    bool
	Unevaluated bool
	Reason      string
}

// Unevaluated reason tags (spec.md §7).
const (
	ReasonTooBigToParse    = "too_big_to_parse"
	ReasonUnsupportedInput = "unsupported_input"
)
