// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"github.com/tolik518/factorion-bot/calcparse"
)

// Extracted is the second phase: the Parser has run (or the pipeline
// short-circuited before it could).
type Extracted[M any] struct {
	base[M]
	jobs    []*calcparse.CalculationJob
	cleaned string
}

// Extract runs spec.md §4.5 phase 1→2: the DONT_CHECK short-circuit, the
// early-reject predicate, locale resolution, and — only if both of those
// pass — the Parser itself. Locale lookup is deferred past the
// early-reject check so the common case (ordinary prose, no '!'/'?')
// never pays for a map lookup it doesn't need.
func (c *Constructed[M]) Extract() *Extracted[M] {
	e := &Extracted[M]{base: c.base}

	if e.commands.Has(calcparse.DontCheck) {
		e.status = Status{Kind: NotAFactorial}
		return e
	}
	if !calcparse.MightContainCalculation(e.text) {
		e.status = Status{Kind: NotAFactorial}
		return e
	}

	loc, err := e.consts.Locales.Get(e.localeKey)
	if err != nil {
		e.consts.Log.Debug().Str("locale_key", e.localeKey).Err(err).Msg("pipeline: locale lookup failed")
		e.status = Status{Kind: StatusError, ErrorKind: ErrorKindLocale}
		return e
	}
	e.loc = loc

	decimalSep := byte('.')
	if d := loc.Format.NumberFormat.Decimal; d != "" {
		decimalSep = d[0]
	}
	cfg := calcparse.Config{
		TermialEnabled:           e.commands.Has(calcparse.Termial),
		DecimalSeparator:         decimalSep,
		IntegerConstructionLimit: e.consts.IntegerConstructionLimit,
	}
	jobs, cleaned, inlineCmds := calcparse.Parse(e.text, cfg)
	e.jobs = jobs
	e.cleaned = cleaned
	e.commands |= inlineCmds

	if len(jobs) == 0 {
		e.status = Status{Kind: NoFactorial}
		return e
	}
	e.status = Status{Kind: FactorialsFound}
	e.consts.Log.Debug().Int("jobs", len(jobs)).Msg("pipeline: extracted calculation jobs")
	return e
}

// Status reports this phase's outcome.
func (e *Extracted[M]) Status() Status { return e.status }

// Metadata returns the caller-supplied opaque metadata, unchanged.
func (e *Extracted[M]) Metadata() M { return e.meta }

// Jobs exposes the parsed job tree, for tests and the "Manual" API tier.
func (e *Extracted[M]) Jobs() []*calcparse.CalculationJob { return e.jobs }
