// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"github.com/tolik518/factorion-bot/calcparse"
	"github.com/tolik518/factorion-bot/planner"
)

// Calculated is the third phase: every job has gone through the
// Planner, or the pipeline short-circuited before reaching it.
type Calculated[M any] struct {
	base[M]
	calcs []*planner.Calculation
}

// Calculate runs spec.md §4.5 phase 2→3. A status already set to
// NOT_A_FACTORIAL or NO_FACTORIAL passes through untouched — there is
// nothing to plan. planner.ErrUnsupportedBase (a calcparse.Base variant
// this build doesn't know about) is the one condition that is a genuine
// programming error rather than bad input; it surfaces as
// ERROR(internal) instead of panicking, per spec.md §7.
func (e *Extracted[M]) Calculate() *Calculated[M] {
	c := &Calculated[M]{base: e.base}
	if c.status.Kind == NotAFactorial || c.status.Kind == NoFactorial || c.status.Kind == StatusError {
		return c
	}

	showSteps := c.commands.Has(calcparse.Steps)
	calcs := make([]*planner.Calculation, 0, len(e.jobs))
	allUnevaluated := true
	for _, job := range e.jobs {
		results, err := planner.Execute(c.consts, job, showSteps)
		if err != nil {
			c.consts.Log.Error().Err(err).Msg("pipeline: planner returned an unexpected error")
			c.status = Status{Kind: StatusError, ErrorKind: ErrorKindInternal}
			return c
		}
		for _, r := range results {
			if !r.Unevaluated {
				allUnevaluated = false
			}
		}
		calcs = append(calcs, results...)
	}
	c.calcs = calcs

	if len(calcs) > 0 && allUnevaluated {
		c.status = Status{Kind: NumberTooBigToCalculate}
		return c
	}
	c.status = Status{Kind: FactorialsFound}
	return c
}

// Status reports this phase's outcome.
func (c *Calculated[M]) Status() Status { return c.status }

// Metadata returns the caller-supplied opaque metadata, unchanged.
func (c *Calculated[M]) Metadata() M { return c.meta }

// Calculations exposes the resolved results, for tests and the "Manual"
// API tier.
func (c *Calculated[M]) Calculations() []*planner.Calculation { return c.calcs }
