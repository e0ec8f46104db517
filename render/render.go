// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render turns a list of resolved planner.Calculations into the
// final reply text: it walks each Calculation's template, enforces the
// reply's byte budget by trying progressively more aggressive downgrade
// strategies, and assembles the notes block and disclaimer. It plays the
// role the teacher's value/format.go plays for ivy — picking a format
// string and filling it in — except the "format string" here comes from
// a loaded locale.Data instead of an Int/Char format verb.
package render

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/tolik518/factorion-bot/calcparse"
	"github.com/tolik518/factorion-bot/consts"
	"github.com/tolik518/factorion-bot/locale"
	"github.com/tolik518/factorion-bot/numeng"
	"github.com/tolik518/factorion-bot/planner"
)

// ErrBudgetUnsatisfiable is returned when even the most aggressive
// downgrade (count-only, "no_post" note) does not fit maxReplyLen. It is
// the one condition spec.md §7 allows the renderer to refuse on; every
// other size-budget problem is absorbed by a downgrade strategy instead.
var ErrBudgetUnsatisfiable = errors.New("render: no strategy fits within max_reply_length")

// Format renders calcs into the final reply body. mention is the
// display name to @-mention, or "" to omit the leading mention line.
// tooLong reports whether the size-budget ladder had to fall back to the
// count-only strategy (spec.md §4.4 strategy 4) — callers use this to
// set the pipeline's REPLY_WOULD_BE_TOO_LONG status.
func Format(c *consts.Consts, calcs []*planner.Calculation, loc *locale.Data, cmds calcparse.CommandSet, maxReplyLen int, mention string) (reply string, tooLong bool, err error) {
	noNote := cmds.Has(calcparse.NoNote)
	forceScientific := cmds.Has(calcparse.Shorten)

	// maxReplyLen <= 0 means "no limit" (adapter.Eval and cmd/factorionbot
	// both document this): the natural-regime strategy always fits.
	try := func(body string, notes noteFlags, factorion string) (string, bool) {
		assembled := assemble(loc, noNote, mention, body, notes, factorion)
		fits := maxReplyLen <= 0 || len([]byte(assembled)) <= maxReplyLen
		return assembled, fits
	}

	// Strategy 1: natural regime for every entry (still honoring an
	// explicit SHORTEN command, which eagerly requests scientific
	// notation regardless of budget pressure).
	if body, notes := renderAll(c, loc, calcs, forceScientific); true {
		if assembled, ok := try(body, notes, factorionNote(calcs, cmds)); ok {
			return assembled, false, nil
		}
	}

	// Strategy 2: shorten every Exact literal to scientific notation.
	if body, notes := renderAll(c, loc, calcs, true); true {
		if assembled, ok := try(body, notes, factorionNote(calcs, cmds)); ok {
			return assembled, false, nil
		}
	}

	// Strategy 3: drop trailing entries, still scientific, until it fits
	// or nothing is left.
	for keep := len(calcs) - 1; keep >= 1; keep-- {
		body, notes := renderAll(c, loc, calcs[:keep], true)
		notes.Remove = true
		if assembled, ok := try(body, notes, factorionNote(calcs[:keep], cmds)); ok {
			return assembled, false, nil
		}
	}

	// Strategy 4: render only the count, with the "no_post" note. Even
	// when this still doesn't fit maxReplyLen, it is the best-effort
	// reply available — callers get it back alongside the error rather
	// than nothing at all.
	var notes noteFlags
	notes.NoPost = true
	assembled, ok := try(countOnlyBody(len(calcs)), notes, "")
	if ok {
		return assembled, true, nil
	}

	return assembled, true, errors.Wrapf(ErrBudgetUnsatisfiable, "max_reply_length=%d", maxReplyLen)
}

func renderAll(c *consts.Consts, loc *locale.Data, calcs []*planner.Calculation, scientific bool) (string, noteFlags) {
	var notes noteFlags
	lines := make([]string, 0, len(calcs))
	for _, calc := range calcs {
		line, flag := renderOne(c, loc, calc, scientific)
		lines = append(lines, line)
		notes.add(flag)
	}
	return strings.Join(lines, "\n"), notes
}

// countOnlyBody has no locale template of its own (spec.md's locale
// schema never names one for the count-only strategy) so it stays in
// plain English, same as the factorion note.
func countOnlyBody(n int) string {
	word := "calculation"
	if n != 1 {
		word = "calculations"
	}
	return fmt.Sprintf("I found %d %s, but my reply would be too long to post.", n, word)
}

func assemble(loc *locale.Data, noNote bool, mention, body string, notes noteFlags, factorion string) string {
	parts := make([]string, 0, 4)
	// The @-mention line is unconditional (spec.md:107) — NO_NOTE only
	// suppresses the disclaimer and the factorion educational note
	// (spec.md:146), not the mention.
	if mention != "" {
		parts = append(parts, applyTemplate(loc.Notes.Mention, map[string]string{"mention": mention}))
	}
	parts = append(parts, body)
	if text := notes.render(loc); text != "" {
		parts = append(parts, text)
	}
	if factorion != "" && !noNote {
		parts = append(parts, factorion)
	}
	if !noNote && loc.BotDisclaimer != "" {
		parts = append(parts, loc.BotDisclaimer)
	}
	return strings.Join(parts, "\n\n")
}

// factorionNote implements spec.md §4.3/§4.4's educational aside: any
// Exact result at or below 10^6 that is one of the four known base-10
// factorions gets named, in English, regardless of the active locale.
func factorionNote(calcs []*planner.Calculation, cmds calcparse.CommandSet) string {
	if cmds.Has(calcparse.NoNote) {
		return ""
	}
	seen := map[int64]bool{}
	var hits []int64
	for _, calc := range calcs {
		n, ok := smallExactValue(calc)
		if !ok || n > 1_000_000 {
			continue
		}
		if numeng.IsFactorion(n) && !seen[n] {
			seen[n] = true
			hits = append(hits, n)
		}
	}
	if len(hits) == 0 {
		return ""
	}
	names := make([]string, len(hits))
	for i, n := range hits {
		names[i] = fmt.Sprintf("%d", n)
	}
	return "Fun fact: " + strings.Join(names, ", ") + " " + pluralIs(len(hits)) +
		" a factorion — a number equal to the sum of the factorials of its own digits."
}

func pluralIs(n int) string {
	if n == 1 {
		return "is"
	}
	return "are"
}
