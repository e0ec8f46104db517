// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calcparse

// Config controls literal and operator recognition for one Parse call.
type Config struct {
	// TermialEnabled mirrors the caller's channel-level TERMIAL command
	// default; it is OR'd with any inline [termial]/!termial token found
	// in the text.
	TermialEnabled bool
	// DecimalSeparator is the active locale's decimal character.
	DecimalSeparator byte
	// IntegerConstructionLimit is Consts.IntegerConstructionLimit: a
	// parsed literal with more digits is rejected as UnparsableLiteral.
	IntegerConstructionLimit int64
}

// MightContainCalculation is the cheap early-reject predicate from
// spec.md §4.5's Constructed phase: true iff '!' or '?' occurs anywhere
// outside a masked inert region. It is deliberately simpler than Parse —
// no literal grammar, no nesting — so the common case of ordinary prose
// never pays for a full scan.
func MightContainCalculation(text string) bool {
	spans := maskRanges(text)
	for i := 0; i < len(text); i++ {
		if text[i] != '!' && text[i] != '?' {
			continue
		}
		if _, masked := inMask(spans, i); masked {
			continue
		}
		return true
	}
	return false
}

// Parse strips inline command tokens, masks inert regions, and extracts
// every CalculationJob from text in source order (spec.md §4.1). It
// returns the cleaned text the pipeline should keep as Comment.text
// alongside the jobs and the CommandSet requested inline.
func Parse(text string, cfg Config) ([]*CalculationJob, string, CommandSet) {
	cleaned, cmds := StripCommands(text)
	termialEnabled := cfg.TermialEnabled || cmds.Has(Termial)
	spans := maskRanges(cleaned)

	var jobs []*CalculationJob
	n := len(cleaned)
	for pos := 0; pos < n; {
		if end, masked := inMask(spans, pos); masked {
			pos = end
			continue
		}
		job, next, ok := scanJob(cleaned, pos, spans, cfg.DecimalSeparator, cfg.IntegerConstructionLimit, termialEnabled)
		if ok {
			jobs = append(jobs, job)
			pos = next
			continue
		}
		pos++
	}
	return jobs, cleaned, cmds
}

// findMatchingParen returns the index of the ')' matching the '(' at
// openIdx, honoring nested parens.
func findMatchingParen(text string, openIdx int) (int, bool) {
	depth := 0
	for i := openIdx; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return -1, false
}

// scanJob attempts to recognize one calculation starting at pos,
// returning ok=false if no calculation shape starts there (the caller
// then advances by one byte and keeps scanning, giving the greedy
// leftmost-longest behavior spec.md §4.1's output-ordering rule asks
// for). It implements, in order: unary-minus runs (negative_depth),
// prefix subfactorial, a numeric literal or parenthesized nested job as
// the base, then a postfix bang run and/or trailing termial marker.
//
// A single trailing '?' right after exactly one '!' is read as spec.md
// §8's worked example reads it — factorial first, termial of that result
// second — rather than as a degree-1 k-termial (which would collapse to
// an ordinary termial and give a different number); two or more bangs
// followed by '?' use the literal k-termial reading from §4.1 instead,
// since no worked example contradicts it there. See DESIGN.md.
func scanJob(text string, pos int, spans []span, decimalSep byte, limit int64, termialEnabled bool) (*CalculationJob, int, bool) {
	start := pos
	n := len(text)

	negDepth := uint(0)
	for pos < n && text[pos] == '-' {
		negDepth++
		pos++
	}

	prefixSub := false
	if pos < n && text[pos] == '!' {
		if lookahead := pos + 1; lookahead < n && (isDigit(text[lookahead]) || text[lookahead] == '(') {
			prefixSub = true
			pos++
		}
	}

	var base Base
	if pos < n && text[pos] == '(' {
		closeIdx, ok := findMatchingParen(text, pos)
		if !ok {
			return nil, start, false
		}
		inner, innerEnd, innerOK := scanJob(text, pos+1, spans, decimalSep, limit, termialEnabled)
		if innerOK && innerEnd == closeIdx {
			base = inner
		} else {
			// A parenthesized plain literal, minus signs folded into
			// negDepth: "(-3)!".
			p := pos + 1
			for p < closeIdx && text[p] == '-' {
				negDepth++
				p++
			}
			lit, next, ok := scanLiteral(text, p, decimalSep, limit)
			if !ok || next != closeIdx {
				return nil, start, false
			}
			base = lit
		}
		pos = closeIdx + 1
	} else {
		if _, masked := inMask(spans, pos); masked {
			return nil, start, false
		}
		lit, next, ok := scanLiteral(text, pos, decimalSep, limit)
		if !ok {
			return nil, start, false
		}
		base = lit
		pos = next
	}

	bangCount := 0
	for pos < n && text[pos] == '!' {
		if _, masked := inMask(spans, pos); masked {
			break
		}
		bangCount++
		pos++
	}

	trailingQ := false
	if pos < n && text[pos] == '?' {
		if _, masked := inMask(spans, pos); !masked {
			trailingQ = true
		}
	}

	wrapSub := func(j *CalculationJob) *CalculationJob {
		if !prefixSub {
			return j
		}
		return &CalculationJob{Base: j, IsSubfactorial: true}
	}

	switch {
	case bangCount == 0 && !prefixSub:
		if !trailingQ || !termialEnabled {
			return nil, start, false
		}
		pos++
		return &CalculationJob{Base: base, Level: 0, NegativeDepth: negDepth}, pos, true

	case bangCount == 1 && trailingQ && termialEnabled:
		pos++
		inner := &CalculationJob{Base: base, Level: 1, NegativeDepth: negDepth}
		outer := &CalculationJob{Base: inner, Level: 0}
		return wrapSub(outer), pos, true

	case bangCount >= 2 && trailingQ && termialEnabled:
		pos++
		job := &CalculationJob{Base: base, Level: uint(bangCount), IsKTermial: true, NegativeDepth: negDepth}
		return wrapSub(job), pos, true

	case bangCount > 0:
		job := &CalculationJob{Base: base, Level: uint(bangCount), NegativeDepth: negDepth}
		return wrapSub(job), pos, true

	case prefixSub:
		return &CalculationJob{Base: base, IsSubfactorial: true, NegativeDepth: negDepth}, pos, true

	default:
		return nil, start, false
	}
}
