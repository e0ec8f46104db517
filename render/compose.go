// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"strconv"
	"strings"

	"github.com/tolik518/factorion-bot/consts"
	"github.com/tolik518/factorion-bot/locale"
	"github.com/tolik518/factorion-bot/number"
	"github.com/tolik518/factorion-bot/planner"
)

// applyTemplate does spec.md §3's "literal placeholders {name},
// replaced recursively during rendering" substitution. Recursion here
// just means the substituted value may itself have come from a nested
// applyTemplate call (stepName composes outward one layer at a time);
// this function itself performs one flat pass of "{key}" -> value.
func applyTemplate(tmpl string, vals map[string]string) string {
	out := tmpl
	for k, v := range vals {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

// renderOne composes one Calculation's full sentence ("{name} is
// {result}", or the §7 "too big to compute" marker for an unevaluated
// calculation) and reports which note flag it triggers.
func renderOne(c *consts.Consts, loc *locale.Data, calc *planner.Calculation, scientific bool) (string, string) {
	if calc.Unevaluated {
		// Value/Steps may be unset here (e.g. an UnparsableLiteral never
		// even reached a Number), so the name is built only when there
		// is a literal to describe.
		name := "this calculation"
		if calc.Value != nil {
			name = composeName(loc, calc)
		}
		return name + " (too big to compute)", "tooBig"
	}

	name := composeName(loc, calc)
	resultStr, flag := resultText(c, loc, calc.Result, scientific)
	sentence := applyTemplate(loc.Format.Nest, map[string]string{"factorial": name, "result": resultStr})
	if loc.Format.CapitalizeCalc {
		sentence = capitalizeFirst(sentence)
	}
	return sentence, flag
}

// composeName builds the nested operation phrase ("termial of factorial
// of 5") from the innermost literal outward, per spec.md §4.2's
// innermost-base-first step order (see DESIGN.md for why this order
// still produces the §8 worked examples' text regardless of which way a
// given worked example happens to print its (level, is_sub) tuples).
func composeName(loc *locale.Data, calc *planner.Calculation) string {
	cur := numberText(loc, calc.Value, false)
	for _, step := range calc.Steps {
		cur = stepName(loc, step, cur)
	}
	if calc.Negative {
		cur = applyTemplate(loc.Format.Negative, map[string]string{"number": cur})
	}
	return cur
}

func stepName(loc *locale.Data, step planner.Step, numberStr string) string {
	switch {
	case step.IsSubfactorial:
		return applyTemplate(loc.Format.Sub, map[string]string{"number": numberStr})
	case step.IsKTermial:
		// The locale has no dedicated k-termial template (spec.md §6's
		// schema only lists termial/factorial/uple/sub/negative/nest);
		// a degree-N k-termial reuses the plain termial template with
		// the same {mult} prefix the uple template applies to
		// k-factorial, since "double termial of n" composes the same
		// way "double factorial of n" does.
		prefix := multiplicityPrefix(loc, step.Level)
		return prefix + applyTemplate(loc.Format.Termial, map[string]string{"number": numberStr})
	case step.Level == 0:
		return applyTemplate(loc.Format.Termial, map[string]string{"number": numberStr})
	case step.Level == 1:
		return applyTemplate(loc.Format.Factorial, map[string]string{"number": numberStr})
	default:
		prefix := multiplicityPrefix(loc, step.Level)
		return applyTemplate(loc.Format.Uple, map[string]string{"mult": prefix, "number": numberStr})
	}
}

// multiplicityPrefix resolves the locale's num_overrides word for a
// k-factorial/k-termial degree (e.g. "double "), falling back to a plain
// numeral ("6-") when force_num is set and no override exists.
func multiplicityPrefix(loc *locale.Data, level uint) string {
	if s, ok := loc.NumOverride(int(level)); ok {
		return s
	}
	if loc.Format.ForceNum {
		return strconv.FormatUint(uint64(level), 10) + "-"
	}
	return ""
}

// numberText formats a Number for embedding as an inner {number} slot
// (as opposed to resultText, which formats the outermost {result}
// slot). Only Exact and Float literals ever reach here: the parser's
// scanLiteral never produces anything else as a CalculationJob base.
func numberText(loc *locale.Data, n number.Number, scientific bool) string {
	switch v := n.(type) {
	case number.Exact:
		return applyTemplate(loc.Format.Exact, map[string]string{"result": v.Int.String()})
	case number.Float:
		return applyTemplate(loc.Format.RoughNumber, map[string]string{"result": v.String()})
	default:
		return n.String()
	}
}

// resultText formats the outermost {result} slot and reports which
// note-flag key the chosen regime implies. number.Approximate does reach
// here in practice: under default Consts its collapse to
// ApproximateDigits only fires once the exponent crosses
// ApproximateDigitsCollapseExponent (1,000,000 by default), so e.g.
// 5000!'s exponent (16325) stays Approximate all the way to render (see
// numeng.CollapseApproximate, planner's TestExecuteApproximationRegime).
// The default case remains a safety net for any regime not named above —
// it still renders something reasonable rather than panicking on an
// input the parser accepted, per spec.md §7 — but is not expected to
// ever actually fire.
func resultText(c *consts.Consts, loc *locale.Data, n number.Number, scientific bool) (string, string) {
	switch v := n.(type) {
	case number.Exact:
		if scientific {
			return applyTemplate(loc.Format.Exact, map[string]string{"result": scientificNotation(c, v)}), "round"
		}
		return applyTemplate(loc.Format.Exact, map[string]string{"result": v.Int.String()}), ""
	case number.Float:
		return applyTemplate(loc.Format.Rough, map[string]string{"result": v.String()}), "approx"
	case number.Approximate:
		return applyTemplate(loc.Format.Approx, map[string]string{"result": approximateNotation(c, v)}), "approx"
	case number.ApproximateDigits:
		return applyTemplate(loc.Format.Digits, map[string]string{"result": strconv.FormatUint(v.Digits, 10)}), "digits"
	case number.ApproximateDigitsTower:
		return applyTemplate(loc.Format.Order, map[string]string{"result": strconv.Itoa(len(v.Tower))}), "tower"
	case number.Tetration:
		return applyTemplate(loc.Format.AllThat, map[string]string{"result": strconv.FormatUint(v.Height, 10)}), "tetration"
	default:
		return applyTemplate(loc.Format.Approx, map[string]string{"result": n.String()}), "approx"
	}
}

// approximateNotation renders a number.Approximate (mantissa in [1, 10),
// base-10 exponent) the same mantissa×10^exponent shape
// scientificNotation gives an Exact, using the same
// Consts.NumberDecimalsScientific precision instead of Approximate's own
// fixed %.4g String().
func approximateNotation(c *consts.Consts, a number.Approximate) string {
	return strconv.FormatFloat(a.Mantissa, 'f', c.NumberDecimalsScientific, 64) + "×10^" + strconv.FormatInt(a.Exponent, 10)
}

// scientificNotation renders n in mantissa×10^exponent form with
// Consts.NumberDecimalsScientific digits of mantissa, spec.md §4.4
// strategy (2)'s shortening.
func scientificNotation(c *consts.Consts, e number.Exact) string {
	neg := e.Int.Sign() < 0
	digits := e.Int.Text(10)
	if neg {
		digits = digits[1:]
	}
	decimals := c.NumberDecimalsScientific
	exponent := len(digits) - 1

	mantissa := digits[:1]
	frac := digits[1:]
	if len(frac) > decimals {
		frac = frac[:decimals]
	}
	for len(frac) < decimals {
		frac += "0"
	}
	if decimals > 0 {
		mantissa += "." + frac
	}
	sign := ""
	if neg {
		sign = "-"
	}
	return sign + mantissa + "×10^" + strconv.Itoa(exponent)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// smallExactValue reports the int64 value of calc's Exact result, for
// the factorion-note check (spec.md §4.3 bounds this to results <= 10^6,
// comfortably within int64).
func smallExactValue(calc *planner.Calculation) (int64, bool) {
	if calc.Unevaluated {
		return 0, false
	}
	e, ok := calc.Result.(number.Exact)
	if !ok || !e.Int.IsInt64() {
		return 0, false
	}
	return e.Int.Int64(), true
}
