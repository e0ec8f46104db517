// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planner

import (
	"math"
	"math/big"

	"github.com/pkg/errors"

	"github.com/tolik518/factorion-bot/calcparse"
	"github.com/tolik518/factorion-bot/consts"
	"github.com/tolik518/factorion-bot/number"
	"github.com/tolik518/factorion-bot/numeng"
)

// Execute resolves one outermost calcparse.CalculationJob into one or
// more Calculations. Normally exactly one is returned, with Steps
// describing the whole nested chain (spec.md §4.2's reporting policy);
// showSteps additionally reports every intermediate step as its own
// Calculation, for the STEPS command.
func Execute(c *consts.Consts, job *calcparse.CalculationJob, showSteps bool) ([]*Calculation, error) {
	base, ops, negDepth := unwindChain(job)

	var value number.Number
	switch b := base.(type) {
	case calcparse.NumberLiteral:
		value = b.Value
	case calcparse.UnparsableLiteral:
		return []*Calculation{{Unevaluated: true, Reason: ReasonTooBigToParse}}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedBase, "got %T", base)
	}

	negative := negDepth%2 == 1
	current := value
	steps := make([]Step, 0, len(ops))
	results := make([]number.Number, 0, len(ops))

	for _, op := range ops {
		res, unevaluated, reason := applyOp(c, current, op)
		if unevaluated {
			return []*Calculation{{
				Value:       value,
				Steps:       append([]Step(nil), steps...),
				Negative:    negative,
				Unevaluated: true,
				Reason:      reason,
			}}, nil
		}
		step := Step{Level: op.level, IsSubfactorial: op.isSub, IsKTermial: op.isKTermial}
		steps = append(steps, step)
		results = append(results, res)
		current = res
	}

	final := &Calculation{Value: value, Steps: steps, Result: current, Negative: negative}
	if !showSteps || len(ops) <= 1 {
		return []*Calculation{final}, nil
	}

	all := make([]*Calculation, 0, len(ops))
	for i := range ops {
		all = append(all, &Calculation{
			Value:    value,
			Steps:    append([]Step(nil), steps[:i+1]...),
			Result:   results[i],
			Negative: negative,
		})
	}
	return all, nil
}

// stepOp is the internal, flattened form of one CalculationJob nesting
// level, innermost first.
type stepOp struct {
	level      uint
	isSub      bool
	isKTermial bool
}

// unwindChain walks a CalculationJob's Base chain down to its literal,
// returning that literal, the chain of operations innermost-first, and
// the total NegativeDepth of every job in the chain (leading minus signs
// may sit before the literal or before a parenthesized group).
func unwindChain(job *calcparse.CalculationJob) (base calcparse.Base, ops []stepOp, negDepth uint) {
	var chain []*calcparse.CalculationJob
	cur := job
	for {
		chain = append(chain, cur)
		negDepth += cur.NegativeDepth
		if inner, ok := cur.Base.(*calcparse.CalculationJob); ok {
			cur = inner
			continue
		}
		base = cur.Base
		break
	}
	ops = make([]stepOp, len(chain))
	for i, j := range chain {
		ops[len(chain)-1-i] = stepOp{level: j.Level, isSub: j.IsSubfactorial, isKTermial: j.IsKTermial}
	}
	return base, ops, negDepth
}

// logRegime emits the structured debug event SPEC_FULL.md §6 promises
// for every numeric-engine regime fallback: exact computation (the
// common case) logs nothing, but every step down the ladder — the
// Stirling-split approximation, the digit-count/tower regimes, a Float
// continuation, or a Tetration increment — does, so a host wiring
// consts.WithLogger can see exactly where a given input landed.
func logRegime(c *consts.Consts, op, regime string, input number.Number) {
	c.Log.Debug().Str("op", op).Str("regime", regime).Str("input", input.String()).Msg("planner: regime fallback")
}

// applyOp dispatches one operator application through spec.md §4.2's
// regime-selection ladder. unevaluated reports spec.md §7's "unsupported
// domain" case (non-integer input with no continuation).
func applyOp(c *consts.Consts, input number.Number, op stepOp) (result number.Number, unevaluated bool, reason string) {
	switch {
	case op.isSub:
		return applySubfactorial(c, input)
	case op.isKTermial:
		return applyKTermial(c, input, int(op.level))
	case op.level == 0:
		return applyTermial(c, input)
	default:
		return applyMultifactorial(c, input, int(op.level))
	}
}

func applyMultifactorial(c *consts.Consts, input number.Number, k int) (number.Number, bool, string) {
	switch v := input.(type) {
	case number.Exact:
		n := v.Int
		if n.Sign() < 0 {
			// negative_depth already carries sign information; a
			// literal negative Exact reaching here means an earlier
			// subfactorial step produced a transient negative value
			// feeding into a further factorial-like step, which has no
			// domain meaning.
			return nil, true, ReasonUnsupportedInput
		}
		if n.Cmp(c.BigUpperCalculationLimit()) <= 0 {
			nn, _ := safeInt64(n)
			return number.NewExact(numeng.ExactMultifactorial(nn, k)), false, ""
		}
		if n.Cmp(big.NewInt(c.UpperApproximationLimit)) <= 0 {
			logRegime(c, "multifactorial", "approximate", v)
			nn, _ := safeInt64(n)
			a := numeng.ApproximateMultifactorial(nn, k)
			return numeng.CollapseApproximate(c, a), false, ""
		}
		logRegime(c, "multifactorial", "digits_or_tower", v)
		return digitsOrTowerForBigInt(c, n, k), false, ""
	case number.Float:
		logRegime(c, "multifactorial", "float_continuation", v)
		return numeng.FloatMultifactorial(c, v.Val, k), false, ""
	case number.ApproximateDigits:
		logRegime(c, "multifactorial", "tower_seed", v)
		return growTower(c, ApproximateDigitsTowerSeed(v)), false, ""
	case number.ApproximateDigitsTower:
		logRegime(c, "multifactorial", "tower_grow", v)
		return growTower(c, v), false, ""
	case number.Tetration:
		logRegime(c, "multifactorial", "tetration_increment", v)
		return number.Tetration{Height: v.Height + 1}, false, ""
	default:
		return nil, true, ReasonUnsupportedInput
	}
}

func applyTermial(c *consts.Consts, input number.Number) (number.Number, bool, string) {
	switch v := input.(type) {
	case number.Exact:
		n := v.Int
		if n.Sign() < 0 {
			return nil, true, ReasonUnsupportedInput
		}
		if n.Cmp(big.NewInt(c.UpperTermialLimit)) <= 0 {
			return number.NewExact(numeng.ExactTermial(mustInt64(n))), false, ""
		}
		if n.Cmp(big.NewInt(c.UpperTermialApproximationLimit)) <= 0 {
			logRegime(c, "termial", "approximate", v)
			a := numeng.ApproximateTermial(n)
			return numeng.CollapseApproximate(c, a), false, ""
		}
		logRegime(c, "termial", "digits_or_tower", v)
		return digitsOrTowerForBigInt(c, n, 0), false, ""
	case number.Float:
		// n(n+1)/2 continuation: exact closed form evaluated at the
		// configured precision, per spec.md §4.2.
		logRegime(c, "termial", "float_continuation", v)
		one := new(big.Float).SetPrec(c.FloatPrecision).SetInt64(1)
		np1 := new(big.Float).SetPrec(c.FloatPrecision).Add(v.Val, one)
		prod := new(big.Float).SetPrec(c.FloatPrecision).Mul(v.Val, np1)
		two := new(big.Float).SetPrec(c.FloatPrecision).SetInt64(2)
		prod.Quo(prod, two)
		return number.NewFloat(prod, c.FloatPrecision), false, ""
	case number.ApproximateDigits:
		logRegime(c, "termial", "tower_seed", v)
		return growTower(c, ApproximateDigitsTowerSeed(v)), false, ""
	case number.ApproximateDigitsTower:
		logRegime(c, "termial", "tower_grow", v)
		return growTower(c, v), false, ""
	case number.Tetration:
		logRegime(c, "termial", "tetration_increment", v)
		return number.Tetration{Height: v.Height + 1}, false, ""
	default:
		return nil, true, ReasonUnsupportedInput
	}
}

func applyKTermial(c *consts.Consts, input number.Number, k int) (number.Number, bool, string) {
	switch v := input.(type) {
	case number.Exact:
		n := v.Int
		if n.Sign() < 0 {
			return nil, true, ReasonUnsupportedInput
		}
		if n.Cmp(big.NewInt(c.UpperTermialLimit)) <= 0 {
			return number.NewExact(numeng.ExactKTermial(mustInt64(n), k)), false, ""
		}
		if n.Cmp(big.NewInt(c.UpperTermialApproximationLimit)) <= 0 {
			logRegime(c, "k_termial", "approximate", v)
			a := numeng.ApproximateKTermial(mustInt64OrApprox(n), k)
			return numeng.CollapseApproximate(c, a), false, ""
		}
		logRegime(c, "k_termial", "digits_or_tower", v)
		return digitsOrTowerForBigInt(c, n, 0), false, ""
	case number.ApproximateDigits:
		logRegime(c, "k_termial", "tower_seed", v)
		return growTower(c, ApproximateDigitsTowerSeed(v)), false, ""
	case number.ApproximateDigitsTower:
		logRegime(c, "k_termial", "tower_grow", v)
		return growTower(c, v), false, ""
	case number.Tetration:
		logRegime(c, "k_termial", "tetration_increment", v)
		return number.Tetration{Height: v.Height + 1}, false, ""
	default:
		// k-termial has no continuous extension in this implementation
		// (spec.md §4.2 only names Float continuations for factorial,
		// multifactorial, termial and subfactorial); a non-integer input
		// is an unsupported domain.
		return nil, true, ReasonUnsupportedInput
	}
}

func applySubfactorial(c *consts.Consts, input number.Number) (number.Number, bool, string) {
	switch v := input.(type) {
	case number.Exact:
		n := v.Int
		if n.Sign() < 0 {
			return nil, true, ReasonUnsupportedInput
		}
		if n.Cmp(big.NewInt(c.UpperSubfactorialLimit)) <= 0 {
			return number.NewExact(numeng.ExactSubfactorial(mustInt64(n))), false, ""
		}
		if n.Cmp(big.NewInt(c.UpperApproximationLimit)) <= 0 {
			logRegime(c, "subfactorial", "approximate", v)
			a := numeng.ApproximateSubfactorial(mustInt64(n))
			return numeng.CollapseApproximate(c, a), false, ""
		}
		logRegime(c, "subfactorial", "digits_or_tower", v)
		return digitsOrTowerForBigInt(c, n, 1), false, ""
	case number.Float:
		// ⌊n!/e⌋ analogue via the Gamma continuation, per spec.md §4.2.
		logRegime(c, "subfactorial", "float_continuation", v)
		fac := numeng.FloatFactorial(c, v.Val)
		e := new(big.Float).SetPrec(c.FloatPrecision).SetFloat64(math.E)
		res := new(big.Float).SetPrec(c.FloatPrecision).Quo(fac.Val, e)
		return number.NewFloat(res, c.FloatPrecision), false, ""
	case number.ApproximateDigits:
		logRegime(c, "subfactorial", "tower_seed", v)
		return growTower(c, ApproximateDigitsTowerSeed(v)), false, ""
	case number.ApproximateDigitsTower:
		logRegime(c, "subfactorial", "tower_grow", v)
		return growTower(c, v), false, ""
	case number.Tetration:
		logRegime(c, "subfactorial", "tetration_increment", v)
		return number.Tetration{Height: v.Height + 1}, false, ""
	default:
		return nil, true, ReasonUnsupportedInput
	}
}

// digitsOrTowerForBigInt computes the decimal-digit-count regime
// (spec.md §4.2 rule 4) for an Exact operand too large for the exact or
// approximate regimes. k == 0 means termial/k-termial (the digit count
// formula does not depend on k beyond that); k == 1 means subfactorial
// or plain factorial; k >= 2 means k-multifactorial. When n itself is
// too large for float64 to represent (an extravagantly long literal),
// the digit count would itself be astronomical, so this promotes
// straight into the tower regime (rule 5) instead of returning a digit
// count nobody could print.
func digitsOrTowerForBigInt(c *consts.Consts, n *big.Int, k int) number.Number {
	nf, ok := bigIntToFloat64(n)
	if !ok {
		c.Log.Debug().Str("op", "digits_or_tower").Str("regime", "tower_seed_from_bigint").Msg("planner: regime fallback")
		return growTower(c, number.NewApproximateDigitsTower([]uint64{numeng.DigitsOfBigInt(n)}))
	}
	switch {
	case k == 0:
		return numeng.DigitsTermialFromFloat(nf)
	case k <= 1:
		return numeng.DigitsFactorialFromFloat(nf)
	default:
		return numeng.DigitsMultifactorialFromFloat(nf, k)
	}
}

// ApproximateDigitsTowerSeed starts a fresh one-level tower from a digit
// count that is itself about to become un-representable, per spec.md §3
// ("the result is ApproximateDigitsTower([…, digits])").
func ApproximateDigitsTowerSeed(d number.ApproximateDigits) number.ApproximateDigitsTower {
	return number.NewApproximateDigitsTower([]uint64{d.Digits})
}

// growTower extends t by one level (the digit count of its current top
// level), collapsing to Tetration once the configured height would be
// exceeded — spec.md §3 invariant (d): once at tower or tetration level a
// value never collapses back, and §7's "regime exhausted... never error".
func growTower(c *consts.Consts, t number.ApproximateDigitsTower) number.Number {
	if len(t.Tower) >= c.TowerHeightLimit {
		c.Log.Debug().Str("op", "tower").Str("regime", "tetration_collapse").Int("height", len(t.Tower)).Msg("planner: regime fallback")
		return number.Tetration{Height: uint64(len(t.Tower) + 1)}
	}
	top := t.Tower[len(t.Tower)-1]
	next := numeng.DigitsOfDigits(top)
	return number.NewApproximateDigitsTower(append(append([]uint64(nil), t.Tower...), next))
}

func safeInt64(n *big.Int) (int64, bool) {
	if n.IsInt64() {
		return n.Int64(), true
	}
	return 0, false
}

func mustInt64(n *big.Int) int64 {
	v, _ := safeInt64(n)
	return v
}

// mustInt64OrApprox behaves like mustInt64 but is only ever called where
// the caller has already confirmed n is within a Consts limit small
// enough to be int64-safe in practice (the termial-approximation ceiling
// defaults to 10^12, comfortably inside int64's range).
func mustInt64OrApprox(n *big.Int) int64 {
	return mustInt64(n)
}

// bigIntToFloat64 reports false when n's magnitude overflows float64's
// exponent range (roughly 10^308), meaning the caller must fall back to
// the rescale-around-the-exponent idiom instead (numeng.DigitsOfBigInt).
func bigIntToFloat64(n *big.Int) (float64, bool) {
	f, _ := new(big.Float).SetInt(n).Float64()
	if math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
