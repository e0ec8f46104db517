// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolik518/factorion-bot/calcparse"
	"github.com/tolik518/factorion-bot/consts"
	"github.com/tolik518/factorion-bot/locale"
	"github.com/tolik518/factorion-bot/number"
	"github.com/tolik518/factorion-bot/planner"
)

func testSetup(t *testing.T) (*consts.Consts, *locale.Data) {
	t.Helper()
	c, err := consts.New()
	require.NoError(t, err)
	loc, err := c.Locales.Get("en")
	require.NoError(t, err)
	return c, loc
}

func exactCalc(n, result int64, level uint) *planner.Calculation {
	return &planner.Calculation{
		Value:  number.NewExact(big.NewInt(n)),
		Steps:  []planner.Step{{Level: level}},
		Result: number.NewExact(big.NewInt(result)),
	}
}

func TestFormatPlainFactorial(t *testing.T) {
	c, loc := testSetup(t)
	calc := exactCalc(3, 6, 1)
	reply, tooLong, err := Format(c, []*planner.Calculation{calc}, loc, 0, 2000, "")
	require.NoError(t, err)
	assert.False(t, tooLong)
	assert.Contains(t, reply, "Factorial of 3 is 6")
}

func TestFormatSubfactorial(t *testing.T) {
	c, loc := testSetup(t)
	calc := &planner.Calculation{
		Value:  number.NewExact(big.NewInt(5)),
		Steps:  []planner.Step{{IsSubfactorial: true}},
		Result: number.NewExact(big.NewInt(44)),
	}
	reply, _, err := Format(c, []*planner.Calculation{calc}, loc, 0, 2000, "")
	require.NoError(t, err)
	assert.Contains(t, reply, "Subfactorial of 5 is 44")
}

func TestFormatTermialChainsOntoFactorial(t *testing.T) {
	c, loc := testSetup(t)
	// "5!?" under TERMIAL: factorial(5)=120 innermost, termial(120)=7260 outermost.
	calc := &planner.Calculation{
		Value: number.NewExact(big.NewInt(5)),
		Steps: []planner.Step{
			{Level: 1},
			{Level: 0},
		},
		Result: number.NewExact(big.NewInt(7260)),
	}
	reply, _, err := Format(c, []*planner.Calculation{calc}, loc, 0, 2000, "")
	require.NoError(t, err)
	assert.Contains(t, reply, "Termial of factorial of 5 is 7260")
}

func TestFormatNestedParens(t *testing.T) {
	c, loc := testSetup(t)
	calc := &planner.Calculation{
		Value: number.NewExact(big.NewInt(3)),
		Steps: []planner.Step{
			{Level: 1},
			{Level: 1},
		},
		Result: number.NewExact(big.NewInt(720)),
	}
	reply, _, err := Format(c, []*planner.Calculation{calc}, loc, 0, 2000, "")
	require.NoError(t, err)
	assert.Contains(t, reply, "Factorial of factorial of 3 is 720")
}

func TestFormatFactorionNote(t *testing.T) {
	c, loc := testSetup(t)
	calc := exactCalc(5, 145, 1)
	reply, _, err := Format(c, []*planner.Calculation{calc}, loc, 0, 2000, "")
	require.NoError(t, err)
	assert.Contains(t, reply, "145")
	assert.Contains(t, reply, "factorion")
}

func TestFormatNoNoteSuppressesFactorionAndDisclaimer(t *testing.T) {
	c, loc := testSetup(t)
	calc := exactCalc(5, 145, 1)
	reply, _, err := Format(c, []*planner.Calculation{calc}, loc, calcparse.NoNote, 2000, "")
	require.NoError(t, err)
	assert.NotContains(t, reply, "factorion")
	assert.NotContains(t, reply, loc.BotDisclaimer)
}

func TestFormatUnevaluatedEmitsTooBigMarker(t *testing.T) {
	c, loc := testSetup(t)
	calc := &planner.Calculation{Unevaluated: true, Reason: planner.ReasonTooBigToParse}
	reply, _, err := Format(c, []*planner.Calculation{calc}, loc, 0, 2000, "")
	require.NoError(t, err)
	assert.Contains(t, reply, "too big to compute")
}

func TestFormatDigitsRegimeUsesDigitsTemplate(t *testing.T) {
	c, loc := testSetup(t)
	calc := &planner.Calculation{
		Value:  number.NewExact(big.NewInt(100000)),
		Steps:  []planner.Step{{Level: 1}},
		Result: number.NewApproximateDigits(456),
	}
	reply, _, err := Format(c, []*planner.Calculation{calc}, loc, 0, 2000, "")
	require.NoError(t, err)
	assert.Contains(t, reply, "456 digits")
}

// TestFormatApproximateRegimeUsesScientificNotation renders a hand-built
// Approximate shaped like 100! (under default Consts 100! itself is below
// UpperCalculationLimit and computed exactly). A factorial above
// UpperCalculationLimit but whose exponent never reaches
// ApproximateDigitsCollapseExponent stays a number.Approximate all the
// way to the renderer (see numeng.CollapseApproximate and
// planner.TestExecuteApproximationRegime); resultText must format it in
// scientific notation using NumberDecimalsScientific, not fall through
// to Approximate's own unadorned String().
func TestFormatApproximateRegimeUsesScientificNotation(t *testing.T) {
	c, loc := testSetup(t)
	calc := &planner.Calculation{
		Value:  number.NewExact(big.NewInt(100)),
		Steps:  []planner.Step{{Level: 1}},
		Result: number.Approximate{Mantissa: 9.332621544, Exponent: 157},
	}
	reply, _, err := Format(c, []*planner.Calculation{calc}, loc, 0, 2000, "")
	require.NoError(t, err)
	assert.Contains(t, reply, "×10^157")
	assert.Contains(t, reply, "9.33")
	assert.Contains(t, reply, loc.Notes.Approx)
}

func TestFormatBudgetDowngradesToScientificNotation(t *testing.T) {
	c, loc := testSetup(t)
	huge := new(big.Int)
	huge.SetString(strings.Repeat("9", 500), 10)
	calc := &planner.Calculation{
		Value:  number.NewExact(big.NewInt(1000)),
		Steps:  []planner.Step{{Level: 1}},
		Result: number.NewExact(huge),
	}
	reply, tooLong, err := Format(c, []*planner.Calculation{calc}, loc, 0, 300, "")
	require.NoError(t, err)
	assert.False(t, tooLong)
	assert.Contains(t, reply, "×10^")
}

// TestFormatZeroMaxReplyLenMeansUnlimited matches adapter.Eval's and
// cmd/factorionbot's documented "maxReplyLen=0 means no limit" contract.
func TestFormatZeroMaxReplyLenMeansUnlimited(t *testing.T) {
	c, loc := testSetup(t)
	huge := new(big.Int)
	huge.SetString(strings.Repeat("9", 500), 10)
	calc := &planner.Calculation{
		Value:  number.NewExact(big.NewInt(1000)),
		Steps:  []planner.Step{{Level: 1}},
		Result: number.NewExact(huge),
	}
	reply, tooLong, err := Format(c, []*planner.Calculation{calc}, loc, 0, 0, "")
	require.NoError(t, err)
	assert.False(t, tooLong)
	assert.Greater(t, len(reply), 500)
}

func TestFormatUnsatisfiableBudgetErrors(t *testing.T) {
	c, loc := testSetup(t)
	calc := exactCalc(3, 6, 1)
	reply, tooLong, err := Format(c, []*planner.Calculation{calc}, loc, 0, 1, "")
	assert.ErrorIs(t, err, ErrBudgetUnsatisfiable)
	// spec.md §7: even when unsatisfiable, the count-only/no_post body is
	// still handed back rather than discarded.
	assert.True(t, tooLong)
	assert.Contains(t, reply, loc.Notes.NoPost)
}

func TestFormatMentionSurvivesNoNote(t *testing.T) {
	c, loc := testSetup(t)
	calc := exactCalc(5, 145, 1)
	reply, _, err := Format(c, []*planner.Calculation{calc}, loc, calcparse.NoNote, 2000, "someUser")
	require.NoError(t, err)
	assert.Contains(t, reply, "someUser")
	assert.NotContains(t, reply, "factorion")
	assert.NotContains(t, reply, loc.BotDisclaimer)
}

func TestFormatMentionLinePrecedesBody(t *testing.T) {
	c, loc := testSetup(t)
	calc := exactCalc(3, 6, 1)
	reply, _, err := Format(c, []*planner.Calculation{calc}, loc, 0, 2000, "someUser")
	require.NoError(t, err)
	mentionIdx := strings.Index(reply, "someUser")
	bodyIdx := strings.Index(reply, "Factorial of 3 is 6")
	require.GreaterOrEqual(t, mentionIdx, 0)
	require.GreaterOrEqual(t, bodyIdx, 0)
	assert.Less(t, mentionIdx, bodyIdx)
}
