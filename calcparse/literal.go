// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calcparse

import (
	"math/big"
	"strings"

	"github.com/tolik518/factorion-bot/number"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// scanLiteral attempts to scan spec.md §4.1's numeric literal grammar
// starting at pos: a digit run, optionally the locale decimal character
// followed by another digit run, optionally scientific notation. Leading
// zeros are preserved here and normalized by big.Int/big.Float
// themselves. It returns ok=false if no literal starts at pos.
func scanLiteral(text string, pos int, decimalSep byte, constructionLimit int64) (Base, int, bool) {
	start := pos
	n := len(text)

	for pos < n && isDigit(text[pos]) {
		pos++
	}
	hasFrac := false
	if pos < n && text[pos] == decimalSep && pos+1 < n && isDigit(text[pos+1]) {
		hasFrac = true
		pos++
		for pos < n && isDigit(text[pos]) {
			pos++
		}
	}
	if pos == start {
		return nil, start, false
	}

	hasExp := false
	if pos < n && (text[pos] == 'e' || text[pos] == 'E') {
		expPos := pos + 1
		if expPos < n && (text[expPos] == '+' || text[expPos] == '-') {
			expPos++
		}
		digitsStart := expPos
		for expPos < n && isDigit(text[expPos]) {
			expPos++
		}
		if expPos > digitsStart {
			hasExp = true
			pos = expPos
		}
	}

	raw := text[start:pos]
	digitCount := 0
	for i := 0; i < len(raw); i++ {
		if isDigit(raw[i]) {
			digitCount++
		}
	}
	if int64(digitCount) > constructionLimit {
		return UnparsableLiteral{}, pos, true
	}

	if hasFrac || hasExp {
		norm := raw
		if decimalSep != '.' {
			norm = strings.Replace(norm, string(decimalSep), ".", 1)
		}
		f, _, err := big.ParseFloat(norm, 10, 128, big.ToNearestEven)
		if err != nil {
			return UnparsableLiteral{}, pos, true
		}
		return NumberLiteral{Value: number.NewFloat(f, 128)}, pos, true
	}

	i := new(big.Int)
	if _, ok := i.SetString(raw, 10); !ok {
		return UnparsableLiteral{}, pos, true
	}
	return NumberLiteral{Value: number.NewExact(i)}, pos, true
}
