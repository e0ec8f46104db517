// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calcparse

import (
	"regexp"
	"strings"
)

// CommandSet is the bitset of user-selectable flags from spec.md §6.
type CommandSet uint8

const (
	// Shorten renders results in scientific notation eagerly.
	Shorten CommandSet = 1 << iota
	// NoNote suppresses the disclaimer line and the factorion educational note.
	NoNote
	// Termial enables recognition and computation of ? termials.
	Termial
	// Steps emits each nested intermediate result separately.
	Steps
	// DontCheck skips processing entirely (early return with NOT_A_FACTORIAL).
	DontCheck
)

// Has reports whether every flag set in want is also set in c.
func (c CommandSet) Has(want CommandSet) bool { return c&want == want }

var (
	bracketTokenRe = regexp.MustCompile(`(?i)\[\s*(shorten|no\s*note|termial|steps|dont\s*check)\s*\]`)
	bangTokenRe    = regexp.MustCompile(`(?i)!(shorten|nonote|termial|steps|dontcheck)\b`)
)

func commandFromToken(name string) CommandSet {
	switch strings.ToLower(strings.Join(strings.Fields(name), "")) {
	case "shorten":
		return Shorten
	case "nonote":
		return NoNote
	case "termial":
		return Termial
	case "steps":
		return Steps
	case "dontcheck":
		return DontCheck
	}
	return 0
}

// StripCommands removes the inline `[command]` and `!command` tokens
// spec.md §6 describes and returns the cleaned text plus the CommandSet
// they requested. Stripping happens before calculation parsing, so a
// token like "!steps" is never mistaken for a subfactorial prefix.
func StripCommands(text string) (string, CommandSet) {
	var cmds CommandSet
	text = bracketTokenRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := strings.TrimSuffix(strings.TrimPrefix(m, "["), "]")
		cmds |= commandFromToken(inner)
		return ""
	})
	text = bangTokenRe.ReplaceAllStringFunc(text, func(m string) string {
		cmds |= commandFromToken(strings.TrimPrefix(m, "!"))
		return ""
	})
	return text, cmds
}
