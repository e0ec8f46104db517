// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "github.com/tolik518/factorion-bot/locale"

// noteFlags tallies how many rendered Calculations triggered each
// regime-downgrade note (spec.md §4.4's "notes block"), so render can
// pick the locale's singular or plural phrasing per note key.
type noteFlags struct {
	Tower, Digits, Approx, Round, TooBig, Tetration int
	Remove, NoPost                                  bool
}

func (f *noteFlags) add(flag string) {
	switch flag {
	case "tower":
		f.Tower++
	case "digits":
		f.Digits++
	case "approx":
		f.Approx++
	case "round":
		f.Round++
	case "tooBig":
		f.TooBig++
	case "tetration":
		f.Tetration++
	}
}

// render concatenates the notes this set of flags implies, in the order
// spec.md §4.4 lists the note keys, choosing the _mult variant whenever
// more than one Calculation triggered that note.
func (f noteFlags) render(loc *locale.Data) string {
	var lines []string
	add := func(n int, singular, plural string) {
		if n == 0 {
			return
		}
		if n == 1 {
			lines = append(lines, singular)
		} else {
			lines = append(lines, plural)
		}
	}
	add(f.Tower, loc.Notes.Tower, loc.Notes.TowerMult)
	add(f.Digits, loc.Notes.Digits, loc.Notes.DigitsMult)
	add(f.Approx, loc.Notes.Approx, loc.Notes.ApproxMult)
	add(f.Round, loc.Notes.Round, loc.Notes.RoundMult)
	add(f.TooBig, loc.Notes.TooBig, loc.Notes.TooBigMult)
	if f.Remove {
		lines = append(lines, loc.Notes.Remove)
	}
	if f.Tetration > 0 {
		lines = append(lines, loc.Notes.Tetration)
	}
	if f.NoPost {
		lines = append(lines, loc.Notes.NoPost)
	}
	if len(lines) == 0 {
		return ""
	}
	out := lines[0]
	for _, l := range lines[1:] {
		out += "; " + l
	}
	return out
}
