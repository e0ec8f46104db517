// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calcparse

import (
	"testing"

	"github.com/tolik518/factorion-bot/number"
)

func defaultConfig() Config {
	return Config{DecimalSeparator: '.', IntegerConstructionLimit: 1_000_000}
}

func defaultConfigWithTermial() Config {
	c := defaultConfig()
	c.TermialEnabled = true
	return c
}

func exactLiteral(t *testing.T, b Base) string {
	t.Helper()
	lit, ok := b.(NumberLiteral)
	if !ok {
		t.Fatalf("base is %T, want NumberLiteral", b)
	}
	return lit.Value.String()
}

func TestParseSimpleFactorial(t *testing.T) {
	jobs, cleaned, _ := Parse("3!", defaultConfig())
	if cleaned != "3!" {
		t.Fatalf("cleaned = %q", cleaned)
	}
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	job := jobs[0]
	if job.Level != 1 || job.IsSubfactorial || job.IsKTermial {
		t.Errorf("job = %+v, want level=1 plain factorial", job)
	}
	if got := exactLiteral(t, job.Base); got != "3" {
		t.Errorf("base = %s, want 3", got)
	}
}

func TestParsePrefixSubfactorial(t *testing.T) {
	jobs, _, _ := Parse("!5", defaultConfig())
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	job := jobs[0]
	if !job.IsSubfactorial || job.Level != 0 {
		t.Errorf("job = %+v, want subfactorial level 0", job)
	}
	if got := exactLiteral(t, job.Base); got != "5" {
		t.Errorf("base = %s, want 5", got)
	}
}

func TestParseTermial(t *testing.T) {
	jobs, _, _ := Parse("10?", defaultConfigWithTermial())
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	job := jobs[0]
	if job.Level != 0 || job.IsSubfactorial {
		t.Errorf("job = %+v, want plain termial", job)
	}
}

func TestParseTermialRequiresCommand(t *testing.T) {
	jobs, _, _ := Parse("10?", defaultConfig())
	if len(jobs) != 0 {
		t.Fatalf("got %d jobs, want 0 (termial disabled)", len(jobs))
	}
}

func TestParseNestedParens(t *testing.T) {
	jobs, _, _ := Parse("(3!)!", defaultConfig())
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	outer := jobs[0]
	if outer.Level != 1 {
		t.Fatalf("outer level = %d, want 1", outer.Level)
	}
	inner, ok := outer.Base.(*CalculationJob)
	if !ok {
		t.Fatalf("outer base is %T, want *CalculationJob", outer.Base)
	}
	if inner.Level != 1 {
		t.Errorf("inner level = %d, want 1", inner.Level)
	}
	if got := exactLiteral(t, inner.Base); got != "3" {
		t.Errorf("inner base = %s, want 3", got)
	}
}

func TestParseBangThenTermialChains(t *testing.T) {
	jobs, _, _ := Parse("What is 5!?", defaultConfigWithTermial())
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	outer := jobs[0]
	if outer.Level != 0 {
		t.Fatalf("outer level = %d, want 0 (termial)", outer.Level)
	}
	inner, ok := outer.Base.(*CalculationJob)
	if !ok {
		t.Fatalf("outer base is %T, want *CalculationJob", outer.Base)
	}
	if inner.Level != 1 {
		t.Errorf("inner level = %d, want 1 (factorial)", inner.Level)
	}
}

func TestParseKTermialDegreeTwoOrMore(t *testing.T) {
	jobs, _, _ := Parse("7!!?", defaultConfigWithTermial())
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	job := jobs[0]
	if !job.IsKTermial || job.Level != 2 {
		t.Errorf("job = %+v, want k-termial degree 2", job)
	}
}

func TestParseNegativeDepth(t *testing.T) {
	jobs, _, _ := Parse("--5!", defaultConfig())
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if jobs[0].NegativeDepth != 2 {
		t.Errorf("NegativeDepth = %d, want 2", jobs[0].NegativeDepth)
	}
}

func TestParseFencedCodeBlockMasksCandidates(t *testing.T) {
	jobs, _, _ := Parse("text ```5!``` more", defaultConfig())
	if len(jobs) != 0 {
		t.Fatalf("got %d jobs inside fenced code, want 0", len(jobs))
	}
}

func TestParseInlineCodeSpanMasksCandidates(t *testing.T) {
	jobs, _, _ := Parse("see `5!` here", defaultConfig())
	if len(jobs) != 0 {
		t.Fatalf("got %d jobs inside inline code, want 0", len(jobs))
	}
}

func TestParseLinkMasksCandidates(t *testing.T) {
	jobs, _, _ := Parse("[5!](http://example.com/5!)", defaultConfig())
	if len(jobs) != 0 {
		t.Fatalf("got %d jobs inside a link, want 0", len(jobs))
	}
}

func TestInertRegionInvariant(t *testing.T) {
	// spec.md §8 property 5: arbitrary text inside a masked region must
	// not change the emitted calculation list.
	a, _, _ := Parse("before ```junk``` 3! after", defaultConfig())
	b, _, _ := Parse("before ```completely different junk 9! !!``` 3! after", defaultConfig())
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("got %d and %d jobs, want 1 each", len(a), len(b))
	}
}

func TestStripCommandsBracketAndBang(t *testing.T) {
	cleaned, cmds := StripCommands("please [shorten] compute 100! !steps now")
	if cmds&Shorten == 0 || cmds&Steps == 0 {
		t.Errorf("cmds = %v, want Shorten|Steps", cmds)
	}
	if cleaned == "please [shorten] compute 100! !steps now" {
		t.Errorf("StripCommands did not remove tokens: %q", cleaned)
	}
}

func TestIntegerConstructionLimitRejectsHugeLiteral(t *testing.T) {
	huge := ""
	for i := 0; i < 10; i++ {
		huge += "1234567890"
	}
	cfg := Config{DecimalSeparator: '.', IntegerConstructionLimit: 5}
	jobs, _, _ := Parse(huge+"!", cfg)
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if _, ok := jobs[0].Base.(UnparsableLiteral); !ok {
		t.Errorf("base = %T, want UnparsableLiteral", jobs[0].Base)
	}
}

func TestMightContainCalculation(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"just some prose", false},
		{"3!", true},
		{"```5!```", false},
		{"what about 10?", true},
	}
	for _, c := range cases {
		if got := MightContainCalculation(c.text); got != c.want {
			t.Errorf("MightContainCalculation(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestParseFloatLiteral(t *testing.T) {
	jobs, _, _ := Parse("2.5!", defaultConfig())
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
	if _, ok := jobs[0].Base.(NumberLiteral).Value.(number.Float); !ok {
		t.Errorf("base value is %T, want number.Float", jobs[0].Base.(NumberLiteral).Value)
	}
}
