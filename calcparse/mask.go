// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calcparse

import (
	"regexp"
	"sort"
)

// span is a half-open byte range [Start, End) in the original text that
// contributes no candidate tokens: spec.md §4.1's "inert region".
type span struct {
	start, end int
}

// These patterns cover the inert shapes spec.md §4.1 names: fenced code
// blocks, inline code spans, links/images, autolinks and spoiler markers.
// A library AST (gomarkdown/markdown was tried, see DESIGN.md) was
// dropped in favor of this because none of these shapes need a full
// Markdown parse tree — only their own source byte range, which a plain
// regexp scan gives directly without a render-then-relocate step.
var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	inlineCodeRe = regexp.MustCompile("`[^`\n]*`")
	linkOrImgRe  = regexp.MustCompile(`!?\[[^\]]*\]\([^)]*\)`)
	autolinkRe   = regexp.MustCompile(`https?://\S+`)
	spoilerRe    = regexp.MustCompile(`(?s)>!.*?!<`)

	inertPatterns = []*regexp.Regexp{fencedCodeRe, inlineCodeRe, linkOrImgRe, autolinkRe, spoilerRe}
)

// maskRanges returns the merged, sorted set of inert-region byte ranges
// in text. Overlapping or touching matches from different patterns (e.g.
// an inline-code backtick pair sitting inside a fenced block) are
// coalesced into one span so a scan never has to reason about nesting.
func maskRanges(text string) []span {
	var spans []span
	for _, re := range inertPatterns {
		for _, m := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, span{m[0], m[1]})
		}
	}
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			if s.end > last.end {
				last.end = s.end
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// inMask reports whether pos falls inside one of spans, and if so returns
// the byte offset just past that span (where scanning should resume).
func inMask(spans []span, pos int) (int, bool) {
	for _, s := range spans {
		if pos < s.start {
			break
		}
		if pos < s.end {
			return s.end, true
		}
	}
	return 0, false
}
