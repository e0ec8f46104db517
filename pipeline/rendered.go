// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import "github.com/tolik518/factorion-bot/render"

// Rendered is the fourth and final phase: the reply text has been
// produced, or the pipeline short-circuited before reaching the
// Renderer.
type Rendered[M any] struct {
	base[M]
	reply string
}

// Render runs spec.md §4.5 phase 3→4. A status already set to
// NOT_A_FACTORIAL, NO_FACTORIAL or a terminal ERROR passes through with
// an empty reply — spec.md §7's "Locale not found ... Pipeline returns
// ERROR(locale); no partial reply" applies uniformly to every terminal
// status, not just the locale one.
func (c *Calculated[M]) Render() *Rendered[M] {
	r := &Rendered[M]{base: c.base}
	switch r.status.Kind {
	case NotAFactorial, NoFactorial, StatusError:
		return r
	}

	reply, tooLong, err := render.Format(r.consts, c.calcs, r.loc, r.commands, r.maxReplyLen, r.notify)
	if err != nil {
		// Even the count-only, "no_post"-note strategy didn't fit
		// maxReplyLen. spec.md §7 has no ERROR case for this — it is
		// still REPLY_WOULD_BE_TOO_LONG, and reply is Format's
		// best-effort no_post body rather than nothing at all.
		r.consts.Log.Debug().Err(err).Msg("pipeline: render budget unsatisfiable even for count-only strategy")
		r.status = Status{Kind: ReplyWouldBeTooLong}
		r.reply = reply
		return r
	}
	r.reply = reply
	if tooLong {
		r.status = Status{Kind: ReplyWouldBeTooLong}
	}
	return r
}

// Status reports this phase's final outcome.
func (r *Rendered[M]) Status() Status { return r.status }

// Reply returns the finished reply text (empty for any terminal status
// that short-circuited before rendering).
func (r *Rendered[M]) Reply() string { return r.reply }

// Metadata returns the caller-supplied opaque metadata, unchanged.
func (r *Rendered[M]) Metadata() M { return r.meta }
