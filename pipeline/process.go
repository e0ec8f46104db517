// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"github.com/tolik518/factorion-bot/calcparse"
	"github.com/tolik518/factorion-bot/consts"
)

// Process is spec.md §6's one-shot library entry point: it drives a
// Comment through all four phases and returns the final status, reply
// text and the metadata handed back unchanged (M is carried but never
// inspected by the pipeline itself).
func Process[M any](c *consts.Consts, text string, meta M, commands calcparse.CommandSet, maxReplyLen int, localeKey string, notify string) (Status, string, M) {
	r := New(c, text, meta, commands, maxReplyLen, localeKey, notify).Extract().Calculate().Render()
	return r.Status(), r.Reply(), r.Metadata()
}
