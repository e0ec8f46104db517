// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline implements spec.md §4.5's Comment Pipeline: four
// explicit type-state phases (Constructed, Extracted, Calculated,
// Rendered), each its own Go type exposing only the methods legal for
// that phase. This is a deliberate redesign over the teacher's own
// run.Run, which drives parse/eval/print as one undifferentiated loop
// (spec.md §9's design note: "Type-state pipeline phases ... replace an
// 'is this field populated yet?' object by making illegal phase
// transitions unrepresentable at the API boundary" — exactly the
// property run.Run does not have, since ivy's Parser/Context can be
// asked to Eval before Line has produced anything).
package pipeline

import (
	"github.com/tolik518/factorion-bot/calcparse"
	"github.com/tolik518/factorion-bot/consts"
	"github.com/tolik518/factorion-bot/locale"
)

// base carries the fields common to every phase (spec.md §3's Comment
// fields, minus the ones a specific phase owns): it is never exported
// and never instantiated directly by a caller.
type base[M any] struct {
	consts      *consts.Consts
	text        string
	meta        M
	commands    calcparse.CommandSet
	maxReplyLen int
	localeKey   string
	notify      string
	status      Status
	loc         *locale.Data
}

// Constructed is the first phase: built from raw input, nothing
// extracted or computed yet.
type Constructed[M any] struct {
	base[M]
}

// New builds a Constructed comment. notify is the optional @-mention
// display string (spec.md §3's Comment.notify); pass "" when there is
// none.
func New[M any](c *consts.Consts, text string, meta M, commands calcparse.CommandSet, maxReplyLen int, localeKey string, notify string) *Constructed[M] {
	return &Constructed[M]{base: base[M]{
		consts:      c,
		text:        text,
		meta:        meta,
		commands:    commands,
		maxReplyLen: maxReplyLen,
		localeKey:   localeKey,
		notify:      notify,
	}}
}

// Status reports the current phase's status; Constructed always starts
// with a zero Status until Extract runs.
func (c *Constructed[M]) Status() Status { return c.status }

// Metadata returns the caller-supplied opaque metadata, unchanged.
func (c *Constructed[M]) Metadata() M { return c.meta }
