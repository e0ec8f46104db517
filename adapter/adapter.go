// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adapter provides a very narrow interface to factorion-bot,
// suitable for wrapping in a UI for mobile or scripting-language hosts.
// It is designed to work well with gomobile-style bindings by exposing
// only primitive types: a host never sees a *consts.Consts, a
// calcparse.CommandSet or a pipeline.Status, only strings and ints.
package adapter

import (
	"sync"

	"github.com/tolik518/factorion-bot/calcparse"
	"github.com/tolik518/factorion-bot/consts"
	"github.com/tolik518/factorion-bot/pipeline"
)

var (
	mu   sync.RWMutex
	live *consts.Consts
)

func init() {
	Reset()
}

// Reset rebuilds the package-level Consts from scratch, discarding any
// configuration applied through Configure. Hosts call this
// once at startup, and again if they want to restore default limits.
func Reset() error {
	c, err := consts.New()
	if err != nil {
		return err
	}
	mu.Lock()
	live = c
	mu.Unlock()
	return nil
}

// Configure replaces the package-level Consts built from opts, the same
// functional options consts.New accepts. Hosts that never call this keep
// the library defaults.
func Configure(opts ...consts.Option) error {
	c, err := consts.New(opts...)
	if err != nil {
		return err
	}
	mu.Lock()
	live = c
	mu.Unlock()
	return nil
}

// Result is the primitive-only outcome of Eval, safe to cross a gomobile
// boundary: no interfaces, no generics, no pointers.
type Result struct {
	// StatusCode is pipeline.StatusKind's ordinal value.
	StatusCode int
	// StatusName is the human-readable status, e.g. "FACTORIALS_FOUND"
	// or "ERROR(locale)".
	StatusName string
	// Reply is the rendered reply text, empty for any status that
	// short-circuited before reaching the Renderer.
	Reply string
}

// Eval runs one piece of free text through the full four-phase pipeline
// and returns a primitive-only Result. commands is the raw
// calcparse.CommandSet bit pattern (a uint8); callers that don't need
// inline command bits can pass 0. maxReplyLen of 0 means "no limit".
func Eval(text string, commands uint8, maxReplyLen int, localeKey string, notify string) Result {
	mu.RLock()
	c := live
	mu.RUnlock()

	status, reply, _ := pipeline.Process(c, text, struct{}{}, calcparse.CommandSet(commands), maxReplyLen, localeKey, notify)
	return Result{
		StatusCode: int(status.Kind),
		StatusName: status.String(),
		Reply:      reply,
	}
}

// Command bit values, mirrored here as plain uint8 constants so hosts that
// can't import calcparse.CommandSet directly (e.g. across a gomobile
// boundary) can still build the commands bitset Eval expects.
const (
	CommandShorten   uint8 = 1 << 0
	CommandNoNote    uint8 = 1 << 1
	CommandTermial   uint8 = 1 << 2
	CommandSteps     uint8 = 1 << 3
	CommandDontCheck uint8 = 1 << 4
)
