// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planner

import "github.com/pkg/errors"

// ErrUnsupportedBase is returned only when a calcparse.Base implementation
// this package does not know about reaches Execute — a programming error
// (a new Base variant added without updating the planner), never a
// condition user text can trigger. Every user-triggerable failure mode
// (too big to parse, unsupported domain, regime exhausted) is instead
// folded into Calculation.Unevaluated per spec.md §7's "recover locally
// wherever possible" policy: panics and stray errors are reserved for
// contract violations, not bad input.
var ErrUnsupportedBase = errors.New("planner: unrecognized calcparse.Base implementation")
