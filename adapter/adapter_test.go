// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// We know the pipeline works; these just test that the narrow wrapper
// works.
func TestEval(t *testing.T) {
	require.NoError(t, Reset())

	var tests = []struct {
		input    string
		commands uint8
		status   string
		contains string
	}{
		{"3!", 0, "FACTORIALS_FOUND", "Factorial of 3 is 6"},
		{"hello there", 0, "NOT_A_FACTORIAL", ""},
		{"10?", CommandTermial, "FACTORIALS_FOUND", "Termial of 10 is 55"},
	}
	for _, test := range tests {
		r := Eval(test.input, test.commands, 2000, "en", "")
		assert.Equal(t, test.status, r.StatusName, "input %q", test.input)
		if test.contains != "" {
			assert.Contains(t, r.Reply, test.contains, "input %q", test.input)
		} else {
			assert.Empty(t, r.Reply, "input %q", test.input)
		}
	}
}

func TestEvalUnknownLocaleIsAnError(t *testing.T) {
	require.NoError(t, Reset())
	r := Eval("3!", 0, 2000, "xx-not-a-locale", "")
	assert.Equal(t, "ERROR(locale)", r.StatusName)
	assert.Empty(t, r.Reply)
}

func TestConfigureAppliesCustomLimits(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, Reset()) })

	err := Configure()
	require.NoError(t, err)
	r := Eval("3!", 0, 2000, "en", "")
	assert.Equal(t, "FACTORIALS_FOUND", r.StatusName)
}
