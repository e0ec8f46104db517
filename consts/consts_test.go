// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolik518/factorion-bot/locale"
)

func TestNewAppliesDefaultsAndLoadsLocales(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.EqualValues(t, 1_000, c.UpperCalculationLimit)
	assert.Contains(t, c.Locales.Keys(), "en")
	assert.Equal(t, c.UpperCalculationLimit, c.BigUpperCalculationLimit().Int64())
}

func TestWithCalculationLimitsOverridesDefaults(t *testing.T) {
	c, err := New(WithCalculationLimits(10, 20, 30))
	require.NoError(t, err)
	assert.EqualValues(t, 10, c.UpperCalculationLimit)
	assert.EqualValues(t, 20, c.UpperSubfactorialLimit)
	assert.EqualValues(t, 30, c.UpperTermialLimit)
	assert.EqualValues(t, 10, c.BigUpperCalculationLimit().Int64())
}

func TestWithLocalesSkipsLoadingDefaults(t *testing.T) {
	store := locale.NewStore()
	require.NoError(t, store.Load("custom", []byte(`
V1:
  bot_disclaimer: "custom"
`)))
	c, err := New(WithLocales(store))
	require.NoError(t, err)
	assert.NotContains(t, c.Locales.Keys(), "en")
	assert.Contains(t, c.Locales.Keys(), "custom")
}
