// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultLoadsEmbeddedLocales checks that the shipped locale set
// goes through Load/Get without error and that a sample of the templates
// the renderer needs (factorial, termial, nest, exact) come back non-empty.
func TestDefaultLoadsEmbeddedLocales(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)
	assert.Contains(t, store.Keys(), "en")

	en, err := store.Get("en")
	require.NoError(t, err)
	assert.Equal(t, "V1", en.Version)
	assert.NotEmpty(t, en.BotDisclaimer)
	assert.NotEmpty(t, en.Format.Factorial)
	assert.NotEmpty(t, en.Format.Termial)
	assert.NotEmpty(t, en.Format.Nest)
	assert.NotEmpty(t, en.Format.Exact)
}

func TestStoreGetUnknownKeyIsErrNotFound(t *testing.T) {
	store := NewStore()
	_, err := store.Get("xx-not-a-locale")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadPicksNewestSupportedVersion(t *testing.T) {
	doc := []byte(`
V1:
  bot_disclaimer: "v1 disclaimer"
  format:
    factorial: "factorial of {number}"
`)
	store := NewStore()
	require.NoError(t, store.Load("test", doc))
	data, err := store.Get("test")
	require.NoError(t, err)
	assert.Equal(t, "V1", data.Version)
	assert.Equal(t, "v1 disclaimer", data.BotDisclaimer)
}

func TestLoadRejectsUnsupportedVersionsOnly(t *testing.T) {
	doc := []byte(`
V99:
  bot_disclaimer: "from the future"
`)
	store := NewStore()
	err := store.Load("test", doc)
	assert.ErrorIs(t, err, ErrVersionUnsupported)
	_, err = store.Get("test")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNumOverrideLooksUpByDegree(t *testing.T) {
	store, err := Default()
	require.NoError(t, err)
	en, err := store.Get("en")
	require.NoError(t, err)

	v, ok := en.NumOverride(2)
	require.True(t, ok)
	assert.Equal(t, "double ", v)

	_, ok = en.NumOverride(97)
	assert.False(t, ok)
}
