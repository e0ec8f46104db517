// Copyright 2026 The factorion-bot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locale loads, version-checks and exposes the localized
// templates, decimal separators and per-channel overrides the renderer
// needs. Its Directory/Lookup shape is grounded directly on
// robpike.io/ivy's lib.Directory/lib.Lookup (an embedded, generated list
// of named entries) — here the embedded entries are default locale YAML
// documents instead of ivy function source, and lookup is keyed by
// locale_key instead of function name. Templates are loaded with
// gopkg.in/yaml.v3, the pack-wide idiom for this (see DESIGN.md).
package locale

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Store.Get when no locale is registered under
// the requested key.
var ErrNotFound = errors.New("locale: key not found")

// ErrVersionUnsupported is returned when a locale file declares only
// version tags this build does not implement.
var ErrVersionUnsupported = errors.New("locale: no supported version tag in file")

// supportedVersions is the set of schema version tags this build
// understands. When a file declares several, the newest understood one
// wins, per spec.md §6.
var supportedVersions = map[string]bool{
	"V1": true,
}

// Notes holds the singular/plural pair for every note the renderer can
// append, plus the leading mention template. Field names match the
// note keys from spec.md §4.4 exactly.
type Notes struct {
	Tower     string `yaml:"tower"`
	TowerMult string `yaml:"tower_mult"`
	Digits     string `yaml:"digits"`
	DigitsMult string `yaml:"digits_mult"`
	Approx     string `yaml:"approx"`
	ApproxMult string `yaml:"approx_mult"`
	Round      string `yaml:"round"`
	RoundMult  string `yaml:"round_mult"`
	TooBig     string `yaml:"too_big"`
	TooBigMult string `yaml:"too_big_mult"`
	Remove     string `yaml:"remove"`
	Tetration  string `yaml:"tetration"`
	NoPost     string `yaml:"no_post"`
	Mention    string `yaml:"mention"`
}

// NumberFormat holds the locale's decimal separator.
type NumberFormat struct {
	Decimal string `yaml:"decimal"`
}

// Format holds every operation-name and result template the renderer
// walks, plus the formatting knobs (decimal separator, capitalization,
// numeral-word overrides) that shape them.
type Format struct {
	NumberFormat   NumberFormat      `yaml:"number_format"`
	CapitalizeCalc bool              `yaml:"capitalize_calc"`
	Termial        string            `yaml:"termial"`
	Factorial      string            `yaml:"factorial"`
	Uple           string            `yaml:"uple"`
	Sub            string            `yaml:"sub"`
	Negative       string            `yaml:"negative"`
	Nest           string            `yaml:"nest"`
	NumOverrides   map[string]string `yaml:"num_overrides"`
	ForceNum       bool              `yaml:"force_num"`
	Exact          string            `yaml:"exact"`
	Rough          string            `yaml:"rough"`
	RoughNumber    string            `yaml:"rough_number"`
	Approx         string            `yaml:"approx"`
	Digits         string            `yaml:"digits"`
	Order          string            `yaml:"order"`
	AllThat        string            `yaml:"all_that"`
}

// Data is one fully-resolved locale: one version tag's worth of
// templates, ready for the renderer to walk.
type Data struct {
	Version       string
	BotDisclaimer string `yaml:"bot_disclaimer"`
	Notes         Notes  `yaml:"notes"`
	Format        Format `yaml:"format"`
}

// NumOverride returns the numeral-word override for a k-factorial/
// k-termial degree (e.g. 2 -> "double"), and whether one is configured.
func (d *Data) NumOverride(k int) (string, bool) {
	v, ok := d.Format.NumOverrides[strconv.Itoa(k)]
	return v, ok
}

// file is the on-disk shape: a map from version tag to locale data.
type file map[string]Data

// Store is the read-only, loaded set of locales, keyed by locale_key
// (e.g. "en", or a per-subreddit override key). Safe for concurrent
// reads once built; nothing mutates a Store after Load returns.
type Store struct {
	byKey map[string]*Data
}

// NewStore returns an empty store; use Load to populate it.
func NewStore() *Store {
	return &Store{byKey: make(map[string]*Data)}
}

// Load parses a versioned locale YAML document and registers the newest
// version tag this build understands under key. It refuses to load (and
// leaves the store unchanged) if the file declares no version tag this
// build implements.
func (s *Store) Load(key string, yamlDoc []byte) error {
	var f file
	if err := yaml.Unmarshal(yamlDoc, &f); err != nil {
		return errors.Wrapf(err, "locale: parsing %q", key)
	}
	best, bestN, found := "", -1, false
	for tag := range f {
		if !supportedVersions[tag] {
			continue
		}
		n, err := versionNumber(tag)
		if err != nil {
			continue
		}
		if n > bestN {
			best, bestN, found = tag, n, true
		}
	}
	if !found {
		return errors.Wrapf(ErrVersionUnsupported, "locale %q", key)
	}
	data := f[best]
	data.Version = best
	s.byKey[key] = &data
	return nil
}

// Get returns the resolved locale registered under key.
func (s *Store) Get(key string) (*Data, error) {
	d, ok := s.byKey[key]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "key %q", key)
	}
	return d, nil
}

// Keys returns every locale_key currently registered, for diagnostics.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.byKey))
	for k := range s.byKey {
		keys = append(keys, k)
	}
	return keys
}

func versionNumber(tag string) (int, error) {
	trimmed := strings.TrimPrefix(strings.ToUpper(tag), "V")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("locale: unparseable version tag %q", tag)
	}
	return n, nil
}

//go:embed defaults/*.yaml
var defaultLocales embed.FS

// Default returns a Store preloaded with the locales shipped with the
// library (currently "en"), mirroring the embed-and-generate pattern
// robpike.io/ivy's lib package uses for its built-in function library.
func Default() (*Store, error) {
	store := NewStore()
	entries, err := defaultLocales.ReadDir("defaults")
	if err != nil {
		return nil, errors.Wrap(err, "locale: reading embedded defaults")
	}
	for _, entry := range entries {
		name := entry.Name()
		key := strings.TrimSuffix(name, ".yaml")
		data, err := defaultLocales.ReadFile("defaults/" + name)
		if err != nil {
			return nil, errors.Wrapf(err, "locale: reading embedded %q", name)
		}
		if err := store.Load(key, data); err != nil {
			return nil, err
		}
	}
	return store, nil
}
