// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package keywords

import "strings"

// Input is the text of one candidate item as extracted by the caller.
type Input struct {
	Title   string
	Summary string
}

// Decision records how a filter reached its keep/drop verdict for an item.
type Decision struct {
	// Keep is the verdict.
	Keep bool `yaml:"keep" json:"keep"`
	// Excluded lists every exclude term found in the item text.
	Excluded []string `yaml:"excluded,omitempty" json:"excluded,omitempty"`
	// Override is the index of the override group that reversed the exclusion,
	// or -1 when no group did.
	Override int `yaml:"override" json:"override"`
	// Included is the first include term found, empty when none was found or
	// none was needed.
	Included string `yaml:"included,omitempty" json:"included,omitempty"`
}

// Match reports whether the item should be kept.
func Match(f Filter, in Input) bool {
	return f.Match(in)
}

// Match reports whether the item should be kept.
func (f Filter) Match(in Input) bool {
	text := searchText(in)

	excluded := containsAny(text, f.exclude) >= 0
	if excluded && f.overriddenBy(text) >= 0 {
		excluded = false
	}
	if excluded {
		return false
	}

	// No include terms means no positive filter.
	if len(f.include) == 0 {
		return true
	}
	return containsAny(text, f.include) >= 0
}

// Explain evaluates the item like Match and also reports which terms decided
// the outcome. Decision.Keep always equals Match for the same input.
func (f Filter) Explain(in Input) Decision {
	text := searchText(in)
	d := Decision{Override: -1}

	for _, term := range f.exclude {
		if strings.Contains(text, term) {
			d.Excluded = append(d.Excluded, term)
		}
	}

	if len(d.Excluded) > 0 {
		d.Override = f.overriddenBy(text)
		if d.Override < 0 {
			return d
		}
	}

	if len(f.include) == 0 {
		d.Keep = true
		return d
	}

	if i := containsAny(text, f.include); i >= 0 {
		d.Keep = true
		d.Included = f.include[i]
	}

	return d
}

// overriddenBy returns the index of the first override group whose terms are
// all present in text, or -1. A group is conjunctive: one missing term and it
// does not apply.
func (f Filter) overriddenBy(text string) int {
	for i, group := range f.overrides {
		if containsAll(text, group) {
			return i
		}
	}
	return -1
}

// searchText is the folded title and summary joined by a single space.
func searchText(in Input) string {
	return fold(in.Title + " " + in.Summary)
}

// containsAny returns the index of the first term found in text, or -1.
func containsAny(text string, terms []string) int {
	for i, term := range terms {
		if strings.Contains(text, term) {
			return i
		}
	}
	return -1
}

// containsAll reports whether every term is found in text. An empty group
// never applies; compiled groups are never empty.
func containsAll(text string, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}
