// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package item holds the candidate content item handed to the keyword filter.
package item

import (
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/feedsift/feedsift/internal/keywords"
)

// Item is one already-collected content item.
type Item struct {
	Title      string    `yaml:"title" json:"title"`
	Summary    string    `yaml:"summary" json:"summary"`
	Link       string    `yaml:"link,omitempty" json:"link,omitempty"`
	Published  time.Time `yaml:"published,omitempty" json:"published,omitzero"`
	Categories []string  `yaml:"categories,omitempty" json:"categories,omitempty"`
}

// Input returns the text the keyword filter evaluates.
func (it Item) Input() keywords.Input {
	return keywords.Input{Title: it.Title, Summary: it.Summary}
}

// Plain returns a copy of the item with markup removed from the title and
// summary.
func (it Item) Plain() Item {
	it.Title = PlainText(it.Title)
	it.Summary = PlainText(it.Summary)
	return it
}

// spaceCollapseRe matches runs of whitespace, including the no-break space
// that &nbsp; decodes to.
var spaceCollapseRe = regexp.MustCompile(`[\s\x{00A0}]+`)

// strictPolicy strips every element and attribute. Policies are safe for
// concurrent use once built.
var strictPolicy = bluemonday.StrictPolicy()

// PlainText removes HTML tags, decodes entities and collapses whitespace.
func PlainText(raw string) string {
	if raw == "" {
		return ""
	}

	text := strictPolicy.Sanitize(raw)

	// Decode entities such as &#39; and &amp; that the policy leaves escaped.
	text = html.UnescapeString(text)

	return strings.TrimSpace(spaceCollapseRe.ReplaceAllString(text, " "))
}
