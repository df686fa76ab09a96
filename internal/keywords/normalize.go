// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package keywords

import "strings"

// quoteChars are the characters that may wrap a phrase.
const quoteChars = `"'`

// fold is the one case-folding rule used for both terms and item text. Terms
// and text must be folded identically or a term could miss text it should
// match.
func fold(s string) string {
	return strings.ToLower(s)
}

// normalize turns a raw fragment into a term: folded, trimmed and with any
// wrapping quote characters removed. An empty result means the fragment holds
// no term and must be dropped.
func normalize(s string) string {
	s = strings.TrimSpace(fold(s))
	s = strings.Trim(s, quoteChars)
	return strings.TrimSpace(s)
}

// normalizeAll normalizes each fragment and drops the empty ones.
func normalizeAll(fragments []string) []string {
	var terms []string
	for _, f := range fragments {
		if t := normalize(f); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// isWordByte reports whether c can be part of a bare word. Only ASCII is
// considered; a multi-byte rune never counts as a word byte here.
func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
