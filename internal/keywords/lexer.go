// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package keywords

import "strings"

// exceptKeyword introduces an override group.
const exceptKeyword = "except"

type tokenKind int

const (
	textToken tokenKind = iota
	phraseToken
	groupToken
)

func (k tokenKind) String() string {
	switch k {
	case phraseToken:
		return "phrase"
	case groupToken:
		return "group"
	default:
		return "text"
	}
}

// token is one lexical unit of a query.
//
//   - textToken: Value holds raw text left over between phrases and groups.
//   - phraseToken: Value holds the phrase without its quotes, Negate is set
//     when the opening quote was preceded by '-'.
//   - groupToken: Elements holds the raw, still quoted, comma-separated
//     elements found between except( and ).
type token struct {
	Kind     tokenKind
	Value    string
	Negate   bool
	Elements []string
	Pos      int
}

// lex splits a query into tokens in a single left-to-right pass. A quote that
// opens before an except keyword wins over the group, and an except group
// owns any quotes inside it. Incomplete constructs are emitted as text.
func lex(raw string) []token {
	var tokens []token
	var text strings.Builder
	textPos := 0

	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, token{Kind: textToken, Value: text.String(), Pos: textPos})
			text.Reset()
		}
	}

	for i := 0; i < len(raw); {
		c := raw[i]

		// -"phrase" or -'phrase'
		if c == '-' && i+1 < len(raw) && isQuote(raw[i+1]) {
			if end, ok := closingQuote(raw, i+1); ok {
				flush()
				tokens = append(tokens, token{Kind: phraseToken, Value: raw[i+2 : end], Negate: true, Pos: i})
				i = end + 1
				continue
			}
		}

		if isQuote(c) {
			if end, ok := closingQuote(raw, i); ok {
				flush()
				tokens = append(tokens, token{Kind: phraseToken, Value: raw[i+1 : end], Pos: i})
				i = end + 1
				continue
			}
		}

		if (c == 'e' || c == 'E') && atBoundary(raw, i) {
			if body, end, ok := exceptGroup(raw, i); ok {
				flush()
				tokens = append(tokens, token{Kind: groupToken, Elements: splitElements(body), Pos: i})
				i = end
				continue
			}
		}

		if text.Len() == 0 {
			textPos = i
		}
		text.WriteByte(c)
		i++
	}
	flush()

	return tokens
}

// closingQuote returns the index of the quote that closes the one at open.
func closingQuote(raw string, open int) (int, bool) {
	end := strings.IndexByte(raw[open+1:], raw[open])
	if end < 0 {
		return 0, false
	}
	return open + 1 + end, true
}

// atBoundary reports whether a keyword may start at i, that is i is not in the
// middle of a word. A query like noexcept(x) is plain text, not an except
// group preceded by "no".
func atBoundary(raw string, i int) bool {
	return i == 0 || !isWordByte(raw[i-1])
}

// exceptGroup recognizes except(...) starting at i. Whitespace is allowed
// between the keyword and the opening parenthesis. The group closes at the
// first ')' that is not inside a quoted element. It returns the text between
// the parentheses and the index just past the closing one.
func exceptGroup(raw string, i int) (string, int, bool) {
	j := i + len(exceptKeyword)
	if j > len(raw) || !strings.EqualFold(raw[i:j], exceptKeyword) {
		return "", 0, false
	}
	for j < len(raw) && isSpace(raw[j]) {
		j++
	}
	if j >= len(raw) || raw[j] != '(' {
		return "", 0, false
	}
	open := j + 1

	for k := open; k < len(raw); k++ {
		switch {
		case isQuote(raw[k]):
			if end, ok := closingQuote(raw, k); ok {
				k = end
			}
		case raw[k] == ')':
			return raw[open:k], k + 1, true
		}
	}

	return "", 0, false
}

// splitElements splits group content on commas that are not inside quotes.
func splitElements(body string) []string {
	var elements []string
	start := 0
	for k := 0; k < len(body); k++ {
		switch {
		case isQuote(body[k]):
			if end, ok := closingQuote(body, k); ok {
				k = end
			}
		case body[k] == ',':
			elements = append(elements, body[start:k])
			start = k + 1
		}
	}
	return append(elements, body[start:])
}
