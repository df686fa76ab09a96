// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package keywords compiles free-text keyword queries and evaluates them
// against item text.
//
// A query is a comma-delimited list of terms. Terms are matched as plain,
// case-insensitive substrings of the item's title and summary joined by a
// single space.
//
// Syntax:
//
//   - flood : include term
//   - -chelmsford : exclude term
//   - "traffic jam" : include phrase, commas inside quotes are kept
//   - -"canvey island" : exclude phrase (single quotes work too)
//   - except("museum","country park") : override group
//
// Example:
//
//	flood,"traffic jam",-"canvey island",-chelmsford,except("museum","country park")
//
// Parsing:
//
// Compile never fails. The query is lexed left to right into quoted phrases,
// except(...) groups and plain text. Phrases are taken first, then groups,
// then the plain text is split on commas. Anything that does not form a
// complete phrase or group (an unbalanced quote, an except( with no closing
// parenthesis) is left in the plain text and ends up as an ordinary term.
//
// Evaluation:
//
// An item is provisionally excluded when any exclude term is present. An
// override group reverses the exclusion only when every one of its terms is
// present. A surviving item is kept when the include list is empty or any
// include term is present.
//
// A compiled Filter is immutable and safe for concurrent use.
package keywords
