// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source decodes locally stored documents into candidate items.
//
// Supported formats:
//
//   - json : an array of objects, an {"items": [...]} envelope or one object
//   - jsonl : one JSON object per line
//   - yaml : the same shapes as json, written as YAML
//   - feed : RSS, Atom or JSON Feed documents
//
// For json, jsonl and yaml input, item fields are located with dotted paths
// such as "title", "meta.summary" or "tags[0]". Each field has a list of
// candidate paths and the first one holding a non-empty value wins. A path
// segment naming an array without an index selects the single element of a
// one element array or the whole array otherwise; the text of an array is its
// elements joined by spaces.
//
// Items without a title are skipped.
package source
