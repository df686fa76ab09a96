// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// segmentRe matches one path segment: a key with an optional [n], [] or [*].
var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// drill navigates doc along a dotted path. An invalid path or an out of
// range index yields a non-existent result.
func drill(doc gjson.Result, path string) gjson.Result {
	current := doc

	for _, part := range strings.Split(path, ".") {
		matches := segmentRe.FindStringSubmatch(part)
		if matches == nil {
			return gjson.Result{}
		}

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(matches[1])
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 {
					val = arr[0]
				}
				// Otherwise keep the whole list.
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		} else if index > 0 {
			return gjson.Result{}
		}

		current = val
	}

	return current
}

// text returns the string form of a value. Arrays are flattened to their
// elements joined by single spaces; objects have no text.
func text(val gjson.Result) string {
	switch {
	case !val.Exists():
		return ""
	case val.IsArray():
		var parts []string
		for _, v := range val.Array() {
			if s := text(v); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case val.IsObject():
		return ""
	default:
		return strings.TrimSpace(val.String())
	}
}

// stringList returns the non-empty string elements of a value. A scalar yields
// a one element list.
func stringList(val gjson.Result) []string {
	if !val.Exists() {
		return nil
	}
	if !val.IsArray() {
		if s := text(val); s != "" {
			return []string{s}
		}
		return nil
	}

	var list []string
	for _, v := range val.Array() {
		if s := text(v); s != "" {
			list = append(list, s)
		}
	}
	return list
}

// first returns the first candidate path holding a value with text.
func first(doc gjson.Result, paths []string) gjson.Result {
	for _, p := range paths {
		if val := drill(doc, p); text(val) != "" {
			return val
		}
	}
	return gjson.Result{}
}
