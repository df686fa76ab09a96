// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"cmp"
	"slices"
	"strings"
)

// sortKey is one parsed element of a sort spec.
type sortKey struct {
	field         string
	descending    bool
	caseSensitive bool
}

// parseSortSpec parses a comma separated list of column names. A leading "-"
// sorts descending and a leading "!" compares case sensitively; both may be
// combined as "-!title".
func parseSortSpec(spec string) []sortKey {
	var keys []sortKey
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)

		var key sortKey
		if strings.HasPrefix(field, "-") {
			field = strings.TrimPrefix(field, "-")
			key.descending = true
		}
		if strings.HasPrefix(field, "!") {
			field = strings.TrimPrefix(field, "!")
			key.caseSensitive = true
		}
		if field == "" {
			continue
		}
		key.field = field
		keys = append(keys, key)
	}
	return keys
}

// SortDataset stable sorts rows by spec. Numbers compare numerically and
// everything else by its string form. An empty spec leaves rows untouched.
func SortDataset(rows []map[string]interface{}, spec string) {
	keys := parseSortSpec(spec)
	if len(keys) == 0 {
		return
	}

	slices.SortStableFunc(rows, func(one, two map[string]interface{}) int {
		for _, key := range keys {
			c := compareValues(one[key.field], two[key.field], key.caseSensitive)
			if c == 0 {
				continue
			}
			if key.descending {
				return -c
			}
			return c
		}
		return 0
	})
}

func compareValues(one, two interface{}, caseSensitive bool) int {
	oneNum, oneOk := one.(float64)
	twoNum, twoOk := two.(float64)
	if oneOk && twoOk {
		return cmp.Compare(oneNum, twoNum)
	}

	oneStr := InterfaceToString(one)
	twoStr := InterfaceToString(two)
	if !caseSensitive {
		oneStr = strings.ToLower(oneStr)
		twoStr = strings.ToLower(twoStr)
	}
	return strings.Compare(oneStr, twoStr)
}
