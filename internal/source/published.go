// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

var publishedLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parsePublished accepts the layouts above or a Unix timestamp in seconds.
func parsePublished(val gjson.Result) (time.Time, bool) {
	if val.Type == gjson.Number {
		return time.Unix(val.Int(), 0).UTC(), true
	}

	s := strings.TrimSpace(val.String())
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}
