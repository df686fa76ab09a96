// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedsift/feedsift/internal/item"
)

// decodeFile decodes one file from testdata.
func decodeFile(t *testing.T, name string, opts Options) []item.Item {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	items, err := Decode(f, opts)
	require.NoError(t, err)
	return items
}

func titles(items []item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"empty", "   ", FormatJSON},
		{"xml", `<?xml version="1.0"?><rss/>`, FormatFeed},
		{"json array", `[{"title":"a"}]`, FormatJSON},
		{"json object", `{"items":[]}`, FormatJSON},
		{"json feed", `{"version":"https://jsonfeed.org/version/1.1","items":[]}`, FormatFeed},
		{"json lines", "{\"title\":\"a\"}\n{\"title\":\"b\"}", FormatJSONL},
		{"yaml list", "- title: a\n", FormatYAML},
		{"yaml flow sequence", "[a, b", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect([]byte(tt.data)))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatAuto, f)

	f, err = ParseFormat("JSONL")
	require.NoError(t, err)
	assert.Equal(t, FormatJSONL, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestDecodeJSON(t *testing.T) {
	items := decodeFile(t, "items.json", Options{})
	require.Len(t, items, 3)

	assert.Equal(t, []string{
		"Flood warning for Canvey Island",
		"Traffic jam on the A127",
		"Museum reopens",
	}, titles(items))

	assert.Equal(t, "<p>Residents near the <b>country park</b> should prepare.</p>", items[0].Summary)
	assert.Equal(t, "https://example.com/flood", items[0].Link)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), items[0].Published)
	assert.Equal(t, []string{"weather", "essex"}, items[0].Categories)

	assert.Equal(t, "Delays of up to an hour.", items[1].Summary)
	assert.Equal(t, "https://example.com/a127", items[1].Link)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), items[1].Published)

	assert.Equal(t, "Chelmsford museum opens its doors again.", items[2].Summary)
	assert.Equal(t, time.Unix(1772359200, 0).UTC(), items[2].Published)
}

func TestDecodeStripHTML(t *testing.T) {
	items := decodeFile(t, "items.json", Options{StripHTML: true})
	require.NotEmpty(t, items)
	assert.Equal(t, "Residents near the country park should prepare.", items[0].Summary)
}

func TestDecodeJSONL(t *testing.T) {
	items := decodeFile(t, "items.jsonl", Options{})
	assert.Equal(t, []string{"Flood warning for Canvey Island", "Traffic jam on the A127"}, titles(items))

	_, err := Decode(strings.NewReader("{\"title\":\"a\"}\nnot json\n"), Options{Format: FormatJSONL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Decode(strings.NewReader("[1,2]\n"), Options{Format: FormatJSONL})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected an object")
}

func TestDecodeYAML(t *testing.T) {
	items := decodeFile(t, "items.yaml", Options{})
	require.Len(t, items, 2)

	assert.Equal(t, "Residents near the country park should prepare.", items[0].Summary)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), items[0].Published)
	assert.Equal(t, []string{"weather"}, items[0].Categories)
	assert.Equal(t, "Delays of up to an hour.", items[1].Summary)

	_, err := Decode(strings.NewReader("title: [unclosed"), Options{Format: FormatYAML})
	assert.Error(t, err)
}

func TestDecodeCustomFields(t *testing.T) {
	items := decodeFile(t, "nested.json", Options{Fields: Fields{
		Title:   []string{"headline", "meta.headline"},
		Summary: []string{"meta.teaser"},
		Link:    []string{"links[1].href"},
	}})
	require.Len(t, items, 1)

	assert.Equal(t, "Flood warning", items[0].Title)
	assert.Equal(t, "Rain and wind", items[0].Summary)
	assert.Equal(t, "https://example.com/two", items[0].Link)
}

func TestDecodeFeeds(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		strip     bool
		want      []string
		summary   string
		published time.Time
		link      string
	}{
		{
			name:      "rss",
			file:      "rss.xml",
			strip:     true,
			want:      []string{"Flood warning for Canvey Island", "Traffic jam on the A127"},
			summary:   "Residents near the country park should prepare.",
			published: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
			link:      "https://example.com/flood",
		},
		{
			name:      "atom falls back to content and updated",
			file:      "atom.xml",
			want:      []string{"Museum reopens"},
			summary:   "Chelmsford museum opens its doors again.",
			published: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			link:      "https://example.com/museum",
		},
		{
			name:      "json feed",
			file:      "feed.json",
			want:      []string{"Flood warning for Canvey Island"},
			summary:   "Prepare now.",
			published: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
			link:      "https://example.com/flood",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := decodeFile(t, tt.file, Options{StripHTML: tt.strip})
			require.NotEmpty(t, items)
			assert.Equal(t, tt.want, titles(items))
			assert.Equal(t, tt.summary, items[0].Summary)
			assert.Equal(t, tt.published, items[0].Published)
			assert.Equal(t, tt.link, items[0].Link)
		})
	}
}

func TestDecodeEdgeCases(t *testing.T) {
	items, err := Decode(strings.NewReader(" \n "), Options{})
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = Decode(strings.NewReader(`{"title":"Only one"}`), Options{Format: FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, []string{"Only one"}, titles(items))

	items, err = Decode(strings.NewReader(`[{"title":"a"}, 42, {"title":""}]`), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, titles(items))

	_, err = Decode(strings.NewReader(`"just a string"`), Options{Format: FormatJSON})
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`{bad`), Options{Format: FormatJSON})
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`<html><body>not a feed</body></html>`), Options{Format: FormatFeed})
	assert.Error(t, err)
}
