// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/feedsift/feedsift/internal/item"
	"github.com/feedsift/feedsift/internal/log"
)

// Format names an input document format.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
	FormatFeed  Format = "feed"
)

// Formats lists every accepted format name, auto first.
var Formats = []Format{FormatAuto, FormatJSON, FormatJSONL, FormatYAML, FormatFeed}

// ParseFormat maps a name to a Format. An empty name means auto.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatAuto, nil
	}
	f := Format(strings.ToLower(name))
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("unknown input format %q", name)
	}
	return f, nil
}

// Fields holds the candidate paths used to locate each item field.
type Fields struct {
	Title      []string
	Summary    []string
	Link       []string
	Published  []string
	Categories []string
}

// DefaultFields returns the paths tried when none are configured.
func DefaultFields() Fields {
	return Fields{
		Title:      []string{"title"},
		Summary:    []string{"summary", "description", "content", "excerpt"},
		Link:       []string{"link", "url", "uri"},
		Published:  []string{"published", "pubDate", "date", "timestamp", "updated"},
		Categories: []string{"categories", "tags"},
	}
}

// Options control Decode.
type Options struct {
	Format    Format
	Fields    Fields
	StripHTML bool
}

// Decode reads every item from r. Items without a title are skipped with a
// warning.
func Decode(r io.Reader, opts Options) ([]item.Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		log.Debugf("input is empty")
		return nil, nil
	}

	format := opts.Format
	if format == "" || format == FormatAuto {
		format = Detect(data)
		log.Debugf("detected input format: %s", format)
	}

	fields := opts.Fields
	if len(fields.Title) == 0 && len(fields.Summary) == 0 {
		fields = DefaultFields()
	}

	var items []item.Item
	switch format {
	case FormatJSON:
		items, err = decodeJSON(data, fields)
	case FormatJSONL:
		items, err = decodeJSONL(data, fields)
	case FormatYAML:
		items, err = decodeYAML(data, fields)
	case FormatFeed:
		items, err = decodeFeed(data)
	default:
		err = fmt.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for i, it := range items {
		if opts.StripHTML {
			it = it.Plain()
		}
		if it.Title == "" {
			log.Warnf("skipping item %d: no title", i+1)
			continue
		}
		kept = append(kept, it)
	}

	log.Debugf("decoded %d items (%d skipped)", len(kept), len(items)-len(kept))
	return kept, nil
}

// Detect guesses the format of data from its leading bytes.
func Detect(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FormatJSON
	}

	switch trimmed[0] {
	case '<':
		return FormatFeed
	case '[':
		if gjson.ValidBytes(trimmed) {
			return FormatJSON
		}
	case '{':
		if gjson.ValidBytes(trimmed) {
			if strings.Contains(gjson.GetBytes(trimmed, "version").String(), "jsonfeed.org") {
				return FormatFeed
			}
			return FormatJSON
		}
		return FormatJSONL
	}

	return FormatYAML
}

// decodeJSON accepts an array of objects, an object with an "items" array or
// a single object.
func decodeJSON(data []byte, fields Fields) ([]item.Item, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("input is not valid JSON")
	}

	doc := gjson.ParseBytes(data)
	if doc.IsObject() {
		if list := doc.Get("items"); list.IsArray() {
			doc = list
		} else {
			return []item.Item{fromResult(doc, fields)}, nil
		}
	}
	if !doc.IsArray() {
		return nil, fmt.Errorf("expected an array or object, got %s", doc.Type)
	}

	var items []item.Item
	for i, entry := range doc.Array() {
		if !entry.IsObject() {
			log.Warnf("skipping item %d: not an object", i+1)
			continue
		}
		items = append(items, fromResult(entry, fields))
	}
	return items, nil
}

func decodeJSONL(data []byte, fields Fields) ([]item.Item, error) {
	var items []item.Item

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		if !gjson.ValidBytes(text) {
			return nil, fmt.Errorf("line %d: invalid JSON", line)
		}
		entry := gjson.ParseBytes(text)
		if !entry.IsObject() {
			return nil, fmt.Errorf("line %d: expected an object", line)
		}
		items = append(items, fromResult(entry, fields))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan input: %w", err)
	}

	return items, nil
}

// decodeYAML converts the document to JSON so the same paths apply.
func decodeYAML(data []byte, fields Fields) ([]item.Item, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML input: %w", err)
	}

	converted, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML input: %w", err)
	}

	return decodeJSON(converted, fields)
}

// fromResult builds an item from one decoded object.
func fromResult(entry gjson.Result, fields Fields) item.Item {
	it := item.Item{
		Title:      text(first(entry, fields.Title)),
		Summary:    text(first(entry, fields.Summary)),
		Link:       text(first(entry, fields.Link)),
		Categories: stringList(first(entry, fields.Categories)),
	}

	if published := first(entry, fields.Published); published.Exists() {
		if t, ok := parsePublished(published); ok {
			it.Published = t
		} else {
			log.Debugf("unparsed published value %q on %q", published.String(), it.Title)
		}
	}

	return it
}
