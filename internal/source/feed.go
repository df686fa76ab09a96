// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"fmt"

	"github.com/mmcdole/gofeed"

	"github.com/feedsift/feedsift/internal/item"
	"github.com/feedsift/feedsift/internal/log"
)

// decodeFeed parses RSS, Atom and JSON Feed documents. The summary is the
// entry description, or its content when there is no description.
func decodeFeed(data []byte) ([]item.Item, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	log.Debugf("parsed %s feed %q with %d entries", feed.FeedType, feed.Title, len(feed.Items))

	items := make([]item.Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry == nil {
			continue
		}

		it := item.Item{
			Title:      entry.Title,
			Summary:    entry.Description,
			Link:       entry.Link,
			Categories: entry.Categories,
		}
		if it.Summary == "" {
			it.Summary = entry.Content
		}
		switch {
		case entry.PublishedParsed != nil:
			it.Published = entry.PublishedParsed.UTC()
		case entry.UpdatedParsed != nil:
			it.Published = entry.UpdatedParsed.UTC()
		}

		items = append(items, it)
	}

	return items, nil
}
