// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package sift applies a compiled keyword filter to a batch of items.
package sift

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/feedsift/feedsift/internal/item"
	"github.com/feedsift/feedsift/internal/keywords"
	"github.com/feedsift/feedsift/internal/log"
)

// Result pairs an item with the decision made about it.
type Result struct {
	Item     item.Item         `yaml:"item" json:"item"`
	Decision keywords.Decision `yaml:"decision" json:"decision"`
}

// Stats summarizes a run. Overridden counts kept items that matched an
// exclude term and were reinstated by an override group.
type Stats struct {
	Total      int `yaml:"total" json:"total"`
	Kept       int `yaml:"kept" json:"kept"`
	Dropped    int `yaml:"dropped" json:"dropped"`
	Overridden int `yaml:"overridden" json:"overridden"`
}

// Runner evaluates items against one filter.
type Runner struct {
	filter  keywords.Filter
	workers int
}

// New returns a Runner. A workers value below one uses GOMAXPROCS.
func New(f keywords.Filter, workers int) *Runner {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{filter: f, workers: workers}
}

// Workers returns the concurrency limit.
func (r *Runner) Workers() int {
	return r.workers
}

// Run evaluates every item and returns one Result per item in input order.
// The run stops early with the context error if ctx is cancelled.
func (r *Runner) Run(ctx context.Context, items []item.Item) ([]Result, Stats, error) {
	results := make([]Result, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Result{Item: items[i], Decision: r.filter.Explain(items[i].Input())}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	stats := Tally(results)
	log.WithFields(map[string]interface{}{
		"kept":       stats.Kept,
		"dropped":    stats.Dropped,
		"overridden": stats.Overridden,
	}).Infof("sifted %d items", stats.Total)

	return results, stats, nil
}

// Kept returns the items of the kept results in order.
func Kept(results []Result) []item.Item {
	var kept []item.Item
	for _, res := range results {
		if res.Decision.Keep {
			kept = append(kept, res.Item)
		}
	}
	return kept
}

// Tally counts the decisions in results.
func Tally(results []Result) Stats {
	stats := Stats{Total: len(results)}
	for _, res := range results {
		if !res.Decision.Keep {
			stats.Dropped++
			continue
		}
		stats.Kept++
		if res.Decision.Override >= 0 {
			stats.Overridden++
		}
	}
	return stats
}
