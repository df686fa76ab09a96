// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/feedsift/feedsift/internal/item"
	"github.com/feedsift/feedsift/internal/log"
	"github.com/feedsift/feedsift/internal/meta"
	"github.com/feedsift/feedsift/internal/output"
)

// matchCommandAction is the action handler for the "match" subcommand. It
// evaluates one item given on the command line and prints keep or drop. The
// verdict is not reflected in the exit status.
func matchCommandAction(ctx context.Context, cmd *cli.Command) error {
	f, err := compileQuery(cmd, strings.Join(cmd.Args().Slice(), " "))
	if err != nil {
		return err
	}

	it := item.Item{
		Title:   cmd.String("title"),
		Summary: cmd.String("summary"),
	}
	if cmd.Bool("strip-html") {
		it = it.Plain()
	}

	d := f.Explain(it.Input())
	log.Debugf("match %q: keep=%t", it.Title, d.Keep)

	return output.Decision(cmd.Root().Writer, f, d, cmd.Bool("explain"), outputOptions(cmd))
}

// matchCommandBuilder constructs the cli.Command for "match".
func matchCommandBuilder(meta meta.Meta) *cli.Command {
	flags := []cli.Flag{
		NewPresetFlag(),
		&cli.StringFlag{
			Name:     "title",
			Usage:    "item title",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "summary",
			Usage: "item summary",
		},
		&cli.BoolFlag{
			Name:    "explain",
			Aliases: []string{"e"},
			Usage:   "show which terms decided the outcome",
		},
		&cli.BoolFlag{
			Name:  "strip-html",
			Usage: "remove markup from the title and summary before matching",
		},
	}
	flags = append(flags, NewFilterOutputFlags("match", meta.Config.Source)...)

	return &cli.Command{
		Name:      "match",
		Usage:     "evaluate a query against one item",
		UsageText: "feedsift match --title TITLE [--summary SUMMARY] [query] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  flags,
		Action: matchCommandAction,
	}
}
