// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/feedsift/feedsift/internal/item"
	"github.com/feedsift/feedsift/internal/log"
	"github.com/feedsift/feedsift/internal/meta"
	"github.com/feedsift/feedsift/internal/output"
	"github.com/feedsift/feedsift/internal/sift"
	"github.com/feedsift/feedsift/internal/source"
)

// runCommandAction is the action handler for the "run" subcommand. It reads
// items from a file or stdin, keeps the ones matching the filter and prints
// them.
func runCommandAction(ctx context.Context, cmd *cli.Command) error {
	f, err := compileQuery(cmd, "")
	if err != nil {
		return err
	}
	log.Debugf("run filter: %s", f.String())

	input := "-"
	if cmd.Args().Len() > 0 {
		input = cmd.Args().First()
	}

	items, err := readItems(cmd, input)
	if err != nil {
		return err
	}

	results, stats, err := sift.New(f, cmd.Int("workers")).Run(ctx, items)
	if err != nil {
		return fmt.Errorf("failed to sift items: %w", err)
	}

	if err := output.Items(cmd.Root().Writer, sift.Kept(results), outputOptions(cmd)); err != nil {
		return err
	}

	if cmd.Bool("stats") {
		output.Stats(cmd.Root().ErrWriter, stats)
	}

	return nil
}

// readItems decodes the items in input, where "-" is stdin.
func readItems(cmd *cli.Command, input string) (items []item.Item, err error) {
	var r io.Reader
	if input == "-" {
		r = cmd.Root().Reader
		if r == nil {
			r = os.Stdin
		}
	} else {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("input file does not exist: %s", input)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("input cannot be a directory: %s", input)
		}
		file, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		r = file
	}

	format, err := source.ParseFormat(cmd.String("format"))
	if err != nil {
		return nil, err
	}

	fields := source.DefaultFields()
	if keys := splitList(cmd.String("title-key")); len(keys) > 0 {
		fields.Title = keys
	}
	if keys := splitList(cmd.String("summary-key")); len(keys) > 0 {
		fields.Summary = keys
	}
	if keys := splitList(cmd.String("link-key")); len(keys) > 0 {
		fields.Link = keys
	}

	items, err = source.Decode(r, source.Options{
		Format:    format,
		Fields:    fields,
		StripHTML: cmd.Bool("strip-html"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", displayName(input), err)
	}

	return items, nil
}

func displayName(input string) string {
	if input == "-" {
		return "stdin"
	}
	return input
}

// runCommandBuilder constructs the cli.Command for "run".
func runCommandBuilder(meta meta.Meta) *cli.Command {
	path := meta.Config.Source

	flags := []cli.Flag{
		NewFilterFlag("run", path),
		NewPresetFlag(),
		&cli.StringFlag{
			Name:    "columns",
			Usage:   "comma-separated list of columns for text output",
			Sources: configSources("run", "columns", path),
			Validator: func(value string) error {
				return FlagValidators(value, ColumnsValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort the results by",
			Sources: configSources("run", "sort", path),
		},
		&cli.IntFlag{
			Name:    "padding",
			Usage:   "spaces between text output columns",
			Value:   output.DefaultPadding,
			Sources: configSources("run", "padding", path),
			Validator: func(value int) error {
				return FlagValidators(value, PaddingValidator)
			},
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "print kept and dropped counts to stderr",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "number of concurrent evaluators (0 for one per CPU)",
			Value:   0,
			Sources: envThenConfig("FEEDSIFT_WORKERS", "run", "workers", path),
			Validator: func(value int) error {
				return FlagValidators(value, WorkersValidator)
			},
		},
	}
	flags = append(flags, NewSourceFlags("run", path)...)
	flags = append(flags, NewOutputFlags("run", path)...)

	return &cli.Command{
		Name:      "run",
		Usage:     "filter the items in a file or stdin",
		UsageText: "feedsift run [file|-] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  flags,
		Action: runCommandAction,
	}
}
