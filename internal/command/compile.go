// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/feedsift/feedsift/internal/log"
	"github.com/feedsift/feedsift/internal/meta"
	"github.com/feedsift/feedsift/internal/output"
)

// compileCommandAction is the action handler for the "compile" subcommand.
// It prints the compiled form of a query.
func compileCommandAction(ctx context.Context, cmd *cli.Command) error {
	log.Debugf("executing compile with args %v", cmd.Args().Slice())

	f, err := compileQuery(cmd, strings.Join(cmd.Args().Slice(), " "))
	if err != nil {
		return err
	}

	return output.Filter(cmd.Root().Writer, f, outputOptions(cmd))
}

// compileCommandBuilder constructs the cli.Command for "compile".
func compileCommandBuilder(meta meta.Meta) *cli.Command {
	flags := []cli.Flag{NewPresetFlag()}
	flags = append(flags, NewFilterOutputFlags("compile", meta.Config.Source)...)

	return &cli.Command{
		Name:      "compile",
		Usage:     "compile a query and show its terms",
		UsageText: "feedsift compile [query] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  flags,
		Action: compileCommandAction,
	}
}

// outputOptions collects the rendering flags of cmd.
func outputOptions(cmd *cli.Command) output.Options {
	opts := output.Options{
		Output: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
	}
	if hasFlag(cmd, "sort") {
		opts.Sort = cmd.String("sort")
	}
	if hasFlag(cmd, "columns") {
		opts.Columns = splitList(cmd.String("columns"))
	}
	if hasFlag(cmd, "padding") {
		opts.Padding = cmd.Int("padding")
	}
	return opts
}
