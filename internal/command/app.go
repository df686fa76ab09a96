// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/feedsift/feedsift/internal/config"
	"github.com/feedsift/feedsift/internal/log"
	"github.com/feedsift/feedsift/internal/meta"
)

// InitApp loads the configuration and builds the root command.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// args[1] is the subcommand and the config namespace. It could be
	// -h/--help, so ignore it if it looks like a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A missing config file is normal. A broken one is not.
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrParse) {
			return nil, err
		}
		log.Debugf("no config loaded: %v", err)
	}
	config.Config.Namespace = ns
	cfg.Namespace = ns

	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}

	app := &cli.Command{
		Name:  "feedsift",
		Usage: "keyword filtering for feeds and item lists",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "feedsift version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		compileCommandBuilder(meta),
		matchCommandBuilder(meta),
		runCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
