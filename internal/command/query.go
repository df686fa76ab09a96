// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/feedsift/feedsift/internal/config"
	"github.com/feedsift/feedsift/internal/keywords"
	"github.com/feedsift/feedsift/internal/log"
)

// resolveQuery picks the raw query for a command. An explicit query wins,
// then --preset, then --filter when the command has one.
func resolveQuery(cmd *cli.Command, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if name := cmd.String("preset"); name != "" {
		query, err := config.Preset(name)
		if err != nil {
			return "", fmt.Errorf("failed to resolve preset: %w", err)
		}
		log.Debugf("using preset %q: %s", name, query)
		return query, nil
	}

	if hasFlag(cmd, "filter") {
		return cmd.String("filter"), nil
	}

	return "", nil
}

// compileQuery resolves and compiles the query for a command.
func compileQuery(cmd *cli.Command, explicit string) (keywords.Filter, error) {
	raw, err := resolveQuery(cmd, explicit)
	if err != nil {
		return keywords.Filter{}, err
	}

	f := keywords.Compile(raw)
	if f.IsEmpty() && strings.TrimSpace(raw) != "" {
		log.Warnf("query %q has no usable terms, every item is kept", raw)
	}
	return f, nil
}

func hasFlag(cmd *cli.Command, name string) bool {
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			if n == name {
				return true
			}
		}
	}
	return false
}
