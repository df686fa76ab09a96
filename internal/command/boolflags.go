// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"

	"github.com/feedsift/feedsift/internal/meta"
)

// BoolFlags returns the names and aliases of the boolean flags defined on the
// named subcommand. Boolean flags never own the argument that follows them.
// An unknown subcommand yields an empty set.
func BoolFlags(name string) map[string]bool {
	builders := []func(meta.Meta) *cli.Command{
		compileCommandBuilder,
		matchCommandBuilder,
		runCommandBuilder,
		completionCommandBuilder,
	}

	bools := make(map[string]bool)
	for _, build := range builders {
		cmd := build(meta.Meta{})
		if cmd.Name != name {
			continue
		}
		for _, f := range cmd.Flags {
			if _, ok := f.(*cli.BoolFlag); !ok {
				continue
			}
			for _, n := range f.Names() {
				bools[n] = true
			}
		}
	}
	return bools
}
