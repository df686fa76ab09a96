// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the feedsift subcommands (compile, match, run and
// completion) into a urfave/cli application. The first argument after the
// binary names the subcommand and doubles as the config namespace, so
// "run.workers" in feedsift.yaml sets the default for "feedsift run
// --workers".
package command
