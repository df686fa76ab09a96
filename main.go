// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/feedsift/feedsift/internal/command"
	"github.com/feedsift/feedsift/internal/config"
	"github.com/feedsift/feedsift/internal/log"
	"github.com/feedsift/feedsift/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version())
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs expands @set arguments and drops repeated flags so the
// last occurrence wins.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	if len(args) < 2 {
		return args
	}
	return deduplicateFlags(args, command.BoolFlags(args[1]))
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		// Sets live in the config file, which the app loads again later.
		if _, err := config.Load(); err != nil {
			log.Debugf("config not loaded for set processing: %v", err)
		}
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands the arguments stored under <command>.<set> in the
// config file. An explicit @set argument is replaced by its set; without one
// the "defaults" set, if any, is inserted right after the command so that
// later arguments override it.
func processSetOnly(args []string) []string {
	if len(args) < 2 {
		return args
	}

	set := "defaults"
	insertIdx := 2
	for i := 2; i < len(args); i++ {
		if strings.HasPrefix(args[i], "@") {
			set = args[i][1:]
			insertIdx = i
			args = append(args[:i:i], args[i+1:]...)
			break
		}
	}

	entries, _ := config.GetStringSlice(args[1] + "." + set)
	return injectConfigSet(args, entries, insertIdx)
}

// injectConfigSet splits each entry on whitespace and inserts the resulting
// arguments at insertIdx.
func injectConfigSet(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// argUnit is a flag with its value, or a positional argument.
type argUnit struct {
	key    string
	tokens []string
}

// flagKey returns the flag name of an argument, or "" for a positional one.
func flagKey(arg string) string {
	if !strings.HasPrefix(arg, "-") {
		return ""
	}
	key := strings.TrimLeft(arg, "-")
	if i := strings.Index(key, "="); i >= 0 {
		key = key[:i]
	}
	return key
}

// deduplicateFlags keeps only the last occurrence of each flag after the
// command. A flag that is not in bools and is followed by an argument that
// does not start with "-" is taken to own that argument as its value.
// Everything after "--" is kept as is.
func deduplicateFlags(args []string, bools map[string]bool) []string {
	if len(args) <= 2 {
		return args
	}

	var units []argUnit
	rest := args[2:]
	var tail []string
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if arg == "--" {
			tail = rest[i:]
			break
		}

		unit := argUnit{key: flagKey(arg), tokens: []string{arg}}
		if unit.key != "" && !bools[unit.key] && !strings.Contains(arg, "=") &&
			i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			unit.tokens = append(unit.tokens, rest[i+1])
			i++
		}
		units = append(units, unit)
	}

	last := make(map[string]int)
	for i, u := range units {
		if u.key != "" {
			last[u.key] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, u := range units {
		if u.key != "" && last[u.key] != i {
			continue
		}
		out = append(out, u.tokens...)
	}
	return append(out, tail...)
}
