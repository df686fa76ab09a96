// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders sifted items, compiled filters and match decisions.
//
// Items are turned into rows (maps keyed by column name) so one set of sort
// and table logic serves every command. Supported outputs are text (a
// borderless lipgloss table), json, jsonl and yaml.
package output
