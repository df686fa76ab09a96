// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for feedsift's user
// configuration. The configuration is a YAML document located by the
// FEEDSIFT_CFG_FILE environment variable or, failing that, in the user's
// configuration directory:
//   - Linux: $XDG_CONFIG_HOME/feedsift.yaml or $HOME/.config/feedsift.yaml
//   - macOS: $HOME/Library/Application Support/feedsift.yaml
//   - Windows: %AppData%/feedsift.yaml
//
// A typical document holds named filter presets and per-command defaults:
//
//	filters:
//	  essex: 'flood,"traffic jam",-"canvey island",except("museum","country park")'
//	run:
//	  workers: 8
//	  filter: flood
//	colors:
//	  title: "#f6be00"
package config
