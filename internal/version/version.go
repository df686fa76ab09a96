// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other feedsift packages to avoid import cycles.

package version

import "runtime/debug"

// linked may be set with -ldflags "-X github.com/feedsift/feedsift/internal/version.linked=v1.2.3".
var linked string

// Version returns the linked version, else the module version recorded in
// the build info, else "dev".
func Version() string {
	return resolve(linked, debug.ReadBuildInfo)
}

func resolve(linked string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if linked != "" {
		return linked
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
