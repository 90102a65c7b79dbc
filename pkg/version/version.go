// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags "-X github.com/plantview/plantview-cli/pkg/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func GetVersion() string {
	return Version
}

func GetBuildInfo() string {
	return fmt.Sprintf("plantview %s\nGit Commit: %s\nBuild Date: %s\nGo Version: %s\nOS/Arch: %s/%s",
		Version,
		GitCommit,
		BuildDate,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}
