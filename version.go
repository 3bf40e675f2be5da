/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gesturerecognizer

import (
	"fmt"
	"runtime"
)

// Release metadata. GitCommit and BuildDate are stamped with -ldflags -X.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// VersionInfo describes the running build of the recognizer library.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
}

// GetVersionInfo returns the stamped release metadata and the Go runtime
// version the binary was built with.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String renders the info for a command's -version output.
func (v VersionInfo) String() string {
	return fmt.Sprintf("version %s\nGit commit: %s\nBuild date: %s\nGo version: %s",
		v.Version, v.GitCommit, v.BuildDate, v.GoVersion)
}
