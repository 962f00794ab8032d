package contracts

import (
	"fmt"
	"runtime"
)

const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version number
	VersionMajor = 0

	// VersionMinor is the minor version number
	VersionMinor = 3

	// VersionPatch is the patch version number
	VersionPatch = 0

	// SummaryFormatVersion is the version of the domain summary JSON layout
	SummaryFormatVersion = "v1"
)

var (
	// GitCommit is set during build using ldflags
	GitCommit = "unknown"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	Version       string `json:"version"`
	GitCommit     string `json:"git_commit"`
	GoVersion     string `json:"go_version"`
	SummaryFormat string `json:"summary_format"`
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:       Version,
		GitCommit:     GitCommit,
		GoVersion:     runtime.Version(),
		SummaryFormat: SummaryFormatVersion,
	}
}

// GetVersionString returns a formatted version string
func GetVersionString() string {
	return fmt.Sprintf("pymudata v%s", Version)
}
