package listprops

import "runtime"

// Version is the semantic version of listprops.
const Version = "1.0.0"

// VersionInfo contains detailed version information.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetVersionInfo returns the version information. GitCommit and BuildTime
// are set at build time:
//
//	go build -ldflags="-X github.com/simonhull/listprops.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/listprops.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/listprops
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// String returns the one-line form used by the CLI.
func (v VersionInfo) String() string {
	return v.Version + " (" + v.GitCommit + ", " + v.BuildTime + ", " + v.GoVersion + ")"
}

var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
