package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/obentoo/flakeage/internal/common/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// readBuildInfo is replaced in tests
var readBuildInfo = debug.ReadBuildInfo

// resolve fills in whatever ldflags left unset from the module build info,
// which `go install github.com/obentoo/flakeage/cmd/flakeage@vX` stamps.
func resolve() (version, commit, date string) {
	version, commit, date = Version, Commit, BuildDate

	info, ok := readBuildInfo()
	if !ok {
		return
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && commit == "unknown":
			commit = s.Value
			if len(commit) > 12 {
				commit = commit[:12]
			}
		case s.Key == "vcs.time" && date == "unknown":
			date = s.Value
		}
	}
	return
}

// Info is the text printed by `flakeage version`
func Info() string {
	version, commit, date := resolve()
	return fmt.Sprintf("flakeage version %s (commit %s, built %s, %s %s/%s)",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short is the text printed by `flakeage --version`
func Short() string {
	version, _, _ := resolve()
	return version
}
