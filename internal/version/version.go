// Package version reports how the darkslide binary was built.
//
// Release builds set Version, Commit and Date with -ldflags -X. Builds made
// with go install or go build from a checkout fall back to the module and VCS
// information the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const unknown = "unknown"

// Set with -ldflags "-X github.com/jmylchreest/darkslide/internal/version.Version=x.y.z".
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the build information, preferring values set at link time.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String formats the build information for `darkslide version`.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "darkslide version %s", i.Version)

	var details []string
	if i.Commit != unknown {
		c := i.Commit
		if len(c) > 8 {
			c = c[:8]
		}
		if i.Modified {
			c += "-dirty"
		}
		details = append(details, "commit: "+c)
	}
	if i.Date != unknown {
		details = append(details, "built: "+i.Date)
	}
	details = append(details, i.GoVersion, i.Platform)

	fmt.Fprintf(&b, " (%s)", strings.Join(details, ", "))
	return b.String()
}
