// Package version reports build information for the idlgen binary.
//
// Release builds set the variables below through ldflags. Plain `go build`
// and `go install` binaries fall back to the module and VCS data the Go
// toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
)

// Set at build time via -ldflags "-X github.com/teranos/idlgen/version.Version=..."
var (
	Version    = ""
	CommitHash = ""
	BuildTime  = ""
)

const unknown = "unknown"

// Info describes this build and what it can read
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty,omitempty"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	// ModelFormats is the snapshot format range this build reads
	ModelFormats string `json:"model_formats"`
	LintRules    int    `json:"lint_rules"`
}

// Get returns the build information, filling gaps left by ldflags from the
// embedded build info
func Get(modelFormats string, lintRules int) Info {
	info := Info{
		Version:      Version,
		Commit:       CommitHash,
		BuildTime:    BuildTime,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		ModelFormats: modelFormats,
		LintRules:    lintRules,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.fill(bi)
	}
	info.Version = normalize(info.Version)
	if info.Commit == "" {
		info.Commit = unknown
	}
	if info.BuildTime == "" {
		info.BuildTime = unknown
	}
	return info
}

// fill takes the module version and VCS stamps for anything still empty
func (i *Info) fill(bi *debug.BuildInfo) {
	if i.Version == "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.Commit == "" {
				i.Commit = s.Value
			}
		case "vcs.time":
			if i.BuildTime == "" {
				i.BuildTime = s.Value
			}
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
}

// normalize returns v as "vMAJOR.MINOR.PATCH[-pre]", or "dev" when v is
// empty or not a semantic version
func normalize(v string) string {
	if v == "" {
		return "dev"
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return "dev"
	}
	return "v" + parsed.String()
}

// Release reports whether this is a tagged, non-prerelease build
func (i Info) Release() bool {
	parsed, err := semver.NewVersion(i.Version)
	return err == nil && parsed.Prerelease() == ""
}

func (i Info) String() string {
	commit := i.Short()
	if i.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("idlgen %s (commit %s, built %s)", i.Version, commit, i.BuildTime)
}

// Short returns the abbreviated commit hash
func (i Info) Short() string {
	if len(i.Commit) >= 7 {
		return i.Commit[:7]
	}
	return i.Commit
}
