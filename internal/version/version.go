// Package version reports the deckcalc build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/deckcalc/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/deckcalc/internal/version.Commit=abc123"
//
// Unset values are taken from VCS build info, then fall back to "dev".
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	var settings map[string]string
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = make(map[string]string, len(info.Settings))
		for _, s := range info.Settings {
			settings[s.Key] = s.Value
		}
	}
	Version, Commit = resolve(Version, Commit, settings)
}

// resolve fills missing version and commit values from vcs.* build settings.
func resolve(version, commit string, settings map[string]string) (string, string) {
	if commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			commit = rev
		}
	}

	if version == "" {
		if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			version = "dev-" + t.Format("20060102")
		}
	}

	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	return version, commit
}

// Info is the version payload served by the health endpoint
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Go      string `json:"go"`
}

// Get returns the running build's version info
func Get() Info {
	return Info{Version: Version, Commit: Commit, Go: runtime.Version()}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// UserAgent is sent by the deckcalc client
func UserAgent() string {
	return "deckcalc/" + Version
}
