// Package buildinfo contains build information.
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"mealog.dev/pkg/must"
	"mealog.dev/pkg/prog"
)

// VersionBase identifies the version of mealog. On development commits, it
// identifies the next release, and the full version has a "-dev" suffix
// derived from the VCS information.
const VersionBase = "0.1.0"

// VCSOverride may be set during compilation with:
//
//	go build -ldflags '-X mealog.dev/pkg/buildinfo.VCSOverride=time-commit'
//
// to identify the version of development builds. It is only needed if the
// VCS information is not available during compilation, and has no effect on
// release builds.
var VCSOverride string

// BuildVariant may be set during compilation with:
//
//	go build -ldflags '-X mealog.dev/pkg/buildinfo.BuildVariant=distro'
//
// to identify a build variant, typically the name of a software distribution
// that packages mealog. It is appended to the version string with a "+".
var BuildVariant string

// Type describes the build information.
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains the build information.
var Value = Type{
	Version:   addVariant(devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo), BuildVariant),
	GoVersion: runtime.Version(),
}

func addVariant(version, variant string) string {
	if variant != "" {
		version += "+" + variant
	}
	return version
}

// Builds a pseudo-version for a development build, in the same format used by
// the Go module system: the next version, followed by "-dev.0." and a
// timestamped commit identifier. Falls back to "-dev.unknown" if no VCS
// information is available.
func devVersion(next, vcsOverride string, f func() (*debug.BuildInfo, bool)) string {
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	fallback := next + "-dev.unknown"
	bi, ok := f()
	if !ok {
		return fallback
	}
	// If the main module's version is known, use it.
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}
	// Otherwise, build a version string from the VCS information.
	m := make(map[string]string)
	for _, s := range bi.Settings {
		if k := strings.TrimPrefix(s.Key, "vcs."); k != s.Key {
			m[k] = s.Value
		}
	}
	if m["revision"] == "" || m["time"] == "" || m["modified"] == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339Nano, m["time"])
	if err != nil {
		return fallback
	}
	revision := m["revision"]
	if len(revision) > 12 {
		revision = revision[:12]
	}
	version := fmt.Sprintf("%s-dev.0.%s-%s", next, t.Format("20060102150405"), revision)
	if m["modified"] == "true" {
		version += "-dirty"
	}
	return version
}

// Program is the buildinfo subprogram. It handles the -version and -buildinfo
// flags, and is not suitable when neither is given.
type Program struct{}

// Run runs the buildinfo subprogram.
func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.BuildInfo:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case f.Version:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNotSuitable
	}
	return nil
}

func mustToJSON(v any) string {
	return string(must.OK1(json.Marshal(v)))
}
