package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-friendly version string. Builds installed with
// `go install` carry no ldflags, so the module version and VCS revision are
// read from the embedded build info instead.
func Info() string {
	version, commit, date := Version, Commit, Date
	if bi, ok := debug.ReadBuildInfo(); ok && version == "dev" {
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			version = v
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "none" && len(s.Value) >= 7 {
					commit = s.Value[:7]
				}
			case "vcs.time":
				if date == "unknown" {
					date = s.Value
				}
			}
		}
	}
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
