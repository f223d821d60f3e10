package id3tags

import (
	"runtime"
	"runtime/debug"
)

// Release is the version shared by the library and the id3scan tool.
const Release = "0.1.0"

// Release builds stamp these with
// -ldflags "-X github.com/simonhull/id3tags.commit=... -X github.com/simonhull/id3tags.buildTime=...".
var (
	commit    string
	buildTime string
)

// Build identifies the running id3scan binary.
type Build struct {
	Release string
	Commit  string
	Time    string
	// Dirty is set when the working tree had uncommitted changes.
	Dirty bool
	Go    string
}

// CurrentBuild reports the running build. Linker-stamped values win; a
// plain "go build" from a checkout falls back to the embedded VCS stamp.
func CurrentBuild() Build {
	b := Build{
		Release: Release,
		Commit:  commit,
		Time:    buildTime,
		Go:      runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		b.fill(bi.Settings)
	}
	if b.Commit == "" {
		b.Commit = "unknown"
	}
	if b.Time == "" {
		b.Time = "unknown"
	}
	return b
}

func (b *Build) fill(settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "" {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.Time == "" {
				b.Time = s.Value
			}
		case "vcs.modified":
			b.Dirty = s.Value == "true"
		}
	}
}

// ShortCommit returns the first 12 characters of the commit hash.
func (b Build) ShortCommit() string {
	if len(b.Commit) > 12 {
		return b.Commit[:12]
	}
	return b.Commit
}
