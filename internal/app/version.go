package app

import (
	"runtime/debug"
	"strings"
)

// Version is stamped at link time:
//
//	go build -ldflags "-X github.com/gramaconnect/gramaconnect-backend/internal/app.Version=v1.2.0"
var Version = "dev"

// BuildVersion returns Version followed by the short VCS revision the binary
// was built from, when the toolchain recorded one.
func BuildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return Version
	}

	var b strings.Builder
	b.WriteString(Version)
	b.WriteString("+")
	b.WriteString(rev[:min(len(rev), 12)])
	if dirty {
		b.WriteString("-dirty")
	}
	return b.String()
}
