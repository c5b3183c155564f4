// Package buildinfo holds version information injected at build time:
//
//	go build -ldflags "-X github.com/matzehuels/guiscale/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/guiscale/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/guiscale/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/guiscale
package buildinfo

import (
	"fmt"
	"runtime"
)

// Overridden via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the build information as "key: value" lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\ngo: %s", Version, Commit, Date, runtime.Version())
}

// Template returns the --version template for cobra.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}
