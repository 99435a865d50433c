// Package version holds build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/harlequix/lofi/version.Version=v0.3.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
	OsArch    = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)
