// Package version exposes build metadata stamped in at link time.
package version

import (
	"fmt"
	"io"
	"runtime"
)

// Populated via -ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Print writes human-readable version information to w.
func Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "grab %s (commit %s, built %s, %s/%s)\n",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
	return err
}
