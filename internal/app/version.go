package app

import (
	"fmt"
	"io"
)

// Version is the application version, overridable at build time with
// -ldflags "-X github.com/agbru/parsum/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version string.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "parsum %s\n", Version)
}
