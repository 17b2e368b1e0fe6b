// Package buildinfo exposes compile-time metadata of the client binary.
package buildinfo

import (
	"fmt"
	"io"
)

// The following variables are overridden via ldflags during release builds:
//
//	go build -ldflags "-X github.com/dmitrijs2005/bizadmin/internal/buildinfo.Version=v1.2.0"
var (
	Version   = "N/A"
	Commit    = "N/A"
	BuildDate = "N/A"
)

// PrintBuildData writes the version banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
