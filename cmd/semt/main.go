// Package main provides the entry point for the semt CLI tool.
package main

import "github.com/semtui/semt/cmd/semt/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
