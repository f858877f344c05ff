// Package main provides the entry point for the dirsync CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/dirsync/cmd/dirsync/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	if err := application.Execute(context.Background(), os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
