// Package main is the entry point for the staffrecords CLI.
// Configuration, logging and the database connection are set up per command
// in src/app/cli.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"staffrecords/src/app/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Cancel in-flight statements on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return cli.Execute(ctx)
}
