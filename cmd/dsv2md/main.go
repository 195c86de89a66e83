// Command dsv2md reads delimiter-separated values from stdin and writes a
// Markdown table to stdout.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("github.com/bjaus/dsv2md")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	app := newApp()
	code := app.run(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}
