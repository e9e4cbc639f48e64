// skyshell is a browser-style navigation shell for a social client.
//
// It keeps a set of tabs, each with its own back/forward history, maps paths
// and external links (bsky:// and https://bsky.app) onto typed routes, and
// renders the result as an interactive Bubbletea TUI.
//
// Usage:
//
//	skyshell run [url]         Start the shell, optionally opening url
//	skyshell open <url>        Hand a link to the running shell
//	skyshell resolve <url>     Print the route and navigation state for url
//	skyshell routes            List the route table
//	skyshell version           Print version and exit
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/tinyland/lab/skyshell/pkg/cli"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	cli.Version, cli.Commit, cli.BuildDate = version, commit, date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
