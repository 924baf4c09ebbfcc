// Command casefile is the operator CLI for a Casefile deployment. It runs the
// case use cases and storage maintenance against the configured backend.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCLI().rootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
