package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lumberjack/internal/app"
)

const version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, app.Options{Version: version}); err != nil {
		fmt.Fprintf(os.Stderr, "lumberjack: %v\n", err)
		return 1
	}
	return 0
}
