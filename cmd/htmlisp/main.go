package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/KimNorgaard/htmlisp/internal/console"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		console.New(os.Stdout, os.Stderr, console.Auto).Error("%v", err)
		os.Exit(1)
	}
}
