// Package main is the entry point for the tasktable CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tasktable/internal/cli"
	"tasktable/internal/commands"
	"tasktable/internal/ui"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	runner := &cli.Runner{
		Registry: commands.DefaultRegistry,
		TUI:      ui.Run,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}

	code := runner.Run(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}
