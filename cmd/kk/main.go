// Package main is the entry point for the kk editor.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kk-editor/kk/internal/app"
	"github.com/kk-editor/kk/internal/terminal"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts app.Options) error {
	editor, err := app.New(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer editor.Close()

	term, err := terminal.New()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = editor.Run(ctx, term)
	if errors.Is(err, app.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
