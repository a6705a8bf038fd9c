package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"orderdesk/cmd"
	"orderdesk/internal/adapters/in/cli"

	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := config.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		log.Fatalf("Error opening the %s store: %v", config.Store, err)
	}

	handlers := app.Handlers()
	err = cli.Execute(ctx, cli.Deps{
		Handlers: handlers,
		Logger:   logger,
		Serve:    app.Serve(handlers),
	}, os.Args[1:], os.Stdout, os.Stderr)

	if closeErr := app.Close(); closeErr != nil {
		logger.Error("closing store", "error", closeErr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		stop()
		os.Exit(1)
	}
}
