// Package main is the entry point for the healthyou CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"healthyou/internal/backend/mockapi"
	"healthyou/internal/cli"
	"healthyou/internal/commands"
	"healthyou/internal/config"
	"healthyou/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return mockapi.New(cfg)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory, cli.OpenSQLiteSession)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
