package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/cli"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/middleware"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/platform/bootstrap"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/platform/config"
	"github.com/google/subcommands"
)

const name = "portfolio_cli"

var verbose = flag.Bool("v", false, "log at LOG_LEVEL instead of warnings only")

func main() {
	// Answers shell completion requests (COMP_LINE) and exits; no-op otherwise.
	cli.Completion(cli.Commands(&cli.App{})).Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	level := slog.LevelWarn
	if *verbose {
		level = bootstrap.ParseLevel(cfg.LogLevel)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = middleware.WithLogger(ctx, logger)

	repos, closeStore, err := bootstrap.NewRepositoryProvider(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	container := services.NewServiceContainer(ctx, cfg, repos)
	cli.Register(commander, cli.NewApp(cfg, container, logger))

	status := commander.Execute(ctx)
	container.Refresher.Stop()
	closeStore()
	os.Exit(int(status))
}
