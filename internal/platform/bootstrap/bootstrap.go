// Package bootstrap wires configuration into the concrete adapters shared by
// the HTTP server and the command-line client.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/adapters/coingecko"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/adapters/database/pgsql"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/adapters/exchangerates"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/adapters/kvstore"
	portsrepo "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/platform/config"
	"github.com/SscSPs/crypto_portfolio_tracker/pkg/database"
	"github.com/SscSPs/crypto_portfolio_tracker/pkg/httpclient"
)

// NewLogger returns a JSON logger writing to w at the configured level.
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps a config level name to a slog.Level. Unknown names yield info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// OpenStore opens the key-value store selected by cfg.StorageBackend. The
// returned close function is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.KeyValueStore, func(), error) {
	noop := func() {}
	switch cfg.StorageBackend {
	case config.StorageBackendMemory:
		logger.Info("Using in-memory store; preferences will not survive a restart")
		return kvstore.NewMemoryStore(), noop, nil
	case config.StorageBackendFile:
		store, err := kvstore.NewFileStore(cfg.StorageFilePath)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("Using file store", slog.String("path", cfg.StorageFilePath))
		return store, noop, nil
	case config.StorageBackendPostgres:
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return nil, noop, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, noop, err
		}
		return pgsql.NewPgxKeyValueStore(pool), func() { database.ClosePgxPool(pool, logger) }, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// NewRepositoryProvider opens the store and builds the upstream clients.
func NewRepositoryProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	store, closeStore, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return portsrepo.RepositoryProvider{}, closeStore, err
	}
	client := httpclient.New(cfg.HTTPTimeout)
	return portsrepo.RepositoryProvider{
		Store:        store,
		MarketData:   coingecko.NewClient(cfg.MarketAPIBaseURL, client),
		ExchangeRate: exchangerates.NewClient(cfg.ExchangeRateAPIURL, client),
	}, closeStore, nil
}
