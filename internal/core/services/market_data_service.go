package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/utils/valuation"
)

// DefaultMarketPageSize is the number of top coins requested per refresh.
const DefaultMarketPageSize = 100

// ErrRefreshSuperseded is returned by Refresh when a newer refresh already
// replaced the cache while this one was in flight. Its result is discarded.
var ErrRefreshSuperseded = errors.New("market refresh superseded by a newer request")

// marketDataService caches the latest market snapshot. Each refresh is tagged
// with a sequence number; a result is applied only if no newer refresh has been applied.
type marketDataService struct {
	BaseService
	provider portsrepo.MarketDataProvider
	pageSize int
	now      func() time.Time

	issued atomic.Uint64

	mu       sync.RWMutex
	applied  uint64
	snapshot domain.MarketSnapshot
}

// MarketDataOption is a functional option for configuring the market data service
type MarketDataOption func(*marketDataService)

// WithPageSize sets how many coins are requested per refresh.
func WithPageSize(n int) MarketDataOption {
	return func(s *marketDataService) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithClock overrides the time source used to stamp snapshots.
func WithClock(now func() time.Time) MarketDataOption {
	return func(s *marketDataService) {
		s.now = now
	}
}

// NewMarketDataService creates an empty market data cache.
func NewMarketDataService(provider portsrepo.MarketDataProvider, options ...MarketDataOption) portssvc.MarketDataSvcFacade {
	svc := &marketDataService{
		provider: provider,
		pageSize: DefaultMarketPageSize,
		now:      time.Now,
		snapshot: domain.MarketSnapshot{Coins: []domain.Coin{}},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure marketDataService implements the MarketDataSvcFacade interface
var _ portssvc.MarketDataSvcFacade = (*marketDataService)(nil)

func (s *marketDataService) Refresh(ctx context.Context, quoteCurrency string) ([]domain.Coin, error) {
	quoteCurrency = strings.ToUpper(quoteCurrency)
	seq := s.issued.Add(1)
	logger := s.GetLogger(ctx).With(
		slog.String("quote_currency", quoteCurrency),
		slog.Uint64("sequence", seq))

	coins, err := s.provider.FetchMarkets(ctx, quoteCurrency, s.pageSize, 1)
	if err != nil {
		logger.Warn("Error fetching coins, keeping cached market data", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to refresh market data: %w", err)
	}
	if coins == nil {
		coins = []domain.Coin{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A failed newer refresh does not block an older successful one.
	if seq <= s.applied {
		logger.Info("Discarding superseded market refresh", slog.Uint64("applied_sequence", s.applied))
		return nil, ErrRefreshSuperseded
	}
	s.applied = seq
	s.snapshot = domain.MarketSnapshot{
		QuoteCurrency: quoteCurrency,
		Coins:         copyCoins(coins),
		FetchedAt:     s.now(),
	}

	logger.Info("Market data refreshed", slog.Int("coins", len(coins)))
	return copyCoins(coins), nil
}

func (s *marketDataService) Snapshot() domain.MarketSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := s.snapshot
	snap.Coins = copyCoins(s.snapshot.Coins)
	return snap
}

func (s *marketDataService) FindByID(coinID string) (domain.Coin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.FindCoin(coinID)
}

func (s *marketDataService) SearchCoins(term string, limit int) []domain.Coin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return valuation.FilterCoins(s.snapshot.Coins, term, limit)
}

func copyCoins(in []domain.Coin) []domain.Coin {
	out := make([]domain.Coin, len(in))
	copy(out, in)
	return out
}
