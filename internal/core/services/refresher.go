package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/middleware"
	"golang.org/x/sync/errgroup"
)

// refresher drives provider fetches: once at startup, on a fixed schedule, and
// whenever the display currency changes. A zero interval disables that loop.
type refresher struct {
	BaseService
	currency portssvc.CurrencySvcFacade
	market   portssvc.MarketDataSvcFacade

	ratesInterval  time.Duration
	marketInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// mu orders wg.Add in TriggerMarketRefresh against Stop's wg.Wait.
	mu      sync.Mutex
	stopped bool

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewRefresher creates the refresher and subscribes it to currency changes.
func NewRefresher(currency portssvc.CurrencySvcFacade, market portssvc.MarketDataSvcFacade, ratesInterval, marketInterval time.Duration) portssvc.RefresherSvc {
	ctx, cancel := context.WithCancel(context.Background())
	r := &refresher{
		currency:       currency,
		market:         market,
		ratesInterval:  ratesInterval,
		marketInterval: marketInterval,
		ctx:            ctx,
		cancel:         cancel,
	}
	currency.Subscribe(func(ctx context.Context, _, _ string) {
		r.TriggerMarketRefresh(ctx)
	})
	return r
}

// Ensure refresher implements the RefresherSvc interface
var _ portssvc.RefresherSvc = (*refresher)(nil)

func (r *refresher) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		stop := context.AfterFunc(ctx, r.cancel)

		// Startup fetches run concurrently; failures leave the empty defaults in place.
		g, gctx := errgroup.WithContext(r.ctx)
		g.Go(func() error {
			_ = r.currency.RefreshRates(gctx)
			return nil
		})
		g.Go(func() error {
			_, _ = r.market.Refresh(gctx, r.currency.Currency())
			return nil
		})
		_ = g.Wait()

		r.loop("exchange_rates", r.ratesInterval, func(ctx context.Context) {
			_ = r.currency.RefreshRates(ctx)
		})
		r.loop("market_data", r.marketInterval, func(ctx context.Context) {
			_, _ = r.market.Refresh(ctx, r.currency.Currency())
		})

		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			<-r.ctx.Done()
			stop()
		}()
		r.LogInfo(ctx, "Refresher started",
			slog.Duration("rates_interval", r.ratesInterval),
			slog.Duration("market_interval", r.marketInterval))
	})
}

func (r *refresher) loop(name string, interval time.Duration, fetch func(context.Context)) {
	if interval <= 0 {
		r.LogInfo(r.ctx, "Periodic refresh disabled", slog.String("loop", name))
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.GetLogger(r.ctx).Error("Refresh loop panic recovered",
					slog.String("loop", name), slog.Any("panic", rec))
			}
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-r.ctx.Done():
				r.LogDebug(r.ctx, "Refresh loop stopped", slog.String("loop", name))
				return
			case <-ticker.C:
				fetch(r.ctx)
			}
		}
	}()
}

func (r *refresher) TriggerMarketRefresh(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || r.ctx.Err() != nil {
		return
	}
	quote := r.currency.Currency()
	// Request contexts end with the request; the refresh outlives it.
	runCtx := middleware.WithLogger(r.ctx, r.GetLogger(ctx))

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				r.GetLogger(runCtx).Error("Market refresh panic recovered", slog.Any("panic", rec))
			}
		}()
		if _, err := r.market.Refresh(runCtx, quote); err != nil && !errors.Is(err, ErrRefreshSuperseded) {
			r.LogDebug(runCtx, "Triggered market refresh did not update the cache",
				slog.String("quote_currency", quote))
		}
	}()
}

func (r *refresher) Stop() {
	r.stopOnce.Do(func() {
		r.mu.Lock()
		r.stopped = true
		r.cancel()
		r.mu.Unlock()

		r.wg.Wait()
	})
}
