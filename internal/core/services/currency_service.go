package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/apperrors"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// currencyService owns the active display currency and the exchange-rate table.
// It is the only writer of either.
type currencyService struct {
	BaseService
	store    portsrepo.KeyValueStore
	provider portsrepo.ExchangeRateProvider

	mu          sync.RWMutex
	active      string
	rates       domain.ExchangeRateTable
	loading     bool
	subscribers []portssvc.CurrencyChangeFunc
}

// NewCurrencyService creates the currency service. The active currency is read
// from the store; an absent, unreadable or unsupported value yields USD. Until
// the first successful rate refresh every conversion uses an empty table.
func NewCurrencyService(ctx context.Context, store portsrepo.KeyValueStore, provider portsrepo.ExchangeRateProvider) portssvc.CurrencySvcFacade {
	s := &currencyService{
		store:    store,
		provider: provider,
		active:   domain.CanonicalCurrency,
		rates:    domain.NewExchangeRateTable(nil, time.Time{}),
		loading:  true,
	}

	saved, found, err := store.Get(ctx, portsrepo.PreferredCurrencyKey)
	switch {
	case err != nil:
		s.LogWarn(ctx, err, "Failed to read preferred currency, using default",
			slog.String("default", s.active))
	case found && domain.IsSupportedCurrency(saved):
		s.active = saved
	case found:
		s.LogWarn(ctx, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, saved),
			"Ignoring persisted preferred currency")
	}
	return s
}

// Ensure currencyService implements the CurrencySvcFacade interface
var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) Currency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *currencyService) ListSupportedCurrencies() []domain.SupportedCurrency {
	out := make([]domain.SupportedCurrency, len(domain.SupportedCurrencies))
	copy(out, domain.SupportedCurrencies)
	return out
}

func (s *currencyService) ExchangeRates() domain.ExchangeRateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rates.Clone()
}

func (s *currencyService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *currencyService) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rates.Convert(amount, from, to)
}

func (s *currencyService) Format(amount decimal.Decimal, code string) string {
	c, ok := domain.LookupSupportedCurrency(code)
	if !ok {
		return utils.FormatPlain(amount)
	}
	return utils.FormatCurrency(amount, c)
}

func (s *currencyService) FormatCanonical(amountUSD decimal.Decimal, code string) string {
	return s.Format(s.Convert(amountUSD, domain.CanonicalCurrency, code), code)
}

func (s *currencyService) SetCurrency(ctx context.Context, code string) bool {
	if !domain.IsSupportedCurrency(code) {
		reason := "not a supported display currency"
		if _, err := currency.ParseISO(code); err != nil {
			reason = "not an ISO 4217 currency code"
		}
		s.LogInfo(ctx, "Rejected currency selection",
			slog.String("currency", code),
			slog.String("reason", reason))
		return false
	}

	s.mu.Lock()
	previous := s.active
	s.active = code
	subscribers := make([]portssvc.CurrencyChangeFunc, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	if err := s.store.Set(ctx, portsrepo.PreferredCurrencyKey, code); err != nil {
		s.LogError(ctx, err, "Failed to persist preferred currency", slog.String("currency", code))
	}

	if previous != code {
		s.LogInfo(ctx, "Display currency changed",
			slog.String("from", previous),
			slog.String("to", code))
		for _, fn := range subscribers {
			fn(ctx, previous, code)
		}
	}
	return true
}

func (s *currencyService) RefreshRates(ctx context.Context) error {
	table, err := s.provider.FetchLatestRates(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Exchange rate refresh failed, keeping previous table")
		return fmt.Errorf("failed to refresh exchange rates: %w", err)
	}
	if len(table.Rates) == 0 {
		err := fmt.Errorf("%w: exchange rate response contained no rates", apperrors.ErrUpstream)
		s.LogWarn(ctx, err, "Exchange rate refresh failed, keeping previous table")
		return err
	}

	s.mu.Lock()
	s.rates = table.Clone()
	s.loading = false
	s.mu.Unlock()

	s.LogInfo(ctx, "Exchange rates refreshed",
		slog.Int("currencies", len(table.Rates)),
		slog.Time("fetched_at", table.FetchedAt))
	return nil
}

func (s *currencyService) Subscribe(fn portssvc.CurrencyChangeFunc) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
