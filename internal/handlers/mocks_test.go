package handlers_test

import (
	"context"

	"github.com/SscSPs/crypto_portfolio_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/crypto_portfolio_tracker/internal/core/ports/services"
	"github.com/SscSPs/crypto_portfolio_tracker/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) Currency() string {
	return m.Called().String(0)
}

func (m *MockCurrencyService) ListSupportedCurrencies() []domain.SupportedCurrency {
	return domain.SupportedCurrencies
}

func (m *MockCurrencyService) ExchangeRates() domain.ExchangeRateTable {
	return m.Called().Get(0).(domain.ExchangeRateTable)
}

func (m *MockCurrencyService) Loading() bool {
	return m.Called().Bool(0)
}

func (m *MockCurrencyService) Convert(amount decimal.Decimal, from, to string) decimal.Decimal {
	args := m.Called(amount, from, to)
	return args.Get(0).(decimal.Decimal)
}

// Format renders like the real service so responses can be asserted on.
func (m *MockCurrencyService) Format(amount decimal.Decimal, code string) string {
	if c, ok := domain.LookupSupportedCurrency(code); ok {
		return utils.FormatCurrency(amount, c)
	}
	return utils.FormatPlain(amount)
}

func (m *MockCurrencyService) FormatCanonical(amountUSD decimal.Decimal, code string) string {
	return m.Format(amountUSD, code)
}

func (m *MockCurrencyService) SetCurrency(ctx context.Context, code string) bool {
	return m.Called(ctx, code).Bool(0)
}

func (m *MockCurrencyService) RefreshRates(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCurrencyService) Subscribe(fn portssvc.CurrencyChangeFunc) {}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock HoldingsService ---
type MockHoldingsService struct {
	mock.Mock
}

func (m *MockHoldingsService) ListHoldings(ctx context.Context) []domain.Holding {
	return m.Called(ctx).Get(0).([]domain.Holding)
}

func (m *MockHoldingsService) LoadHoldings(ctx context.Context) []domain.Holding {
	return m.Called(ctx).Get(0).([]domain.Holding)
}

func (m *MockHoldingsService) AddHolding(ctx context.Context, coinID string, amount, purchasePrice decimal.Decimal, priceCurrency string) (*domain.Holding, error) {
	args := m.Called(ctx, coinID, amount, purchasePrice, priceCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Holding), args.Error(1)
}

func (m *MockHoldingsService) RemoveHolding(ctx context.Context, holdingID string) error {
	return m.Called(ctx, holdingID).Error(0)
}

var _ portssvc.HoldingsSvcFacade = (*MockHoldingsService)(nil)

// --- Mock MarketDataService ---
type MockMarketDataService struct {
	mock.Mock
}

func (m *MockMarketDataService) Snapshot() domain.MarketSnapshot {
	return m.Called().Get(0).(domain.MarketSnapshot)
}

func (m *MockMarketDataService) FindByID(coinID string) (domain.Coin, bool) {
	args := m.Called(coinID)
	return args.Get(0).(domain.Coin), args.Bool(1)
}

func (m *MockMarketDataService) SearchCoins(term string, limit int) []domain.Coin {
	return m.Called(term, limit).Get(0).([]domain.Coin)
}

func (m *MockMarketDataService) Refresh(ctx context.Context, quoteCurrency string) ([]domain.Coin, error) {
	args := m.Called(ctx, quoteCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coin), args.Error(1)
}

var _ portssvc.MarketDataSvcFacade = (*MockMarketDataService)(nil)

// --- Mock PortfolioService ---
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) GetPortfolio(ctx context.Context) domain.PortfolioView {
	return m.Called(ctx).Get(0).(domain.PortfolioView)
}

var _ portssvc.PortfolioService = (*MockPortfolioService)(nil)

// --- Mock Refresher ---
type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) Start(ctx context.Context)                { m.Called(ctx) }
func (m *MockRefresher) TriggerMarketRefresh(ctx context.Context) { m.Called(ctx) }
func (m *MockRefresher) Stop()                                    { m.Called() }

var _ portssvc.RefresherSvc = (*MockRefresher)(nil)
